package analyzer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/erraggy/oaslint/checks"
	"github.com/erraggy/oaslint/cpd"
	"github.com/erraggy/oaslint/issue"
	"github.com/erraggy/oaslint/metrics"
	"github.com/erraggy/oaslint/oaserrors"
	"github.com/erraggy/oaslint/parser"
	"github.com/erraggy/oaslint/tree"
	"github.com/erraggy/oaslint/walker"
	"golang.org/x/sync/errgroup"
)

// FileReport is the result of analyzing one file.
type FileReport struct {
	Path string
	// Grammar is the grammar the document was read with, empty if the
	// parse was fatal.
	Grammar tree.Grammar
	// Issues are the issues left after suppression, sorted by position.
	Issues []issue.Issue
	// Suppressed are the issues dropped because their line is suppressed.
	Suppressed []issue.Issue
	// SuppressedLines lists the lines carrying a suppression marker.
	SuppressedLines []int
	// Metrics is nil when the document could not be parsed.
	Metrics *metrics.FileMetrics
	// CpdTokens feed duplicate detection; nil when the document could not
	// be parsed.
	CpdTokens []cpd.Token
	// Failures holds rule failures and read errors for this file.
	Failures []error
	// Fatal is true when the document could not be parsed.
	Fatal bool
}

// Analyzer runs rule checks and metrics over documents. It is safe for
// concurrent use.
type Analyzer struct {
	registry    *checks.Registry
	rules       []checks.Rule
	parserOpts  []parser.Option
	walkerOpts  []walker.Option
	logger      parser.Logger
	concurrency int
}

// New creates an Analyzer with the given options.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{concurrency: 1}
	for _, opt := range opts {
		opt(a)
	}
	if a.registry == nil {
		a.registry = checks.DefaultRegistry()
	}
	if a.logger == nil {
		a.logger = parser.NopLogger{}
	}
	return a
}

// Rules returns the rules the analyzer runs.
func (a *Analyzer) Rules() []checks.Rule {
	if a.rules != nil {
		return a.rules
	}
	return a.registry.Rules()
}

func (a *Analyzer) parser(log parser.Logger) *parser.Parser {
	opts := append([]parser.Option{parser.WithLogger(log)}, a.parserOpts...)
	return parser.New(opts...)
}

// AnalyzeBytes analyzes an in-memory document. path only names the
// document in the report and in log output.
func (a *Analyzer) AnalyzeBytes(ctx context.Context, path string, data []byte) *FileReport {
	log := a.logger.With("file", path)
	return a.analyze(ctx, path, a.parser(log).ParseBytes(data), log)
}

// AnalyzeFile reads and analyzes the file at path. The error is set when
// the file cannot be read or exceeds the parser's size limit.
func (a *Analyzer) AnalyzeFile(ctx context.Context, path string) (*FileReport, error) {
	outcome, err := a.parser(a.logger).Parse(path)
	if err != nil {
		return nil, fmt.Errorf("analyzer: %w", err)
	}
	return a.analyze(ctx, path, outcome, a.logger.With("file", path)), nil
}

// AnalyzeReader reads r to the end and analyzes its content under the
// name path. The error is set when r cannot be read or exceeds the parser's
// size limit.
func (a *Analyzer) AnalyzeReader(ctx context.Context, path string, r io.Reader) (*FileReport, error) {
	log := a.logger.With("file", path)
	outcome, err := a.parser(log).ParseReader(r)
	if err != nil {
		return nil, fmt.Errorf("analyzer: %w", err)
	}
	return a.analyze(ctx, path, outcome, log), nil
}

// AnalyzeFiles analyzes paths with up to the configured number of files in
// parallel. Reports are returned in the order of paths; a file that cannot
// be read gets a report holding the read error. Cancellation is checked
// before each file: on cancellation the reports of the files already
// analyzed are returned with the context error, and the others are nil.
func (a *Analyzer) AnalyzeFiles(ctx context.Context, paths []string) ([]*FileReport, error) {
	reports := make([]*FileReport, len(paths))

	var g errgroup.Group
	g.SetLimit(a.concurrency)
	for i, path := range paths {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			r, err := a.AnalyzeFile(ctx, path)
			if err != nil {
				a.logger.Error("unable to read file", "file", path, "error", err)
				r = &FileReport{Path: path, Failures: []error{err}}
			}
			reports[i] = r
			return nil
		})
	}
	_ = g.Wait()
	return reports, ctx.Err()
}

func (a *Analyzer) analyze(ctx context.Context, path string, outcome tree.Outcome, log parser.Logger) *FileReport {
	f := walker.NewFile(path, outcome).WithContext(ctx)
	report := &FileReport{Path: path}

	if fatal, ok := f.Fatal(); ok {
		report.Fatal = true
		err := &oaserrors.ParseError{Path: path, Line: fatal.Line, Column: fatal.Column, Message: fatal.Message}
		log.Error("unable to parse file", "error", err.Error())
	} else {
		if f.Root != nil {
			report.Grammar = f.Root.Kind().Grammar
		}
		if failed, ok := f.Outcome.(tree.ValidationFailed); ok {
			log.Error("file failed validation", "causes", len(failed.Causes))
			for _, c := range failed.Causes {
				err := &oaserrors.ValidationError{Line: issue.AtNode(c.Message, c.Node).StartLine, Message: c.Message}
				if !tree.IsMissing(c.Node) {
					err.Property = c.Node.Name()
				}
				log.Debug("validation cause", "error", err.Error())
			}
		}
	}

	w := walker.New(a.walkerOpts...)
	res := checks.Run(f, a.Rules(), checks.WithWalker(w))
	for _, err := range res.Failures {
		if !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
			log.Warn("check failed", "error", err.Error())
		}
	}
	report.Failures = append(report.Failures, res.Failures...)

	suppressed := metrics.LineSet{}
	if !report.Fatal {
		m, errs := metrics.Extract(f, a.walkerOpts...)
		report.Metrics = &m
		report.CpdTokens = cpd.ExtractFile(f)
		report.Failures = append(report.Failures, errs...)
		suppressed = m.LinesWithSuppression
		report.SuppressedLines = suppressed.Sorted()
	}

	report.Issues, report.Suppressed = FilterSuppressed(res.Issues, suppressed)
	issue.Sort(report.Issues)
	issue.Sort(report.Suppressed)
	log.Debug("file analyzed", "issues", len(report.Issues), "suppressed", len(report.Suppressed))
	return report
}

// FilterSuppressed splits issues into those to report and those whose
// primary line is in suppressed.
func FilterSuppressed(issues []issue.Issue, suppressed metrics.LineSet) (kept, dropped []issue.Issue) {
	for _, is := range issues {
		if is.HasLocation() && suppressed.Has(is.Line()) {
			dropped = append(dropped, is)
			continue
		}
		kept = append(kept, is)
	}
	return kept, dropped
}

// IsReadError reports whether err is a missing or unreadable file.
func IsReadError(err error) bool {
	return errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) || errors.Is(err, oaserrors.ErrResourceLimit)
}
