package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"slices"

	"github.com/erraggy/oaslint"
	"github.com/erraggy/oaslint/analyzer"
	"github.com/erraggy/oaslint/checks"
	"github.com/erraggy/oaslint/internal/cliutil"
	"github.com/erraggy/oaslint/internal/config"
	"github.com/erraggy/oaslint/internal/report"
	"github.com/erraggy/oaslint/issue"
	"github.com/erraggy/oaslint/parser"
	"github.com/erraggy/oaslint/walker"
)

// AnalyzeFlags contains flags for the analyze command
type AnalyzeFlags struct {
	Format         string
	Config         string
	Strict         bool
	Jobs           int
	Rules          string
	Disable        string
	FailOn         string
	Output         string
	ShowSuppressed bool
	NoColor        bool
	Verbose        bool
}

// SetupAnalyzeFlags creates and configures a FlagSet for the analyze command.
// Returns the FlagSet and an AnalyzeFlags struct with bound flag variables.
func SetupAnalyzeFlags() (*flag.FlagSet, *AnalyzeFlags) {
	fs := flag.NewFlagSet("analyze", flag.ContinueOnError)
	flags := &AnalyzeFlags{}

	fs.StringVar(&flags.Format, "format", "", "output format: text, json, yaml, or sarif (default from profile, else text)")
	fs.StringVar(&flags.Format, "f", "", "output format (shorthand)")
	fs.StringVar(&flags.Config, "config", "", "profile file (default: nearest "+config.FileName+")")
	fs.BoolVar(&flags.Strict, "strict", false, "report structural problems as parsing errors")
	fs.IntVar(&flags.Jobs, "jobs", 0, "number of files analyzed in parallel (default from profile)")
	fs.StringVar(&flags.Rules, "rules", "", "comma-separated rule keys to run (default: all)")
	fs.StringVar(&flags.Disable, "disable", "", "comma-separated rule keys to skip")
	fs.StringVar(&flags.FailOn, "fail-on", "info", "exit 1 when an issue at or above this severity remains")
	fs.StringVar(&flags.Output, "o", "", "write the report to a file instead of stdout")
	fs.StringVar(&flags.Output, "output", "", "write the report to a file instead of stdout")
	fs.BoolVar(&flags.ShowSuppressed, "show-suppressed", false, "list suppressed issues in text output")
	fs.BoolVar(&flags.NoColor, "no-color", false, "disable colors in text output")
	fs.BoolVar(&flags.Verbose, "v", false, "verbose logging on stderr")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: oaslint analyze [flags] <file|dir|->...\n\n")
		Writef(fs.Output(), "Analyze OpenAPI documents and report rule violations.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nOutput Formats:\n")
		Writef(fs.Output(), "  text (default)  Human-readable text output\n")
		Writef(fs.Output(), "  json            JSON format for programmatic processing\n")
		Writef(fs.Output(), "  yaml            YAML format for programmatic processing\n")
		Writef(fs.Output(), "  sarif           SARIF 2.1.0 for code scanning tools\n")
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  oaslint analyze openapi.yaml\n")
		Writef(fs.Output(), "  oaslint analyze --format sarif -o results.sarif api/\n")
		Writef(fs.Output(), "  oaslint analyze --disable PathSpinalCase --fail-on major *.yaml\n")
		Writef(fs.Output(), "  cat openapi.yaml | oaslint analyze -\n")
		Writef(fs.Output(), "\nSuppression:\n")
		Writef(fs.Output(), "  Issues on a line carrying a NOSONAR comment or an x-nosonar key are not reported.\n")
		Writef(fs.Output(), "\nExit Codes:\n")
		Writef(fs.Output(), "  0    No issues at or above --fail-on\n")
		Writef(fs.Output(), "  1    Issues found, or the command failed\n")
	}

	return fs, flags
}

// HandleAnalyze executes the analyze command
func HandleAnalyze(ctx context.Context, args []string) error {
	fs, flags := SetupAnalyzeFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return fmt.Errorf("analyze command requires at least one file path, directory, or '-' for stdin")
	}

	cfg, err := config.Resolve(flags.Config)
	if err != nil {
		return err
	}
	applyAnalyzeFlags(&cfg, flags, fs)
	if err := cfg.Validate(); err != nil {
		return err
	}
	format, err := report.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}
	failOn, err := issue.ParseSeverity(flags.FailOn)
	if err != nil {
		return fmt.Errorf("invalid fail-on: %w", err)
	}
	rules, err := cfg.SelectRules(checks.DefaultRegistry())
	if err != nil {
		return err
	}

	paths, err := ExpandPaths(fs.Args())
	if err != nil {
		return err
	}

	a := newAnalyzer(cfg, flags.Verbose, analyzer.WithRules(rules))
	reports, err := analyzePaths(ctx, a, paths)
	if err != nil {
		return err
	}

	out, err := cliutil.OpenOutput(flags.Output, paths)
	if err != nil {
		return err
	}
	opts := report.Options{
		Color:          out.IsTerminal && !flags.NoColor,
		ShowSuppressed: flags.ShowSuppressed,
		Rules:          rules,
		ToolVersion:    oaslint.Version(),
	}
	werr := report.Write(out, format, reports, opts)
	if cerr := out.Close(); werr == nil {
		werr = cerr
	}
	if werr != nil {
		return werr
	}

	if analyzer.AtLeast(reports, failOn) {
		return ErrIssuesFound
	}
	return nil
}

// applyAnalyzeFlags overrides the profile with the flags given explicitly.
func applyAnalyzeFlags(cfg *config.Config, flags *AnalyzeFlags, fs *flag.FlagSet) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "format", "f":
			cfg.Format = flags.Format
		case "strict":
			cfg.Strict = flags.Strict
		case "jobs":
			cfg.Jobs = flags.Jobs
		case "rules":
			cfg.Rules.Enable = config.SplitList(flags.Rules)
		case "disable":
			cfg.Rules.Disable = append(cfg.Rules.Disable, config.SplitList(flags.Disable)...)
		}
	})
}

func newAnalyzer(cfg config.Config, verbose bool, opts ...analyzer.Option) *analyzer.Analyzer {
	opts = append(opts,
		analyzer.WithLogger(NewLogger(verbose)),
		analyzer.WithConcurrency(cfg.Jobs),
		analyzer.WithParserOptions(parser.WithStrict(cfg.Strict)),
	)
	if cfg.MaxDepth > 0 {
		opts = append(opts, analyzer.WithWalkerOptions(walker.WithMaxDepth(cfg.MaxDepth)))
	}
	return analyzer.New(opts...)
}

// analyzePaths analyzes stdin for "-" and the files otherwise, keeping the
// argument order.
func analyzePaths(ctx context.Context, a *analyzer.Analyzer, paths []string) ([]*analyzer.FileReport, error) {
	var files []string
	stdinAt := -1
	for i, p := range paths {
		if p == StdinFilePath {
			if stdinAt >= 0 {
				return nil, fmt.Errorf("stdin ('-') can only be given once")
			}
			stdinAt = i
			continue
		}
		files = append(files, p)
	}

	reports, err := a.AnalyzeFiles(ctx, files)
	if err != nil {
		return nil, err
	}
	if stdinAt < 0 {
		return reports, nil
	}
	r, err := a.AnalyzeReader(ctx, "<stdin>", os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	return slices.Insert(reports, stdinAt, r), nil
}
