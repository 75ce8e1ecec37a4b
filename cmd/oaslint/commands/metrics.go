package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/erraggy/oaslint/internal/cliutil"
	"github.com/erraggy/oaslint/internal/config"
	"github.com/erraggy/oaslint/internal/report"
)

// MetricsFlags contains flags for the metrics command
type MetricsFlags struct {
	Format  string
	Config  string
	Output  string
	Verbose bool
}

// SetupMetricsFlags creates and configures a FlagSet for the metrics command.
func SetupMetricsFlags() (*flag.FlagSet, *MetricsFlags) {
	fs := flag.NewFlagSet("metrics", flag.ContinueOnError)
	flags := &MetricsFlags{}

	fs.StringVar(&flags.Format, "format", string(report.FormatText), "output format: text, json, or yaml")
	fs.StringVar(&flags.Config, "config", "", "profile file (default: nearest "+config.FileName+")")
	fs.StringVar(&flags.Output, "o", "", "write the metrics to a file instead of stdout")
	fs.BoolVar(&flags.Verbose, "v", false, "verbose logging on stderr")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: oaslint metrics [flags] <file|dir|->...\n\n")
		Writef(fs.Output(), "Compute lines of code, comment lines, complexity and entity counts.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  oaslint metrics openapi.yaml\n")
		Writef(fs.Output(), "  oaslint metrics --format json api/ | jq '.files[].metrics.complexity'\n")
	}

	return fs, flags
}

// HandleMetrics executes the metrics command
func HandleMetrics(ctx context.Context, args []string) error {
	fs, flags := SetupMetricsFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return fmt.Errorf("metrics command requires at least one file path, directory, or '-' for stdin")
	}
	format, err := report.ParseFormat(flags.Format)
	if err != nil {
		return err
	}
	if format == report.FormatSARIF {
		return fmt.Errorf("metrics cannot be written as %s", format)
	}
	cfg, err := config.Resolve(flags.Config)
	if err != nil {
		return err
	}

	paths, err := ExpandPaths(fs.Args())
	if err != nil {
		return err
	}
	reports, err := analyzePaths(ctx, newAnalyzer(cfg, flags.Verbose), paths)
	if err != nil {
		return err
	}

	out, err := cliutil.OpenOutput(flags.Output, paths)
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()

	if format != report.FormatText {
		doc := report.NewDocument(reports)
		for i := range doc.Files {
			doc.Files[i].Issues = nil
		}
		if format == report.FormatJSON {
			return report.EncodeJSON(out, doc)
		}
		return report.EncodeYAML(out, doc)
	}

	Writef(out, "%-40s %6s %8s %10s %7s %10s %5s\n", "FILE", "NCLOC", "COMMENTS", "COMPLEXITY", "SCHEMAS", "OPERATIONS", "PATHS")
	for _, r := range reports {
		if r == nil {
			continue
		}
		if r.Metrics == nil {
			Writef(out, "%-40s %s\n", r.Path, "(not parsed)")
			continue
		}
		m := r.Metrics
		Writef(out, "%-40s %6d %8d %10d %7d %10d %5d\n", r.Path,
			m.LinesOfCode.Len(), m.LinesOfComment.Len(), m.Complexity, m.SchemaCount, m.OperationCount, m.PathCount)
	}
	return nil
}
