package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/erraggy/oaslint/cpd"
	"github.com/erraggy/oaslint/internal/cliutil"
	"github.com/erraggy/oaslint/internal/config"
	"github.com/erraggy/oaslint/internal/report"
)

// CpdFlags contains flags for the cpd command
type CpdFlags struct {
	Format string
	Config string
	Output string
}

// cpdFile is the structured output of the cpd command for one file.
type cpdFile struct {
	Path   string      `json:"path"   yaml:"path"`
	Tokens []cpd.Token `json:"tokens" yaml:"tokens"`
}

// SetupCpdFlags creates and configures a FlagSet for the cpd command.
func SetupCpdFlags() (*flag.FlagSet, *CpdFlags) {
	fs := flag.NewFlagSet("cpd", flag.ContinueOnError)
	flags := &CpdFlags{}

	fs.StringVar(&flags.Format, "format", string(report.FormatText), "output format: text, json, or yaml")
	fs.StringVar(&flags.Config, "config", "", "profile file (default: nearest "+config.FileName+")")
	fs.StringVar(&flags.Output, "o", "", "write the tokens to a file instead of stdout")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: oaslint cpd [flags] <file|dir|->...\n\n")
		Writef(fs.Output(), "Print the tokens used for copy-paste detection. Comments are excluded.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nText Output:\n")
		Writef(fs.Output(), "  One token per line: path:line:col-endLine:endCol<TAB>text\n")
	}

	return fs, flags
}

// HandleCpd executes the cpd command
func HandleCpd(ctx context.Context, args []string) error {
	fs, flags := SetupCpdFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return fmt.Errorf("cpd command requires at least one file path, directory, or '-' for stdin")
	}
	format, err := report.ParseFormat(flags.Format)
	if err != nil {
		return err
	}
	if format == report.FormatSARIF {
		return fmt.Errorf("cpd tokens cannot be written as %s", format)
	}
	cfg, err := config.Resolve(flags.Config)
	if err != nil {
		return err
	}

	paths, err := ExpandPaths(fs.Args())
	if err != nil {
		return err
	}
	reports, err := analyzePaths(ctx, newAnalyzer(cfg, false), paths)
	if err != nil {
		return err
	}

	files := make([]cpdFile, 0, len(reports))
	for _, r := range reports {
		if r != nil && r.CpdTokens != nil {
			files = append(files, cpdFile{Path: r.Path, Tokens: r.CpdTokens})
		}
	}

	out, err := cliutil.OpenOutput(flags.Output, paths)
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()

	switch format {
	case report.FormatJSON:
		return report.EncodeJSON(out, files)
	case report.FormatYAML:
		return report.EncodeYAML(out, files)
	}
	for _, f := range files {
		for _, tok := range f.Tokens {
			Writef(out, "%s:%d:%d-%d:%d\t%s\n", f.Path,
				tok.StartLine, tok.StartLineOffset+1, tok.EndLine, tok.EndLineOffset+1, tok.Text)
		}
	}
	return nil
}
