package commands

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/erraggy/oaslint/checks"
	"github.com/erraggy/oaslint/internal/report"
)

// RulesFlags contains flags for the rules command
type RulesFlags struct {
	Format string
	Tag    string
}

// ruleEntry is the structured form of a rule listing.
type ruleEntry struct {
	Key         string   `json:"key"                    yaml:"key"`
	Title       string   `json:"title"                  yaml:"title"`
	Description string   `json:"description,omitempty"  yaml:"description,omitempty"`
	Severity    string   `json:"severity"               yaml:"severity"`
	Cost        *float64 `json:"cost_minutes,omitempty" yaml:"cost_minutes,omitempty"`
	Tags        []string `json:"tags,omitempty"         yaml:"tags,omitempty"`
}

// SetupRulesFlags creates and configures a FlagSet for the rules command.
func SetupRulesFlags() (*flag.FlagSet, *RulesFlags) {
	fs := flag.NewFlagSet("rules", flag.ContinueOnError)
	flags := &RulesFlags{}

	fs.StringVar(&flags.Format, "format", string(report.FormatText), "output format: text, json, or yaml")
	fs.StringVar(&flags.Tag, "tag", "", "only list rules with this tag")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: oaslint rules [flags]\n\n")
		Writef(fs.Output(), "List the available rules.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
	}

	return fs, flags
}

// HandleRules executes the rules command
func HandleRules(args []string) error {
	fs, flags := SetupRulesFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	format, err := report.ParseFormat(flags.Format)
	if err != nil {
		return err
	}

	var entries []ruleEntry
	for _, rule := range checks.DefaultRegistry().Rules() {
		if flags.Tag != "" && !containsFold(rule.Tags, flags.Tag) {
			continue
		}
		entries = append(entries, ruleEntry{
			Key:         rule.Key,
			Title:       rule.Title,
			Description: rule.Description,
			Severity:    rule.Severity.String(),
			Cost:        rule.Cost,
			Tags:        rule.Tags,
		})
	}

	switch format {
	case report.FormatJSON:
		return report.EncodeJSON(stdout, entries)
	case report.FormatYAML:
		return report.EncodeYAML(stdout, entries)
	case report.FormatSARIF:
		return fmt.Errorf("rules cannot be written as %s", format)
	}
	for _, e := range entries {
		Writef(stdout, "%-22s %-9s %s\n", e.Key, e.Severity, e.Title)
	}
	return nil
}

func containsFold(values []string, s string) bool {
	for _, v := range values {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}
