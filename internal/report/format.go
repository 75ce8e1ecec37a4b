package report

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/erraggy/oaslint/analyzer"
	"github.com/erraggy/oaslint/checks"
	"github.com/erraggy/oaslint/oaserrors"
)

// Format names an output format.
type Format string

const (
	FormatText  Format = "text"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatSARIF Format = "sarif"
)

// Formats lists the supported formats.
func Formats() []Format {
	return []Format{FormatText, FormatJSON, FormatYAML, FormatSARIF}
}

// ParseFormat converts a format name (case-insensitive) into a Format. An
// empty name selects text.
func ParseFormat(name string) (Format, error) {
	if name == "" {
		return FormatText, nil
	}
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	if !slices.Contains(Formats(), f) {
		return "", &oaserrors.ConfigError{
			Option:  "format",
			Value:   name,
			Message: fmt.Sprintf("expected one of %v", Formats()),
		}
	}
	return f, nil
}

// Options controls rendering.
type Options struct {
	// Color enables ANSI colors in text output.
	Color bool
	// ShowSuppressed lists suppressed issues in text output.
	ShowSuppressed bool
	// Rules describes the rules in SARIF output. Rules that raised issues
	// but are not listed get a bare descriptor.
	Rules []checks.Rule
	// ToolVersion is recorded in SARIF output.
	ToolVersion string
}

// Write renders reports to w in the given format.
func Write(w io.Writer, format Format, reports []*analyzer.FileReport, opts Options) error {
	switch format {
	case FormatText, "":
		return Text(w, reports, opts)
	case FormatJSON:
		return JSON(w, reports)
	case FormatYAML:
		return YAML(w, reports)
	case FormatSARIF:
		return SARIF(w, reports, opts)
	default:
		return &oaserrors.ConfigError{Option: "format", Value: string(format), Message: "unsupported format"}
	}
}
