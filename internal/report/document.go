package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/erraggy/oaslint/analyzer"
	"github.com/erraggy/oaslint/issue"
	"go.yaml.in/yaml/v4"
)

// Document is the structured form shared by the JSON and YAML formats.
type Document struct {
	Files   []File  `json:"files"   yaml:"files"`
	Summary Summary `json:"summary" yaml:"summary"`
}

// File is the structured report of one file.
type File struct {
	Path       string   `json:"path"                 yaml:"path"`
	Grammar    string   `json:"grammar,omitempty"    yaml:"grammar,omitempty"`
	Fatal      bool     `json:"fatal,omitempty"      yaml:"fatal,omitempty"`
	Issues     []Issue  `json:"issues"               yaml:"issues"`
	Suppressed int      `json:"suppressed,omitempty" yaml:"suppressed,omitempty"`
	Metrics    *Metrics `json:"metrics,omitempty"    yaml:"metrics,omitempty"`
	Failures   []string `json:"failures,omitempty"   yaml:"failures,omitempty"`
}

// Issue is one reported issue. Lines and columns are 1-based; zero means
// unknown.
type Issue struct {
	Rule      string     `json:"rule"                yaml:"rule"`
	Severity  string     `json:"severity"            yaml:"severity"`
	Message   string     `json:"message"             yaml:"message"`
	Position  Position   `json:"position"            yaml:"position"`
	Cost      *float64   `json:"cost,omitempty"      yaml:"cost,omitempty"`
	Secondary []Position `json:"secondary,omitempty" yaml:"secondary,omitempty"`
}

// Position is a location within a file.
type Position struct {
	Line      int    `json:"line,omitempty"       yaml:"line,omitempty"`
	Column    int    `json:"column,omitempty"     yaml:"column,omitempty"`
	EndLine   int    `json:"end_line,omitempty"   yaml:"end_line,omitempty"`
	EndColumn int    `json:"end_column,omitempty" yaml:"end_column,omitempty"`
	Message   string `json:"message,omitempty"    yaml:"message,omitempty"`
}

// Metrics are the metrics of one file.
type Metrics struct {
	LinesOfCode     []int `json:"ncloc"            yaml:"ncloc"`
	CommentLines    []int `json:"comment_lines"    yaml:"comment_lines"`
	SuppressedLines []int `json:"suppressed_lines" yaml:"suppressed_lines"`
	Complexity      int   `json:"complexity"       yaml:"complexity"`
	Schemas         int   `json:"schemas"          yaml:"schemas"`
	Operations      int   `json:"operations"       yaml:"operations"`
	Paths           int   `json:"paths"            yaml:"paths"`
}

// Summary totals a run.
type Summary struct {
	Files      int            `json:"files"                 yaml:"files"`
	Fatal      int            `json:"fatal"                 yaml:"fatal"`
	Issues     int            `json:"issues"                yaml:"issues"`
	Suppressed int            `json:"suppressed"            yaml:"suppressed"`
	Failures   int            `json:"failures"              yaml:"failures"`
	BySeverity map[string]int `json:"by_severity,omitempty" yaml:"by_severity,omitempty"`
}

// NewDocument converts reports into their structured form. Nil reports
// are skipped.
func NewDocument(reports []*analyzer.FileReport) Document {
	s := analyzer.Summarize(reports)
	doc := Document{
		Files: make([]File, 0, len(reports)),
		Summary: Summary{
			Files:      s.Files,
			Fatal:      s.Fatal,
			Issues:     s.Issues,
			Suppressed: s.Suppressed,
			Failures:   s.Failures,
			BySeverity: s.BySeverity,
		},
	}
	for _, r := range reports {
		if r == nil {
			continue
		}
		doc.Files = append(doc.Files, newFile(r))
	}
	return doc
}

func newFile(r *analyzer.FileReport) File {
	f := File{
		Path:       r.Path,
		Grammar:    string(r.Grammar),
		Fatal:      r.Fatal,
		Issues:     make([]Issue, 0, len(r.Issues)),
		Suppressed: len(r.Suppressed),
	}
	for _, is := range r.Issues {
		f.Issues = append(f.Issues, NewIssue(is))
	}
	for _, err := range r.Failures {
		f.Failures = append(f.Failures, err.Error())
	}
	if m := r.Metrics; m != nil {
		f.Metrics = &Metrics{
			LinesOfCode:     m.LinesOfCode.Sorted(),
			CommentLines:    m.LinesOfComment.Sorted(),
			SuppressedLines: m.LinesWithSuppression.Sorted(),
			Complexity:      m.Complexity,
			Schemas:         m.SchemaCount,
			Operations:      m.OperationCount,
			Paths:           m.PathCount,
		}
	}
	return f
}

// NewIssue converts an issue into its structured form.
func NewIssue(is issue.Issue) Issue {
	out := Issue{
		Rule:     is.RuleKey,
		Severity: is.Severity.String(),
		Message:  is.Message(),
		Position: NewPosition(is.Primary),
		Cost:     is.Cost,
	}
	out.Position.Message = ""
	for _, loc := range is.Secondary {
		out.Secondary = append(out.Secondary, NewPosition(loc))
	}
	return out
}

// NewPosition converts a location into 1-based line and column numbers.
func NewPosition(loc issue.Location) Position {
	p := Position{Message: loc.Message}
	if !loc.HasLine() {
		return p
	}
	p.Line, p.EndLine = loc.StartLine, loc.EndLine
	if loc.HasOffset() {
		p.Column = loc.StartLineOffset + 1
		p.EndColumn = loc.EndLineOffset + 1
	}
	return p
}

// JSON writes reports as indented JSON.
func JSON(w io.Writer, reports []*analyzer.FileReport) error {
	return EncodeJSON(w, NewDocument(reports))
}

// YAML writes reports as YAML.
func YAML(w io.Writer, reports []*analyzer.FileReport) error {
	return EncodeYAML(w, NewDocument(reports))
}

// EncodeJSON writes v as indented JSON.
func EncodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("report: failed to write JSON: %w", err)
	}
	return nil
}

// EncodeYAML writes v as YAML.
func EncodeYAML(w io.Writer, v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("report: failed to marshal YAML: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("report: failed to write YAML: %w", err)
	}
	return nil
}
