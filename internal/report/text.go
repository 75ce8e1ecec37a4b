package report

import (
	"fmt"
	"io"

	"github.com/erraggy/oaslint/analyzer"
	"github.com/erraggy/oaslint/issue"
	"github.com/fatih/color"
)

type palette struct {
	path, rule, dim       *color.Color
	blocker, major, minor *color.Color
	info                  *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		path:    color.New(color.Bold),
		rule:    color.New(color.FgCyan),
		dim:     color.New(color.Faint),
		blocker: color.New(color.FgRed, color.Bold),
		major:   color.New(color.FgYellow, color.Bold),
		minor:   color.New(color.FgYellow),
		info:    color.New(color.FgBlue),
	}
	for _, c := range []*color.Color{p.path, p.rule, p.dim, p.blocker, p.major, p.minor, p.info} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(s issue.Severity) *color.Color {
	switch s {
	case issue.SeverityBlocker, issue.SeverityCritical:
		return p.blocker
	case issue.SeverityMajor:
		return p.major
	case issue.SeverityMinor:
		return p.minor
	default:
		return p.info
	}
}

// Text writes one line per issue, in the form
//
//	path:line:col: severity [Rule] message
//
// followed by indented secondary locations and a summary line.
func Text(w io.Writer, reports []*analyzer.FileReport, opts Options) error {
	p := newPalette(opts.Color)
	tw := &errWriter{w: w}

	for _, r := range reports {
		if r == nil {
			continue
		}
		for _, is := range r.Issues {
			writeIssue(tw, p, r.Path, is, "")
		}
		if opts.ShowSuppressed {
			for _, is := range r.Suppressed {
				writeIssue(tw, p, r.Path, is, " (suppressed)")
			}
		}
		for _, err := range r.Failures {
			tw.printf("%s: %s %s\n", p.path.Sprint(r.Path), p.blocker.Sprint("failure"), err)
		}
	}

	s := analyzer.Summarize(reports)
	tw.printf("%s\n", p.dim.Sprintf("%d %s in %d %s (%d suppressed, %d unparsable)",
		s.Issues, plural(s.Issues, "issue"), s.Files, plural(s.Files, "file"), s.Suppressed, s.Fatal))
	return tw.err
}

func writeIssue(tw *errWriter, p palette, path string, is issue.Issue, suffix string) {
	tw.printf("%s: %s %s %s%s\n",
		p.path.Sprint(location(path, is.Primary)),
		p.severity(is.Severity).Sprint(is.Severity),
		p.rule.Sprintf("[%s]", is.RuleKey),
		is.Message(),
		suffix)
	for _, loc := range is.Secondary {
		tw.printf("    %s: %s\n", p.dim.Sprint(location(path, loc)), loc.Message)
	}
}

func location(path string, loc issue.Location) string {
	if !loc.HasLine() {
		return path
	}
	return path + ":" + loc.String()
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

// errWriter keeps the first write error.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	if _, err := fmt.Fprintf(e.w, format, args...); err != nil {
		e.err = fmt.Errorf("report: failed to write text: %w", err)
	}
}
