package metrics

import (
	"strings"

	"github.com/erraggy/oaslint/tree"
	"github.com/erraggy/oaslint/walker"
)

var (
	// CommentMarkers are matched case-insensitively inside comments.
	CommentMarkers = []string{"NOSONAR", "oaslint:ignore"}
	// ExtensionMarkers are property keys that suppress their line.
	ExtensionMarkers = []string{"x-nosonar", "x-oaslint-ignore"}
)

// LineVisitor classifies the lines of the file's token stream into m.
// It needs no nodes and runs when the file starts.
func LineVisitor(m *FileMetrics) *walker.Visitor {
	return &walker.Visitor{
		Name: "lines",
		OnFileStart: func(f *walker.File) error {
			m.LinesOfCode, m.LinesOfComment, m.LinesWithSuppression = ClassifyLines(f.Tokens)
			return nil
		},
	}
}

// ClassifyLines sorts the lines covered by tokens into code, comment and
// suppressed lines. A line holding both code and a comment is in both sets.
// A comment carrying a suppression marker makes its line suppressed and
// code rather than comment.
func ClassifyLines(tokens []tree.Token) (code, comment, suppressed LineSet) {
	code, comment, suppressed = LineSet{}, LineSet{}, LineSet{}
	for i, tok := range tokens {
		if tok.Type == tree.TokenEOF {
			continue
		}
		lines := tok.CoveredLines()
		switch {
		case tok.Type == tree.TokenComment && isSuppressionComment(tok.Value):
			suppressed.Add(lines...)
			code.Add(lines...)
		case tok.Type == tree.TokenComment:
			comment.Add(lines...)
		default:
			code.Add(lines...)
			if isSuppressionKey(tokens, i) {
				suppressed.Add(tok.Line)
			}
		}
	}
	return code, comment, suppressed
}

func isSuppressionComment(text string) bool {
	upper := strings.ToUpper(text)
	for _, marker := range CommentMarkers {
		if strings.Contains(upper, strings.ToUpper(marker)) {
			return true
		}
	}
	return false
}

// isSuppressionKey reports whether tokens[i] is a property key naming a
// suppression extension.
func isSuppressionKey(tokens []tree.Token, i int) bool {
	tok := tokens[i]
	if tok.Type != tree.TokenScalar && tok.Type != tree.TokenString {
		return false
	}
	name := strings.Trim(tok.Value, `"'`)
	matched := false
	for _, marker := range ExtensionMarkers {
		if strings.EqualFold(name, marker) {
			matched = true
			break
		}
	}
	if !matched {
		return false
	}
	for _, next := range tokens[i+1:] {
		if next.Type == tree.TokenComment {
			continue
		}
		return next.Type == tree.TokenPunctuation && next.Value == ":"
	}
	return false
}
