package issue

import (
	"fmt"

	"github.com/erraggy/oaslint/tree"
)

const (
	// UndefinedLine marks a location that applies to the whole file.
	UndefinedLine = 0
	// UndefinedOffset marks a location that applies to a whole line.
	UndefinedOffset = -1
)

// Location is a message attached to a region of the source document.
type Location struct {
	Message         string
	StartLine       int
	StartLineOffset int
	EndLine         int
	EndLineOffset   int
}

// AtToken returns a location covering tok.
func AtToken(msg string, tok tree.Token) Location {
	return AtTokens(msg, tok, tok)
}

// AtTokens returns a location from the start of from to the end of to.
func AtTokens(msg string, from, to tree.Token) Location {
	if !from.IsValid() {
		return AtFile(msg)
	}
	if !to.IsValid() || to.Before(from.Line, from.Column) {
		to = from
	}
	return Location{
		Message:         msg,
		StartLine:       from.Line,
		StartLineOffset: from.Column,
		EndLine:         to.EndLine,
		EndLineOffset:   to.EndColumn,
	}
}

// AtNode returns a location on the property key that introduced n or, for
// the root and array items, on the node's own span. Nodes without tokens
// fall back to the whole file.
func AtNode(msg string, n tree.Node) Location {
	if tree.IsMissing(n) {
		return AtFile(msg)
	}
	if key, ok := n.Key(); ok {
		return AtToken(msg, key)
	}
	first, last, ok := tree.Span(n)
	if !ok {
		return AtFile(msg)
	}
	return AtTokens(msg, first, last)
}

// AtLine returns a location covering a whole line. Non-positive lines
// produce a file-level location.
func AtLine(msg string, line int) Location {
	if line <= UndefinedLine {
		return AtFile(msg)
	}
	return Location{
		Message:         msg,
		StartLine:       line,
		StartLineOffset: UndefinedOffset,
		EndLine:         line,
		EndLineOffset:   UndefinedOffset,
	}
}

// AtFile returns a location that applies to the whole file.
func AtFile(msg string) Location {
	return Location{
		Message:         msg,
		StartLine:       UndefinedLine,
		StartLineOffset: UndefinedOffset,
		EndLine:         UndefinedLine,
		EndLineOffset:   UndefinedOffset,
	}
}

// HasLine reports whether the location points at a line.
func (l Location) HasLine() bool {
	return l.StartLine > UndefinedLine
}

// HasOffset reports whether the location points inside a line.
func (l Location) HasOffset() bool {
	return l.HasLine() && l.StartLineOffset > UndefinedOffset
}

// String returns "line:col" (1-based column), "line" or "file".
func (l Location) String() string {
	switch {
	case l.HasOffset():
		return fmt.Sprintf("%d:%d", l.StartLine, l.StartLineOffset+1)
	case l.HasLine():
		return fmt.Sprintf("%d", l.StartLine)
	default:
		return "file"
	}
}
