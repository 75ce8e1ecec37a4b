package tree

// TokenType classifies a lexical token.
type TokenType int

const (
	// TokenScalar is a plain (unquoted) scalar.
	TokenScalar TokenType = iota
	// TokenString is a single- or double-quoted scalar, quotes included.
	TokenString
	// TokenBlockScalar is a literal (|) or folded (>) block scalar with its content.
	TokenBlockScalar
	// TokenPunctuation is a structural indicator: { } [ ] , : - ?
	TokenPunctuation
	// TokenComment is a "#" comment up to the end of the line.
	TokenComment
	// TokenAnchor is an anchor (&a) or an alias (*a).
	TokenAnchor
	// TokenTag is a node tag such as !!str.
	TokenTag
	// TokenDirective is a "%" directive line.
	TokenDirective
	// TokenDocumentMarker is "---" or "...".
	TokenDocumentMarker
	// TokenEOF terminates every token stream.
	TokenEOF
)

// String returns the name of the token type.
func (t TokenType) String() string {
	switch t {
	case TokenScalar:
		return "scalar"
	case TokenString:
		return "string"
	case TokenBlockScalar:
		return "block-scalar"
	case TokenPunctuation:
		return "punctuation"
	case TokenComment:
		return "comment"
	case TokenAnchor:
		return "anchor"
	case TokenTag:
		return "tag"
	case TokenDirective:
		return "directive"
	case TokenDocumentMarker:
		return "document-marker"
	case TokenEOF:
		return "eof"
	default:
		return "unknown"
	}
}

// Token is one lexical token of a source document.
//
// Lines are 1-based. Columns are 0-based offsets within the line, counted in
// runes. The end position is exclusive.
type Token struct {
	Type      TokenType
	Value     string
	Line      int
	Column    int
	EndLine   int
	EndColumn int
}

// IsZeroWidth reports whether the token starts and ends at the same position.
func (t Token) IsZeroWidth() bool {
	return t.Line == t.EndLine && t.Column == t.EndColumn
}

// IsValid reports whether the token has a known position.
func (t Token) IsValid() bool {
	return t.Line > 0
}

// CoveredLines returns every line the token spans, in order.
func (t Token) CoveredLines() []int {
	if !t.IsValid() {
		return nil
	}
	end := t.EndLine
	if end < t.Line {
		end = t.Line
	}
	lines := make([]int, 0, end-t.Line+1)
	for l := t.Line; l <= end; l++ {
		lines = append(lines, l)
	}
	return lines
}

// Before reports whether t starts strictly before the given position.
func (t Token) Before(line, column int) bool {
	return t.Line < line || (t.Line == line && t.Column < column)
}
