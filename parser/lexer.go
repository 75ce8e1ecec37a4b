package parser

import (
	"strings"

	"github.com/erraggy/oaslint/tree"
)

// lexer splits a YAML (or JSON) source into the flat token stream kept next
// to the node tree. It never fails: malformed input still yields tokens, and
// the stream always ends with a zero-width EOF token.
//
// Lines are 1-based and columns are 0-based rune offsets, matching the
// positions reported by go.yaml.in/yaml/v4 (minus one on the column).
type lexer struct {
	src    []rune
	pos    int
	line   int
	col    int
	flow   int
	tokens []tree.Token

	// atLineStart is true while only indentation has been read on the line.
	atLineStart bool
	indent      int

	// pendingBlock is the index of a block scalar token whose content lines
	// start after the current line, or -1.
	pendingBlock int
	blockIndent  int
}

func tokenize(data []byte) []tree.Token {
	l := &lexer{
		src:          []rune(string(data)),
		line:         1,
		atLineStart:  true,
		pendingBlock: -1,
	}
	if len(l.src) > 0 && l.src[0] == '\uFEFF' {
		l.pos++
	}
	l.run()
	return l.tokens
}

func (l *lexer) peek(offset int) rune {
	i := l.pos + offset
	if i < 0 || i >= len(l.src) {
		return 0
	}
	return l.src[i]
}

func (l *lexer) advance() {
	if l.pos >= len(l.src) {
		return
	}
	if l.src[l.pos] == '\n' {
		l.line++
		l.col = 0
		l.atLineStart = true
		l.indent = 0
	} else if l.src[l.pos] != '\r' {
		l.col++
	}
	l.pos++
}

func (l *lexer) emit(typ tree.TokenType, start int, line, col int) {
	l.tokens = append(l.tokens, tree.Token{
		Type:      typ,
		Value:     strings.ReplaceAll(string(l.src[start:l.pos]), "\r", ""),
		Line:      line,
		Column:    col,
		EndLine:   l.line,
		EndColumn: l.col,
	})
}

func (l *lexer) run() {
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		switch {
		case c == '\n':
			l.advance()
			if l.pendingBlock >= 0 {
				l.blockContent()
			}
		case c == ' ' || c == '\t' || c == '\r':
			if l.atLineStart && c == ' ' {
				l.indent++
			}
			l.advance()
		case c == '#' && l.startsComment():
			l.readToEOL(tree.TokenComment)
		case l.atLineStart && l.col == 0 && l.isDocumentMarker():
			line, col, start := l.line, l.col, l.pos
			l.pos += 3
			l.col += 3
			l.atLineStart = false
			l.emit(tree.TokenDocumentMarker, start, line, col)
		case l.atLineStart && l.col == 0 && c == '%':
			l.readToEOL(tree.TokenDirective)
		default:
			l.atLineStart = false
			l.lexToken(c)
		}
	}
	l.tokens = append(l.tokens, tree.Token{
		Type:      tree.TokenEOF,
		Line:      l.line,
		Column:    l.col,
		EndLine:   l.line,
		EndColumn: l.col,
	})
}

func (l *lexer) lexToken(c rune) {
	line, col, start := l.line, l.col, l.pos
	next := l.peek(1)
	switch {
	case c == '"':
		l.quoted('"')
		l.emit(tree.TokenString, start, line, col)
	case c == '\'':
		l.quoted('\'')
		l.emit(tree.TokenString, start, line, col)
	case c == '{' || c == '[':
		l.flow++
		l.advance()
		l.emit(tree.TokenPunctuation, start, line, col)
	case c == '}' || c == ']':
		if l.flow > 0 {
			l.flow--
		}
		l.advance()
		l.emit(tree.TokenPunctuation, start, line, col)
	case c == ',' && l.flow > 0:
		l.advance()
		l.emit(tree.TokenPunctuation, start, line, col)
	case c == ':' && l.isMappingColon():
		l.advance()
		l.emit(tree.TokenPunctuation, start, line, col)
	case (c == '-' || c == '?') && l.flow == 0 && isBlankOrEnd(next):
		l.advance()
		l.emit(tree.TokenPunctuation, start, line, col)
	case (c == '|' || c == '>') && l.flow == 0:
		l.blockHeader()
	case c == '&' || c == '*':
		l.advance()
		for l.pos < len(l.src) && !isBlankOrEnd(l.src[l.pos]) && !(l.flow > 0 && isFlowIndicator(l.src[l.pos])) {
			l.advance()
		}
		l.emit(tree.TokenAnchor, start, line, col)
	case c == '!':
		for l.pos < len(l.src) && !isBlankOrEnd(l.src[l.pos]) {
			l.advance()
		}
		l.emit(tree.TokenTag, start, line, col)
	default:
		l.plain()
		if l.pos == start {
			l.advance()
		}
		l.emit(tree.TokenScalar, start, line, col)
	}
}

// startsComment reports whether a '#' at the cursor opens a comment.
func (l *lexer) startsComment() bool {
	if l.pos == 0 || l.atLineStart {
		return true
	}
	prev := l.src[l.pos-1]
	return prev == ' ' || prev == '\t' || prev == '\uFEFF'
}

func (l *lexer) isDocumentMarker() bool {
	if l.pos+3 > len(l.src) {
		return false
	}
	m := string(l.src[l.pos : l.pos+3])
	if m != "---" && m != "..." {
		return false
	}
	return isBlankOrEnd(l.peek(3))
}

// isMappingColon reports whether the ':' at the cursor separates a key from
// its value. JSON allows the colon to touch the preceding string.
func (l *lexer) isMappingColon() bool {
	next := l.peek(1)
	if isBlankOrEnd(next) {
		return true
	}
	if l.flow == 0 {
		return false
	}
	if isFlowIndicator(next) {
		return true
	}
	if n := len(l.tokens); n > 0 {
		prev := l.tokens[n-1]
		if prev.EndLine == l.line && prev.EndColumn == l.col &&
			(prev.Type == tree.TokenString || prev.Value == "}" || prev.Value == "]") {
			return true
		}
	}
	return false
}

func (l *lexer) readToEOL(typ tree.TokenType) {
	line, col, start := l.line, l.col, l.pos
	for l.pos < len(l.src) && l.src[l.pos] != '\n' {
		l.advance()
	}
	end := l.pos
	endCol := l.col
	// A CRLF line ending must not leak into the token.
	for end > start && l.src[end-1] == '\r' {
		end--
	}
	l.tokens = append(l.tokens, tree.Token{
		Type:      typ,
		Value:     string(l.src[start:end]),
		Line:      line,
		Column:    col,
		EndLine:   line,
		EndColumn: endCol,
	})
}

// quoted consumes a quoted scalar including both quotes. Quoted scalars may
// span lines. An unterminated scalar runs to the end of the input.
func (l *lexer) quoted(q rune) {
	l.advance()
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		switch {
		case q == '"' && c == '\\':
			l.advance()
			l.advance()
		case q == '\'' && c == '\'' && l.peek(1) == '\'':
			l.advance()
			l.advance()
		case c == q:
			l.advance()
			l.atLineStart = false
			return
		default:
			l.advance()
		}
	}
	l.atLineStart = false
}

// plain consumes a plain scalar up to the end of the line, a comment, a
// mapping colon or, inside flow collections, a flow indicator. Trailing
// blanks are left unread.
func (l *lexer) plain() {
	last := l.pos
	lastLine, lastCol := l.line, l.col
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		if c == '\n' || c == '\r' {
			break
		}
		if c == '#' && l.pos > 0 && (l.src[l.pos-1] == ' ' || l.src[l.pos-1] == '\t') {
			break
		}
		if c == ':' && (isBlankOrEnd(l.peek(1)) || (l.flow > 0 && isFlowIndicator(l.peek(1)))) {
			break
		}
		if l.flow > 0 && isFlowIndicator(c) {
			break
		}
		l.advance()
		if c != ' ' && c != '\t' {
			last = l.pos
			lastLine, lastCol = l.line, l.col
		}
	}
	l.pos = last
	l.line, l.col = lastLine, lastCol
}

// blockHeader reads a literal or folded block scalar indicator. The content
// lines are attached to the token once the header line ends.
func (l *lexer) blockHeader() {
	line, col, start := l.line, l.col, l.pos
	indent := l.blockParentIndent()
	l.advance()
	for l.pos < len(l.src) && !isBlankOrEnd(l.src[l.pos]) {
		l.advance()
	}
	l.emit(tree.TokenBlockScalar, start, line, col)
	l.pendingBlock = len(l.tokens) - 1
	l.blockIndent = indent
}

// blockParentIndent returns the indentation a content line of a block scalar
// must exceed: the column of the key or sequence dash that owns the scalar.
func (l *lexer) blockParentIndent() int {
	i := len(l.tokens) - 1
	for i >= 0 && l.tokens[i].Line == l.line &&
		(l.tokens[i].Type == tree.TokenAnchor || l.tokens[i].Type == tree.TokenTag) {
		i--
	}
	if i < 0 || l.tokens[i].Line != l.line {
		return l.indent - 1
	}
	tok := l.tokens[i]
	switch tok.Value {
	case ":":
		for j := i - 1; j >= 0 && l.tokens[j].Line == l.line; j-- {
			if l.tokens[j].Type != tree.TokenPunctuation {
				return l.tokens[j].Column
			}
		}
		return l.indent
	case "-":
		return tok.Column
	default:
		return l.indent - 1
	}
}

// blockContent extends the pending block scalar with the following lines
// that are blank or indented deeper than its parent. The cursor is left at
// the end of the last non-blank content line.
func (l *lexer) blockContent() {
	idx := l.pendingBlock
	l.pendingBlock = -1

	endPos, endLine, endCol := -1, 0, 0
	pos, line := l.pos, l.line
	for pos < len(l.src) {
		eol := pos
		for eol < len(l.src) && l.src[eol] != '\n' {
			eol++
		}
		content := strings.TrimRight(string(l.src[pos:eol]), "\r")
		indent := len(content) - len(strings.TrimLeft(content, " "))
		blank := strings.TrimSpace(content) == ""
		if !blank && indent <= l.blockIndent {
			break
		}
		if !blank {
			endPos = eol
			endLine = line
			endCol = len([]rune(content))
		}
		if eol >= len(l.src) {
			break
		}
		pos = eol + 1
		line++
	}
	if endPos < 0 {
		return
	}
	tok := &l.tokens[idx]
	tok.Value += "\n" + strings.ReplaceAll(string(l.src[l.pos:endPos]), "\r", "")
	tok.EndLine = endLine
	tok.EndColumn = endCol

	// Comments on the header line were already emitted; only the content
	// lines are skipped.
	for l.pos < endPos {
		l.advance()
	}
	l.atLineStart = false
}

func isBlankOrEnd(r rune) bool {
	return r == 0 || r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

func isFlowIndicator(r rune) bool {
	return r == ',' || r == '[' || r == ']' || r == '{' || r == '}'
}
