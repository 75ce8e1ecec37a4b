package parser

import (
	"testing"

	"github.com/erraggy/oaslint/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tok is a compact token description for table tests.
type tok struct {
	typ       tree.TokenType
	value     string
	line, col int
}

func toks(tokens []tree.Token) []tok {
	out := make([]tok, len(tokens))
	for i, t := range tokens {
		out[i] = tok{t.Type, t.Value, t.Line, t.Column}
	}
	return out
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []tok
	}{
		{
			name:  "mapping with comment",
			input: "key: value # c\n",
			want: []tok{
				{tree.TokenScalar, "key", 1, 0},
				{tree.TokenPunctuation, ":", 1, 3},
				{tree.TokenScalar, "value", 1, 5},
				{tree.TokenComment, "# c", 1, 11},
				{tree.TokenEOF, "", 2, 0},
			},
		},
		{
			name:  "compact json",
			input: `{"a":1,"b":[true]}`,
			want: []tok{
				{tree.TokenPunctuation, "{", 1, 0},
				{tree.TokenString, `"a"`, 1, 1},
				{tree.TokenPunctuation, ":", 1, 4},
				{tree.TokenScalar, "1", 1, 5},
				{tree.TokenPunctuation, ",", 1, 6},
				{tree.TokenString, `"b"`, 1, 7},
				{tree.TokenPunctuation, ":", 1, 10},
				{tree.TokenPunctuation, "[", 1, 11},
				{tree.TokenScalar, "true", 1, 12},
				{tree.TokenPunctuation, "]", 1, 16},
				{tree.TokenPunctuation, "}", 1, 17},
				{tree.TokenEOF, "", 1, 18},
			},
		},
		{
			name:  "block sequence",
			input: "- a\n- b",
			want: []tok{
				{tree.TokenPunctuation, "-", 1, 0},
				{tree.TokenScalar, "a", 1, 2},
				{tree.TokenPunctuation, "-", 2, 0},
				{tree.TokenScalar, "b", 2, 2},
				{tree.TokenEOF, "", 2, 3},
			},
		},
		{
			name:  "url and hash inside plain scalars",
			input: "u: http://x.y/z#frag\nk: a#b",
			want: []tok{
				{tree.TokenScalar, "u", 1, 0},
				{tree.TokenPunctuation, ":", 1, 1},
				{tree.TokenScalar, "http://x.y/z#frag", 1, 3},
				{tree.TokenScalar, "k", 2, 0},
				{tree.TokenPunctuation, ":", 2, 1},
				{tree.TokenScalar, "a#b", 2, 3},
				{tree.TokenEOF, "", 2, 6},
			},
		},
		{
			name:  "document marker and directive",
			input: "%YAML 1.2\n---\na: 1\n...\n",
			want: []tok{
				{tree.TokenDirective, "%YAML 1.2", 1, 0},
				{tree.TokenDocumentMarker, "---", 2, 0},
				{tree.TokenScalar, "a", 3, 0},
				{tree.TokenPunctuation, ":", 3, 1},
				{tree.TokenScalar, "1", 3, 3},
				{tree.TokenDocumentMarker, "...", 4, 0},
				{tree.TokenEOF, "", 5, 0},
			},
		},
		{
			name:  "anchor alias and tag",
			input: "a: &x !!str v\nb: *x",
			want: []tok{
				{tree.TokenScalar, "a", 1, 0},
				{tree.TokenPunctuation, ":", 1, 1},
				{tree.TokenAnchor, "&x", 1, 3},
				{tree.TokenTag, "!!str", 1, 6},
				{tree.TokenScalar, "v", 1, 12},
				{tree.TokenScalar, "b", 2, 0},
				{tree.TokenPunctuation, ":", 2, 1},
				{tree.TokenAnchor, "*x", 2, 3},
				{tree.TokenEOF, "", 2, 5},
			},
		},
		{
			name:  "crlf line endings",
			input: "a: b\r\nc: d\r\n",
			want: []tok{
				{tree.TokenScalar, "a", 1, 0},
				{tree.TokenPunctuation, ":", 1, 1},
				{tree.TokenScalar, "b", 1, 3},
				{tree.TokenScalar, "c", 2, 0},
				{tree.TokenPunctuation, ":", 2, 1},
				{tree.TokenScalar, "d", 2, 3},
				{tree.TokenEOF, "", 3, 0},
			},
		},
		{
			name:  "empty input",
			input: "",
			want:  []tok{{tree.TokenEOF, "", 1, 0}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, toks(tokenize([]byte(tt.input))))
		})
	}
}

func TestTokenize_BlockScalar(t *testing.T) {
	input := "d: | # keep\n  a\n\n  b\nn: 1\n"
	tokens := tokenize([]byte(input))
	require.Len(t, tokens, 8)

	block := tokens[2]
	assert.Equal(t, tree.TokenBlockScalar, block.Type)
	assert.Equal(t, "|\n  a\n\n  b", block.Value)
	assert.Equal(t, 1, block.Line)
	assert.Equal(t, 3, block.Column)
	assert.Equal(t, 4, block.EndLine)
	assert.Equal(t, 3, block.EndColumn)
	assert.Equal(t, []int{1, 2, 3, 4}, block.CoveredLines())

	assert.Equal(t, tree.TokenComment, tokens[3].Type)
	assert.Equal(t, "# keep", tokens[3].Value)

	assert.Equal(t, "n", tokens[4].Value)
	assert.Equal(t, 5, tokens[4].Line)
}

func TestTokenize_NestedBlockScalarStopsAtSibling(t *testing.T) {
	input := "a:\n  - description: >-\n      folded\n      text\n    name: x\n"
	tokens := tokenize([]byte(input))

	var block, name tree.Token
	for _, tk := range tokens {
		switch {
		case tk.Type == tree.TokenBlockScalar:
			block = tk
		case tk.Value == "name":
			name = tk
		}
	}
	assert.Equal(t, 2, block.Line)
	assert.Equal(t, 4, block.EndLine)
	assert.Equal(t, 5, name.Line)
}

func TestTokenize_MultiLineQuotedString(t *testing.T) {
	tokens := tokenize([]byte("k: \"a\n  b\"\nz: 1"))
	require.GreaterOrEqual(t, len(tokens), 3)
	s := tokens[2]
	assert.Equal(t, tree.TokenString, s.Type)
	assert.Equal(t, 1, s.Line)
	assert.Equal(t, 2, s.EndLine)
	assert.Equal(t, 4, s.EndColumn)
	assert.Equal(t, "z", tokens[3].Value)
	assert.Equal(t, 3, tokens[3].Line)
}

func TestTokenize_EndsWithZeroWidthEOF(t *testing.T) {
	tokens := tokenize([]byte("a: 1\n# tail"))
	last := tokens[len(tokens)-1]
	assert.Equal(t, tree.TokenEOF, last.Type)
	assert.True(t, last.IsZeroWidth())
	assert.Equal(t, tree.TokenComment, tokens[len(tokens)-2].Type)
}
