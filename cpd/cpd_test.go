package cpd

import (
	"testing"

	"github.com/erraggy/oaslint/internal/testutil"
	"github.com/erraggy/oaslint/tree"
	"github.com/erraggy/oaslint/walker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_FiltersEOFAndZeroWidth(t *testing.T) {
	tokens := []tree.Token{
		{Type: tree.TokenScalar, Value: "openapi", Line: 1, Column: 0, EndLine: 1, EndColumn: 7},
		{Type: tree.TokenPunctuation, Value: ":", Line: 1, Column: 7, EndLine: 1, EndColumn: 8},
		{Type: tree.TokenScalar, Value: "", Line: 1, Column: 9, EndLine: 1, EndColumn: 9},
		{Type: tree.TokenBlockScalar, Value: "|\n  a", Line: 2, Column: 5, EndLine: 3, EndColumn: 3},
		{Type: tree.TokenComment, Value: "# c", Line: 3, Column: 4, EndLine: 3, EndColumn: 7},
		{Type: tree.TokenEOF, Line: 4, Column: 0, EndLine: 4, EndColumn: 0},
	}
	got := Extract(tokens)
	require.Len(t, got, 3)
	assert.Equal(t, Token{Text: "openapi", StartLine: 1, StartLineOffset: 0, EndLine: 1, EndLineOffset: 7}, got[0])
	assert.Equal(t, ":", got[1].Text)
	assert.Equal(t, "|\n  a", got[2].Text)
	for _, tok := range got {
		assert.True(t, tok.StartLine != tok.EndLine || tok.StartLineOffset != tok.EndLineOffset)
	}
}

func TestExtract_Empty(t *testing.T) {
	assert.Empty(t, Extract(nil))
	assert.Empty(t, Extract([]tree.Token{{Type: tree.TokenEOF, Line: 1, EndLine: 1}}))
}

func TestExtractFile(t *testing.T) {
	f := testutil.ParseString(t, "# c\nopenapi: 3.1.0\n")
	got := ExtractFile(f)
	var texts []string
	for _, tok := range got {
		texts = append(texts, tok.Text)
	}
	assert.Equal(t, []string{"openapi", ":", "3.1.0"}, texts)

	assert.Nil(t, ExtractFile(walker.NewFile("x", tree.Fatal{Line: 1})))
}
