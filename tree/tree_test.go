package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitPointer(t *testing.T) {
	tests := []struct {
		name    string
		pointer string
		want    []string
	}{
		{"empty", "", nil},
		{"root slash", "/", nil},
		{"fragment root", "#/", nil},
		{"simple", "/responses/200/description", []string{"responses", "200", "description"}},
		{"fragment form", "#/components/schemas/Pet", []string{"components", "schemas", "Pet"}},
		{"escaped slash", "/paths/~1pets~1{id}", []string{"paths", "/pets/{id}"}},
		{"escaped tilde", "/x~0y", []string{"x~y"}},
		{"no leading slash", "info/title", []string{"info", "title"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitPointer(tt.pointer))
		})
	}
}

func TestEscapePointerToken_RoundTrip(t *testing.T) {
	for _, s := range []string{"plain", "/pets/{id}", "a~b", "~1"} {
		assert.Equal(t, s, UnescapePointerToken(EscapePointerToken(s)))
	}
	assert.Equal(t, "/paths/~1pets/get", JoinPointer("paths", "/pets", "get"))
	assert.Equal(t, "", JoinPointer())
}

func TestMissing(t *testing.T) {
	assert.True(t, Missing.IsMissing())
	assert.True(t, IsMissing(nil))
	assert.True(t, IsMissing(Missing))
	assert.Same(t, Missing, Missing.At("/a/b"))
	assert.Same(t, Missing, Missing.Get("a"))
	assert.Same(t, Missing, Missing.Target())
	assert.Empty(t, Missing.Children())
	assert.True(t, Missing.Kind().IsZero())
	_, ok := Missing.Key()
	assert.False(t, ok)

	_, _, ok = Span(Missing)
	assert.False(t, ok)
}

func TestToken(t *testing.T) {
	tok := Token{Type: TokenBlockScalar, Value: "|\n  a\n  b", Line: 3, Column: 13, EndLine: 5, EndColumn: 3}
	assert.False(t, tok.IsZeroWidth())
	assert.Equal(t, []int{3, 4, 5}, tok.CoveredLines())

	eof := Token{Type: TokenEOF, Line: 9, Column: 0, EndLine: 9, EndColumn: 0}
	assert.True(t, eof.IsZeroWidth())
	assert.Equal(t, []int{9}, eof.CoveredLines())

	assert.Nil(t, Token{}.CoveredLines())
	assert.True(t, tok.Before(3, 14))
	assert.False(t, tok.Before(3, 13))
	assert.Equal(t, "comment", TokenComment.String())
}

func TestKindSet(t *testing.T) {
	a := Kind{Grammar: "oas2", Name: "path"}
	b := Kind{Grammar: "oas3", Name: "path"}
	assert.NotEqual(t, a, b)
	assert.Equal(t, "oas2/path", a.String())
	assert.Equal(t, "<none>", Kind{}.String())

	s := NewKindSet(a)
	assert.True(t, s.Has(a))
	assert.False(t, s.Has(b))

	u := s.Union(NewKindSet(b))
	assert.True(t, u.Has(a))
	assert.True(t, u.Has(b))
	assert.Len(t, s, 1, "Union must not modify the receiver")
	assert.Equal(t, []Kind{a, b}, u.Kinds())

	assert.True(t, a.In(b, a))
	assert.False(t, a.In(b))
	assert.False(t, a.In())
}

func TestOutcomeAccessors(t *testing.T) {
	toks := []Token{{Type: TokenEOF, Line: 1, EndLine: 1}}
	assert.Nil(t, RootOf(Fatal{Message: "bad", Line: 4}))
	assert.Nil(t, TokensOf(Fatal{}))
	assert.Nil(t, RootOf(nil))
	assert.Equal(t, toks, TokensOf(Success{Tokens: toks}))
	assert.Equal(t, toks, TokensOf(ValidationFailed{Tokens: toks}))
	assert.Same(t, Missing, RootOf(ValidationFailed{Root: Missing}))
}

func TestNormalize(t *testing.T) {
	toks := []Token{{Type: TokenEOF, Line: 1, EndLine: 1}}
	assert.Equal(t, Fatal{Message: "bad", Line: 4}, Normalize(&Fatal{Message: "bad", Line: 4}))
	assert.Equal(t, Success{Tokens: toks}, Normalize(&Success{Tokens: toks}))
	assert.Equal(t, ValidationFailed{Root: Missing}, Normalize(&ValidationFailed{Root: Missing}))
	assert.Equal(t, Fatal{}, Normalize(Fatal{}))
	assert.Nil(t, Normalize(nil))
	assert.Nil(t, Normalize((*Fatal)(nil)))

	assert.Equal(t, toks, TokensOf(&Success{Tokens: toks}))
	assert.Same(t, Missing, RootOf(&ValidationFailed{Root: Missing}))
}
