// Package cpd extracts the token stream fed to copy/paste (duplicate code)
// detection.
package cpd

import (
	"github.com/erraggy/oaslint/tree"
	"github.com/erraggy/oaslint/walker"
)

// Token is one lexical token with its source range. Lines are 1-based and
// offsets are 0-based; the end is exclusive.
type Token struct {
	Text            string `json:"text" yaml:"text"`
	StartLine       int    `json:"startLine" yaml:"startLine"`
	StartLineOffset int    `json:"startLineOffset" yaml:"startLineOffset"`
	EndLine         int    `json:"endLine" yaml:"endLine"`
	EndLineOffset   int    `json:"endLineOffset" yaml:"endLineOffset"`
}

// Extract returns one Token per lexical token, in order, skipping the end
// of file, comments and zero-width tokens. Text is kept verbatim.
func Extract(tokens []tree.Token) []Token {
	out := make([]Token, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Type == tree.TokenEOF || tok.Type == tree.TokenComment || tok.IsZeroWidth() {
			continue
		}
		out = append(out, Token{
			Text:            tok.Value,
			StartLine:       tok.Line,
			StartLineOffset: tok.Column,
			EndLine:         tok.EndLine,
			EndLineOffset:   tok.EndColumn,
		})
	}
	return out
}

// ExtractFile returns the tokens of f, or nil when the file has no tree.
func ExtractFile(f *walker.File) []Token {
	if tree.IsMissing(f.Root) {
		return nil
	}
	return Extract(f.Tokens)
}
