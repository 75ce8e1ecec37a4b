package walker

import (
	"context"

	"github.com/erraggy/oaslint/tree"
)

// File is one parsed document handed to visitors.
type File struct {
	// Path identifies the document in diagnostics.
	Path string
	// Outcome is the parse result the tree comes from, always in value form
	// (see tree.Normalize).
	Outcome tree.Outcome
	// Root is the document tree, nil when the parse was fatal.
	Root tree.Node
	// Tokens is the raw token stream, nil when the parse was fatal.
	Tokens []tree.Token

	ctx context.Context
}

// NewFile creates a File from a parse outcome.
func NewFile(path string, outcome tree.Outcome) *File {
	outcome = tree.Normalize(outcome)
	return &File{
		Path:    path,
		Outcome: outcome,
		Root:    tree.RootOf(outcome),
		Tokens:  tree.TokensOf(outcome),
	}
}

// Context returns the context.Context for cancellation and deadline propagation.
// Returns context.Background() if no context was set.
func (f *File) Context() context.Context {
	if f.ctx == nil {
		return context.Background()
	}
	return f.ctx
}

// WithContext returns a shallow copy of File with the new context.
func (f *File) WithContext(ctx context.Context) *File {
	f2 := *f
	f2.ctx = ctx
	return &f2
}

// Fatal returns the fatal parse failure of the file, if any.
func (f *File) Fatal() (tree.Fatal, bool) {
	o, ok := f.Outcome.(tree.Fatal)
	return o, ok
}
