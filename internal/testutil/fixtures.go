// Package testutil provides test utilities and fixtures for unit tests.
package testutil

import (
	"testing"

	"github.com/erraggy/oaslint/parser"
	"github.com/erraggy/oaslint/tree"
	"github.com/erraggy/oaslint/walker"
	"github.com/stretchr/testify/require"
)

// ParseFile parses the document at path and wraps it in a walker.File.
// The test fails if the file cannot be read.
func ParseFile(t testing.TB, path string, opts ...parser.Option) *walker.File {
	t.Helper()
	outcome, err := parser.New(opts...).Parse(path)
	require.NoError(t, err, "failed to read %s", path)
	return walker.NewFile(path, outcome)
}

// ParseString parses an in-memory document named "test.yaml".
func ParseString(t testing.TB, src string, opts ...parser.Option) *walker.File {
	t.Helper()
	return walker.NewFile("test.yaml", parser.New(opts...).ParseBytes([]byte(src)))
}

// MustSucceed returns the Success outcome of f, failing the test otherwise.
func MustSucceed(t testing.TB, f *walker.File) tree.Success {
	t.Helper()
	s, ok := f.Outcome.(tree.Success)
	require.True(t, ok, "expected Success, got %T: %+v", f.Outcome, f.Outcome)
	return s
}
