// Package cliutil provides output helpers for the oaslint commands.
package cliutil

import (
	"fmt"
	"io"
	"os"

	"github.com/erraggy/oaslint/internal/pathutil"
)

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr (useful for debugging).
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// Output is where a command writes its report: stdout, or a file created
// by OpenOutput.
type Output struct {
	io.Writer
	// IsTerminal is true when writing to stdout attached to a terminal.
	IsTerminal bool
	close      func() error
}

// Close closes the output file. It is a no-op for stdout.
func (o *Output) Close() error {
	if o.close == nil {
		return nil
	}
	return o.close()
}

// OpenOutput returns stdout when path is empty or "-", otherwise the file
// at path, created or truncated. Paths resolving to symlinks and paths
// naming one of the inputs are rejected.
func OpenOutput(path string, inputs []string) (*Output, error) {
	if path == "" || path == "-" {
		return &Output{Writer: os.Stdout, IsTerminal: isTerminal(os.Stdout)}, nil
	}
	cleaned, err := pathutil.SanitizeOutputPath(path, inputs...)
	if err != nil {
		return nil, err
	}
	f, err := os.OpenFile(cleaned, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("cliutil: cannot create output file: %w", err)
	}
	return &Output{Writer: f, close: f.Close}, nil
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}
