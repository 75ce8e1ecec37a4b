// Package commands provides CLI command handlers for oaslint.
package commands

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/erraggy/oaslint/internal/cliutil"
	"github.com/erraggy/oaslint/parser"
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = "-"

// ErrIssuesFound is returned when the analysis reported issues at or above
// the failure threshold. The caller exits with status 1 without printing it.
var ErrIssuesFound = errors.New("issues found")

// documentExtensions are the file extensions collected from directories.
var documentExtensions = []string{".yaml", ".yml", ".json"}

// Writef writes formatted output to the writer.
var Writef = cliutil.Writef

// stdout receives listings that are never written to a file.
var stdout io.Writer = os.Stdout

// NewLogger returns a text logger on stderr. Verbose enables debug output;
// otherwise only warnings and errors are shown.
func NewLogger(verbose bool) parser.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return parser.NewSlogAdapter(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// ExpandPaths replaces each directory argument with the YAML and JSON files
// below it, sorted. Files and "-" are kept as given.
func ExpandPaths(args []string) ([]string, error) {
	var out []string
	for _, arg := range args {
		if arg == StdinFilePath {
			out = append(out, arg)
			continue
		}
		info, err := os.Stat(arg)
		if err != nil || !info.IsDir() {
			out = append(out, arg)
			continue
		}
		var found []string
		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if path != arg && strings.HasPrefix(d.Name(), ".") {
					return filepath.SkipDir
				}
				return nil
			}
			if slices.Contains(documentExtensions, strings.ToLower(filepath.Ext(path))) {
				found = append(found, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("commands: walking %s: %w", arg, err)
		}
		slices.Sort(found)
		out = append(out, found...)
	}
	return out, nil
}
