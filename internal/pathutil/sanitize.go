package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// SanitizeOutputPath returns the absolute form of an output file path. It
// rejects a path that is a symlink, and a path naming the same file as one
// of inputs, so a report never replaces the document it describes. Inputs
// that do not exist, such as "-" for stdin, are ignored.
func SanitizeOutputPath(path string, inputs ...string) (string, error) {
	abs, err := filepath.Abs(filepath.Clean(path))
	if err != nil {
		return "", fmt.Errorf("pathutil: cannot resolve absolute path: %w", err)
	}

	info, err := os.Lstat(abs)
	if os.IsNotExist(err) {
		return abs, nil
	}
	if err != nil {
		return "", fmt.Errorf("pathutil: cannot stat path: %w", err)
	}
	if info.Mode()&os.ModeSymlink != 0 {
		return "", fmt.Errorf("pathutil: refusing to write to symlink: %s", abs)
	}

	for _, in := range inputs {
		inInfo, err := os.Stat(in)
		if err == nil && os.SameFile(info, inInfo) {
			return "", fmt.Errorf("pathutil: output %s would overwrite input %s", path, in)
		}
	}
	return abs, nil
}
