package mcpserver

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/erraggy/oaslint/analyzer"
	"github.com/erraggy/oaslint/parser"
	"golang.org/x/sync/singleflight"
)

// specInput is a document given to a tool, either as a path or inline.
// Exactly one of File or Content must be set.
type specInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to an OAS file on disk"`
	Content string `json:"content,omitempty" jsonschema:"Inline OAS document content (JSON or YAML)"`
	Name    string `json:"name,omitempty"    jsonschema:"Name reported for inline content (default: inline.yaml)"`
}

// reportCache holds full-rule reports for the session. Tools filter a
// cached report afterwards, so one entry serves every rule selection.
var reportCache = newReportLRU(cfg.CacheMaxSize, cfg.CacheFileTTL, cfg.CacheContentTTL)

// inflight merges concurrent analyses of the same input.
var inflight singleflight.Group

// cacheKey identifies the input and parse mode, or is "" when the input
// cannot be cached. Files are keyed by absolute path and modification time,
// so edits invalidate the entry; inline content by its SHA-256.
func (s specInput) cacheKey(strict bool) string {
	switch {
	case s.File != "":
		abs, err := filepath.Abs(s.File)
		if err != nil {
			return ""
		}
		info, err := os.Stat(abs)
		if err != nil {
			return ""
		}
		return fmt.Sprintf("file:%s:%d:%t", abs, info.ModTime().UnixNano(), strict)
	case s.Content != "":
		sum := sha256.Sum256([]byte(s.Content))
		return fmt.Sprintf("content:%s:%s:%t", hex.EncodeToString(sum[:]), s.name(), strict)
	}
	return ""
}

// name returns the path reported for the input.
func (s specInput) name() string {
	switch {
	case s.File != "":
		return s.File
	case s.Name != "":
		return s.Name
	default:
		return "inline.yaml"
	}
}

func (s specInput) check() error {
	if (s.File == "") == (s.Content == "") {
		return fmt.Errorf("exactly one of file or content must be provided")
	}
	if s.Content != "" && int64(len(s.Content)) > cfg.MaxInlineSize {
		return fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; use file input instead, or set OASLINT_MAX_INLINE_SIZE to increase",
			len(s.Content), cfg.MaxInlineSize)
	}
	return nil
}

// analyze runs every registered rule over the input, going through the
// report cache when it is enabled.
func (s specInput) analyze(ctx context.Context, strict bool) (*analyzer.FileReport, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	if !cfg.CacheEnabled {
		return s.run(ctx, strict)
	}
	key := s.cacheKey(strict)
	if key == "" {
		return s.run(ctx, strict)
	}
	file := s.File != ""
	if cached, ok := reportCache.get(file, key); ok {
		return cached, nil
	}

	v, err, _ := inflight.Do(key, func() (any, error) {
		report, err := s.run(ctx, strict)
		if err != nil {
			return nil, err
		}
		reportCache.put(file, key, report)
		return report, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*analyzer.FileReport), nil
}

func (s specInput) run(ctx context.Context, strict bool) (*analyzer.FileReport, error) {
	a := analyzer.New(analyzer.WithParserOptions(parser.WithStrict(strict)))
	var report *analyzer.FileReport
	if s.File != "" {
		var err error
		if report, err = a.AnalyzeFile(ctx, s.File); err != nil {
			return nil, err
		}
	} else {
		report = a.AnalyzeBytes(ctx, s.name(), []byte(s.Content))
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return report, nil
}
