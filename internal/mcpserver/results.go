package mcpserver

import (
	"cmp"
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// paginate returns the page of items starting at offset. A non-positive
// limit means cfg.IssueLimit; limits are capped at cfg.MaxLimit.
func paginate[T any](items []T, offset, limit int) []T {
	if limit <= 0 {
		limit = cfg.IssueLimit
	}
	limit = min(limit, cfg.MaxLimit)
	if offset < 0 || offset >= len(items) {
		return nil
	}
	return items[offset : offset+min(limit, len(items)-offset)]
}

// makeSlice returns nil for n == 0 so empty lists are omitted from the
// output.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// pathPattern matches absolute paths below the usual system roots.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

// sanitizeError hides local filesystem paths from MCP clients.
func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}

// groupCount is one bucket of a group_by result.
type groupCount struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// groupAndSort counts items per key, largest group first, ties by key.
func groupAndSort[T any](items []T, key func(T) string) []groupCount {
	counts := make(map[string]int)
	for _, item := range items {
		counts[key(item)]++
	}
	groups := make([]groupCount, 0, len(counts))
	for k, n := range counts {
		groups = append(groups, groupCount{Key: k, Count: n})
	}
	slices.SortFunc(groups, func(a, b groupCount) int {
		return cmp.Or(cmp.Compare(b.Count, a.Count), strings.Compare(a.Key, b.Key))
	})
	return groups
}

// validateGroupBy accepts "" and, ignoring case, any of allowed.
func validateGroupBy(groupBy string, allowed ...string) error {
	if groupBy == "" || slices.ContainsFunc(allowed, func(a string) bool { return strings.EqualFold(a, groupBy) }) {
		return nil
	}
	return fmt.Errorf("invalid group_by value %q; valid values: %s", groupBy, strings.Join(allowed, ", "))
}
