// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes oaslint analysis as MCP tools over stdio.
package mcpserver

import (
	"context"

	"github.com/erraggy/oaslint"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `oaslint MCP server: analyzes OpenAPI (Swagger 2.0, OpenAPI 3.x) documents for rule violations and computes metrics.

Configuration: defaults are configurable via OASLINT_* environment variables set in your MCP client config.

Key settings:
- OASLINT_STRICT (default: false): parse in strict mode by default
- OASLINT_ISSUE_LIMIT (default: 100): default number of issues returned
- OASLINT_CACHE_ENABLED (default: true): disable report caching entirely
- OASLINT_CACHE_FILE_TTL (default: 15m): cache TTL for local files
- OASLINT_CACHE_CONTENT_TTL (default: 15m): cache TTL for inline content
- OASLINT_MAX_INLINE_SIZE (default: 10MiB): limit for inline content

Caching: reports are cached per session. File entries use path+mtime as key (auto-invalidated on change); inline content uses its SHA-256. Expired entries are dropped in the background.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "oaslint", Version: oaslint.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "analyze",
		Description: "Analyze an OpenAPI document and report rule violations with line and column locations. Filter with rules/disable (rule keys) and min_severity (info, minor, major, critical, blocker). Use group_by (rule or severity) to get distribution counts instead of individual issues. Use offset/limit to paginate. Issues on lines carrying a NOSONAR comment or an x-nosonar key are suppressed.",
	}, handleAnalyze)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "metrics",
		Description: "Compute metrics for an OpenAPI document: lines of code, comment lines, suppressed lines, complexity, and schema/operation/path counts. Use lines=true to include the line numbers themselves.",
	}, handleMetrics)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "rules",
		Description: "List the analysis rules with their key, title, default severity, remediation cost, and tags. Filter by tag.",
	}, handleRules)
}
