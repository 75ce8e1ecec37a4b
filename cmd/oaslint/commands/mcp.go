package commands

import (
	"context"
	"errors"
	"flag"

	"github.com/erraggy/oaslint/internal/mcpserver"
)

// HandleMCP starts the MCP server over stdio and blocks until the client
// disconnects or ctx is cancelled.
func HandleMCP(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	fs.Usage = func() {
		Writef(fs.Output(), "Usage: oaslint mcp\n\n")
		Writef(fs.Output(), "Serve the analyze, metrics and rules tools over MCP (stdio).\n")
		Writef(fs.Output(), "Defaults are configured with OASLINT_* environment variables.\n")
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	return mcpserver.Run(ctx)
}
