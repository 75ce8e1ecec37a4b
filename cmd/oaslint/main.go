package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/oaslint"
	"github.com/erraggy/oaslint/cmd/oaslint/commands"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) < 1 {
		printUsage()
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var err error
	switch command := args[0]; command {
	case "version", "-v", "--version":
		fmt.Printf("oaslint %s\n", oaslint.Version())
		return 0
	case "build-info":
		fmt.Print(oaslint.BuildInfo())
		return 0
	case "help", "-h", "--help":
		printUsage()
		return 0
	case "analyze":
		err = commands.HandleAnalyze(ctx, args[1:])
	case "metrics":
		err = commands.HandleMetrics(ctx, args[1:])
	case "cpd":
		err = commands.HandleCpd(ctx, args[1:])
	case "rules":
		err = commands.HandleRules(args[1:])
	case "mcp":
		err = commands.HandleMCP(ctx, args[1:])
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if s := suggestCommand(command); s != "" {
			fmt.Fprintf(os.Stderr, "Did you mean %q?\n", s)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		return 1
	}

	switch {
	case err == nil:
		return 0
	case errors.Is(err, commands.ErrIssuesFound):
		return 1
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
}

var commandNames = []string{"analyze", "metrics", "cpd", "rules", "mcp", "version", "build-info", "help"}

// suggestCommand returns the command closest to input within an edit
// distance of 2, or "".
func suggestCommand(input string) string {
	best, bestDist := "", 3
	for _, name := range commandNames {
		if d := editDistance(input, name); d < bestDist {
			best, bestDist = name, d
		}
	}
	return best
}

func editDistance(a, b string) int {
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		cur[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}

func printUsage() {
	fmt.Print(`oaslint - static analysis for OpenAPI documents

Usage:
  oaslint <command> [flags]

Commands:
  analyze     Report rule violations (text, json, yaml, sarif)
  metrics     Compute lines of code, complexity and entity counts
  cpd         Print tokens for copy-paste detection
  rules       List the available rules
  mcp         Serve the analysis tools over MCP (stdio)
  version     Show version information
  build-info  Show build metadata
  help        Show this help message

Run 'oaslint <command> --help' for more information on a command.
`)
}
