package mcpserver

import (
	"context"
	"slices"

	"github.com/erraggy/oaslint/checks"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type rulesInput struct {
	Tag string `json:"tag,omitempty" jsonschema:"Only list rules carrying this tag"`
}

type ruleSummary struct {
	Key         string   `json:"key"`
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	Severity    string   `json:"severity"`
	Cost        *float64 `json:"cost_minutes,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

type rulesOutput struct {
	Count int           `json:"count"`
	Rules []ruleSummary `json:"rules"`
}

func handleRules(_ context.Context, _ *mcp.CallToolRequest, input rulesInput) (*mcp.CallToolResult, rulesOutput, error) {
	var output rulesOutput
	for _, rule := range checks.DefaultRegistry().Rules() {
		if input.Tag != "" && !slices.Contains(rule.Tags, input.Tag) {
			continue
		}
		output.Rules = append(output.Rules, ruleSummary{
			Key:         rule.Key,
			Title:       rule.Title,
			Description: rule.Description,
			Severity:    rule.Severity.String(),
			Cost:        rule.Cost,
			Tags:        rule.Tags,
		})
	}
	output.Count = len(output.Rules)
	return nil, output, nil
}
