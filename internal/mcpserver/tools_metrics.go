package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type metricsInput struct {
	Spec  specInput `json:"spec"            jsonschema:"The OAS document to measure"`
	Lines bool      `json:"lines,omitempty" jsonschema:"Include line numbers of code, comment and suppressed lines"`
}

type metricsOutput struct {
	Path            string `json:"path"`
	Grammar         string `json:"grammar"`
	LinesOfCode     int    `json:"ncloc"`
	CommentLines    int    `json:"comment_lines"`
	SuppressedLines int    `json:"suppressed_lines"`
	Complexity      int    `json:"complexity"`
	Schemas         int    `json:"schemas"`
	Operations      int    `json:"operations"`
	Paths           int    `json:"paths"`
	CpdTokens       int    `json:"cpd_tokens"`

	CodeLineNumbers       []int `json:"code_line_numbers,omitempty"`
	CommentLineNumbers    []int `json:"comment_line_numbers,omitempty"`
	SuppressedLineNumbers []int `json:"suppressed_line_numbers,omitempty"`
}

func handleMetrics(ctx context.Context, _ *mcp.CallToolRequest, input metricsInput) (*mcp.CallToolResult, metricsOutput, error) {
	r, err := input.Spec.analyze(ctx, cfg.Strict)
	if err != nil {
		return errResult(err), metricsOutput{}, nil
	}
	if r.Metrics == nil {
		return errResult(fmt.Errorf("%s could not be parsed; run analyze for details", r.Path)), metricsOutput{}, nil
	}

	m := r.Metrics
	output := metricsOutput{
		Path:            r.Path,
		Grammar:         string(r.Grammar),
		LinesOfCode:     m.LinesOfCode.Len(),
		CommentLines:    m.LinesOfComment.Len(),
		SuppressedLines: m.LinesWithSuppression.Len(),
		Complexity:      m.Complexity,
		Schemas:         m.SchemaCount,
		Operations:      m.OperationCount,
		Paths:           m.PathCount,
		CpdTokens:       len(r.CpdTokens),
	}
	if input.Lines {
		output.CodeLineNumbers = m.LinesOfCode.Sorted()
		output.CommentLineNumbers = m.LinesOfComment.Sorted()
		output.SuppressedLineNumbers = m.LinesWithSuppression.Sorted()
	}
	return nil, output, nil
}
