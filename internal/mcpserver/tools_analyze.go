package mcpserver

import (
	"context"
	"strings"

	"github.com/erraggy/oaslint/checks"
	"github.com/erraggy/oaslint/internal/report"
	"github.com/erraggy/oaslint/issue"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type analyzeInput struct {
	Spec        specInput `json:"spec"                   jsonschema:"The OAS document to analyze"`
	Strict      *bool     `json:"strict,omitempty"       jsonschema:"Parse in strict mode (structural problems become parsing errors)"`
	Rules       []string  `json:"rules,omitempty"        jsonschema:"Only report issues of these rule keys"`
	Disable     []string  `json:"disable,omitempty"      jsonschema:"Do not report issues of these rule keys"`
	MinSeverity string    `json:"min_severity,omitempty" jsonschema:"Only report issues at or above this severity"`
	GroupBy     string    `json:"group_by,omitempty"     jsonschema:"Group issues and return counts: rule or severity"`
	Offset      int       `json:"offset,omitempty"       jsonschema:"Skip the first N issues (for pagination)"`
	Limit       int       `json:"limit,omitempty"        jsonschema:"Maximum number of issues to return (default 100)"`
}

type analyzeOutput struct {
	Path       string         `json:"path"`
	Grammar    string         `json:"grammar,omitempty"`
	Fatal      bool           `json:"fatal,omitempty"`
	IssueCount int            `json:"issue_count"`
	Suppressed int            `json:"suppressed"`
	Returned   int            `json:"returned"`
	Issues     []report.Issue `json:"issues,omitempty"`
	Groups     []groupCount   `json:"groups,omitempty"`
	Failures   []string       `json:"failures,omitempty"`
}

func handleAnalyze(ctx context.Context, _ *mcp.CallToolRequest, input analyzeInput) (*mcp.CallToolResult, analyzeOutput, error) {
	if err := validateGroupBy(input.GroupBy, "rule", "severity"); err != nil {
		return errResult(err), analyzeOutput{}, nil
	}
	selected, err := checks.DefaultRegistry().Select(input.Rules, input.Disable)
	if err != nil {
		return errResult(err), analyzeOutput{}, nil
	}
	minSeverity := issue.SeverityInfo
	if input.MinSeverity != "" {
		if minSeverity, err = issue.ParseSeverity(input.MinSeverity); err != nil {
			return errResult(err), analyzeOutput{}, nil
		}
	}
	strict := cfg.Strict
	if input.Strict != nil {
		strict = *input.Strict
	}

	r, err := input.Spec.analyze(ctx, strict)
	if err != nil {
		return errResult(err), analyzeOutput{}, nil
	}

	keep := make(map[string]bool, len(selected))
	for _, rule := range selected {
		keep[rule.Key] = true
	}
	var issues []issue.Issue
	for _, is := range r.Issues {
		if keep[is.RuleKey] && is.Severity >= minSeverity {
			issues = append(issues, is)
		}
	}

	output := analyzeOutput{
		Path:       r.Path,
		Grammar:    string(r.Grammar),
		Fatal:      r.Fatal,
		IssueCount: len(issues),
		Suppressed: len(r.Suppressed),
	}
	for _, f := range r.Failures {
		output.Failures = append(output.Failures, sanitizeError(f))
	}

	if input.GroupBy != "" {
		output.Groups = groupAndSort(issues, func(is issue.Issue) string {
			if strings.EqualFold(input.GroupBy, "rule") {
				return is.RuleKey
			}
			return is.Severity.String()
		})
		return nil, output, nil
	}

	page := paginate(issues, input.Offset, input.Limit)
	output.Issues = makeSlice[report.Issue](len(page))
	for _, is := range page {
		output.Issues = append(output.Issues, report.NewIssue(is))
	}
	output.Returned = len(output.Issues)
	return nil, output, nil
}
