package checks

import (
	"github.com/erraggy/oaslint/issue"
	"github.com/erraggy/oaslint/tree"
)

// ParsingErrorRule reports the problems found while parsing: every
// structural issue of a parsed document, or the single failure of a
// document that could not be read as YAML.
var ParsingErrorRule = Rule{
	Key:         ParsingErrorKey,
	Title:       "Files should be valid OpenAPI documents",
	Description: "Reports syntax errors and structural problems detected by the parser. Other rules cannot fully analyze a file with such problems.",
	Severity:    issue.SeverityBlocker,
	Tags:        []string{"pitfall"},
	New:         func() Check { return parsingError{} },
}

type parsingError struct{}

func (parsingError) SubscribedKinds() []tree.Kind { return nil }

func (parsingError) VisitNode(*Context, tree.Node) error { return nil }

func (parsingError) ScanFile(ctx *Context) error {
	switch o := ctx.Outcome().(type) {
	case tree.Success:
		addValidationIssues(ctx, o.Issues)
	case tree.ValidationFailed:
		addValidationIssues(ctx, o.Causes)
	case tree.Fatal:
		line := o.Line
		if line <= 0 {
			line = 1
		}
		ctx.AddLineIssue(o.Message, line)
	}
	return nil
}

func addValidationIssues(ctx *Context, issues []tree.ValidationIssue) {
	for _, vi := range issues {
		ctx.AddIssue(vi.Message, vi.Node)
	}
}
