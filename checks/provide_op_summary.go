package checks

import (
	"strings"

	"github.com/erraggy/oaslint/grammar"
	"github.com/erraggy/oaslint/issue"
	"github.com/erraggy/oaslint/tree"
)

// ProvideOpSummaryRule requires every operation to have a summary.
var ProvideOpSummaryRule = Rule{
	Key:         ProvideOpSummaryKey,
	Title:       "Operations should have a summary",
	Description: "The summary is the short label documentation tools and generated clients show for an operation.",
	Severity:    issue.SeverityMinor,
	Cost:        minutes(2),
	Tags:        []string{"documentation"},
	New:         func() Check { return provideOpSummary{} },
}

type provideOpSummary struct{}

func (provideOpSummary) SubscribedKinds() []tree.Kind {
	return grammar.OperationKinds.Kinds()
}

func (provideOpSummary) VisitNode(ctx *Context, n tree.Node) error {
	if strings.TrimSpace(n.Get("summary").Value()) == "" {
		ctx.AddIssue("Provide a summary for each operation.", n)
	}
	return nil
}
