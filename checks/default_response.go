package checks

import (
	"github.com/erraggy/oaslint/grammar"
	"github.com/erraggy/oaslint/issue"
	"github.com/erraggy/oaslint/tree"
)

// DefaultResponseRule requires every operation to declare a "default"
// response.
var DefaultResponseRule = Rule{
	Key:         DefaultResponseKey,
	Title:       "Operations should define a default response",
	Description: "A default response documents the error payload clients receive for status codes the operation does not list.",
	Severity:    issue.SeverityMajor,
	Cost:        minutes(5),
	Tags:        []string{"convention"},
	New:         func() Check { return defaultResponse{} },
}

const messageNoDefault = "Define a default response for this operation."

type defaultResponse struct{}

func (defaultResponse) SubscribedKinds() []tree.Kind {
	return []tree.Kind{grammar.OAS2Responses, grammar.OAS3Responses}
}

func (defaultResponse) VisitNode(ctx *Context, n tree.Node) error {
	if n.At("/default").IsMissing() {
		ctx.AddIssue(messageNoDefault, n)
	}
	return nil
}
