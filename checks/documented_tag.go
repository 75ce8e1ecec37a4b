package checks

import (
	"strings"

	"github.com/erraggy/oaslint/grammar"
	"github.com/erraggy/oaslint/issue"
	"github.com/erraggy/oaslint/tree"
)

// DocumentedTagRule requires every declared tag to have a description.
var DocumentedTagRule = Rule{
	Key:         DocumentedTagKey,
	Title:       "Declared tags should have a description",
	Description: "Tags group operations in generated documentation; the description is shown as the group's introduction.",
	Severity:    issue.SeverityMinor,
	Cost:        minutes(2),
	Tags:        []string{"documentation"},
	New:         func() Check { return documentedTag{} },
}

type documentedTag struct{}

func (documentedTag) SubscribedKinds() []tree.Kind {
	return []tree.Kind{grammar.OAS2Tag, grammar.OAS3Tag}
}

func (documentedTag) VisitNode(ctx *Context, n tree.Node) error {
	if strings.TrimSpace(n.Get("description").Value()) != "" {
		return nil
	}
	const msg = "Add a description to this tag."
	if name := n.Get("name"); name.IsScalar() && name.Token().IsValid() {
		ctx.AddTokenIssue(msg, name.Token())
		return nil
	}
	ctx.AddIssue(msg, n)
	return nil
}
