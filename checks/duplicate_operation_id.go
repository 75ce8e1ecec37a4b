package checks

import (
	"fmt"
	"strings"

	"github.com/erraggy/oaslint/grammar"
	"github.com/erraggy/oaslint/issue"
	"github.com/erraggy/oaslint/tree"
)

// DuplicateOperationIDRule requires operationId values to be unique within
// a document.
var DuplicateOperationIDRule = Rule{
	Key:         DuplicateOperationIDKey,
	Title:       "Operation IDs should be unique",
	Description: "Code generators derive method names from operationId; a duplicate makes them fail or silently overwrite a method.",
	Severity:    issue.SeverityCritical,
	Cost:        minutes(10),
	Tags:        []string{"pitfall"},
	New:         func() Check { return &duplicateOperationID{} },
}

// duplicateOperationID remembers the first operation using each ID.
type duplicateOperationID struct {
	first map[string]tree.Node
}

func (*duplicateOperationID) SubscribedKinds() []tree.Kind {
	return grammar.OperationKinds.Kinds()
}

func (c *duplicateOperationID) VisitFile(*Context) error {
	c.first = make(map[string]tree.Node)
	return nil
}

func (c *duplicateOperationID) VisitNode(ctx *Context, n tree.Node) error {
	idNode := n.Get("operationId")
	id := strings.TrimSpace(idNode.Value())
	if id == "" {
		return nil
	}
	prev, seen := c.first[id]
	if !seen {
		c.first[id] = idNode
		return nil
	}
	is := ctx.NewIssue(issue.AtNode(fmt.Sprintf("Operation ID %q is already used.", id), idNode)).
		WithSecondary(issue.AtNode("First use of this operation ID.", prev))
	ctx.AddPreciseIssue(is)
	return nil
}
