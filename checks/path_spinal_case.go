package checks

import (
	"fmt"
	"strings"

	"github.com/erraggy/oaslint/grammar"
	"github.com/erraggy/oaslint/internal/pathutil"
	"github.com/erraggy/oaslint/issue"
	"github.com/erraggy/oaslint/tree"
)

// PathSpinalCaseRule requires the literal segments of path templates to be
// spinal-case.
var PathSpinalCaseRule = Rule{
	Key:         PathSpinalCaseKey,
	Title:       "Path segments should be spinal-case",
	Description: "Literal path segments should only use lowercase letters, digits and hyphens. Template variables are not checked.",
	Severity:    issue.SeverityMinor,
	Cost:        minutes(5),
	Tags:        []string{"convention"},
	New:         func() Check { return pathSpinalCase{} },
}

type pathSpinalCase struct{}

func (pathSpinalCase) SubscribedKinds() []tree.Kind {
	return grammar.PathKinds.Kinds()
}

func (pathSpinalCase) VisitNode(ctx *Context, n tree.Node) error {
	path := n.Name()
	// Callback expressions and webhook names are not path templates.
	if !strings.HasPrefix(path, "/") {
		return nil
	}
	for _, seg := range pathutil.NonSpinalSegments(path) {
		ctx.AddIssue(fmt.Sprintf("Use spinal-case for path segment %q (suggested %q).", seg, pathutil.ToSpinalCase(seg)), n)
	}
	return nil
}
