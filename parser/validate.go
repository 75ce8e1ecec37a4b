package parser

import (
	"fmt"
	"strings"

	"github.com/erraggy/oaslint/grammar"
	"github.com/erraggy/oaslint/tree"
)

// validator collects structural problems of a built tree. It only checks
// what a consumer needs to navigate the document; rule checks do the rest.
type validator struct {
	def     *grammar.Definition
	version string
	issues  []tree.ValidationIssue
}

func (v *validator) add(n *Node, format string, args ...any) {
	v.issues = append(v.issues, tree.ValidationIssue{Message: fmt.Sprintf(format, args...), Node: n})
}

func (v *validator) validate(root *Node) []tree.ValidationIssue {
	if !root.IsObject() {
		v.add(root, "document root must be an object")
		return v.issues
	}
	switch {
	case v.version == "":
		v.add(root, "unable to detect document version: expected a 'swagger' or 'openapi' field")
	case v.def.Name == grammar.OAS2:
		if v.version != "2.0" {
			v.add(versionNode(root, "swagger"), "unsupported swagger version %q: expected \"2.0\"", v.version)
		}
	case v.def.Name == grammar.OAS3:
		if !strings.HasPrefix(v.version, "3.") {
			v.add(versionNode(root, "openapi"), "unsupported openapi version %q: expected 3.x", v.version)
		}
	}

	info := root.child("info")
	if info == nil {
		v.add(root, "missing required field 'info'")
	} else {
		v.requireScalar(info, "info", "title")
		v.requireScalar(info, "info", "version")
	}

	if root.child("paths") == nil && v.pathsRequired() {
		v.add(root, "missing required field 'paths'")
	}

	v.walk(root)
	return v.issues
}

// pathsRequired reports whether the document must declare "paths". OpenAPI
// 3.1 made the field optional.
func (v *validator) pathsRequired() bool {
	return v.def.Name == grammar.OAS2 || strings.HasPrefix(v.version, "3.0")
}

func (v *validator) requireScalar(n *Node, path, field string) {
	c := n.child(field)
	if c == nil || !c.IsScalar() || strings.TrimSpace(c.Value()) == "" {
		v.add(n, "missing required field '%s.%s'", path, field)
	}
}

// walk checks every non-reference node below n. References are checked
// where they are defined.
func (v *validator) walk(n *Node) {
	if n.isRef {
		return
	}
	switch n.kind {
	case grammar.OAS2Operation, grammar.OAS3Operation:
		if n.child("responses") == nil {
			v.add(n, "operation '%s' is missing required field 'responses'", n.name)
		}
	case grammar.OAS2Response, grammar.OAS3Response:
		if n.child("description") == nil {
			v.add(n, "response '%s' is missing required field 'description'", n.name)
		}
	case grammar.OAS2Parameter, grammar.OAS3Parameter:
		if n.child("name") == nil {
			v.add(n, "parameter is missing required field 'name'")
		}
		if n.child("in") == nil {
			v.add(n, "parameter is missing required field 'in'")
		}
	}
	for _, c := range n.children {
		v.walk(c)
	}
}

func versionNode(root *Node, field string) *Node {
	if c := root.child(field); c != nil {
		return c
	}
	return root
}
