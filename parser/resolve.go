package parser

import (
	"errors"

	"github.com/erraggy/oaslint/oaserrors"
	"github.com/erraggy/oaslint/tree"
)

// DefaultMaxRefDepth bounds the number of references followed while
// resolving a single "$ref", including references crossed by the pointer.
const DefaultMaxRefDepth = 100

// resolver links every local reference to its final, non-reference target.
type resolver struct {
	root     *Node
	maxDepth int
	done     map[*Node]bool
	errs     map[*Node]error
}

// resolveRefs sets the target of each reference node. Resolution failures
// are returned per node; external references are left unresolved without
// an error.
func resolveRefs(root *Node, refs []*Node, maxDepth int) map[*Node]error {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxRefDepth
	}
	r := &resolver{
		root:     root,
		maxDepth: maxDepth,
		done:     make(map[*Node]bool, len(refs)),
		errs:     make(map[*Node]error),
	}
	for _, n := range refs {
		_, _ = r.resolve(n, make(map[*Node]bool), new(int))
	}
	return r.errs
}

// resolve follows n until a non-reference node is reached. seen guards
// against cycles; hops is shared by nested lookups.
func (r *resolver) resolve(n *Node, seen map[*Node]bool, hops *int) (*Node, error) {
	if !n.isRef {
		return n, nil
	}
	if r.done[n] {
		return n.target, r.errs[n]
	}
	if !tree.IsLocalRef(n.ref) {
		r.done[n] = true
		return nil, nil
	}
	if seen[n] {
		return nil, r.fail(n, &oaserrors.ReferenceError{Ref: n.ref, IsCircular: true, Message: "reference chain never reaches a value"})
	}
	*hops++
	if *hops > r.maxDepth {
		return nil, r.fail(n, &oaserrors.ReferenceError{Ref: n.ref, Message: "maximum reference depth exceeded"})
	}
	seen[n] = true

	cur := r.root
	for _, seg := range tree.SplitPointer(n.ref) {
		t, err := r.resolve(cur, seen, hops)
		if err != nil || t == nil {
			return nil, r.fail(n, err)
		}
		next := t.childRaw(seg)
		if next == nil {
			return nil, r.fail(n, nil)
		}
		cur = next
	}
	t, err := r.resolve(cur, seen, hops)
	if err != nil || t == nil {
		return nil, r.fail(n, err)
	}
	n.target = t
	r.done[n] = true
	return t, nil
}

func (r *resolver) fail(n *Node, cause error) error {
	var refErr *oaserrors.ReferenceError
	switch {
	case cause == nil:
		cause = &oaserrors.ReferenceError{Ref: n.ref, Message: "target not found"}
	case errors.As(cause, &refErr) && refErr.Ref != n.ref:
		cause = &oaserrors.ReferenceError{
			Ref:        n.ref,
			IsCircular: refErr.IsCircular,
			Message:    "depends on " + refErr.Ref,
		}
	}
	r.done[n] = true
	r.errs[n] = cause
	return cause
}

// childRaw looks up a direct child without looking through references.
func (n *Node) childRaw(name string) *Node {
	if n.isRef {
		return nil
	}
	return n.child(name)
}
