// Package walker provides single-pass, kind-dispatched traversal of parsed
// OpenAPI documents.
//
// A [Visitor] is a plain record: a name, the node kinds it subscribes to and
// up to three callbacks. [Walk] visits the tree once for all visitors and
// hands each node only to the visitors subscribed to its kind:
//
//	var operations int
//	errs := walker.Walk(file, &walker.Visitor{
//	    Name:  "count-operations",
//	    Kinds: []tree.Kind{grammar.OAS3Operation},
//	    OnNode: func(f *walker.File, n tree.Node) error {
//	        operations++
//	        return nil
//	    },
//	})
//
// # Traversal Order
//
// Nodes are visited depth-first in pre-order, children in document order.
// OnFileStart is called on every visitor before the first node and OnFileEnd
// after the last one. Files whose parse failed (no root) still receive the
// file callbacks.
//
// # References
//
// Reference nodes are dispatched like any other node of their kind but their
// targets are never descended into from the reference; the target is
// visited where it is defined. Every node is visited at most once, so cyclic
// reference graphs terminate.
//
// # Failure Isolation
//
// A callback that returns an error or panics disables its visitor for the
// rest of the file. The failure is reported as an [oaserrors.CheckError] and
// the other visitors are unaffected.
//
// # Depth Limit
//
// Subtrees deeper than the limit set by [WithMaxDepth] (default 1000) are
// skipped. Use [WithSkippedHandler] to be told about them.
package walker
