// Package tree defines the read-only document tree that every analysis in
// oaslint operates on.
//
// The tree is produced per file by a parser (see package parser) and is
// consumed by the visitor framework (package walker), the rule checks
// (package checks), the metrics extractor (package metrics) and the
// duplicate-token extractor (package cpd). None of those packages depend on
// a particular parser: they only rely on the [Node] capability interface
// defined here.
//
// # Kinds
//
// Every node carries a [Kind] drawn from a version-specific enumeration
// (see package grammar). Kinds of different grammars never compare equal,
// even when their names coincide:
//
//	grammar.OAS2Path != grammar.OAS3Path
//
// # References
//
// A node holding a "$ref" reports IsRef() == true. [Node.At] and
// [Node.Children] look through references, so a check can ask for
// "/responses/200/description" without caring whether "200" is inline or a
// reference. Traversals that must not count shared subtrees twice (the
// walker) check IsRef() and do not descend.
//
// # Missing nodes
//
// Resolving a pointer that does not exist returns [Missing], never an error:
//
//	if node.At("/default").IsMissing() {
//	    ctx.AddIssue("Define a default response for this operation.", node)
//	}
//
// # Parse outcomes
//
// A parser reports one of three outcomes per file ([Success],
// [ValidationFailed], [Fatal]); consumers switch over the concrete type.
package tree
