// Package grammar holds the kind enumerations and structural tables of the
// two supported contract grammars, Swagger 2.0 ([OAS2]) and OpenAPI 3.x
// ([OAS3]).
//
// A [Definition] tells a tree builder which [tree.Kind] to assign to the
// value found under a given property of a node of a given kind:
//
//	def := grammar.For(grammar.OAS3)
//	f := def.Field(grammar.OAS3Operation, "responses")
//	// f.Kind == grammar.OAS3Responses, f.Shape == grammar.Single
//
// Kinds of the two grammars never compare equal, even when their names
// match, so a rule subscribing to [OAS2Path] is never dispatched an OpenAPI
// 3 path item.
//
// The package also exposes the kind sets the metrics extractor works from:
// [ComplexityKinds], [SchemaKinds], [OperationKinds] and [PathKinds].
package grammar
