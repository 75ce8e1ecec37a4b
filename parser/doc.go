// Package parser builds kind-tagged document trees from Swagger 2.0 and
// OpenAPI 3.x documents in YAML or JSON.
//
// The result of a parse is a [tree.Outcome]:
//
//   - [tree.Success] carries the tree, the raw token stream and any
//     structural problems found in lenient mode;
//   - [tree.ValidationFailed] carries the same tree when strict mode found
//     problems;
//   - [tree.Fatal] reports a document that is not well-formed YAML, with the
//     line where reading stopped.
//
// # Quick Start
//
//	p := parser.New(parser.WithStrict(false))
//	outcome, err := p.Parse("openapi.yaml")
//	if err != nil {
//		log.Fatal(err) // unreadable file
//	}
//	switch o := outcome.(type) {
//	case tree.Success:
//		fmt.Println(o.Root.At("/info/title").Value())
//	case tree.Fatal:
//		fmt.Printf("line %d: %s\n", o.Line, o.Message)
//	}
//
// # Trees and tokens
//
// The document is read twice: go.yaml.in/yaml/v4 provides the node
// structure, and a small lexer provides the token stream, comments
// included. Every node is linked to the tokens it covers, so consumers can
// report precise locations and count lines without re-reading the source.
//
// Kinds come from the [grammar] tables. The grammar is detected from the
// "swagger" or "openapi" root field unless [WithGrammar] forces one.
//
// # References
//
// A mapping holding a "$ref" becomes a reference node of the kind expected
// at its position. Local references ("#/...") are resolved once the tree is
// built; chains of references are followed to the first real node, and
// circular chains are reported instead of followed. References to other
// documents are kept with a Missing target.
//
// # Structural checks
//
// The parser reports a missing or unsupported version field, a missing
// "info" object or info title and version, missing "paths" (Swagger 2.0 and
// OpenAPI 3.0), operations without responses, responses without a
// description, parameters without a name or location, and references that
// cannot be resolved.
package parser
