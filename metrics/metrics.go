package metrics

import (
	"github.com/erraggy/oaslint/grammar"
	"github.com/erraggy/oaslint/tree"
	"github.com/erraggy/oaslint/walker"
)

// FileMetrics holds the metrics of one file.
type FileMetrics struct {
	LinesOfCode          LineSet
	LinesOfComment       LineSet
	LinesWithSuppression LineSet

	// Complexity counts the non-reference nodes of the complexity-bearing
	// kinds (paths, operations, parameters, schemas, headers and, in
	// OpenAPI 3, callbacks and media types).
	Complexity int

	SchemaCount    int
	OperationCount int
	PathCount      int
}

// New returns empty metrics.
func New() FileMetrics {
	return FileMetrics{
		LinesOfCode:          LineSet{},
		LinesOfComment:       LineSet{},
		LinesWithSuppression: LineSet{},
	}
}

// Extract computes the metrics of f in a single traversal. Files without a
// tree yield empty metrics. The errors are those of the traversal, such as
// a cancelled context.
func Extract(f *walker.File, opts ...walker.Option) (FileMetrics, []error) {
	m := New()
	errs := walker.New(opts...).Walk(f, ComplexityVisitor(&m), CountVisitor(&m), LineVisitor(&m))
	return m, errs
}

// ComplexityVisitor adds one to m.Complexity for every non-reference node
// of a complexity-bearing kind.
func ComplexityVisitor(m *FileMetrics) *walker.Visitor {
	return &walker.Visitor{
		Name:  "complexity",
		Kinds: grammar.ComplexityKinds.Kinds(),
		OnFileStart: func(*walker.File) error {
			m.Complexity = 0
			return nil
		},
		OnNode: func(_ *walker.File, n tree.Node) error {
			if !n.IsRef() {
				m.Complexity++
			}
			return nil
		},
	}
}

// CountVisitor counts the schemas, operations and paths defined in the
// file. References are not definitions and are not counted.
func CountVisitor(m *FileMetrics) *walker.Visitor {
	kinds := grammar.SchemaKinds.Union(grammar.OperationKinds, grammar.PathKinds)
	return &walker.Visitor{
		Name:  "counts",
		Kinds: kinds.Kinds(),
		OnFileStart: func(*walker.File) error {
			m.SchemaCount, m.OperationCount, m.PathCount = 0, 0, 0
			return nil
		},
		OnNode: func(_ *walker.File, n tree.Node) error {
			if n.IsRef() {
				return nil
			}
			k := n.Kind()
			switch {
			case grammar.SchemaKinds.Has(k):
				m.SchemaCount++
			case grammar.OperationKinds.Has(k):
				m.OperationCount++
			case grammar.PathKinds.Has(k):
				m.PathCount++
			}
			return nil
		},
	}
}
