package grammar

import (
	"sort"
	"strings"

	"github.com/erraggy/oaslint/tree"
)

const (
	// OAS2 is the Swagger 2.0 grammar.
	OAS2 tree.Grammar = "oas2"
	// OAS3 is the OpenAPI 3.x grammar (3.0, 3.1 and 3.2 documents).
	OAS3 tree.Grammar = "oas3"
)

// Shape describes how a property value relates to the kind of a Field.
type Shape int

const (
	// Single means the value itself has the field's kind.
	Single Shape = iota
	// MapOf means the value is a map whose entries have the field's kind.
	MapOf
	// ArrayOf means the value is an array whose items have the field's kind.
	ArrayOf
	// SingleOrArray means the value is either one object of the field's kind
	// or an array of them (Swagger 2.0 tuple "items").
	SingleOrArray
)

// Field is the tagging rule for one property.
type Field struct {
	Kind  tree.Kind
	Shape Shape
}

type rule struct {
	props     map[string]Field
	patterned Field
}

// Definition is the structural table of one grammar.
type Definition struct {
	Name       tree.Grammar
	Root       tree.Kind
	Value      tree.Kind
	Extension  tree.Kind
	Complexity tree.KindSet

	rules map[tree.Kind]rule
	kinds []tree.Kind
}

// For returns the definition of g, or nil when g is not a known grammar.
func For(g tree.Grammar) *Definition {
	switch g {
	case OAS2:
		return oas2
	case OAS3:
		return oas3
	default:
		return nil
	}
}

// Field returns how the value under key is tagged when it appears in a
// mapping of kind parent.
//
// Declared properties win, then "x-" extension keys, then the patterned
// entry rule of the parent (path templates, status codes, ...). Anything
// else is tagged [Definition.Value], as is every property of a Value or
// Extension subtree.
func (d *Definition) Field(parent tree.Kind, key string) Field {
	r, ok := d.rules[parent]
	if !ok {
		return Field{Kind: d.Value}
	}
	if f, ok := r.props[key]; ok {
		return f
	}
	if strings.HasPrefix(key, "x-") {
		return Field{Kind: d.Extension}
	}
	if !r.patterned.Kind.IsZero() {
		return r.patterned
	}
	return Field{Kind: d.Value}
}

// IsObjectKind reports whether k describes a mapping. Object kinds are only
// assigned to mapping nodes; a scalar or array found where an object was
// expected is tagged Value.
func (d *Definition) IsObjectKind(k tree.Kind) bool {
	return k.Grammar == d.Name && k != d.Value && k != d.Extension
}

// Kinds returns every kind of the grammar sorted by name.
func (d *Definition) Kinds() []tree.Kind {
	out := make([]tree.Kind, len(d.kinds))
	copy(out, d.kinds)
	return out
}

// Lookup returns the kind with the given name.
func (d *Definition) Lookup(name string) (tree.Kind, bool) {
	for _, k := range d.kinds {
		if strings.EqualFold(k.Name, name) {
			return k, true
		}
	}
	return tree.Kind{}, false
}

var (
	// ComplexityKinds are the kinds that add one to a file's complexity.
	ComplexityKinds = oas2.Complexity.Union(oas3.Complexity)

	// SchemaKinds are counted as schemas.
	SchemaKinds = tree.NewKindSet(OAS2Schema, OAS3Schema)

	// OperationKinds are counted as operations.
	OperationKinds = tree.NewKindSet(OAS2Operation, OAS3Operation)

	// PathKinds are counted as paths.
	PathKinds = tree.NewKindSet(OAS2Path, OAS3Path)
)

// builder assembles a Definition from declarative per-kind tables.
type builder struct {
	def *Definition
}

func newDefinition(name tree.Grammar, root, value, ext tree.Kind, complexity ...tree.Kind) *builder {
	return &builder{def: &Definition{
		Name:       name,
		Root:       root,
		Value:      value,
		Extension:  ext,
		Complexity: tree.NewKindSet(complexity...),
		rules:      make(map[tree.Kind]rule),
	}}
}

func (b *builder) kinds(kinds ...tree.Kind) *builder {
	b.def.kinds = append(b.def.kinds, kinds...)
	return b
}

func (b *builder) object(k tree.Kind, props map[string]Field) *builder {
	r := b.def.rules[k]
	r.props = props
	b.def.rules[k] = r
	return b
}

func (b *builder) patterned(k tree.Kind, entry Field) *builder {
	b.def.rules[k] = rule{patterned: entry}
	return b
}

func (b *builder) build() *Definition {
	sort.Slice(b.def.kinds, func(i, j int) bool {
		return b.def.kinds[i].Name < b.def.kinds[j].Name
	})
	return b.def
}

func one(k tree.Kind) Field     { return Field{Kind: k} }
func mapOf(k tree.Kind) Field   { return Field{Kind: k, Shape: MapOf} }
func arrayOf(k tree.Kind) Field { return Field{Kind: k, Shape: ArrayOf} }
