package parser

import (
	"github.com/erraggy/oaslint/grammar"
	"github.com/erraggy/oaslint/tree"
	"go.yaml.in/yaml/v4"
)

// builder converts a yaml.Node tree into kind-tagged Nodes linked to the
// lexer's token stream.
type builder struct {
	def  *grammar.Definition
	doc  *document
	refs []*Node
}

// buildTree tags the content of a yaml document node. An empty document
// yields an object root without children.
func buildTree(def *grammar.Definition, root *yaml.Node, tokens []tree.Token) (*Node, []*Node) {
	b := &builder{def: def, doc: &document{tokens: tokens}}

	content := root
	if content != nil && content.Kind == yaml.DocumentNode {
		if len(content.Content) > 0 {
			content = content.Content[0]
		} else {
			content = nil
		}
	}
	if content == nil || content.Kind == 0 {
		content = &yaml.Node{Kind: yaml.MappingNode}
	}

	n := b.node(content, def.Root)
	b.doc.root = n
	setEnds(n, len(tokens)-1)
	return n, b.refs
}

// node builds content tagged with kind k. Object kinds only stick to
// mappings; anything else found in their place becomes a plain value.
func (b *builder) node(yn *yaml.Node, k tree.Kind) *Node {
	if b.def.IsObjectKind(k) && yn.Kind != yaml.MappingNode {
		k = b.def.Value
	}
	n := &Node{
		doc:    b.doc,
		kind:   k,
		yn:     yn,
		keyIdx: -1,
		first:  b.doc.indexAt(yn.Line, yn.Column),
	}
	if isImplicitNull(yn) {
		n.first = -1
	}
	n.last = n.first

	switch yn.Kind {
	case yaml.MappingNode:
		if ref, ok := refValue(yn); ok && b.def.IsObjectKind(k) {
			n.isRef = true
			n.ref = ref
			b.refs = append(b.refs, n)
		}
		parent := k
		if n.isRef {
			// The "$ref" entry and its siblings are raw values.
			parent = b.def.Value
		}
		b.mapping(n, func(key string) grammar.Field { return b.def.Field(parent, key) })
	case yaml.SequenceNode:
		b.sequence(n, b.def.Value)
	}
	return n
}

// mapping adds the entries of n's mapping as children, tagging each value
// according to field.
func (b *builder) mapping(n *Node, field func(key string) grammar.Field) {
	yn := n.yn
	n.byName = make(map[string]*Node, len(yn.Content)/2)
	for i := 0; i+1 < len(yn.Content); i += 2 {
		key, val := yn.Content[i], yn.Content[i+1]
		c := b.field(val, field(key.Value))
		c.name = key.Value
		c.hasKey = true
		c.keyIdx = b.doc.indexAt(key.Line, key.Column)
		n.children = append(n.children, c)
		if _, dup := n.byName[key.Value]; !dup {
			n.byName[key.Value] = c
		}
	}
}

// sequence adds the items of n's sequence as children of kind item.
func (b *builder) sequence(n *Node, item tree.Kind) {
	for _, it := range n.yn.Content {
		n.children = append(n.children, b.node(it, item))
	}
}

// field builds a property value according to its grammar field. Container
// shapes produce a plain value node whose entries carry the field's kind.
func (b *builder) field(yn *yaml.Node, f grammar.Field) *Node {
	shape := f.Shape
	if shape == grammar.SingleOrArray {
		shape = grammar.Single
		if yn.Kind == yaml.SequenceNode {
			shape = grammar.ArrayOf
		}
	}
	switch {
	case shape == grammar.MapOf && yn.Kind == yaml.MappingNode:
		n := b.container(yn)
		b.mapping(n, func(string) grammar.Field { return grammar.Field{Kind: f.Kind} })
		return n
	case shape == grammar.ArrayOf && yn.Kind == yaml.SequenceNode:
		n := b.container(yn)
		b.sequence(n, f.Kind)
		return n
	case shape == grammar.Single:
		return b.node(yn, f.Kind)
	default:
		return b.node(yn, b.def.Value)
	}
}

func (b *builder) container(yn *yaml.Node) *Node {
	first := b.doc.indexAt(yn.Line, yn.Column)
	return &Node{
		doc:    b.doc,
		kind:   b.def.Value,
		yn:     yn,
		keyIdx: -1,
		first:  first,
		last:   first,
	}
}

// refValue returns the "$ref" entry of a mapping.
func refValue(yn *yaml.Node) (string, bool) {
	for i := 0; i+1 < len(yn.Content); i += 2 {
		if yn.Content[i].Value == "$ref" && yn.Content[i+1].Kind == yaml.ScalarNode {
			return yn.Content[i+1].Value, true
		}
	}
	return "", false
}

// isImplicitNull reports whether yn is the empty value of "key:".
func isImplicitNull(yn *yaml.Node) bool {
	return yn.Kind == yaml.ScalarNode && yn.Value == "" && yn.Style == 0 && yn.Tag == "!!null"
}

// setEnds computes the last token of n and its descendants. limit is the
// index of the last token n may cover: everything up to the start of the
// next sibling (or the parent's own limit).
func setEnds(n *Node, limit int) {
	if n.first < 0 {
		for _, c := range n.children {
			setEnds(c, limit)
		}
		return
	}

	toks := n.doc.tokens
	if n.yn.Kind == yaml.MappingNode || n.yn.Kind == yaml.SequenceNode {
		if n.yn.Style&yaml.FlowStyle != 0 {
			if end := matchingBracket(toks, n.first); end >= 0 && end <= limit {
				limit = end
				n.last = end
			}
		}
		for i, c := range n.children {
			childLimit := limit
			if i+1 < len(n.children) {
				if next := startIndex(n.children[i+1]); next > 0 {
					childLimit = next - 1
				}
			}
			setEnds(c, childLimit)
			if end := endIndex(c); end > n.last {
				n.last = end
			}
		}
		return
	}

	// Scalars run to the last content token before the limit, which covers
	// multi-line plain scalars.
	last := n.first
scan:
	for i := n.first + 1; i <= limit && i < len(toks); i++ {
		switch toks[i].Type {
		case tree.TokenScalar, tree.TokenString, tree.TokenBlockScalar:
			last = i
		case tree.TokenComment:
		default:
			break scan
		}
	}
	n.last = last
}

// startIndex returns the first token index of a child including its key.
func startIndex(n *Node) int {
	if n.hasKey && n.keyIdx >= 0 {
		return n.keyIdx
	}
	return n.first
}

// endIndex returns the last token index of a child including its key.
func endIndex(n *Node) int {
	if n.first >= 0 {
		return n.last
	}
	if n.hasKey {
		return n.keyIdx
	}
	return -1
}

// matchingBracket returns the index of the bracket closing the flow
// collection opened at start, or -1.
func matchingBracket(toks []tree.Token, start int) int {
	depth := 0
	for i := start; i < len(toks); i++ {
		if toks[i].Type != tree.TokenPunctuation {
			continue
		}
		switch toks[i].Value {
		case "{", "[":
			depth++
		case "}", "]":
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
