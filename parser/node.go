package parser

import (
	"sort"
	"strconv"

	"github.com/erraggy/oaslint/tree"
	"go.yaml.in/yaml/v4"
)

// document owns the token stream shared by every node of one parse.
type document struct {
	tokens []tree.Token
	root   *Node
}

// indexAt returns the index of the first token starting at or after the
// given yaml position (1-based line and column), or -1.
func (d *document) indexAt(line, column int) int {
	if line <= 0 {
		return -1
	}
	col := column - 1
	i := sort.Search(len(d.tokens), func(i int) bool {
		return !d.tokens[i].Before(line, col)
	})
	if i >= len(d.tokens) || d.tokens[i].Type == tree.TokenEOF {
		return -1
	}
	return i
}

// Node is the parser's implementation of [tree.Node]. Nodes are immutable
// once Parse returns and may be read from several goroutines.
type Node struct {
	doc  *document
	kind tree.Kind
	yn   *yaml.Node

	name   string
	keyIdx int
	hasKey bool

	// first and last delimit the node's own tokens (inclusive); first is -1
	// for nodes without tokens, such as an implicit null value.
	first int
	last  int

	children []*Node
	byName   map[string]*Node

	ref    string
	isRef  bool
	target *Node
}

var _ tree.Node = (*Node)(nil)

// Kind implements tree.Node.
func (n *Node) Kind() tree.Kind { return n.kind }

// Key implements tree.Node.
func (n *Node) Key() (tree.Token, bool) {
	if !n.hasKey || n.keyIdx < 0 {
		return tree.Token{}, false
	}
	return n.doc.tokens[n.keyIdx], true
}

// Name implements tree.Node.
func (n *Node) Name() string { return n.name }

// Value implements tree.Node.
func (n *Node) Value() string {
	if n.IsScalar() {
		return n.yn.Value
	}
	return ""
}

// IsScalar implements tree.Node.
func (n *Node) IsScalar() bool {
	return n.yn.Kind == yaml.ScalarNode || n.yn.Kind == yaml.AliasNode
}

// IsObject implements tree.Node.
func (n *Node) IsObject() bool { return n.yn.Kind == yaml.MappingNode }

// IsArray implements tree.Node.
func (n *Node) IsArray() bool { return n.yn.Kind == yaml.SequenceNode }

// IsMissing implements tree.Node.
func (n *Node) IsMissing() bool { return false }

// IsRef implements tree.Node.
func (n *Node) IsRef() bool { return n.isRef }

// Ref implements tree.Node.
func (n *Node) Ref() string { return n.ref }

// Target implements tree.Node.
func (n *Node) Target() tree.Node {
	if !n.isRef {
		return n
	}
	if n.target == nil {
		return tree.Missing
	}
	return n.target
}

// deref returns the node At and Children operate on, or nil.
func (n *Node) deref() *Node {
	if !n.isRef {
		return n
	}
	return n.target
}

// At implements tree.Node.
func (n *Node) At(pointer string) tree.Node {
	cur := n
	for _, seg := range tree.SplitPointer(pointer) {
		next := cur.child(seg)
		if next == nil {
			return tree.Missing
		}
		cur = next
	}
	return cur
}

// Get implements tree.Node.
func (n *Node) Get(name string) tree.Node {
	if c := n.child(name); c != nil {
		return c
	}
	return tree.Missing
}

func (n *Node) child(name string) *Node {
	t := n.deref()
	if t == nil {
		return nil
	}
	if t.IsArray() {
		i, err := strconv.Atoi(name)
		if err != nil || i < 0 || i >= len(t.children) {
			return nil
		}
		return t.children[i]
	}
	return t.byName[name]
}

// Children implements tree.Node.
func (n *Node) Children(kinds ...tree.Kind) []tree.Node {
	t := n.deref()
	if t == nil || len(t.children) == 0 {
		return nil
	}
	out := make([]tree.Node, 0, len(t.children))
	for _, c := range t.children {
		if len(kinds) > 0 && !c.kind.In(kinds...) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// Token implements tree.Node.
func (n *Node) Token() tree.Token {
	if n.first < 0 {
		return tree.Token{}
	}
	return n.doc.tokens[n.first]
}

// Tokens implements tree.Node. The root node returns the whole stream.
func (n *Node) Tokens() []tree.Token {
	if n == n.doc.root {
		return n.doc.tokens
	}
	if n.first < 0 {
		return nil
	}
	return n.doc.tokens[n.first : n.last+1]
}

// Line returns the 1-based line of the node's first token, or of its key
// when the node has no tokens of its own.
func (n *Node) Line() int {
	if n.first >= 0 {
		return n.doc.tokens[n.first].Line
	}
	if tok, ok := n.Key(); ok {
		return tok.Line
	}
	return 0
}
