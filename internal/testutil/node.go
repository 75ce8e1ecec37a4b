package testutil

import (
	"strconv"

	"github.com/erraggy/oaslint/tree"
)

// Node is a hand-built tree.Node for shapes a parser never produces, such
// as trees whose children form a cycle.
type Node struct {
	K        tree.Kind
	KeyName  string
	Val      string
	Array    bool
	Kids     []*Node
	RefValue string
	RefTo    *Node
	Tok      tree.Token
}

var _ tree.Node = (*Node)(nil)

func (n *Node) Kind() tree.Kind { return n.K }

func (n *Node) Key() (tree.Token, bool) {
	if n.KeyName == "" {
		return tree.Token{}, false
	}
	return tree.Token{Type: tree.TokenScalar, Value: n.KeyName, Line: n.Tok.Line, EndLine: n.Tok.Line, EndColumn: len(n.KeyName)}, n.Tok.Line > 0
}

func (n *Node) Name() string    { return n.KeyName }
func (n *Node) Value() string   { return n.Val }
func (n *Node) IsScalar() bool  { return len(n.Kids) == 0 && !n.Array && n.RefValue == "" }
func (n *Node) IsObject() bool  { return !n.IsScalar() && !n.Array }
func (n *Node) IsArray() bool   { return n.Array }
func (n *Node) IsMissing() bool { return false }
func (n *Node) IsRef() bool     { return n.RefValue != "" }
func (n *Node) Ref() string     { return n.RefValue }

func (n *Node) Target() tree.Node {
	if !n.IsRef() {
		return n
	}
	if n.RefTo == nil {
		return tree.Missing
	}
	return n.RefTo
}

func (n *Node) Get(name string) tree.Node {
	t := n
	if n.IsRef() {
		if t = n.RefTo; t == nil {
			return tree.Missing
		}
	}
	if t.Array {
		i, err := strconv.Atoi(name)
		if err != nil || i < 0 || i >= len(t.Kids) {
			return tree.Missing
		}
		return t.Kids[i]
	}
	for _, c := range t.Kids {
		if c.KeyName == name {
			return c
		}
	}
	return tree.Missing
}

func (n *Node) At(pointer string) tree.Node {
	var cur tree.Node = n
	for _, seg := range tree.SplitPointer(pointer) {
		if cur = cur.Get(seg); cur.IsMissing() {
			return cur
		}
	}
	return cur
}

func (n *Node) Children(kinds ...tree.Kind) []tree.Node {
	t := n
	if n.IsRef() {
		if t = n.RefTo; t == nil {
			return nil
		}
	}
	var out []tree.Node
	for _, c := range t.Kids {
		if len(kinds) == 0 || c.K.In(kinds...) {
			out = append(out, c)
		}
	}
	return out
}

func (n *Node) Token() tree.Token { return n.Tok }

func (n *Node) Tokens() []tree.Token {
	if !n.Tok.IsValid() {
		return nil
	}
	return []tree.Token{n.Tok}
}
