package tree

// Node is one element of a parsed contract document.
//
// Implementations are provided by a parser and must be safe for concurrent
// reads. They must also be comparable (typically a pointer) because
// traversals track visited nodes by identity.
type Node interface {
	// Kind returns the semantic tag assigned by the grammar.
	Kind() Kind

	// Key returns the property token that introduced this node in its parent
	// mapping. ok is false for the root and for array elements.
	Key() (tok Token, ok bool)

	// Name returns the text of Key, or "" when there is no key.
	Name() string

	// Value returns the scalar text of the node, or "" for objects and arrays.
	Value() string

	IsScalar() bool
	IsObject() bool
	IsArray() bool
	IsMissing() bool

	// At resolves a JSON pointer relative to this node. Resolution looks
	// through references and returns Missing instead of failing.
	At(pointer string) Node

	// Get returns the child with the given property name or array index,
	// looking through references. It is At with a single segment.
	Get(name string) Node

	// Children returns the child nodes in document order. When kinds are
	// given only children of those kinds are returned. On a reference node
	// the children of the target are returned.
	Children(kinds ...Kind) []Node

	// IsRef reports whether this node is a "$ref" indirection.
	IsRef() bool

	// Ref returns the raw "$ref" value, or "".
	Ref() string

	// Target returns the node a reference points at, following chains of
	// references. It returns the node itself when IsRef is false and Missing
	// when the reference cannot be resolved.
	Target() Node

	// Token returns the first token of the node's own span (the key is not
	// part of the span).
	Token() Token

	// Tokens returns every token covering the node's span in document order.
	// For the root node this is the full token stream of the file.
	Tokens() []Token
}

type missingNode struct{}

// Missing is returned by pointer resolution when nothing exists at the
// requested location. All of its accessors return zero values.
var Missing Node = &missingNode{}

func (*missingNode) Kind() Kind { return Kind{} }
func (*missingNode) Key() (Token, bool) { return Token{}, false }
func (*missingNode) Name() string { return "" }
func (*missingNode) Value() string { return "" }
func (*missingNode) IsScalar() bool { return false }
func (*missingNode) IsObject() bool { return false }
func (*missingNode) IsArray() bool { return false }
func (*missingNode) IsMissing() bool { return true }
func (m *missingNode) At(string) Node { return m }
func (m *missingNode) Get(string) Node { return m }
func (*missingNode) Children(...Kind) []Node { return nil }
func (*missingNode) IsRef() bool { return false }
func (*missingNode) Ref() string { return "" }
func (m *missingNode) Target() Node { return m }
func (*missingNode) Token() Token { return Token{} }
func (*missingNode) Tokens() []Token { return nil }

// IsMissing reports whether n is nil or the Missing sentinel.
func IsMissing(n Node) bool {
	return n == nil || n.IsMissing()
}

// Span returns the first and last token of the node's own span. ok is false
// when the node has no tokens.
func Span(n Node) (first, last Token, ok bool) {
	if IsMissing(n) {
		return Token{}, Token{}, false
	}
	toks := n.Tokens()
	if len(toks) == 0 {
		tok := n.Token()
		return tok, tok, tok.IsValid()
	}
	first = toks[0]
	last = toks[len(toks)-1]
	// Trailing comments belong to the token stream but not to the value.
	for i := len(toks) - 1; i > 0 && (last.Type == TokenComment || last.Type == TokenEOF); i-- {
		last = toks[i-1]
	}
	return first, last, true
}
