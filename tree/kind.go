package tree

import (
	"slices"
	"strings"
)

// Grammar identifies the schema version a tree was built against.
type Grammar string

// Kind is the semantic tag of a node. Kinds are comparable and are used as
// dispatch keys; two kinds are equal only if both grammar and name match.
type Kind struct {
	Grammar Grammar
	Name    string
}

// String returns "grammar/name", or "<none>" for the zero Kind.
func (k Kind) String() string {
	if k.IsZero() {
		return "<none>"
	}
	return string(k.Grammar) + "/" + k.Name
}

// IsZero reports whether k is the zero Kind (used by Missing).
func (k Kind) IsZero() bool {
	return k.Grammar == "" && k.Name == ""
}

// In reports whether k is one of kinds.
func (k Kind) In(kinds ...Kind) bool {
	return slices.Contains(kinds, k)
}

// KindSet is a set of kinds, typically a visitor's subscriptions.
type KindSet map[Kind]struct{}

// NewKindSet builds a set from the given kinds.
func NewKindSet(kinds ...Kind) KindSet {
	s := make(KindSet, len(kinds))
	for _, k := range kinds {
		s[k] = struct{}{}
	}
	return s
}

// Has reports whether k is in the set.
func (s KindSet) Has(k Kind) bool {
	_, ok := s[k]
	return ok
}

// Union returns a new set containing the kinds of s and others.
func (s KindSet) Union(others ...KindSet) KindSet {
	out := make(KindSet, len(s))
	for k := range s {
		out[k] = struct{}{}
	}
	for _, o := range others {
		for k := range o {
			out[k] = struct{}{}
		}
	}
	return out
}

// Kinds returns the kinds of the set ordered by their string form.
func (s KindSet) Kinds() []Kind {
	out := make([]Kind, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	slices.SortFunc(out, func(a, b Kind) int {
		return strings.Compare(a.String(), b.String())
	})
	return out
}
