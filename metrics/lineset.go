package metrics

import (
	"maps"
	"slices"
)

// LineSet is a set of 1-based line numbers.
type LineSet map[int]struct{}

// Add adds lines to the set.
func (s LineSet) Add(lines ...int) {
	for _, l := range lines {
		s[l] = struct{}{}
	}
}

// Has reports whether line is in the set.
func (s LineSet) Has(line int) bool {
	_, ok := s[line]
	return ok
}

// Len returns the number of lines.
func (s LineSet) Len() int { return len(s) }

// Sorted returns the lines in ascending order.
func (s LineSet) Sorted() []int {
	return slices.Sorted(maps.Keys(s))
}
