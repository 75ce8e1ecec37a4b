package walker

import (
	"fmt"

	"github.com/erraggy/oaslint/internal/pathutil"
	"github.com/erraggy/oaslint/oaserrors"
	"github.com/erraggy/oaslint/tree"
)

// Visitor receives the nodes of the kinds it subscribes to. Every callback
// is optional. A visitor without Kinds never receives OnNode.
type Visitor struct {
	// Name identifies the visitor in failures, typically a rule key.
	Name string
	// Kinds lists the node kinds passed to OnNode.
	Kinds []tree.Kind

	OnFileStart func(f *File) error
	OnNode      func(f *File, n tree.Node) error
	OnFileEnd   func(f *File) error
}

// Skip reasons passed to a SkippedHandler.
const (
	SkipDepth = "depth"
	SkipCycle = "cycle"
)

// SkippedHandler is called when a node is not visited. The reason is
// SkipDepth when the node is deeper than the depth limit, or SkipCycle when
// the node was already visited.
type SkippedHandler func(reason string, n tree.Node, pointer string)

// Walker traverses document trees and dispatches nodes to visitors.
// A Walker holds no per-walk state and may be shared between goroutines.
type Walker struct {
	maxDepth  int
	onSkipped SkippedHandler
}

// New creates a new Walker with default settings.
func New(opts ...Option) *Walker {
	w := &Walker{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Walk visits f with a default Walker.
func Walk(f *File, visitors ...*Visitor) []error {
	return New().Walk(f, visitors...)
}

// Walk visits the tree of f once and dispatches each node to the visitors
// subscribed to its kind. It returns one error per failed visitor, plus the
// context error if the walk was cancelled.
func (w *Walker) Walk(f *File, visitors ...*Visitor) []error {
	path := pathutil.AcquirePointer()
	defer path.Release()

	s := &walk{
		w:        w,
		file:     f,
		visitors: visitors,
		dispatch: dispatchTable(visitors),
		disabled: make([]bool, len(visitors)),
		visited:  make(map[tree.Node]struct{}),
		path:     path,
	}

	for i, v := range visitors {
		if v != nil && v.OnFileStart != nil {
			s.call(i, false, func() error { return v.OnFileStart(f) })
		}
	}
	if !tree.IsMissing(f.Root) {
		s.visit(f.Root, 0)
	}
	for i, v := range visitors {
		if v != nil && v.OnFileEnd != nil && !s.disabled[i] {
			s.call(i, false, func() error { return v.OnFileEnd(f) })
		}
	}
	return s.errs
}

// dispatchTable maps each kind to the indexes of its subscribed visitors.
func dispatchTable(visitors []*Visitor) map[tree.Kind][]int {
	table := make(map[tree.Kind][]int)
	for i, v := range visitors {
		if v == nil || v.OnNode == nil {
			continue
		}
		seen := make(map[tree.Kind]bool, len(v.Kinds))
		for _, k := range v.Kinds {
			if seen[k] {
				continue
			}
			seen[k] = true
			table[k] = append(table[k], i)
		}
	}
	return table
}

// walk holds the state of a single traversal.
type walk struct {
	w        *Walker
	file     *File
	visitors []*Visitor
	dispatch map[tree.Kind][]int
	disabled []bool
	visited  map[tree.Node]struct{}
	path     *pathutil.PointerBuilder
	errs     []error
	stopped  bool
}

func (s *walk) visit(n tree.Node, depth int) {
	if s.stopped {
		return
	}
	if err := s.file.Context().Err(); err != nil {
		s.errs = append(s.errs, err)
		s.stopped = true
		return
	}
	if _, ok := s.visited[n]; ok {
		s.skip(SkipCycle, n)
		return
	}
	s.visited[n] = struct{}{}
	if depth > s.w.maxDepth {
		s.skip(SkipDepth, n)
		return
	}

	for _, i := range s.dispatch[n.Kind()] {
		if s.disabled[i] {
			continue
		}
		v := s.visitors[i]
		s.call(i, true, func() error { return v.OnNode(s.file, n) })
	}

	if n.IsRef() {
		return
	}
	array := n.IsArray()
	for idx, c := range n.Children() {
		if array {
			s.path.PushIndex(idx)
		} else {
			s.path.Push(c.Name())
		}
		s.visit(c, depth+1)
		s.path.Pop()
	}
}

func (s *walk) skip(reason string, n tree.Node) {
	if s.w.onSkipped != nil {
		s.w.onSkipped(reason, n, s.path.String())
	}
}

// call runs fn for visitor i, disabling the visitor if fn fails.
func (s *walk) call(i int, atNode bool, fn func() error) {
	defer func() {
		if r := recover(); r != nil {
			s.fail(i, atNode, true, fmt.Errorf("%v", r))
		}
	}()
	if err := fn(); err != nil {
		s.fail(i, atNode, false, err)
	}
}

func (s *walk) fail(i int, atNode, panicked bool, cause error) {
	err := &oaserrors.CheckError{
		Rule:     s.visitors[i].Name,
		Path:     s.file.Path,
		Panicked: panicked,
		Cause:    cause,
	}
	if atNode {
		err.Pointer = s.path.String()
	}
	s.disabled[i] = true
	s.errs = append(s.errs, err)
}
