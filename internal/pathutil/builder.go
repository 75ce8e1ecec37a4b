package pathutil

import (
	"strconv"
	"strings"
	"sync"

	"github.com/erraggy/oaslint/tree"
)

// PointerBuilder provides incremental JSON pointer construction.
// Segments are escaped when pushed; the full string is only built when
// String() is called.
type PointerBuilder struct {
	segments []string
	length   int
}

// Builders deeper than retainDepth are dropped on Release so one pathological
// document does not pin a large backing array.
const retainDepth = 128

var builders = sync.Pool{
	New: func() any {
		return &PointerBuilder{segments: make([]string, 0, 16)}
	},
}

// AcquirePointer returns an empty builder, reusing a released one when
// available. Pair it with Release.
func AcquirePointer() *PointerBuilder {
	p := builders.Get().(*PointerBuilder)
	p.Reset()
	return p
}

// Release hands p back for reuse. p must not be used afterwards.
func (p *PointerBuilder) Release() {
	if p == nil || cap(p.segments) > retainDepth {
		return
	}
	builders.Put(p)
}

// Push adds a property name to the pointer.
func (p *PointerBuilder) Push(name string) {
	seg := tree.EscapePointerToken(name)
	p.segments = append(p.segments, seg)
	p.length += len(seg) + 1
}

// PushIndex adds an array index to the pointer.
func (p *PointerBuilder) PushIndex(i int) {
	seg := strconv.Itoa(i)
	p.segments = append(p.segments, seg)
	p.length += len(seg) + 1
}

// Pop removes the last segment.
func (p *PointerBuilder) Pop() {
	if len(p.segments) == 0 {
		return
	}
	last := p.segments[len(p.segments)-1]
	p.segments = p.segments[:len(p.segments)-1]
	p.length -= len(last) + 1
}

// Len returns the number of segments.
func (p *PointerBuilder) Len() int {
	return len(p.segments)
}

// Reset clears the builder for reuse.
func (p *PointerBuilder) Reset() {
	p.segments = p.segments[:0]
	p.length = 0
}

// String returns the JSON pointer. The root is "/".
func (p *PointerBuilder) String() string {
	if len(p.segments) == 0 {
		return "/"
	}
	var sb strings.Builder
	sb.Grow(p.length)
	for _, seg := range p.segments {
		sb.WriteByte('/')
		sb.WriteString(seg)
	}
	return sb.String()
}
