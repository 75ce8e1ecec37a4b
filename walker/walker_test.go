package walker_test

import (
	"context"
	"errors"
	"testing"

	"github.com/erraggy/oaslint/grammar"
	"github.com/erraggy/oaslint/internal/testutil"
	"github.com/erraggy/oaslint/oaserrors"
	"github.com/erraggy/oaslint/tree"
	"github.com/erraggy/oaslint/walker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalk_DispatchByKind(t *testing.T) {
	f := testutil.ParseFile(t, "../testdata/petstore-2.0.yaml")

	var visited []string
	var starts, ends int
	v := &walker.Visitor{
		Name:  "paths-and-operations",
		Kinds: []tree.Kind{grammar.OAS2Path, grammar.OAS2Operation},
		OnFileStart: func(*walker.File) error {
			starts++
			return nil
		},
		OnNode: func(_ *walker.File, n tree.Node) error {
			visited = append(visited, n.Name())
			return nil
		},
		OnFileEnd: func(*walker.File) error {
			ends++
			return nil
		},
	}

	errs := walker.Walk(f, v)
	assert.Empty(t, errs)
	assert.Equal(t, 1, starts)
	assert.Equal(t, 1, ends)
	assert.Equal(t, []string{"/pets", "get", "post", "/pets/{petId}", "get"}, visited, "pre-order, document order")
}

func TestWalk_OtherGrammarKindsNeverMatch(t *testing.T) {
	f := testutil.ParseFile(t, "../testdata/petstore-2.0.yaml")
	var calls int
	walker.Walk(f, &walker.Visitor{
		Kinds:  []tree.Kind{grammar.OAS3Operation, grammar.OAS3Path},
		OnNode: func(*walker.File, tree.Node) error { calls++; return nil },
	})
	assert.Zero(t, calls)
}

func TestWalk_NoKindsNeverVisitsNodes(t *testing.T) {
	f := testutil.ParseFile(t, "../testdata/petstore-3.0.yaml")
	var nodes, starts int
	errs := walker.Walk(f, &walker.Visitor{
		Name:        "file-only",
		OnFileStart: func(*walker.File) error { starts++; return nil },
		OnNode:      func(*walker.File, tree.Node) error { nodes++; return nil },
	})
	assert.Empty(t, errs)
	assert.Equal(t, 1, starts)
	assert.Zero(t, nodes)
}

func TestWalk_ReferencesAreNotDescended(t *testing.T) {
	f := testutil.ParseFile(t, "../testdata/petstore-2.0.yaml")

	seen := make(map[tree.Node]int)
	var refs int
	walker.Walk(f, &walker.Visitor{
		Kinds: []tree.Kind{grammar.OAS2Schema, grammar.OAS2Schema},
		OnNode: func(_ *walker.File, n tree.Node) error {
			seen[n]++
			if n.IsRef() {
				refs++
			}
			return nil
		},
	})
	assert.Len(t, seen, 12)
	assert.Equal(t, 5, refs)
	for n, count := range seen {
		assert.Equal(t, 1, count, "node %s visited more than once", n.Name())
	}
}

func TestWalk_FailingVisitorIsIsolated(t *testing.T) {
	f := testutil.ParseFile(t, "../testdata/petstore-2.0.yaml")

	var failingCalls, healthyCalls int
	var failingEnded, healthyEnded bool
	failing := &walker.Visitor{
		Name:   "failing",
		Kinds:  []tree.Kind{grammar.OAS2Operation},
		OnNode: func(*walker.File, tree.Node) error { failingCalls++; return errors.New("boom") },
		OnFileEnd: func(*walker.File) error {
			failingEnded = true
			return nil
		},
	}
	healthy := &walker.Visitor{
		Name:   "healthy",
		Kinds:  []tree.Kind{grammar.OAS2Operation},
		OnNode: func(*walker.File, tree.Node) error { healthyCalls++; return nil },
		OnFileEnd: func(*walker.File) error {
			healthyEnded = true
			return nil
		},
	}

	errs := walker.Walk(f, failing, healthy)
	require.Len(t, errs, 1)
	assert.Equal(t, 1, failingCalls, "a failed visitor receives no further nodes")
	assert.Equal(t, 3, healthyCalls)
	assert.False(t, failingEnded)
	assert.True(t, healthyEnded)

	var checkErr *oaserrors.CheckError
	require.ErrorAs(t, errs[0], &checkErr)
	assert.Equal(t, "failing", checkErr.Rule)
	assert.Equal(t, "../testdata/petstore-2.0.yaml", checkErr.Path)
	assert.Equal(t, "/paths/~1pets/get", checkErr.Pointer)
	assert.False(t, checkErr.Panicked)
	assert.True(t, errors.Is(errs[0], oaserrors.ErrCheck))
}

func TestWalk_PanicIsRecovered(t *testing.T) {
	f := testutil.ParseFile(t, "../testdata/petstore-3.0.yaml")

	var others int
	errs := walker.Walk(f,
		&walker.Visitor{
			Name:        "panics-on-start",
			Kinds:       []tree.Kind{grammar.OAS3Path},
			OnFileStart: func(*walker.File) error { panic("nil map") },
			OnNode:      func(*walker.File, tree.Node) error { t.Fatal("disabled visitor called"); return nil },
		},
		&walker.Visitor{
			Name:   "counts",
			Kinds:  []tree.Kind{grammar.OAS3Path},
			OnNode: func(*walker.File, tree.Node) error { others++; return nil },
		},
	)
	require.Len(t, errs, 1)
	var checkErr *oaserrors.CheckError
	require.ErrorAs(t, errs[0], &checkErr)
	assert.True(t, checkErr.Panicked)
	assert.Empty(t, checkErr.Pointer)
	assert.Contains(t, checkErr.Error(), "nil map")
	assert.Equal(t, 3, others)
}

func TestWalk_FatalFileStillGetsFileCallbacks(t *testing.T) {
	f := walker.NewFile("broken.yaml", tree.Fatal{Message: "did not find expected key", Line: 4})
	assert.Nil(t, f.Root)
	fatal, ok := f.Fatal()
	require.True(t, ok)
	assert.Equal(t, 4, fatal.Line)

	var starts, ends int
	errs := walker.Walk(f, &walker.Visitor{
		Kinds:       []tree.Kind{grammar.OAS3Root},
		OnFileStart: func(*walker.File) error { starts++; return nil },
		OnNode:      func(*walker.File, tree.Node) error { t.Fatal("no nodes expected"); return nil },
		OnFileEnd:   func(*walker.File) error { ends++; return nil },
	})
	assert.Empty(t, errs)
	assert.Equal(t, 1, starts)
	assert.Equal(t, 1, ends)
}

func TestWalk_CycleTerminates(t *testing.T) {
	kind := tree.Kind{Grammar: "test", Name: "obj"}
	a := &testutil.Node{K: kind, KeyName: "a"}
	b := &testutil.Node{K: kind, KeyName: "b"}
	a.Kids = []*testutil.Node{b}
	b.Kids = []*testutil.Node{a}
	root := &testutil.Node{K: kind, Kids: []*testutil.Node{a}}

	var visits int
	var skipped []string
	w := walker.New(walker.WithSkippedHandler(func(reason string, n tree.Node, pointer string) {
		skipped = append(skipped, reason+" "+pointer)
	}))
	errs := w.Walk(&walker.File{Path: "cycle", Root: root}, &walker.Visitor{
		Kinds:  []tree.Kind{kind},
		OnNode: func(*walker.File, tree.Node) error { visits++; return nil },
	})
	assert.Empty(t, errs)
	assert.Equal(t, 3, visits)
	assert.Equal(t, []string{"cycle /a/b/a"}, skipped)
}

func TestWalk_MaxDepth(t *testing.T) {
	f := testutil.ParseString(t, "openapi: 3.1.0\ninfo:\n  title: t\n  version: v\n")

	var names []string
	var skipped int
	w := walker.New(
		walker.WithMaxDepth(1),
		walker.WithSkippedHandler(func(reason string, _ tree.Node, _ string) {
			assert.Equal(t, walker.SkipDepth, reason)
			skipped++
		}),
	)
	w.Walk(f, &walker.Visitor{
		Kinds:  []tree.Kind{grammar.OAS3Root, grammar.OAS3Info, grammar.OAS3Value},
		OnNode: func(_ *walker.File, n tree.Node) error { names = append(names, n.Name()); return nil },
	})
	assert.Equal(t, []string{"", "openapi", "info"}, names)
	assert.Equal(t, 2, skipped, "title and version are too deep")

	// Non-positive depths keep the default.
	names = nil
	walker.New(walker.WithMaxDepth(0)).Walk(f, &walker.Visitor{
		Kinds:  []tree.Kind{grammar.OAS3Value},
		OnNode: func(_ *walker.File, n tree.Node) error { names = append(names, n.Name()); return nil },
	})
	assert.Equal(t, []string{"openapi", "title", "version"}, names)
}

func TestWalk_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	f := testutil.ParseFile(t, "../testdata/petstore-3.0.yaml").WithContext(ctx)

	var nodes, ends int
	errs := walker.Walk(f, &walker.Visitor{
		Kinds:     []tree.Kind{grammar.OAS3Root},
		OnNode:    func(*walker.File, tree.Node) error { nodes++; return nil },
		OnFileEnd: func(*walker.File) error { ends++; return nil },
	})
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], context.Canceled)
	assert.Zero(t, nodes)
	assert.Equal(t, 1, ends)
}

func TestFile_Context(t *testing.T) {
	f := walker.NewFile("x.yaml", tree.Fatal{})
	assert.Equal(t, context.Background(), f.Context())

	ctx := context.WithValue(context.Background(), struct{}{}, 1)
	g := f.WithContext(ctx)
	assert.Equal(t, ctx, g.Context())
	assert.Equal(t, context.Background(), f.Context(), "WithContext copies")
}

func TestNewFile_PointerOutcome(t *testing.T) {
	f := walker.NewFile("broken.yaml", &tree.Fatal{Message: "boom", Line: 4})
	fatal, ok := f.Fatal()
	require.True(t, ok)
	assert.Equal(t, 4, fatal.Line)
	assert.Equal(t, tree.Fatal{Message: "boom", Line: 4}, f.Outcome)
	assert.Nil(t, f.Root)
}
