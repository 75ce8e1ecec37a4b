package metrics_test

import (
	"context"
	"testing"

	"github.com/erraggy/oaslint/internal/testutil"
	"github.com/erraggy/oaslint/metrics"
	"github.com/erraggy/oaslint/tree"
	"github.com/erraggy/oaslint/walker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_FileLines(t *testing.T) {
	f := testutil.ParseFile(t, "../testdata/file-lines.yaml")
	m, errs := metrics.Extract(f)
	require.Empty(t, errs)

	assert.Equal(t, []int{2, 3, 4, 5, 7, 8, 9, 10, 11, 12, 13, 14, 15}, m.LinesOfCode.Sorted())
	assert.Equal(t, []int{1, 4, 6, 17}, m.LinesOfComment.Sorted())
	assert.Equal(t, []int{9, 12}, m.LinesWithSuppression.Sorted())

	assert.False(t, m.LinesOfComment.Has(9), "a suppression comment is not documentation")
	assert.True(t, m.LinesOfCode.Has(9))
	assert.False(t, m.LinesOfCode.Has(16), "blank lines are neither code nor comment")

	assert.Equal(t, 2, m.Complexity)
	assert.Equal(t, 1, m.PathCount)
	assert.Equal(t, 1, m.OperationCount)
	assert.Zero(t, m.SchemaCount)
}

func TestExtract_Petstore(t *testing.T) {
	tests := []struct {
		file                          string
		complexity                    int
		schemas, operations, pathsCnt int
	}{
		{"../testdata/petstore-2.0.yaml", 14, 7, 3, 2},
		{"../testdata/petstore-3.0.yaml", 18, 6, 4, 3},
	}
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			m, errs := metrics.Extract(testutil.ParseFile(t, tt.file))
			require.Empty(t, errs)
			assert.Equal(t, tt.complexity, m.Complexity)
			assert.Equal(t, tt.schemas, m.SchemaCount)
			assert.Equal(t, tt.operations, m.OperationCount)
			assert.Equal(t, tt.pathsCnt, m.PathCount)
		})
	}
}

func TestExtract_ReferencesAreNotCounted(t *testing.T) {
	f := testutil.ParseString(t, `openapi: 3.1.0
info: {title: t, version: v}
paths:
  /a:
    $ref: '#/components/pathItems/A'
components:
  pathItems:
    A:
      get:
        responses:
          default:
            $ref: '#/components/responses/R'
  responses:
    R:
      description: r
      content:
        application/json:
          schema:
            $ref: '#/components/schemas/S'
  schemas:
    S:
      type: string
`)
	m, errs := metrics.Extract(f)
	require.Empty(t, errs)
	assert.Equal(t, 1, m.SchemaCount, "only the definition of S")
	assert.Equal(t, 1, m.OperationCount)
	// The /a reference is not a path; A is a path item defined in components.
	assert.Equal(t, 1, m.PathCount)
	// Path A, its operation, the media type and schema S.
	assert.Equal(t, 4, m.Complexity)
}

func TestExtract_EmptyDocument(t *testing.T) {
	m, errs := metrics.Extract(testutil.ParseString(t, ""))
	require.Empty(t, errs)
	assert.Zero(t, m.LinesOfCode.Len())
	assert.Zero(t, m.LinesOfComment.Len())
	assert.Zero(t, m.LinesWithSuppression.Len())
	assert.Zero(t, m.Complexity)
	assert.Zero(t, m.SchemaCount+m.OperationCount+m.PathCount)
}

func TestExtract_FatalFile(t *testing.T) {
	m, errs := metrics.Extract(walker.NewFile("broken.yaml", tree.Fatal{Line: 3}))
	require.Empty(t, errs)
	assert.Equal(t, metrics.New(), m)
}

func TestExtract_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	f := testutil.ParseFile(t, "../testdata/petstore-2.0.yaml").WithContext(ctx)
	m, errs := metrics.Extract(f)
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], context.Canceled)
	assert.Zero(t, m.Complexity)
}

func TestClassifyLines_Markers(t *testing.T) {
	f := testutil.ParseString(t, `openapi: 3.1.0 # oaslint:IGNORE
info:
  title: x-nosonar
  version: v
  "x-oaslint-ignore": true
  x-other: 1 # nosonar please
`)
	code, comment, suppressed := metrics.ClassifyLines(f.Tokens)
	assert.Equal(t, []int{1, 5, 6}, suppressed.Sorted())
	assert.Empty(t, comment.Sorted())
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, code.Sorted())
}

func TestLineSet(t *testing.T) {
	s := metrics.LineSet{}
	s.Add(3, 1, 3)
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Has(1))
	assert.False(t, s.Has(2))
	assert.Equal(t, []int{1, 3}, s.Sorted())
	assert.Empty(t, metrics.LineSet{}.Sorted())
}
