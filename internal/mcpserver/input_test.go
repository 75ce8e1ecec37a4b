package mcpserver

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const petstoreFile = "../../testdata/petstore-3.0.yaml"

func TestSpecInput_Analyze(t *testing.T) {
	reportCache.reset()
	t.Cleanup(reportCache.reset)

	r, err := specInput{File: petstoreFile}.analyze(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, petstoreFile, r.Path)
	assert.Len(t, r.Issues, 7)
	assert.Equal(t, 1, reportCache.len())

	again, err := specInput{File: petstoreFile}.analyze(context.Background(), false)
	require.NoError(t, err)
	assert.Same(t, r, again, "second call is served from the cache")

	_, err = specInput{File: petstoreFile}.analyze(context.Background(), true)
	require.NoError(t, err)
	assert.Equal(t, 2, reportCache.len(), "strict mode is part of the key")
}

func TestSpecInput_Content(t *testing.T) {
	reportCache.reset()
	t.Cleanup(reportCache.reset)

	in := specInput{Content: "openapi: 3.0.0\ninfo: [\n", Name: "broken.yaml"}
	r, err := in.analyze(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, "broken.yaml", r.Path)
	assert.True(t, r.Fatal)

	assert.Equal(t, "inline.yaml", specInput{Content: "x"}.name())
}

func TestSpecInput_Errors(t *testing.T) {
	_, err := specInput{}.analyze(context.Background(), false)
	assert.ErrorContains(t, err, "exactly one of file or content")

	_, err = specInput{File: "a.yaml", Content: "b"}.analyze(context.Background(), false)
	assert.ErrorContains(t, err, "exactly one of file or content")

	_, err = specInput{File: "../../testdata/missing.yaml"}.analyze(context.Background(), false)
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = specInput{Content: "openapi: 3.1.0\n"}.analyze(ctx, false)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSpecInput_CacheKey(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "api.yaml")
	require.NoError(t, os.WriteFile(path, []byte("openapi: 3.1.0\n"), 0o600))

	key := specInput{File: path}.cacheKey(false)
	assert.Contains(t, key, "file:")

	later := time.Now().Add(time.Hour)
	require.NoError(t, os.Chtimes(path, later, later))
	assert.NotEqual(t, key, specInput{File: path}.cacheKey(false), "mtime changes invalidate the key")

	assert.Empty(t, specInput{File: filepath.Join(dir, "missing.yaml")}.cacheKey(false))
	assert.Equal(t, specInput{Content: "a"}.cacheKey(true), specInput{Content: "a", Name: "inline.yaml"}.cacheKey(true))
	assert.NotEqual(t, specInput{Content: "a"}.cacheKey(true), specInput{Content: "a", Name: "x.yaml"}.cacheKey(true),
		"the reported name is part of the key")
	assert.Empty(t, specInput{}.cacheKey(false))
}

func TestSpecInput_CacheDisabled(t *testing.T) {
	reportCache.reset()
	t.Cleanup(reportCache.reset)
	saved := *cfg
	cfg.CacheEnabled = false
	t.Cleanup(func() { *cfg = saved })

	first, err := specInput{File: petstoreFile}.analyze(context.Background(), false)
	require.NoError(t, err)
	second, err := specInput{File: petstoreFile}.analyze(context.Background(), false)
	require.NoError(t, err)
	assert.NotSame(t, first, second)
	assert.Zero(t, reportCache.len())
}
