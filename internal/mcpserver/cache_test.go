package mcpserver

import (
	"testing"
	"time"

	"github.com/erraggy/oaslint/analyzer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportLRU_EvictsLeastRecentlyUsed(t *testing.T) {
	c := newReportLRU(2, time.Hour, time.Hour)
	a, b, d := &analyzer.FileReport{Path: "a"}, &analyzer.FileReport{Path: "b"}, &analyzer.FileReport{Path: "d"}
	c.put(true, "a", a)
	c.put(true, "b", b)

	got, ok := c.get(true, "a")
	require.True(t, ok)
	assert.Same(t, a, got)

	c.put(true, "d", d)
	_, ok = c.get(true, "b")
	assert.False(t, ok, "b was least recently used")
	_, ok = c.get(true, "a")
	assert.True(t, ok)
	assert.Equal(t, 2, c.len())
}

func TestReportLRU_KindsAreSeparate(t *testing.T) {
	c := newReportLRU(1, time.Hour, time.Hour)
	c.put(true, "k", &analyzer.FileReport{Path: "file"})
	c.put(false, "k", &analyzer.FileReport{Path: "inline"})

	got, ok := c.get(true, "k")
	require.True(t, ok)
	assert.Equal(t, "file", got.Path)
	got, ok = c.get(false, "k")
	require.True(t, ok)
	assert.Equal(t, "inline", got.Path)
	assert.Equal(t, 2, c.len())

	c.reset()
	assert.Zero(t, c.len())
}

func TestReportLRU_ContentExpiresOnItsOwnTTL(t *testing.T) {
	c := newReportLRU(4, time.Hour, 20*time.Millisecond)
	c.put(true, "f", &analyzer.FileReport{Path: "f"})
	c.put(false, "c", &analyzer.FileReport{Path: "c"})

	assert.Eventually(t, func() bool {
		_, ok := c.get(false, "c")
		return !ok
	}, time.Second, 10*time.Millisecond)
	_, ok := c.get(true, "f")
	assert.True(t, ok, "file entries keep their longer TTL")
}

func TestReportLRU_MinimumSize(t *testing.T) {
	c := newReportLRU(0, time.Hour, time.Hour)
	c.put(false, "a", &analyzer.FileReport{})
	c.put(false, "b", &analyzer.FileReport{})
	assert.Equal(t, 1, c.len())
}
