package mcpserver

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// clearOASLINTEnv clears all OASLINT_* env vars to isolate tests from the ambient environment.
func clearOASLINTEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"OASLINT_CACHE_ENABLED", "OASLINT_CACHE_MAX_SIZE",
		"OASLINT_CACHE_FILE_TTL", "OASLINT_CACHE_CONTENT_TTL",
		"OASLINT_ISSUE_LIMIT", "OASLINT_MAX_LIMIT", "OASLINT_MAX_INLINE_SIZE",
		"OASLINT_STRICT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearOASLINTEnv(t)

	c := loadConfig()

	assert.True(t, c.CacheEnabled)
	assert.Equal(t, 10, c.CacheMaxSize)
	assert.Equal(t, 15*time.Minute, c.CacheFileTTL)
	assert.Equal(t, 15*time.Minute, c.CacheContentTTL)
	assert.Equal(t, 100, c.IssueLimit)
	assert.Equal(t, 1000, c.MaxLimit)
	assert.Equal(t, int64(10*1024*1024), c.MaxInlineSize)
	assert.False(t, c.Strict)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	clearOASLINTEnv(t)
	t.Setenv("OASLINT_CACHE_ENABLED", "false")
	t.Setenv("OASLINT_CACHE_MAX_SIZE", "50")
	t.Setenv("OASLINT_CACHE_FILE_TTL", "30m")
	t.Setenv("OASLINT_CACHE_CONTENT_TTL", "30s")
	t.Setenv("OASLINT_ISSUE_LIMIT", "20")
	t.Setenv("OASLINT_MAX_INLINE_SIZE", "1024")
	t.Setenv("OASLINT_STRICT", "true")

	c := loadConfig()

	assert.False(t, c.CacheEnabled)
	assert.Equal(t, 50, c.CacheMaxSize)
	assert.Equal(t, 30*time.Minute, c.CacheFileTTL)
	assert.Equal(t, 30*time.Second, c.CacheContentTTL)
	assert.Equal(t, 20, c.IssueLimit)
	assert.Equal(t, int64(1024), c.MaxInlineSize)
	assert.True(t, c.Strict)
}

func TestLoadConfig_InvalidValuesFallBack(t *testing.T) {
	clearOASLINTEnv(t)
	t.Setenv("OASLINT_CACHE_ENABLED", "notabool")
	t.Setenv("OASLINT_CACHE_MAX_SIZE", "-5")
	t.Setenv("OASLINT_CACHE_FILE_TTL", "forever")
	t.Setenv("OASLINT_ISSUE_LIMIT", "abc")

	c := loadConfig()

	assert.True(t, c.CacheEnabled)
	assert.Equal(t, 10, c.CacheMaxSize)
	assert.Equal(t, 15*time.Minute, c.CacheFileTTL)
	assert.Equal(t, 100, c.IssueLimit)
}
