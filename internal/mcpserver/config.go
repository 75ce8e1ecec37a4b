package mcpserver

import (
	"time"

	"github.com/erraggy/oaslint/internal/config"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// Cache settings.
	CacheEnabled    bool
	CacheMaxSize    int
	CacheFileTTL    time.Duration
	CacheContentTTL time.Duration

	// Issue list defaults.
	IssueLimit int
	MaxLimit   int

	// MaxInlineSize bounds inline document content in bytes.
	MaxInlineSize int64

	// Strict is the default parser mode for the analyze tool.
	Strict bool
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads the OASLINT_* environment variables. Invalid values
// fall back to the defaults.
func loadConfig() *serverConfig {
	return &serverConfig{
		CacheEnabled:    config.EnvBool("OASLINT_CACHE_ENABLED", true),
		CacheMaxSize:    config.EnvInt("OASLINT_CACHE_MAX_SIZE", 10),
		CacheFileTTL:    config.EnvDuration("OASLINT_CACHE_FILE_TTL", 15*time.Minute),
		CacheContentTTL: config.EnvDuration("OASLINT_CACHE_CONTENT_TTL", 15*time.Minute),
		IssueLimit:      config.EnvInt("OASLINT_ISSUE_LIMIT", 100),
		MaxLimit:        config.EnvInt("OASLINT_MAX_LIMIT", 1000),
		MaxInlineSize:   int64(config.EnvInt("OASLINT_MAX_INLINE_SIZE", 10*1024*1024)),
		Strict:          config.EnvBool("OASLINT_STRICT", false),
	}
}
