package mcpserver

import (
	"time"

	"github.com/erraggy/oaslint/analyzer"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// reportLRU keeps file and inline reports apart so each kind expires on its
// own TTL. Both halves are bounded by the same size.
type reportLRU struct {
	files   *expirable.LRU[string, *analyzer.FileReport]
	content *expirable.LRU[string, *analyzer.FileReport]
}

func newReportLRU(size int, fileTTL, contentTTL time.Duration) *reportLRU {
	size = max(size, 1)
	return &reportLRU{
		files:   expirable.NewLRU[string, *analyzer.FileReport](size, nil, fileTTL),
		content: expirable.NewLRU[string, *analyzer.FileReport](size, nil, contentTTL),
	}
}

func (c *reportLRU) pick(file bool) *expirable.LRU[string, *analyzer.FileReport] {
	if file {
		return c.files
	}
	return c.content
}

func (c *reportLRU) get(file bool, key string) (*analyzer.FileReport, bool) {
	return c.pick(file).Get(key)
}

func (c *reportLRU) put(file bool, key string, report *analyzer.FileReport) {
	c.pick(file).Add(key, report)
}

func (c *reportLRU) reset() {
	c.files.Purge()
	c.content.Purge()
}

func (c *reportLRU) len() int {
	return c.files.Len() + c.content.Len()
}
