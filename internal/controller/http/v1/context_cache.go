package v1

import (
	"sync"

	"github.com/kurochkinivan/scan_analyzer/internal/domain"
)

const maxCachedContexts = 1024

// contextCache remembers questionnaire data submitted with a job, dropping
// the oldest entries once full.
type contextCache struct {
	mu      sync.Mutex
	limit   int
	records map[string]*domain.ContextRecord
	order   []string
}

func newContextCache(limit int) *contextCache {
	return &contextCache{
		limit:   limit,
		records: make(map[string]*domain.ContextRecord),
	}
}

func (c *contextCache) put(jobID string, record *domain.ContextRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.records[jobID]; !ok {
		if len(c.order) >= c.limit {
			delete(c.records, c.order[0])
			c.order = c.order[1:]
		}
		c.order = append(c.order, jobID)
	}

	c.records[jobID] = record
}

func (c *contextCache) get(jobID string) (*domain.ContextRecord, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	record, ok := c.records[jobID]
	return record, ok
}
