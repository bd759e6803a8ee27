// Package ids hands out millisecond timestamp identifiers.
package ids

import (
	"sync"
	"time"
)

// Generator returns Unix-millisecond ids that are strictly increasing even
// when several are requested within the same millisecond.
type Generator struct {
	mu   sync.Mutex
	now  func() time.Time
	last int64
}

// NewGenerator creates a Generator reading time from now (time.Now when nil).
func NewGenerator(now func() time.Time) *Generator {
	if now == nil {
		now = time.Now
	}
	return &Generator{now: now}
}

// Next returns a fresh id, never smaller than the current clock.
func (g *Generator) Next() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := g.now().UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id
	return id
}

// Observe records an id loaded from storage so later ids do not collide with it.
func (g *Generator) Observe(id int64) {
	g.mu.Lock()
	if id > g.last {
		g.last = id
	}
	g.mu.Unlock()
}

// Now exposes the generator's clock so timestamps and ids agree in tests.
func (g *Generator) Now() time.Time {
	return g.now()
}
