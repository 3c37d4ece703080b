package session

import (
	"sync"
	"time"
)

// Cooldown is a per-session minimum-spacing gate: a scan is accepted only
// when at least interval has elapsed since the last accepted scan for that
// session. A rejected request consumes nothing and leaves the gate's state
// untouched, so the cooldown is measured from the last accepted scan.
type Cooldown struct {
	mu       sync.Mutex
	last     map[string]time.Time
	interval time.Duration
	now      func() time.Time
	stopCh   chan struct{}
}

// NewCooldown creates a cooldown gate and starts its stale-entry cleanup.
func NewCooldown(interval time.Duration) *Cooldown {
	c := &Cooldown{
		last:     make(map[string]time.Time),
		interval: interval,
		now:      time.Now,
		stopCh:   make(chan struct{}),
	}
	go c.cleanupLoop()
	return c
}

// Allow reports whether a scan for sessionID may proceed now, and if so
// marks the acceptance time.
func (c *Cooldown) Allow(sessionID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if last, ok := c.last[sessionID]; ok && now.Sub(last) < c.interval {
		return false
	}
	c.last[sessionID] = now
	return true
}

func (c *Cooldown) cleanupLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.mu.Lock()
			cutoff := c.now().Add(-10 * c.interval)
			for id, t := range c.last {
				if t.Before(cutoff) {
					delete(c.last, id)
				}
			}
			c.mu.Unlock()
		case <-c.stopCh:
			return
		}
	}
}

// Stop stops the background cleanup.
func (c *Cooldown) Stop() {
	close(c.stopCh)
}
