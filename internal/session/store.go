package session

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/neuralshield/neuralshield/internal/core"
)

// Store owns all per-session state: the scan counters and the rolling,
// newest-first history. The aggregator's Commit is the single writer;
// concurrent scans in one session serialize on the session's lock, which
// keeps PhishingCount + SafeCount == TotalScans. Sessions are ephemeral and
// swept after their idle TTL; nothing survives a restart.
type Store struct {
	mu           sync.Mutex
	sessions     map[string]*state
	ttl          time.Duration
	historyLimit int
	logger       *zap.Logger
	now          func() time.Time
	stopCh       chan struct{}
}

type state struct {
	mu       sync.Mutex
	stats    core.SessionStats
	history  []core.ScanRecord
	lastSeen time.Time
	evicted  bool
}

// NewStore creates a session store and starts the idle-session sweeper.
func NewStore(ttl time.Duration, historyLimit int, logger *zap.Logger) *Store {
	s := &Store{
		sessions:     make(map[string]*state),
		ttl:          ttl,
		historyLimit: historyLimit,
		logger:       logger,
		now:          time.Now,
		stopCh:       make(chan struct{}),
	}
	go s.sweepLoop()
	return s
}

func (s *Store) get(sessionID string) *state {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.sessions[sessionID]
	if !ok {
		st = &state{}
		s.sessions[sessionID] = st
	}
	return st
}

// Commit records one completed scan: increments the counters and prepends
// the record to the history in a single critical section. The sweeper may
// evict the session between the map lookup and taking the state lock; an
// evicted state is abandoned and the commit retries against a fresh one.
func (s *Store) Commit(sessionID string, label core.Label, rec core.ScanRecord) {
	for {
		st := s.get(sessionID)

		st.mu.Lock()
		if st.evicted {
			st.mu.Unlock()
			continue
		}

		st.stats.TotalScans++
		if label == core.LabelPhishing {
			st.stats.PhishingCount++
		} else {
			st.stats.SafeCount++
		}

		st.history = append([]core.ScanRecord{rec}, st.history...)
		if s.historyLimit > 0 && len(st.history) > s.historyLimit {
			st.history = st.history[:s.historyLimit]
		}
		st.lastSeen = s.now()
		st.mu.Unlock()
		return
	}
}

// Snapshot returns a copy of the session's counters and history. Unknown
// sessions snapshot as empty, not as an error.
func (s *Store) Snapshot(sessionID string) (core.SessionStats, []core.ScanRecord) {
	s.mu.Lock()
	st, ok := s.sessions[sessionID]
	s.mu.Unlock()
	if !ok {
		return core.SessionStats{}, nil
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	history := make([]core.ScanRecord, len(st.history))
	copy(history, st.history)
	return st.stats, history
}

func (s *Store) sweepLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep()
		case <-s.stopCh:
			return
		}
	}
}

func (s *Store) sweep() {
	cutoff := s.now().Add(-s.ttl)
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, st := range s.sessions {
		st.mu.Lock()
		if st.lastSeen.Before(cutoff) {
			st.evicted = true
			delete(s.sessions, id)
			removed++
		}
		st.mu.Unlock()
	}
	if removed > 0 {
		s.logger.Debug("Swept idle sessions", zap.Int("removed", removed))
	}
}

// Stop stops the background sweeper.
func (s *Store) Stop() {
	close(s.stopCh)
}
