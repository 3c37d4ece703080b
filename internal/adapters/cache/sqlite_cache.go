package cache

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/neuralshield/neuralshield/internal/core"
	"go.uber.org/zap"
)

// SQLiteCache is a SQLite implementation of the VerdictCache interface.
type SQLiteCache struct {
	db          *sql.DB
	logger      *zap.Logger
	cleanupFreq time.Duration
	stopCh      chan struct{}
}

// NewSQLiteCache creates a new SQLite verdict cache
func NewSQLiteCache(dbPath string, logger *zap.Logger, cleanupFreq time.Duration) (*SQLiteCache, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS verdict_cache (
			content_key TEXT PRIMARY KEY,
			label INTEGER,
			confidence REAL,
			posterior_safe REAL,
			posterior_phishing REAL,
			analyzed_at TIMESTAMP,
			expires_at TIMESTAMP
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create table: %w", err)
	}

	_, err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_verdict_expires_at ON verdict_cache(expires_at)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create index: %w", err)
	}

	cache := &SQLiteCache{
		db:          db,
		logger:      logger,
		cleanupFreq: cleanupFreq,
		stopCh:      make(chan struct{}),
	}

	go cache.startCleanupTask()

	return cache, nil
}

// Get retrieves a cached verdict by content hash
func (c *SQLiteCache) Get(ctx context.Context, key string) (*core.CachedVerdict, bool) {
	var label int
	var confidence, pSafe, pPhishing float64
	var analyzedAt, expiresAt time.Time

	err := c.db.QueryRowContext(ctx, `
		SELECT label, confidence, posterior_safe, posterior_phishing, analyzed_at, expires_at
		FROM verdict_cache
		WHERE content_key = ? AND expires_at > ?
	`, key, time.Now()).Scan(&label, &confidence, &pSafe, &pPhishing, &analyzedAt, &expiresAt)

	if err != nil {
		if err != sql.ErrNoRows {
			c.logger.Error("Failed to query verdict cache", zap.Error(err), zap.String("key", key))
		}
		return nil, false
	}

	return &core.CachedVerdict{
		Key:        key,
		Label:      core.Label(label),
		Confidence: confidence,
		Posterior:  [2]float64{pSafe, pPhishing},
		AnalyzedAt: analyzedAt,
		ExpiresAt:  expiresAt,
	}, true
}

// Set stores a verdict
func (c *SQLiteCache) Set(ctx context.Context, verdict *core.CachedVerdict) error {
	_, err := c.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO verdict_cache
			(content_key, label, confidence, posterior_safe, posterior_phishing, analyzed_at, expires_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, verdict.Key, int(verdict.Label), verdict.Confidence,
		verdict.Posterior[0], verdict.Posterior[1], verdict.AnalyzedAt, verdict.ExpiresAt)
	if err != nil {
		return fmt.Errorf("failed to store verdict: %w", err)
	}
	return nil
}

// Cleanup removes expired entries
func (c *SQLiteCache) Cleanup(ctx context.Context) error {
	res, err := c.db.ExecContext(ctx, `DELETE FROM verdict_cache WHERE expires_at <= ?`, time.Now())
	if err != nil {
		return fmt.Errorf("failed to clean up verdict cache: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil {
		c.logger.Debug("Cleaned up expired verdict cache entries", zap.Int64("expired_count", n))
	}
	return nil
}

func (c *SQLiteCache) startCleanupTask() {
	ticker := time.NewTicker(c.cleanupFreq)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := c.Cleanup(context.Background()); err != nil {
				c.logger.Error("Failed to clean up verdict cache", zap.Error(err))
			}
		case <-c.stopCh:
			return
		}
	}
}

// Stop stops the background cleanup task and closes the database
func (c *SQLiteCache) Stop() {
	close(c.stopCh)
	if err := c.db.Close(); err != nil {
		c.logger.Error("Failed to close SQLite database", zap.Error(err))
	}
}
