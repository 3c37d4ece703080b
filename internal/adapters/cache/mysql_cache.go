package cache

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/neuralshield/neuralshield/internal/core"
	"go.uber.org/zap"
)

// MySQLCache is a MySQL implementation of the VerdictCache interface.
type MySQLCache struct {
	db          *sql.DB
	logger      *zap.Logger
	cleanupFreq time.Duration
	stopCh      chan struct{}
}

// NewMySQLCache creates a new MySQL verdict cache
func NewMySQLCache(dsn string, logger *zap.Logger, cleanupFreq time.Duration) (*MySQLCache, error) {
	db, err := sql.Open("mysql", dsn+"?parseTime=true")
	if err != nil {
		return nil, fmt.Errorf("failed to open MySQL connection: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping MySQL: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS verdict_cache (
			content_key VARCHAR(64) PRIMARY KEY,
			label INT,
			confidence DOUBLE,
			posterior_safe DOUBLE,
			posterior_phishing DOUBLE,
			analyzed_at TIMESTAMP,
			expires_at TIMESTAMP,
			INDEX idx_verdict_expires_at (expires_at)
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create table: %w", err)
	}

	cache := &MySQLCache{
		db:          db,
		logger:      logger,
		cleanupFreq: cleanupFreq,
		stopCh:      make(chan struct{}),
	}

	go cache.startCleanupTask()

	return cache, nil
}

// Get retrieves a cached verdict by content hash
func (c *MySQLCache) Get(ctx context.Context, key string) (*core.CachedVerdict, bool) {
	var label int
	var confidence, pSafe, pPhishing float64
	var analyzedAt, expiresAt time.Time

	err := c.db.QueryRowContext(ctx, `
		SELECT label, confidence, posterior_safe, posterior_phishing, analyzed_at, expires_at
		FROM verdict_cache
		WHERE content_key = ? AND expires_at > NOW()
	`, key).Scan(&label, &confidence, &pSafe, &pPhishing, &analyzedAt, &expiresAt)

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
func (c *MySQLCache) Set(ctx context.Context, verdict *core.CachedVerdict) error {
	_, err := c.db.ExecContext(ctx, `
		REPLACE INTO verdict_cache
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
func (c *MySQLCache) Cleanup(ctx context.Context) error {
	res, err := c.db.ExecContext(ctx, `DELETE FROM verdict_cache WHERE expires_at <= NOW()`)
	if err != nil {
		return fmt.Errorf("failed to clean up verdict cache: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil {
		c.logger.Debug("Cleaned up expired verdict cache entries", zap.Int64("expired_count", n))
	}
	return nil
}

func (c *MySQLCache) startCleanupTask() {
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
func (c *MySQLCache) Stop() {
	close(c.stopCh)
	if err := c.db.Close(); err != nil {
		c.logger.Error("Failed to close MySQL connection", zap.Error(err))
	}
}
