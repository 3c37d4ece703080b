package feedback

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"github.com/neuralshield/neuralshield/internal/core"
	"go.uber.org/zap"
)

// MySQLStore is a MySQL implementation of the FeedbackStore interface.
type MySQLStore struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewMySQLStore creates a new MySQL feedback store
func NewMySQLStore(dsn string, logger *zap.Logger) (*MySQLStore, error) {
	db, err := sql.Open("mysql", dsn+"?parseTime=true")
	if err != nil {
		return nil, fmt.Errorf("failed to open MySQL connection: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping MySQL: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS feedback (
			id BIGINT PRIMARY KEY AUTO_INCREMENT,
			text TEXT NOT NULL,
			user_suggested_label VARCHAR(16) NOT NULL,
			created_at TIMESTAMP NOT NULL
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create table: %w", err)
	}

	return &MySQLStore{db: db, logger: logger}, nil
}

// Append writes one correction record
func (s *MySQLStore) Append(ctx context.Context, entry core.FeedbackEntry) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO feedback (text, user_suggested_label, created_at)
		VALUES (?, ?, ?)
	`, entry.Text, entry.Label, entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert feedback record: %w", err)
	}

	s.logger.Debug("Feedback recorded", zap.String("label", entry.Label))
	return nil
}

// Close closes the database
func (s *MySQLStore) Close() error {
	return s.db.Close()
}
