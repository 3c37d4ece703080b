package feedback

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"github.com/neuralshield/neuralshield/internal/core"
	"go.uber.org/zap"
)

// SQLiteStore is a SQLite implementation of the FeedbackStore interface.
type SQLiteStore struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewSQLiteStore creates a new SQLite feedback store
func NewSQLiteStore(dbPath string, logger *zap.Logger) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS feedback (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			text TEXT NOT NULL,
			user_suggested_label TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create table: %w", err)
	}

	return &SQLiteStore{db: db, logger: logger}, nil
}

// Append writes one correction record
func (s *SQLiteStore) Append(ctx context.Context, entry core.FeedbackEntry) error {
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
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
