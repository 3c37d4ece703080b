package feedback

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"sync"

	"github.com/neuralshield/neuralshield/internal/core"
	"go.uber.org/zap"
)

// csvHeader matches the corrective-label log format the training pipeline
// consumes. It is written exactly once, when the file is first created.
var csvHeader = []string{"text", "user_suggested_label"}

// CSVStore is an append-only file implementation of the FeedbackStore
// interface. One row per correction; the file is created with a header on
// first write.
type CSVStore struct {
	path   string
	mu     sync.Mutex
	logger *zap.Logger
}

// NewCSVStore creates a new CSV feedback store
func NewCSVStore(path string, logger *zap.Logger) *CSVStore {
	return &CSVStore{path: path, logger: logger}
}

// Append writes one correction record
func (s *CSVStore) Append(ctx context.Context, entry core.FeedbackEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, statErr := os.Stat(s.path)
	isNew := os.IsNotExist(statErr)

	file, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open feedback file: %w", err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if isNew {
		if err := w.Write(csvHeader); err != nil {
			return fmt.Errorf("failed to write feedback header: %w", err)
		}
	}
	if err := w.Write([]string{entry.Text, entry.Label}); err != nil {
		return fmt.Errorf("failed to write feedback record: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush feedback record: %w", err)
	}

	s.logger.Debug("Feedback recorded", zap.String("label", entry.Label))
	return nil
}
