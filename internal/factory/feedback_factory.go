package factory

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/neuralshield/neuralshield/internal/adapters/feedback"
	"github.com/neuralshield/neuralshield/internal/config"
	"github.com/neuralshield/neuralshield/internal/core"
	"go.uber.org/zap"
)

// FeedbackFactory creates feedback stores based on configuration
type FeedbackFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewFeedbackFactory creates a new feedback factory
func NewFeedbackFactory(cfg *config.Config, logger *zap.Logger) *FeedbackFactory {
	return &FeedbackFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateFeedbackStore creates a feedback store based on the configuration
func (f *FeedbackFactory) CreateFeedbackStore() (core.FeedbackStore, error) {
	storeType := f.cfg.GetString("feedback.type")

	switch storeType {
	case "csv":
		return feedback.NewCSVStore(f.cfg.GetString("feedback.csv_path"), f.logger), nil
	case "sqlite":
		sqlitePath := f.cfg.GetString("feedback.sqlite_path")
		if err := os.MkdirAll(filepath.Dir(sqlitePath), 0755); err != nil {
			return nil, fmt.Errorf("failed to create SQLite directory: %w", err)
		}
		return feedback.NewSQLiteStore(sqlitePath, f.logger)
	case "mysql":
		return feedback.NewMySQLStore(f.cfg.GetString("feedback.mysql_dsn"), f.logger)
	default:
		return nil, fmt.Errorf("unsupported feedback store type: %s", storeType)
	}
}
