package nbmodel

import (
	"os"
	"path/filepath"
	"testing"
)

func writeArtifacts(t *testing.T, vectorizerJSON, classifierJSON string) (string, string) {
	t.Helper()
	dir := t.TempDir()
	vecPath := filepath.Join(dir, "vectorizer.json")
	clfPath := filepath.Join(dir, "classifier.json")
	if err := os.WriteFile(vecPath, []byte(vectorizerJSON), 0o600); err != nil {
		t.Fatalf("failed to write vectorizer blob: %v", err)
	}
	if err := os.WriteFile(clfPath, []byte(classifierJSON), 0o600); err != nil {
		t.Fatalf("failed to write classifier blob: %v", err)
	}
	return vecPath, clfPath
}

const validVectorizerJSON = `{
	"max_features": 3000,
	"vocabulary": {"urgent": 0, "meet": 1},
	"idf": [1.4, 1.1]
}`

const validClassifierJSON = `{
	"version": "1.0.0",
	"trained_at": "2026-08-01T12:00:00Z",
	"model_type": "multinomial_nb",
	"classes": [0, 1],
	"class_log_prior": [-0.6931, -0.6931],
	"feature_log_prob": [[-2.0, -0.5], [-0.4, -2.5]]
}`

func TestLoad(t *testing.T) {
	vecPath, clfPath := writeArtifacts(t, validVectorizerJSON, validClassifierJSON)

	art, err := Load(vecPath, clfPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if art.Version() != "1.0.0" {
		t.Errorf("Version() = %q, want %q", art.Version(), "1.0.0")
	}
	if art.TrainedAt() != "2026-08-01T12:00:00Z" {
		t.Errorf("TrainedAt() = %q, want %q", art.TrainedAt(), "2026-08-01T12:00:00Z")
	}
	if art.ModelType() != "multinomial_nb" {
		t.Errorf("ModelType() = %q, want %q", art.ModelType(), "multinomial_nb")
	}
	if art.Dim() != 2 {
		t.Errorf("Dim() = %d, want 2", art.Dim())
	}

	pred := art.Predict("urgent urgent")
	if pred.Confidence < 0.5 || pred.Confidence > 1.0 {
		t.Errorf("Predict confidence = %v, want in [0.5, 1.0]", pred.Confidence)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, clfPath := writeArtifacts(t, validVectorizerJSON, validClassifierJSON)

	if _, err := Load(filepath.Join(t.TempDir(), "nope.json"), clfPath); err == nil {
		t.Error("Load() with missing vectorizer blob: expected error, got nil")
	}
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name       string
		vectorizer string
		classifier string
	}{
		{
			name:       "empty idf table",
			vectorizer: `{"max_features": 3000, "vocabulary": {}, "idf": []}`,
			classifier: validClassifierJSON,
		},
		{
			name:       "vocabulary index out of range",
			vectorizer: `{"max_features": 3000, "vocabulary": {"urgent": 9}, "idf": [1.4, 1.1]}`,
			classifier: validClassifierJSON,
		},
		{
			name:       "wrong class count",
			vectorizer: validVectorizerJSON,
			classifier: `{"version": "1", "classes": [0], "class_log_prior": [-0.1], "feature_log_prob": [[-1.0, -1.0]]}`,
		},
		{
			name:       "likelihood dimension mismatch",
			vectorizer: validVectorizerJSON,
			classifier: `{"version": "1", "classes": [0, 1], "class_log_prior": [-0.7, -0.7], "feature_log_prob": [[-1.0], [-1.0]]}`,
		},
		{
			name:       "malformed json",
			vectorizer: `{not json`,
			classifier: validClassifierJSON,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vecPath, clfPath := writeArtifacts(t, tt.vectorizer, tt.classifier)
			if _, err := Load(vecPath, clfPath); err == nil {
				t.Error("Load() expected error, got nil")
			}
		})
	}
}
