package nbmodel

import (
	"encoding/json"
	"fmt"
	"os"
)

// vectorizerBlob is the serialized vectorizer state produced by the offline
// training pipeline: the fixed vocabulary and the matching idf weights.
type vectorizerBlob struct {
	MaxFeatures int            `json:"max_features"`
	Vocabulary  map[string]int `json:"vocabulary"`
	IDF         []float64      `json:"idf"`
}

// classifierBlob is the serialized multinomial naive bayes state plus model
// metadata surfaced in reports and health checks.
type classifierBlob struct {
	Version        string      `json:"version"`
	TrainedAt      string      `json:"trained_at"`
	ModelType      string      `json:"model_type"`
	Classes        []int       `json:"classes"`
	ClassLogPrior  []float64   `json:"class_log_prior"`
	FeatureLogProb [][]float64 `json:"feature_log_prob"`
}

// Artifact is the immutable trained model state, loaded once per process.
// Absence or corruption of either blob is a fatal startup condition.
type Artifact struct {
	version    string
	trainedAt  string
	modelType  string
	vectorizer *Vectorizer
	classifier *Classifier
}

// Load reads and validates the two trained-parameter blobs. The returned
// Artifact is read-only for the process lifetime.
func Load(vectorizerPath, classifierPath string) (*Artifact, error) {
	var vb vectorizerBlob
	if err := readBlob(vectorizerPath, &vb); err != nil {
		return nil, fmt.Errorf("vectorizer artifact: %w", err)
	}
	var cb classifierBlob
	if err := readBlob(classifierPath, &cb); err != nil {
		return nil, fmt.Errorf("classifier artifact: %w", err)
	}

	dim := len(vb.IDF)
	if dim == 0 {
		return nil, fmt.Errorf("vectorizer artifact %s: empty idf table", vectorizerPath)
	}
	for term, idx := range vb.Vocabulary {
		if idx < 0 || idx >= dim {
			return nil, fmt.Errorf("vectorizer artifact %s: term %q maps to index %d outside idf table of size %d", vectorizerPath, term, idx, dim)
		}
	}
	if len(cb.ClassLogPrior) != 2 || len(cb.FeatureLogProb) != 2 {
		return nil, fmt.Errorf("classifier artifact %s: expected exactly 2 classes, got %d priors and %d likelihood rows", classifierPath, len(cb.ClassLogPrior), len(cb.FeatureLogProb))
	}
	for c, row := range cb.FeatureLogProb {
		if len(row) != dim {
			return nil, fmt.Errorf("classifier artifact %s: class %d likelihoods have %d terms, vectorizer has %d", classifierPath, c, len(row), dim)
		}
	}

	return &Artifact{
		version:    cb.Version,
		trainedAt:  cb.TrainedAt,
		modelType:  cb.ModelType,
		vectorizer: newVectorizer(vb.Vocabulary, vb.IDF),
		classifier: newClassifier(cb.ClassLogPrior, cb.FeatureLogProb),
	}, nil
}

func readBlob(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return nil
}
