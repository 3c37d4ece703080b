package nbmodel

import (
	"github.com/neuralshield/neuralshield/internal/core"
)

// Predict runs the inference pipeline over already-normalized text:
// tf-idf transform, then naive bayes prediction.
func (a *Artifact) Predict(normalized string) core.Prediction {
	return a.classifier.Predict(a.vectorizer.Transform(normalized))
}

// Version returns the trained model version.
func (a *Artifact) Version() string {
	return a.version
}

// TrainedAt returns when the artifact was produced, as recorded by the
// training pipeline.
func (a *Artifact) TrainedAt() string {
	return a.trainedAt
}

// ModelType returns the model family identifier from the artifact.
func (a *Artifact) ModelType() string {
	return a.modelType
}

// Dim returns the feature-vector dimension.
func (a *Artifact) Dim() int {
	return a.vectorizer.Dim()
}
