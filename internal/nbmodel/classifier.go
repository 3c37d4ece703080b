package nbmodel

import (
	"math"

	"github.com/neuralshield/neuralshield/internal/core"
)

// Classifier is a two-class multinomial naive bayes model over tf-idf term
// weights. All arithmetic stays in log space until the final softmax so long
// documents cannot underflow.
type Classifier struct {
	classLogPrior  [2]float64
	featureLogProb [2][]float64
}

func newClassifier(priors []float64, likelihoods [][]float64) *Classifier {
	return &Classifier{
		classLogPrior:  [2]float64{priors[0], priors[1]},
		featureLogProb: [2][]float64{likelihoods[0], likelihoods[1]},
	}
}

// Predict computes the joint log likelihood of vec under each class,
// normalizes via log-sum-exp, and returns the argmax class with its
// posterior. Equal scores resolve to the lower class index, so confidence
// is always at least 0.5.
func (c *Classifier) Predict(vec []float64) core.Prediction {
	jll := c.classLogPrior
	for i, x := range vec {
		if x != 0 {
			jll[0] += x * c.featureLogProb[0][i]
			jll[1] += x * c.featureLogProb[1][i]
		}
	}

	m := math.Max(jll[0], jll[1])
	e0 := math.Exp(jll[0] - m)
	e1 := math.Exp(jll[1] - m)
	z := e0 + e1

	posterior := [2]float64{e0 / z, e1 / z}
	label := core.LabelSafe
	if jll[1] > jll[0] {
		label = core.LabelPhishing
	}

	return core.Prediction{
		Label:      label,
		Confidence: posterior[label],
		Posterior:  posterior,
	}
}
