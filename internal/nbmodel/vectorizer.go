package nbmodel

import (
	"math"
	"strings"
)

// Vectorizer maps normalized text onto the fixed-dimension tf-idf vector
// space learned at training time. Tokens outside the vocabulary contribute
// nothing; the vocabulary never grows at inference.
type Vectorizer struct {
	vocabulary map[string]int
	idf        []float64
}

func newVectorizer(vocabulary map[string]int, idf []float64) *Vectorizer {
	return &Vectorizer{vocabulary: vocabulary, idf: idf}
}

// Dim returns the vector dimension (vocabulary size).
func (v *Vectorizer) Dim() int {
	return len(v.idf)
}

// Transform converts normalized (space-joined) text into an L2-normalized
// tf-idf vector. Empty or fully out-of-vocabulary input yields the zero
// vector, which classifies without error.
func (v *Vectorizer) Transform(normalized string) []float64 {
	vec := make([]float64, len(v.idf))
	if normalized == "" {
		return vec
	}

	for _, tok := range strings.Fields(normalized) {
		if idx, ok := v.vocabulary[tok]; ok {
			vec[idx]++
		}
	}

	var sumSq float64
	for i := range vec {
		if vec[i] != 0 {
			vec[i] *= v.idf[i]
			sumSq += vec[i] * vec[i]
		}
	}
	if sumSq > 0 {
		norm := math.Sqrt(sumSq)
		for i := range vec {
			if vec[i] != 0 {
				vec[i] /= norm
			}
		}
	}
	return vec
}
