package textproc

import (
	"strings"
	"unicode"

	"github.com/kljensen/snowball/english"
)

// Normalizer turns raw email text into the stemmed, stopword-free token
// stream the vectorizer was trained on. It is pure: the same input always
// yields the same output, and empty input yields an empty string.
type Normalizer struct{}

// NewNormalizer creates a Normalizer.
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

func notAlnum(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

// Tokens returns the normalized token sequence for text: lowercased,
// segmented on word boundaries, alphanumeric only, stopwords removed,
// each remaining token stemmed.
func (n *Normalizer) Tokens(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), notAlnum)
	tokens := make([]string, 0, len(fields))
	for _, tok := range fields {
		if _, stop := englishStopwords[tok]; stop {
			continue
		}
		tokens = append(tokens, english.Stem(tok, false))
	}
	return tokens
}

// Normalize returns the token sequence re-joined with single spaces.
func (n *Normalizer) Normalize(text string) string {
	return strings.Join(n.Tokens(text), " ")
}
