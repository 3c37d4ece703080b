package detectors

import (
	"strings"
)

// FindTriggerKeywords returns the lexicon entries present in the body,
// case-insensitively, preserving lexicon order.
func (s *Suite) FindTriggerKeywords(body string) []string {
	lowered := strings.ToLower(body)
	var found []string
	for _, kw := range triggerLexicon {
		if strings.Contains(lowered, kw) {
			found = append(found, kw)
		}
	}
	return found
}
