package detectors

import (
	"reflect"
	"testing"
)

func TestFindTriggerKeywords(t *testing.T) {
	s := NewSuite()

	tests := []struct {
		name     string
		body     string
		expected []string
	}{
		{
			name:     "lexicon order not text order",
			body:     "Please update your bank account urgently",
			expected: []string{"urgent", "account", "bank", "update"},
		},
		{
			name:     "case insensitive",
			body:     "URGENT: VERIFY NOW",
			expected: []string{"urgent", "verify"},
		},
		{
			name:     "substring matches count",
			body:     "your subscription was suspended",
			expected: []string{"suspended"},
		},
		{
			name:     "multi word entry",
			body:     "please Click Here to claim your reward",
			expected: []string{"click here", "reward"},
		},
		{
			name:     "no findings",
			body:     "see you at the game tonight",
			expected: nil,
		},
		{
			name:     "empty body",
			body:     "",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.FindTriggerKeywords(tt.body)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("FindTriggerKeywords(%q) = %v, want %v", tt.body, got, tt.expected)
			}
		})
	}
}
