package detectors

import (
	"math"
	"testing"
)

func TestCheckTyposquat(t *testing.T) {
	s := NewSuite()

	tests := []struct {
		name          string
		rawURL        string
		expectedBrand string // empty means no alert
	}{
		{
			name:          "single character insertion",
			rawURL:        "http://gooogle.com/login",
			expectedBrand: "google.com",
		},
		{
			name:          "digit substitution",
			rawURL:        "https://paypa1.com/verify",
			expectedBrand: "paypal.com",
		},
		{
			name:          "www prefix stripped before comparison",
			rawURL:        "https://www.paypa1.com",
			expectedBrand: "paypal.com",
		},
		{
			name:          "identical domain never alerts",
			rawURL:        "https://paypal.com/login",
			expectedBrand: "",
		},
		{
			name:          "similarity of exactly 0.8 is excluded",
			rawURL:        "http://goggle.cam",
			expectedBrand: "",
		},
		{
			name:          "unrelated domain",
			rawURL:        "http://example.org/page",
			expectedBrand: "",
		},
		{
			name:          "empty host",
			rawURL:        "http:///path",
			expectedBrand: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alert := s.CheckTyposquat(tt.rawURL)
			if tt.expectedBrand == "" {
				if alert != nil {
					t.Fatalf("CheckTyposquat(%q) = %+v, want nil", tt.rawURL, alert)
				}
				return
			}
			if alert == nil {
				t.Fatalf("CheckTyposquat(%q) = nil, want alert for %s", tt.rawURL, tt.expectedBrand)
			}
			if alert.Brand != tt.expectedBrand {
				t.Errorf("alert brand = %q, want %q", alert.Brand, tt.expectedBrand)
			}
			if alert.Similarity <= 0.80 || alert.Similarity >= 1.0 {
				t.Errorf("alert similarity = %v, want strictly within (0.80, 1.0)", alert.Similarity)
			}
		})
	}
}

func TestSimilarity(t *testing.T) {
	tests := []struct {
		a, b     string
		expected float64
	}{
		{"google.com", "google.com", 1.0},
		{"gooogle.com", "google.com", 1.0 - 1.0/11.0},
		{"goggle.cam", "google.com", 0.8},
		{"", "", 1.0},
		{"abc", "", 0.0},
	}

	for _, tt := range tests {
		if got := similarity(tt.a, tt.b); math.Abs(got-tt.expected) > 1e-12 {
			t.Errorf("similarity(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.expected)
		}
	}
}
