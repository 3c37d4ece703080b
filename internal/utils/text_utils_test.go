package utils

import (
	"strings"
	"testing"
	"unicode/utf8"

	"go.uber.org/zap"
)

func TestSanitizeEscapesHTML(t *testing.T) {
	s := NewSanitizer(zap.NewNop(), 0)

	got := s.Sanitize(`<script>alert("x")</script>`)
	if strings.Contains(got, "<") || strings.Contains(got, ">") {
		t.Errorf("Sanitize left raw markup: %q", got)
	}
	if !strings.Contains(got, "&lt;script&gt;") {
		t.Errorf("Sanitize output = %q, want escaped markup", got)
	}
}

func TestSanitizeTruncates(t *testing.T) {
	s := NewSanitizer(zap.NewNop(), 10)

	got := s.Sanitize(strings.Repeat("a", 100))
	if len(got) != 10 {
		t.Errorf("len = %d, want 10", len(got))
	}
}

func TestSanitizeTruncatesOnRuneBoundary(t *testing.T) {
	s := NewSanitizer(zap.NewNop(), 4)

	// "héllo" puts a 2-byte rune across the cap.
	got := s.Sanitize("héllo")
	if !utf8.ValidString(got) {
		t.Errorf("truncation produced invalid UTF-8: %q", got)
	}
}

func TestSanitizeDropsInvalidUTF8(t *testing.T) {
	s := NewSanitizer(zap.NewNop(), 0)

	got := s.Sanitize("ok\xff\xfetext")
	if !utf8.ValidString(got) {
		t.Errorf("output still invalid: %q", got)
	}
	if !strings.Contains(got, "ok") || !strings.Contains(got, "text") {
		t.Errorf("valid content was lost: %q", got)
	}
}

func TestSnippet(t *testing.T) {
	tests := []struct {
		text     string
		n        int
		expected string
	}{
		{"hello world", 5, "hello"},
		{"short", 300, "short"},
		{"héllo", 2, "hé"},
		{"anything", 0, ""},
		{"", 10, ""},
	}
	for _, tt := range tests {
		if got := Snippet(tt.text, tt.n); got != tt.expected {
			t.Errorf("Snippet(%q, %d) = %q, want %q", tt.text, tt.n, got, tt.expected)
		}
	}
}
