package utils

import (
	"html"
	"unicode/utf8"

	"go.uber.org/zap"
)

// Sanitizer prepares raw email input for the engine: it caps the size,
// repairs invalid UTF-8 and HTML-escapes the result so no unescaped markup
// ever reaches a downstream consumer.
type Sanitizer struct {
	logger      *zap.Logger
	maxBodySize int
}

// NewSanitizer creates a Sanitizer. maxBodySize <= 0 disables the size cap.
func NewSanitizer(logger *zap.Logger, maxBodySize int) *Sanitizer {
	return &Sanitizer{
		logger:      logger,
		maxBodySize: maxBodySize,
	}
}

// Sanitize truncates, repairs and escapes text in one operation.
func (s *Sanitizer) Sanitize(text string) string {
	return html.EscapeString(s.sanitizeUTF8(s.truncate(text)))
}

// truncate safely cuts text to the configured byte cap on a rune boundary.
func (s *Sanitizer) truncate(text string) string {
	if s.maxBodySize <= 0 || len(text) <= s.maxBodySize {
		return text
	}

	truncated := text[:s.maxBodySize]
	for !utf8.ValidString(truncated) && len(truncated) > 0 {
		truncated = truncated[:len(truncated)-1]
	}

	s.logger.Debug("Input truncated",
		zap.Int("original_size", len(text)),
		zap.Int("truncated_size", len(truncated)),
		zap.Int("max_size", s.maxBodySize))

	return truncated
}

// sanitizeUTF8 drops invalid UTF-8 sequences, keeping everything decodable.
func (s *Sanitizer) sanitizeUTF8(text string) string {
	if utf8.ValidString(text) {
		return text
	}

	result := make([]rune, 0, len(text))
	for i, r := range text {
		if r == utf8.RuneError {
			if _, size := utf8.DecodeRuneInString(text[i:]); size == 1 {
				continue
			}
		}
		result = append(result, r)
	}

	s.logger.Debug("Input sanitized",
		zap.Int("original_size", len(text)),
		zap.Int("sanitized_size", len(string(result))))

	return string(result)
}

// Snippet returns at most n runes of text for report previews.
func Snippet(text string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	return string(runes[:n])
}
