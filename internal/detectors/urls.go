package detectors

import (
	"regexp"
)

var (
	urlPattern = regexp.MustCompile(`https?://\S+|www\.\S+`)

	// ipPattern accepts any dotted quad of 1-3 digit groups. Octet ranges are
	// deliberately not validated: this is pattern-level extraction, an
	// intentional over-approximation, so 999.1.1.1 is reported as an IP-shaped
	// token for the analyst to judge.
	ipPattern = regexp.MustCompile(`\b(?:[0-9]{1,3}\.){3}[0-9]{1,3}\b`)
)

// ExtractURLs returns all http(s):// and www.-prefixed tokens in order of
// first appearance.
func (s *Suite) ExtractURLs(text string) []string {
	return urlPattern.FindAllString(text, -1)
}

// ExtractIPs returns all dotted-quad tokens in order of first appearance.
func (s *Suite) ExtractIPs(text string) []string {
	return ipPattern.FindAllString(text, -1)
}
