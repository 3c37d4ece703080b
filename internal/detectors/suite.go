package detectors

import (
	"strings"
)

// Suite bundles the pure, in-process heuristic detectors. Each detector is
// independent and side-effect-free; a detector that cannot make sense of its
// input returns its zero finding instead of failing the scan.
type Suite struct{}

// NewSuite creates the detector suite.
func NewSuite() *Suite {
	return &Suite{}
}

// HostOf strips the scheme and path from a URL-shaped token, returning the
// host portion. Malformed input yields an empty string.
func (s *Suite) HostOf(rawURL string) string {
	rest := rawURL
	if i := strings.LastIndex(rest, "//"); i >= 0 {
		rest = rest[i+2:]
	}
	if i := strings.IndexByte(rest, '/'); i >= 0 {
		rest = rest[:i]
	}
	return rest
}
