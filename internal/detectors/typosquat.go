package detectors

import (
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/neuralshield/neuralshield/internal/core"
)

// CheckTyposquat compares the URL's domain against the brand-domain table
// and reports the first brand whose similarity lies strictly between 0.80
// and 1.0. Similarity of exactly 1.0 is an identical domain, not spoofing,
// and never alerts; 0.80 exactly is below the open lower bound.
func (s *Suite) CheckTyposquat(rawURL string) *core.TyposquatAlert {
	domain := strings.TrimPrefix(s.HostOf(rawURL), "www.")
	if domain == "" {
		return nil
	}
	for _, brand := range brandDomains {
		sim := similarity(domain, brand)
		if sim > 0.80 && sim < 1.0 {
			return &core.TyposquatAlert{
				Domain:     domain,
				Brand:      brand,
				Similarity: sim,
			}
		}
	}
	return nil
}

// similarity is an edit-distance ratio in [0, 1]: 1 minus the levenshtein
// distance normalized by the longer string.
func similarity(a, b string) float64 {
	longest := len([]rune(a))
	if l := len([]rune(b)); l > longest {
		longest = l
	}
	if longest == 0 {
		return 1.0
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1.0 - float64(dist)/float64(longest)
}
