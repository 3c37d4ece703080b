package detectors

import (
	"strings"

	"github.com/neuralshield/neuralshield/internal/core"
)

// CheckSenderMismatch reports, for every brand in the trusted table whose
// name appears in the body, a warning when the brand's official domain is
// not a substring of the sender's domain. The sender domain is the lowered
// text after the last '@'; a sender without '@' has an empty domain and
// therefore mismatches every mentioned brand.
func (s *Suite) CheckSenderMismatch(body, sender string) []core.MismatchWarning {
	senderDomain := ""
	if i := strings.LastIndexByte(sender, '@'); i >= 0 {
		senderDomain = strings.ToLower(sender[i+1:])
	}

	loweredBody := strings.ToLower(body)
	var warnings []core.MismatchWarning
	for _, tb := range trustedBrands {
		if !strings.Contains(loweredBody, tb.Brand) {
			continue
		}
		if strings.Contains(senderDomain, tb.OfficialDomain) {
			continue
		}
		warnings = append(warnings, core.MismatchWarning{
			Brand:          tb.Brand,
			OfficialDomain: tb.OfficialDomain,
			SenderDomain:   senderDomain,
		})
	}
	return warnings
}
