package detectors

// Fixed configuration tables for the heuristic detectors. These are loaded
// once and shared read-only across scans; order matters and is part of the
// detector contracts (first match wins for typosquatting, lexicon order is
// preserved for keyword findings).

// brandDomains is the brand-domain list the typosquat detector compares
// extracted domains against.
var brandDomains = []string{
	"google.com",
	"amazon.com",
	"facebook.com",
	"apple.com",
	"netflix.com",
	"paypal.com",
	"microsoft.com",
	"instagram.com",
	"whatsapp.com",
}

// trustedBrand pairs a brand name as it appears in email bodies with the
// domain official mail from that brand is sent from.
type trustedBrand struct {
	Brand          string
	OfficialDomain string
}

var trustedBrands = []trustedBrand{
	{"amazon", "amazon.com"},
	{"paypal", "paypal.com"},
	{"google", "google.com"},
	{"apple", "apple.com"},
	{"netflix", "netflix.com"},
	{"bank of america", "bankofamerica.com"},
}

// triggerLexicon is the suspicious-term lexicon. Findings are reported in
// this order, not in order of appearance in the text.
var triggerLexicon = []string{
	"urgent",
	"verify",
	"account",
	"bank",
	"suspended",
	"click here",
	"password",
	"reward",
	"lottery",
	"update",
}
