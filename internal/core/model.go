package core

import (
	"time"
)

// Email represents the raw input handed to the engine: the message body and
// an optional sender address. Both are sanitized before any further use.
type Email struct {
	Body   string
	Sender string
}

// Label is the two-class verdict. The numeric values match the training
// corpus labels (0 = safe, 1 = phishing) and the tie-break rule: equal
// posteriors resolve to the lower value.
type Label int

const (
	LabelSafe     Label = 0
	LabelPhishing Label = 1
)

// String returns the display form used by report consumers.
func (l Label) String() string {
	if l == LabelPhishing {
		return "PHISHING"
	}
	return "SAFE"
}

// Prediction is the classifier output. Confidence is the posterior
// probability of the predicted class and therefore lies in [0.5, 1.0].
// Posterior holds both class probabilities, indexed by Label.
type Prediction struct {
	Label      Label
	Confidence float64
	Posterior  [2]float64
}

// LookupStatus describes the outcome of a best-effort external lookup.
// Missing data is always explicit, never a fabricated default.
type LookupStatus int

const (
	LookupFound LookupStatus = iota
	LookupUnavailable
	LookupTimedOut
)

func (s LookupStatus) String() string {
	switch s {
	case LookupFound:
		return "found"
	case LookupTimedOut:
		return "timed_out"
	default:
		return "unavailable"
	}
}

// TyposquatAlert reports a domain whose similarity to a known brand domain
// falls strictly between 0.80 and 1.0.
type TyposquatAlert struct {
	Domain     string  `json:"domain"`
	Brand      string  `json:"brand"`
	Similarity float64 `json:"similarity"`
}

// MismatchWarning reports a brand mentioned in the body whose official
// domain does not appear in the sender's domain.
type MismatchWarning struct {
	Brand          string `json:"brand"`
	OfficialDomain string `json:"official_domain"`
	SenderDomain   string `json:"sender_domain"`
}

// RedirectResult is the outcome of resolving the first extracted URL.
// Redirected is true when the final URL differs from the requested one.
type RedirectResult struct {
	Status     LookupStatus `json:"status"`
	FinalURL   string       `json:"final_url,omitempty"`
	Redirected bool         `json:"redirected"`
}

// RegistrationInfo is the outcome of a WHOIS lookup on the first extracted
// URL's domain. Fields may be empty even when Status is LookupFound; WHOIS
// servers omit data freely.
type RegistrationInfo struct {
	Status       LookupStatus `json:"status"`
	Domain       string       `json:"domain,omitempty"`
	Registrar    string       `json:"registrar,omitempty"`
	CreatedDate  string       `json:"created_date,omitempty"`
	Organization string       `json:"organization,omitempty"`
}

// Report is the engine's sole contract with rendering collaborators
// (dashboard, PDF, word cloud). It makes no assumption about the target.
type Report struct {
	ScanID       string            `json:"scan_id"`
	Label        Label             `json:"-"`
	Verdict      string            `json:"verdict"`
	Confidence   float64           `json:"confidence"`
	Posterior    [2]float64        `json:"posterior"`
	Sender       string            `json:"sender,omitempty"`
	Snippet      string            `json:"snippet"`
	URLs         []string          `json:"urls,omitempty"`
	IPs          []string          `json:"ips,omitempty"`
	Keywords     []string          `json:"keywords,omitempty"`
	Typosquat    *TyposquatAlert   `json:"typosquat,omitempty"`
	Mismatches   []MismatchWarning `json:"mismatches,omitempty"`
	Redirect     *RedirectResult   `json:"redirect,omitempty"`
	Registration *RegistrationInfo `json:"registration,omitempty"`
	ModelVersion string            `json:"model_version"`
	AnalyzedAt   time.Time         `json:"analyzed_at"`
}

// ScanRecord is one entry of a session's rolling history, newest first.
type ScanRecord struct {
	Sender     string    `json:"sender"`
	Verdict    string    `json:"verdict"`
	Confidence string    `json:"confidence"`
	ScannedAt  time.Time `json:"scanned_at"`
}

// SessionStats are the per-session counters. Phishing + Safe == Total holds
// after any sequence of completed scans.
type SessionStats struct {
	TotalScans    int `json:"total_scans"`
	PhishingCount int `json:"phishing_count"`
	SafeCount     int `json:"safe_count"`
}

// FeedbackEntry is one user correction destined for the training collaborator.
type FeedbackEntry struct {
	Text      string
	Label     string
	CreatedAt time.Time
}

// CachedVerdict is a previously computed classifier verdict, keyed by a hash
// of the sanitized body and sender. Heuristic findings are not cached; they
// depend on external lookups that may change between scans.
type CachedVerdict struct {
	Key        string
	Label      Label
	Confidence float64
	Posterior  [2]float64
	AnalyzedAt time.Time
	ExpiresAt  time.Time
}
