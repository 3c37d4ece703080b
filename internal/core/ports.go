package core

import (
	"context"
	"time"
)

// Normalizer turns raw text into the stemmed token stream the model was
// trained on. Must be pure.
type Normalizer interface {
	Normalize(text string) string
}

// Model is the inference contract over the trained artifact: vectorize the
// normalized text and return the two-class prediction. Implementations are
// immutable after load and safe for concurrent use.
type Model interface {
	Predict(normalized string) Prediction
	Version() string
}

// HeuristicAnalyzer bundles the in-process heuristic detectors. Every method
// is side-effect-free and failure-isolated: malformed input yields a zero
// finding, never an error.
type HeuristicAnalyzer interface {
	ExtractURLs(text string) []string
	ExtractIPs(text string) []string
	CheckTyposquat(rawURL string) *TyposquatAlert
	CheckSenderMismatch(body, sender string) []MismatchWarning
	FindTriggerKeywords(body string) []string
	HostOf(rawURL string) string
}

// RedirectResolver resolves where a URL ultimately lands after following
// redirects. Implementations are best-effort and must map failures to a
// non-Found status rather than returning an error to the scan.
type RedirectResolver interface {
	Resolve(ctx context.Context, rawURL string) RedirectResult
}

// RegistrarClient performs a domain-registration (WHOIS) lookup.
type RegistrarClient interface {
	Lookup(ctx context.Context, domain string) RegistrationInfo
}

// SessionTracker owns session counters and history. Commit must be atomic
// per scan.
type SessionTracker interface {
	Commit(sessionID string, label Label, rec ScanRecord)
}

// RateGate decides whether a session may scan now. A rejected request must
// not consume anything.
type RateGate interface {
	Allow(sessionID string) bool
}

// InputSanitizer escapes and bounds raw input before it reaches the engine.
type InputSanitizer interface {
	Sanitize(text string) string
}

// FeedbackStore appends user corrections for the training collaborator.
// The backing file or table is created on first write.
type FeedbackStore interface {
	Append(ctx context.Context, entry FeedbackEntry) error
}

// VerdictCache stores classifier verdicts keyed by content hash.
type VerdictCache interface {
	Get(ctx context.Context, key string) (*CachedVerdict, bool)
	Set(ctx context.Context, verdict *CachedVerdict) error
}

// ScanMetrics receives scan observability events.
type ScanMetrics interface {
	ObserveScan(label string, d time.Duration)
	IncRateLimited()
	IncLookupFailure(detector string)
}
