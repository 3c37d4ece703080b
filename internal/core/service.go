package core

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrEmptyBody rejects a scan whose body is empty or whitespace.
	ErrEmptyBody = errors.New("email body is empty")
	// ErrRateLimited rejects a scan arriving before the session cooldown elapsed.
	ErrRateLimited = errors.New("rate limit exceeded")
	// ErrInvalidLabel rejects feedback with a label outside the two classes.
	ErrInvalidLabel = errors.New("feedback label must be Safe or Phishing")
)

// ScanOptions are the scalar knobs of the scan service.
type ScanOptions struct {
	CacheEnabled  bool
	CacheTTL      time.Duration
	SnippetLength int
}

// ScanService is the engine entry point: it runs the classifier pipeline and
// the heuristic detectors over one email and aggregates everything into a
// Report. Rejected input (empty body, cooldown) mutates no state at all.
type ScanService struct {
	normalizer Normalizer
	model      Model
	heuristics HeuristicAnalyzer
	redirects  RedirectResolver
	registrar  RegistrarClient
	sessions   SessionTracker
	limiter    RateGate
	sanitizer  InputSanitizer
	cache      VerdictCache
	feedback   FeedbackStore
	metrics    ScanMetrics
	logger     *zap.Logger
	opts       ScanOptions

	snippet func(text string, n int) string
}

// NewScanService wires the scan pipeline.
func NewScanService(
	normalizer Normalizer,
	model Model,
	heuristics HeuristicAnalyzer,
	redirects RedirectResolver,
	registrar RegistrarClient,
	sessions SessionTracker,
	limiter RateGate,
	sanitizer InputSanitizer,
	cache VerdictCache,
	feedback FeedbackStore,
	metrics ScanMetrics,
	logger *zap.Logger,
	opts ScanOptions,
	snippet func(text string, n int) string,
) *ScanService {
	return &ScanService{
		normalizer: normalizer,
		model:      model,
		heuristics: heuristics,
		redirects:  redirects,
		registrar:  registrar,
		sessions:   sessions,
		limiter:    limiter,
		sanitizer:  sanitizer,
		cache:      cache,
		feedback:   feedback,
		metrics:    metrics,
		logger:     logger,
		opts:       opts,
		snippet:    snippet,
	}
}

// Scan analyzes one email for sessionID. It returns ErrEmptyBody or
// ErrRateLimited for rejected input; otherwise it always completes with a
// Report, degrading external lookups to explicit non-Found results.
func (s *ScanService) Scan(ctx context.Context, sessionID string, email Email) (*Report, error) {
	if strings.TrimSpace(email.Body) == "" {
		return nil, ErrEmptyBody
	}
	if !s.limiter.Allow(sessionID) {
		s.metrics.IncRateLimited()
		s.logger.Info("Scan rejected by cooldown", zap.String("session", sessionID))
		return nil, ErrRateLimited
	}

	start := time.Now()
	body := s.sanitizer.Sanitize(email.Body)
	sender := s.sanitizer.Sanitize(email.Sender)

	pred := s.classify(ctx, body, sender)

	report := &Report{
		ScanID:       uuid.NewString(),
		Label:        pred.Label,
		Verdict:      pred.Label.String(),
		Confidence:   pred.Confidence,
		Posterior:    pred.Posterior,
		Sender:       sender,
		Snippet:      s.snippet(body, s.opts.SnippetLength),
		URLs:         s.heuristics.ExtractURLs(body),
		IPs:          s.heuristics.ExtractIPs(body),
		Keywords:     s.heuristics.FindTriggerKeywords(body),
		ModelVersion: s.model.Version(),
		AnalyzedAt:   start,
	}
	if sender != "" {
		report.Mismatches = s.heuristics.CheckSenderMismatch(body, sender)
	}

	if len(report.URLs) > 0 {
		s.analyzeFirstURL(ctx, report)
	}

	s.commit(sessionID, report)
	s.metrics.ObserveScan(report.Verdict, time.Since(start))
	s.logger.Info("Scan completed",
		zap.String("scan_id", report.ScanID),
		zap.String("session", sessionID),
		zap.String("verdict", report.Verdict),
		zap.Float64("confidence", report.Confidence),
		zap.Int("urls", len(report.URLs)),
		zap.Duration("elapsed", time.Since(start)))
	return report, nil
}

// classify runs the normalize-vectorize-predict pipeline, consulting the
// verdict cache when enabled. Findings are never cached, only the verdict.
func (s *ScanService) classify(ctx context.Context, body, sender string) Prediction {
	key := verdictKey(body, sender)
	if s.opts.CacheEnabled && s.cache != nil {
		if v, ok := s.cache.Get(ctx, key); ok {
			s.logger.Debug("Verdict cache hit", zap.String("key", key))
			return Prediction{Label: v.Label, Confidence: v.Confidence, Posterior: v.Posterior}
		}
	}

	pred := s.model.Predict(s.normalizer.Normalize(body))

	if s.opts.CacheEnabled && s.cache != nil {
		now := time.Now()
		err := s.cache.Set(ctx, &CachedVerdict{
			Key:        key,
			Label:      pred.Label,
			Confidence: pred.Confidence,
			Posterior:  pred.Posterior,
			AnalyzedAt: now,
			ExpiresAt:  now.Add(s.opts.CacheTTL),
		})
		if err != nil {
			s.logger.Error("Failed to update verdict cache", zap.Error(err))
		}
	}
	return pred
}

// analyzeFirstURL runs the three URL-scoped detectors against the first
// extracted URL. The two network lookups run concurrently; the scan never
// fails on their account.
func (s *ScanService) analyzeFirstURL(ctx context.Context, report *Report) {
	first := report.URLs[0]
	report.Typosquat = s.heuristics.CheckTyposquat(first)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		res := s.redirects.Resolve(ctx, first)
		if res.Status != LookupFound {
			s.metrics.IncLookupFailure("redirect")
		}
		report.Redirect = &res
	}()
	go func() {
		defer wg.Done()
		info := s.registrar.Lookup(ctx, s.heuristics.HostOf(first))
		if info.Status != LookupFound {
			s.metrics.IncLookupFailure("registration")
		}
		report.Registration = &info
	}()
	wg.Wait()
}

// commit is the single state mutation of a completed scan.
func (s *ScanService) commit(sessionID string, report *Report) {
	sender := report.Sender
	if sender == "" {
		sender = "Unknown Sender"
	}
	s.sessions.Commit(sessionID, report.Label, ScanRecord{
		Sender:     sender,
		Verdict:    report.Verdict,
		Confidence: fmt.Sprintf("%.1f%%", report.Confidence*100),
		ScannedAt:  report.AnalyzedAt,
	})
}

// RecordFeedback appends one user correction to the feedback sink.
func (s *ScanService) RecordFeedback(ctx context.Context, text, label string) error {
	if label != "Safe" && label != "Phishing" {
		return ErrInvalidLabel
	}
	entry := FeedbackEntry{
		Text:      s.sanitizer.Sanitize(text),
		Label:     label,
		CreatedAt: time.Now(),
	}
	if err := s.feedback.Append(ctx, entry); err != nil {
		return fmt.Errorf("failed to record feedback: %w", err)
	}
	return nil
}

// verdictKey hashes the sanitized body and sender into a cache key.
func verdictKey(body, sender string) string {
	h := sha256.New()
	h.Write([]byte(body))
	h.Write([]byte{0})
	h.Write([]byte(sender))
	return hex.EncodeToString(h.Sum(nil))
}
