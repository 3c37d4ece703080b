package detectors

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/neuralshield/neuralshield/internal/core"
)

// HTTPRedirectResolver resolves a URL's final destination with a header-only
// request that follows redirects. It is best-effort: every failure mode,
// including timeout, degrades to a non-Found status and is logged.
type HTTPRedirectResolver struct {
	client *http.Client
	logger *zap.Logger
}

// NewHTTPRedirectResolver creates a resolver bounded by timeout.
func NewHTTPRedirectResolver(timeout time.Duration, logger *zap.Logger) *HTTPRedirectResolver {
	return &HTTPRedirectResolver{
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}
}

// Resolve issues a HEAD request for rawURL and reports where it landed.
func (r *HTTPRedirectResolver) Resolve(ctx context.Context, rawURL string) core.RedirectResult {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, rawURL, nil)
	if err != nil {
		r.logger.Debug("Redirect resolution skipped, malformed URL",
			zap.String("url", rawURL), zap.Error(err))
		return core.RedirectResult{Status: core.LookupUnavailable}
	}

	resp, err := r.client.Do(req)
	if err != nil {
		status := core.LookupUnavailable
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() || errors.Is(err, context.DeadlineExceeded) {
			status = core.LookupTimedOut
		}
		r.logger.Warn("Redirect resolution failed",
			zap.String("url", rawURL), zap.String("status", status.String()), zap.Error(err))
		return core.RedirectResult{Status: status}
	}
	defer resp.Body.Close()

	final := resp.Request.URL.String()
	return core.RedirectResult{
		Status:     core.LookupFound,
		FinalURL:   final,
		Redirected: final != rawURL,
	}
}
