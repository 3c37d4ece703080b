package detectors

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/likexian/whois"
	whoisparser "github.com/likexian/whois-parser"
	"go.uber.org/zap"
	"golang.org/x/net/publicsuffix"

	"github.com/neuralshield/neuralshield/internal/core"
)

// whoisFetcher is the raw WHOIS transport, split out so tests can substitute
// a fake for the network client.
type whoisFetcher interface {
	Whois(domain string, servers ...string) (string, error)
}

// WhoisRegistrar performs best-effort domain-registration lookups. Timeouts
// and parse failures degrade to a non-Found status; nothing propagates to
// the scan.
type WhoisRegistrar struct {
	fetcher whoisFetcher
	logger  *zap.Logger
}

// NewWhoisRegistrar creates a registrar client with the given query timeout.
func NewWhoisRegistrar(timeout time.Duration, logger *zap.Logger) *WhoisRegistrar {
	client := whois.NewClient()
	client.SetTimeout(timeout)
	return &WhoisRegistrar{fetcher: client, logger: logger}
}

func newWhoisRegistrarWithFetcher(fetcher whoisFetcher, logger *zap.Logger) *WhoisRegistrar {
	return &WhoisRegistrar{fetcher: fetcher, logger: logger}
}

// Lookup queries WHOIS for the domain's registrable suffix (eTLD+1 when it
// can be derived, the raw host otherwise) and extracts registrar, creation
// date and organization when present.
func (w *WhoisRegistrar) Lookup(ctx context.Context, domain string) core.RegistrationInfo {
	if domain == "" {
		return core.RegistrationInfo{Status: core.LookupUnavailable}
	}

	query := domain
	if etld1, err := publicsuffix.EffectiveTLDPlusOne(domain); err == nil {
		query = etld1
	}

	raw, err := w.fetcher.Whois(query)
	if err != nil {
		status := core.LookupUnavailable
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() || errors.Is(err, context.DeadlineExceeded) {
			status = core.LookupTimedOut
		}
		w.logger.Warn("WHOIS lookup failed",
			zap.String("domain", query), zap.String("status", status.String()), zap.Error(err))
		return core.RegistrationInfo{Status: status, Domain: query}
	}

	parsed, err := whoisparser.Parse(raw)
	if err != nil {
		w.logger.Warn("WHOIS response unparseable",
			zap.String("domain", query), zap.Error(err))
		return core.RegistrationInfo{Status: core.LookupUnavailable, Domain: query}
	}

	info := core.RegistrationInfo{Status: core.LookupFound, Domain: query}
	if parsed.Registrar != nil {
		info.Registrar = parsed.Registrar.Name
	}
	if parsed.Domain != nil {
		info.CreatedDate = parsed.Domain.CreatedDate
	}
	if parsed.Registrant != nil {
		info.Organization = parsed.Registrant.Organization
	}
	return info
}
