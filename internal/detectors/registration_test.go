package detectors

import (
	"context"
	"errors"
	"net"
	"testing"

	"go.uber.org/zap"

	"github.com/neuralshield/neuralshield/internal/core"
)

const sampleWhois = `Domain Name: EXAMPLE.COM
Registry Domain ID: 2336799_DOMAIN_COM-VRSN
Registrar WHOIS Server: whois.example-registrar.com
Registrar URL: http://www.example-registrar.com
Updated Date: 2024-08-14T07:01:34Z
Creation Date: 1995-08-14T04:00:00Z
Registry Expiry Date: 2026-08-13T04:00:00Z
Registrar: Example Registrar, Inc.
Registrar IANA ID: 376
Domain Status: clientTransferProhibited https://icann.org/epp#clientTransferProhibited
Registrant Organization: Example Holdings Ltd
Name Server: A.IANA-SERVERS.NET
Name Server: B.IANA-SERVERS.NET
DNSSEC: signedDelegation
`

type fakeFetcher struct {
	raw     string
	err     error
	queried string
}

func (f *fakeFetcher) Whois(domain string, servers ...string) (string, error) {
	f.queried = domain
	return f.raw, f.err
}

func TestLookupParsesRecord(t *testing.T) {
	fetcher := &fakeFetcher{raw: sampleWhois}
	reg := newWhoisRegistrarWithFetcher(fetcher, zap.NewNop())

	info := reg.Lookup(context.Background(), "example.com")
	if info.Status != core.LookupFound {
		t.Fatalf("Status = %v, want %v", info.Status, core.LookupFound)
	}
	if info.Registrar != "Example Registrar, Inc." {
		t.Errorf("Registrar = %q, want %q", info.Registrar, "Example Registrar, Inc.")
	}
	if info.CreatedDate != "1995-08-14T04:00:00Z" {
		t.Errorf("CreatedDate = %q, want %q", info.CreatedDate, "1995-08-14T04:00:00Z")
	}
	if info.Organization != "Example Holdings Ltd" {
		t.Errorf("Organization = %q, want %q", info.Organization, "Example Holdings Ltd")
	}
}

func TestLookupQueriesRegistrableSuffix(t *testing.T) {
	fetcher := &fakeFetcher{raw: sampleWhois}
	reg := newWhoisRegistrarWithFetcher(fetcher, zap.NewNop())

	reg.Lookup(context.Background(), "mail.accounts.example.co.uk")
	if fetcher.queried != "example.co.uk" {
		t.Errorf("queried %q, want %q", fetcher.queried, "example.co.uk")
	}
}

func TestLookupTimeout(t *testing.T) {
	fetcher := &fakeFetcher{err: &net.DNSError{Err: "i/o timeout", IsTimeout: true}}
	reg := newWhoisRegistrarWithFetcher(fetcher, zap.NewNop())

	info := reg.Lookup(context.Background(), "example.com")
	if info.Status != core.LookupTimedOut {
		t.Errorf("Status = %v, want %v", info.Status, core.LookupTimedOut)
	}
}

func TestLookupTransportError(t *testing.T) {
	fetcher := &fakeFetcher{err: errors.New("connection refused")}
	reg := newWhoisRegistrarWithFetcher(fetcher, zap.NewNop())

	info := reg.Lookup(context.Background(), "example.com")
	if info.Status != core.LookupUnavailable {
		t.Errorf("Status = %v, want %v", info.Status, core.LookupUnavailable)
	}
}

func TestLookupUnparseableResponse(t *testing.T) {
	fetcher := &fakeFetcher{raw: `No match for domain "EXAMPLE.INVALID".`}
	reg := newWhoisRegistrarWithFetcher(fetcher, zap.NewNop())

	info := reg.Lookup(context.Background(), "example.invalid")
	if info.Status != core.LookupUnavailable {
		t.Errorf("Status = %v, want %v", info.Status, core.LookupUnavailable)
	}
}

func TestLookupEmptyDomain(t *testing.T) {
	fetcher := &fakeFetcher{raw: sampleWhois}
	reg := newWhoisRegistrarWithFetcher(fetcher, zap.NewNop())

	info := reg.Lookup(context.Background(), "")
	if info.Status != core.LookupUnavailable {
		t.Errorf("Status = %v, want %v", info.Status, core.LookupUnavailable)
	}
	if fetcher.queried != "" {
		t.Errorf("fetcher was queried with %q for empty domain", fetcher.queried)
	}
}
