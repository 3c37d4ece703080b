package detectors

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/neuralshield/neuralshield/internal/core"
)

func TestResolveFollowsRedirects(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/short":
			http.Redirect(w, r, "/landing", http.StatusFound)
		case "/landing":
			w.WriteHeader(http.StatusOK)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	resolver := NewHTTPRedirectResolver(2*time.Second, zap.NewNop())

	res := resolver.Resolve(context.Background(), srv.URL+"/short")
	if res.Status != core.LookupFound {
		t.Fatalf("Status = %v, want %v", res.Status, core.LookupFound)
	}
	if !res.Redirected {
		t.Error("Redirected = false, want true")
	}
	if !strings.HasSuffix(res.FinalURL, "/landing") {
		t.Errorf("FinalURL = %q, want suffix /landing", res.FinalURL)
	}
}

func TestResolveDirectLink(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	resolver := NewHTTPRedirectResolver(2*time.Second, zap.NewNop())

	res := resolver.Resolve(context.Background(), srv.URL+"/page")
	if res.Status != core.LookupFound {
		t.Fatalf("Status = %v, want %v", res.Status, core.LookupFound)
	}
	if res.Redirected {
		t.Errorf("Redirected = true for direct link, FinalURL = %q", res.FinalURL)
	}
}

func TestResolveTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer srv.Close()

	resolver := NewHTTPRedirectResolver(50*time.Millisecond, zap.NewNop())

	res := resolver.Resolve(context.Background(), srv.URL+"/slow")
	if res.Status != core.LookupTimedOut {
		t.Fatalf("Status = %v, want %v", res.Status, core.LookupTimedOut)
	}
	if res.FinalURL != "" || res.Redirected {
		t.Errorf("timed-out result carries data: %+v", res)
	}
}

func TestResolveMalformedURL(t *testing.T) {
	resolver := NewHTTPRedirectResolver(time.Second, zap.NewNop())

	res := resolver.Resolve(context.Background(), "://not-a-url")
	if res.Status != core.LookupUnavailable {
		t.Fatalf("Status = %v, want %v", res.Status, core.LookupUnavailable)
	}
}

func TestResolveConnectionRefused(t *testing.T) {
	// Reserve a port and release it so the dial fails fast.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	addr := srv.URL
	srv.Close()

	resolver := NewHTTPRedirectResolver(time.Second, zap.NewNop())

	res := resolver.Resolve(context.Background(), addr)
	if res.Status == core.LookupFound {
		t.Fatalf("Status = %v for unreachable host, want a failure status", res.Status)
	}
}
