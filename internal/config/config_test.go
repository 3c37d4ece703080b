package config

import (
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	cfg := NewFromViper(NewEmptyViper())

	mc := cfg.GetModel()
	if mc.VectorizerPath != "models/vectorizer.json" || mc.ClassifierPath != "models/classifier.json" {
		t.Errorf("model defaults = %+v", mc)
	}

	sc, err := cfg.GetScan()
	if err != nil {
		t.Fatalf("GetScan() error = %v", err)
	}
	if sc.RateLimitInterval != 2*time.Second {
		t.Errorf("RateLimitInterval = %v, want 2s", sc.RateLimitInterval)
	}
	if sc.MaxBodySize != 65536 || sc.SnippetLength != 300 {
		t.Errorf("scan defaults = %+v", sc)
	}

	sess, err := cfg.GetSession()
	if err != nil {
		t.Fatalf("GetSession() error = %v", err)
	}
	if sess.TTL != 30*time.Minute || sess.HistoryLimit != 50 {
		t.Errorf("session defaults = %+v", sess)
	}

	lc, err := cfg.GetLookup()
	if err != nil {
		t.Fatalf("GetLookup() error = %v", err)
	}
	if lc.RedirectTimeout != 5*time.Second || lc.WhoisTimeout != 10*time.Second {
		t.Errorf("lookup defaults = %+v", lc)
	}

	if cfg.GetString("cache.type") != "memory" || !cfg.GetBool("cache.enabled") {
		t.Error("cache defaults wrong")
	}
	if cfg.GetString("feedback.type") != "csv" {
		t.Errorf("feedback.type = %q, want csv", cfg.GetString("feedback.type"))
	}
}

func TestGetDurationInvalid(t *testing.T) {
	v := NewEmptyViper()
	v.Set("scan.rate_limit_interval", "not-a-duration")
	cfg := NewFromViper(v)

	if _, err := cfg.GetScan(); err == nil {
		t.Error("GetScan() with invalid duration: expected error, got nil")
	}
}

func TestOverride(t *testing.T) {
	v := NewEmptyViper()
	v.Set("server.listen_address", "127.0.0.1:9999")
	cfg := NewFromViper(v)

	srv, err := cfg.GetServer()
	if err != nil {
		t.Fatalf("GetServer() error = %v", err)
	}
	if srv.ListenAddress != "127.0.0.1:9999" {
		t.Errorf("ListenAddress = %q, want override", srv.ListenAddress)
	}
}
