package config

import "time"

// ModelConfig locates the trained artifacts loaded at startup.
type ModelConfig struct {
	VectorizerPath string
	ClassifierPath string
}

// ServerConfig configures the HTTP API surface.
type ServerConfig struct {
	ListenAddress   string
	ShutdownTimeout time.Duration
}

// ScanConfig bounds a single scan invocation.
type ScanConfig struct {
	RateLimitInterval time.Duration
	MaxBodySize       int
	SnippetLength     int
}

// SessionConfig governs ephemeral session state.
type SessionConfig struct {
	TTL          time.Duration
	HistoryLimit int
}

// LookupConfig bounds the best-effort network lookups.
type LookupConfig struct {
	RedirectTimeout time.Duration
	WhoisTimeout    time.Duration
}

// GetModel returns the model artifact configuration
func (c *Config) GetModel() ModelConfig {
	return ModelConfig{
		VectorizerPath: c.GetString("model.vectorizer_path"),
		ClassifierPath: c.GetString("model.classifier_path"),
	}
}

// GetServer returns the server configuration
func (c *Config) GetServer() (ServerConfig, error) {
	shutdown, err := c.GetDuration("server.shutdown_timeout")
	if err != nil {
		return ServerConfig{}, err
	}
	return ServerConfig{
		ListenAddress:   c.GetString("server.listen_address"),
		ShutdownTimeout: shutdown,
	}, nil
}

// GetScan returns the per-scan configuration
func (c *Config) GetScan() (ScanConfig, error) {
	interval, err := c.GetDuration("scan.rate_limit_interval")
	if err != nil {
		return ScanConfig{}, err
	}
	return ScanConfig{
		RateLimitInterval: interval,
		MaxBodySize:       c.GetInt("scan.max_body_size"),
		SnippetLength:     c.GetInt("scan.snippet_length"),
	}, nil
}

// GetSession returns the session configuration
func (c *Config) GetSession() (SessionConfig, error) {
	ttl, err := c.GetDuration("session.ttl")
	if err != nil {
		return SessionConfig{}, err
	}
	return SessionConfig{
		TTL:          ttl,
		HistoryLimit: c.GetInt("session.history_limit"),
	}, nil
}

// GetLookup returns the external lookup configuration
func (c *Config) GetLookup() (LookupConfig, error) {
	redirect, err := c.GetDuration("lookup.redirect_timeout")
	if err != nil {
		return LookupConfig{}, err
	}
	whoisTimeout, err := c.GetDuration("lookup.whois_timeout")
	if err != nil {
		return LookupConfig{}, err
	}
	return LookupConfig{
		RedirectTimeout: redirect,
		WhoisTimeout:    whoisTimeout,
	}, nil
}
