package detectors

import (
	"reflect"
	"testing"
)

func TestExtractURLs(t *testing.T) {
	s := NewSuite()

	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "http and https",
			text:     "visit http://example.com and https://secure.example.com/login",
			expected: []string{"http://example.com", "https://secure.example.com/login"},
		},
		{
			name:     "www prefix without scheme",
			text:     "go to www.example.com today",
			expected: []string{"www.example.com"},
		},
		{
			name:     "order of appearance",
			text:     "www.b.com then http://a.com",
			expected: []string{"www.b.com", "http://a.com"},
		},
		{
			name:     "no urls",
			text:     "plain text with no links at all",
			expected: nil,
		},
		{
			name:     "url with query and fragment",
			text:     "click http://evil.example/path?a=1&b=2#frag now",
			expected: []string{"http://evil.example/path?a=1&b=2#frag"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.ExtractURLs(tt.text)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("ExtractURLs(%q) = %v, want %v", tt.text, got, tt.expected)
			}
		})
	}
}

func TestExtractIPs(t *testing.T) {
	s := NewSuite()

	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "single address",
			text:     "connect to 192.168.1.10 now",
			expected: []string{"192.168.1.10"},
		},
		{
			name:     "multiple addresses in order",
			text:     "from 10.0.0.1 to 172.16.0.254",
			expected: []string{"10.0.0.1", "172.16.0.254"},
		},
		{
			name:     "out of range octets still match",
			text:     "host 999.999.999.999 responded",
			expected: []string{"999.999.999.999"},
		},
		{
			name:     "embedded in url",
			text:     "login at http://203.0.113.7/verify",
			expected: []string{"203.0.113.7"},
		},
		{
			name:     "version strings with extra groups do not match standalone",
			text:     "no addresses here, just words",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.ExtractIPs(tt.text)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("ExtractIPs(%q) = %v, want %v", tt.text, got, tt.expected)
			}
		})
	}
}

func TestHostOf(t *testing.T) {
	s := NewSuite()

	tests := []struct {
		rawURL   string
		expected string
	}{
		{"http://example.com/path", "example.com"},
		{"https://sub.example.com", "sub.example.com"},
		{"www.example.com/login", "www.example.com"},
		{"https://example.com:8080/x", "example.com:8080"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := s.HostOf(tt.rawURL); got != tt.expected {
			t.Errorf("HostOf(%q) = %q, want %q", tt.rawURL, got, tt.expected)
		}
	}
}
