// Package httputil provides HTTP client utilities with standard configurations.
package httputil

import (
	"net/http"
	"time"
)

const (
	// Default timeout for HTTP requests
	defaultTimeout = 30 * time.Second

	// Transport configuration constants
	maxIdleConns        = 10
	maxIdleConnsPerHost = 2
	idleConnTimeout     = 30 * time.Second
)

// NewHTTPClient creates a new HTTP client with the specified timeout.
// The client is configured with connection pooling and idle connection management.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: newTransport(),
	}
}

// NewDefaultHTTPClient creates a new HTTP client with default 30 second timeout.
// This is suitable for most API calls and web requests.
func NewDefaultHTTPClient() *http.Client {
	return NewHTTPClient(defaultTimeout)
}

// NewHeaderClient creates a client that attaches the given headers to every
// outgoing request. Headers already present on a request are not overwritten.
func NewHeaderClient(timeout time.Duration, headers map[string]string) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &headerTransport{
			headers: headers,
			base:    newTransport(),
		},
	}
}

func newTransport() *http.Transport {
	return &http.Transport{
		MaxIdleConns:        maxIdleConns,
		MaxIdleConnsPerHost: maxIdleConnsPerHost,
		IdleConnTimeout:     idleConnTimeout,
	}
}

type headerTransport struct {
	headers map[string]string
	base    http.RoundTripper
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// RoundTrippers must not mutate the original request.
	clone := req.Clone(req.Context())
	for name, value := range t.headers {
		if clone.Header.Get(name) == "" {
			clone.Header.Set(name, value)
		}
	}
	return t.base.RoundTrip(clone)
}
