package arena

import (
	"net/http"
	"time"
)

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	timeout       time.Duration
	submitTimeout time.Duration
	userAgent     string
	httpClient    *http.Client
}

func defaultOptions() clientOptions {
	return clientOptions{
		timeout:       30 * time.Second,
		submitTimeout: 2 * time.Minute,
		userAgent:     "mlarena-go",
	}
}

// WithTimeout sets the HTTP timeout for status, leaderboard and
// competitions calls.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithSubmitTimeout sets the HTTP timeout for submissions. Uploads may
// carry moderately large files, so the default is two minutes.
func WithSubmitTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		if timeout > 0 {
			o.submitTimeout = timeout
		}
	}
}

// WithUserAgent sets a custom user agent string.
func WithUserAgent(userAgent string) Option {
	return func(o *clientOptions) {
		o.userAgent = userAgent
	}
}

// WithHTTPClient replaces the underlying HTTP client. Its timeout is left
// untouched, overriding both per-operation timeouts.
func WithHTTPClient(client *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = client
	}
}
