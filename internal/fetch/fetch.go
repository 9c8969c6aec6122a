// Package fetch downloads uploaded résumé documents and turns résumé HTML
// into line-structured text.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Download limits.
const (
	DefaultTimeout  = 30 * time.Second
	DefaultMaxBytes = 10 << 20
)

// DefaultUserAgent identifies the service to document storage.
const DefaultUserAgent = "resume-scorer/1.0"

// Error reports a failed document retrieval.
type Error struct {
	URL     string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("fetch error for %s: %s", e.URL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Options configures a download. Zero fields take the package defaults.
type Options struct {
	Timeout   time.Duration
	MaxBytes  int64
	UserAgent string
	Headers   map[string]string
	Client    *http.Client
}

func (o *Options) withDefaults() Options {
	var out Options
	if o != nil {
		out = *o
	}
	if out.Timeout <= 0 {
		out.Timeout = DefaultTimeout
	}
	if out.MaxBytes <= 0 {
		out.MaxBytes = DefaultMaxBytes
	}
	if out.UserAgent == "" {
		out.UserAgent = DefaultUserAgent
	}
	if out.Client == nil {
		out.Client = &http.Client{Timeout: out.Timeout}
	}
	return out
}

// Download is a retrieved document.
type Download struct {
	URL         string
	Body        []byte
	ContentType string
}

// Get downloads the document at rawURL. Any non-2xx status is an error, as
// is a body larger than MaxBytes.
func Get(ctx context.Context, rawURL string, opts *Options) (*Download, error) {
	o := opts.withDefaults()

	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, &Error{URL: rawURL, Message: "invalid URL", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &Error{URL: rawURL, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("User-Agent", o.UserAgent)
	for key, value := range o.Headers {
		req.Header.Set(key, value)
	}

	resp, err := o.Client.Do(req)
	if err != nil {
		return nil, &Error{URL: rawURL, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &Error{URL: rawURL, Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, o.MaxBytes+1))
	if err != nil {
		return nil, &Error{URL: rawURL, Message: "failed to read response body", Cause: err}
	}
	if int64(len(body)) > o.MaxBytes {
		return nil, &Error{URL: rawURL, Message: fmt.Sprintf("document exceeds %d bytes", o.MaxBytes)}
	}

	return &Download{
		URL:         rawURL,
		Body:        body,
		ContentType: resp.Header.Get("Content-Type"),
	}, nil
}
