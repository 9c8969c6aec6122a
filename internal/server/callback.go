package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/resume-scorer/internal/logger"
)

// DefaultCallbackTimeout bounds one delivery attempt.
const DefaultCallbackTimeout = 10 * time.Second

// CallbackURL returns the default delivery URL for a résumé.
func CallbackURL(baseURL, resumeID string) string {
	return fmt.Sprintf("%s/api/resumes/%s/analysis", strings.TrimRight(baseURL, "/"), resumeID)
}

// Deliverer posts pipeline outcomes back to the caller.
type Deliverer struct {
	Client *http.Client
	Logger *zap.Logger
}

// NewDeliverer creates a deliverer with the given per-attempt timeout.
func NewDeliverer(timeout time.Duration, log *zap.Logger) *Deliverer {
	if timeout <= 0 {
		timeout = DefaultCallbackTimeout
	}
	return &Deliverer{Client: &http.Client{Timeout: timeout}, Logger: logger.OrNop(log)}
}

// Deliver POSTs payload as JSON to url. A 5xx response or transport failure
// is retried once.
func (d *Deliverer) Deliver(ctx context.Context, url string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal callback payload: %w", err)
	}

	var lastErr error
	for attempt := 1; attempt <= 2; attempt++ {
		retry, err := d.post(ctx, url, body)
		if err == nil {
			return nil
		}
		lastErr = err
		if !retry || ctx.Err() != nil {
			break
		}
		d.Logger.Warn("callback delivery failed, retrying",
			zap.String("url", url),
			zap.Int("attempt", attempt),
			zap.Error(err),
		)
	}
	return lastErr
}

// DeliverError posts {"error": message} to url.
func (d *Deliverer) DeliverError(ctx context.Context, url string, cause error) error {
	return d.Deliver(ctx, url, map[string]string{"error": cause.Error()})
}

// post performs one attempt and reports whether a failure may be retried.
func (d *Deliverer) post(ctx context.Context, url string, body []byte) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return false, fmt.Errorf("failed to create callback request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.Client.Do(req)
	if err != nil {
		return true, fmt.Errorf("callback request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

	switch {
	case resp.StatusCode >= 500:
		return true, fmt.Errorf("callback returned HTTP %d", resp.StatusCode)
	case resp.StatusCode >= 300:
		return false, fmt.Errorf("callback returned HTTP %d", resp.StatusCode)
	}
	return false, nil
}
