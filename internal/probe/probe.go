// Package probe implements the container health probe: a single-purpose
// client that polls the app's /health endpoint and reports pass or fail.
package probe

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Gog2006/DevOps-project1/pkg/types"
)

// Options controls one probe run.
type Options struct {
	URL      string
	Timeout  time.Duration // per-attempt request timeout
	Interval time.Duration // pause between attempts
	Attempts int           // total attempts before giving up
}

// DefaultOptions returns the settings used by the container HEALTHCHECK.
func DefaultOptions(url string) Options {
	return Options{
		URL:      url,
		Timeout:  2 * time.Second,
		Interval: 1 * time.Second,
		Attempts: 3,
	}
}

// Check performs a single health request. It fails on transport errors,
// non-2xx responses, and bodies that do not report a healthy status.
func Check(ctx context.Context, opts Options) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, opts.URL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	client := &http.Client{Timeout: opts.Timeout}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", opts.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("health endpoint returned status %d", resp.StatusCode)
	}

	var body types.HealthResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	if body.Status != types.HealthStatusHealthy {
		return fmt.Errorf("unexpected health status %q", body.Status)
	}
	return nil
}

// Run retries Check up to opts.Attempts times, sleeping opts.Interval between
// attempts. It returns nil on the first success.
func Run(ctx context.Context, opts Options) error {
	if opts.Attempts < 1 {
		opts.Attempts = 1
	}
	var lastErr error
	for i := 0; i < opts.Attempts; i++ {
		if i > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(opts.Interval):
			}
		}
		if lastErr = Check(ctx, opts); lastErr == nil {
			return nil
		}
	}
	return fmt.Errorf("health probe failed after %d attempts: %w", opts.Attempts, lastErr)
}
