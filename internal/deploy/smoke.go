package deploy

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

// smokeEndpoints are probed in order. Each gets a single request.
var smokeEndpoints = []string{"/", "/health", "/api/info"}

const smokeRequestTimeout = 5 * time.Second

// SmokeTest sends one GET to each endpoint and requires a 2xx answer. There
// are no retries: the app already passed readiness, so a failure here is a
// real defect, not a race.
func (o *Orchestrator) SmokeTest(ctx context.Context) error {
	client := &http.Client{Timeout: smokeRequestTimeout}
	for _, ep := range smokeEndpoints {
		url := o.baseURL() + ep
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return &EndpointUnreachableError{Endpoint: ep, Err: err}
		}
		resp, err := client.Do(req)
		if err != nil {
			return &EndpointUnreachableError{Endpoint: ep, Err: err}
		}
		resp.Body.Close()
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return &EndpointUnreachableError{Endpoint: ep, Err: fmt.Errorf("status %d", resp.StatusCode)}
		}
		log.Info().Str("endpoint", ep).Int("status", resp.StatusCode).Msg("smoke test passed")
	}
	log.Info().Int("endpoints", len(smokeEndpoints)).Msg("all smoke tests passed")
	return nil
}
