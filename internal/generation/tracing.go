package generation

import (
	"context"
	"time"

	"donorjourney/internal/logging"
)

// TracingService wraps any Service and logs each invocation's size, duration
// and outcome to the api category.
type TracingService struct {
	underlying Service
	name       string
	now        func() time.Time
}

// NewTracingService creates a tracing wrapper around an existing Service.
func NewTracingService(underlying Service, name string) *TracingService {
	return &TracingService{underlying: underlying, name: name, now: time.Now}
}

// Invoke implements Service with tracing.
func (tc *TracingService) Invoke(ctx context.Context, req Request) (string, error) {
	start := tc.now()
	logging.API("Generation call started: provider=%s prompt_len=%d campaigns=%d",
		tc.name, len(req.Prompt), len(req.Campaigns))

	out, err := tc.underlying.Invoke(ctx, req)

	elapsed := tc.now().Sub(start)
	if err != nil {
		logging.APIError("Generation call failed: provider=%s duration=%s err=%v", tc.name, elapsed, err)
		return "", err
	}
	logging.API("Generation call completed: provider=%s duration=%s response_len=%d", tc.name, elapsed, len(out))
	return out, nil
}
