// Package generation is the boundary to the external generative-AI service.
// Everything above it sees one capability, Service.Invoke, which turns a
// schema-constrained Request into raw JSON text.
package generation

import (
	"context"

	"donorjourney/internal/types"

	"google.golang.org/genai"
)

// ResponseMIMEType is the output format every provider is asked for.
const ResponseMIMEType = "application/json"

// Request is a structured generation request: prompt text plus the exact
// output schema the service must honour.
type Request struct {
	Prompt string
	Schema *genai.Schema

	// Profile and Campaigns are the structured inputs the prompt was built
	// from, for providers that do not read natural language.
	Profile   types.DonorProfile
	Campaigns []types.Campaign
}

// Service invokes a generation backend. Implementations return the raw
// response text or a *ServiceError.
type Service interface {
	Invoke(ctx context.Context, req Request) (string, error)
}

// ServiceFunc adapts a function to Service. Tests use it as a deterministic stub.
type ServiceFunc func(ctx context.Context, req Request) (string, error)

// Invoke calls f.
func (f ServiceFunc) Invoke(ctx context.Context, req Request) (string, error) {
	return f(ctx, req)
}

// Provider names a generation backend.
type Provider string

const (
	ProviderGemini  Provider = "gemini"
	ProviderOffline Provider = "offline"
)
