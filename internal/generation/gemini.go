package generation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"donorjourney/internal/logging"

	"google.golang.org/genai"
)

// =============================================================================
// GOOGLE GENAI GENERATION SERVICE
// =============================================================================

// DefaultGeminiModel is the model the original prototype targeted.
const DefaultGeminiModel = "gemini-2.5-flash"

// GeminiConfig holds configuration for the Gemini service.
type GeminiConfig struct {
	APIKey      string
	Model       string
	BaseURL     string        // optional endpoint override (tests, proxies)
	Timeout     time.Duration // per request; zero means no client-side limit
	Temperature float32
}

// GeminiService generates journeys with Gemini's schema-constrained JSON output.
type GeminiService struct {
	client      *genai.Client
	model       string
	temperature float32
}

// NewGeminiService creates a Gemini-backed Service.
func NewGeminiService(ctx context.Context, cfg GeminiConfig) (*GeminiService, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("Gemini API key is required")
	}

	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = DefaultGeminiModel
	}

	cc := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions.BaseURL = cfg.BaseURL
	}
	if cfg.Timeout > 0 {
		timeout := cfg.Timeout
		cc.HTTPOptions.Timeout = &timeout
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &GeminiService{
		client:      client,
		model:       model,
		temperature: cfg.Temperature,
	}, nil
}

// Model returns the configured model name.
func (s *GeminiService) Model() string {
	return s.model
}

// Invoke sends the prompt with the response schema and returns the JSON text.
func (s *GeminiService) Invoke(ctx context.Context, req Request) (string, error) {
	config := &genai.GenerateContentConfig{
		ResponseMIMEType: ResponseMIMEType,
		ResponseSchema:   req.Schema,
	}
	if s.temperature > 0 {
		config.Temperature = genai.Ptr(s.temperature)
	}

	resp, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(req.Prompt), config)
	if err != nil {
		return "", wrapServiceError(ProviderGemini, fmt.Errorf("generate content: %w", err))
	}

	if resp.UsageMetadata != nil {
		logging.APIDebug("Gemini usage: prompt=%d candidates=%d total=%d",
			resp.UsageMetadata.PromptTokenCount,
			resp.UsageMetadata.CandidatesTokenCount,
			resp.UsageMetadata.TotalTokenCount)
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
			return "", &ServiceError{
				Provider: ProviderGemini,
				Status:   string(resp.PromptFeedback.BlockReason),
				Err:      fmt.Errorf("prompt blocked: %w", ErrEmptyResponse),
			}
		}
		return "", &ServiceError{Provider: ProviderGemini, Err: ErrEmptyResponse}
	}
	return text, nil
}
