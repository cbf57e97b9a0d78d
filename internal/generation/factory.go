package generation

import (
	"context"
	"fmt"

	"donorjourney/internal/config"
	"donorjourney/internal/logging"
)

// NewService builds the configured provider wrapped in a TracingService.
func NewService(ctx context.Context, cfg *config.Config) (Service, error) {
	var (
		svc Service
		err error
	)

	switch Provider(cfg.LLM.Provider) {
	case ProviderGemini:
		svc, err = NewGeminiService(ctx, GeminiConfig{
			APIKey:      cfg.LLM.APIKey,
			Model:       cfg.LLM.Model,
			BaseURL:     cfg.LLM.BaseURL,
			Timeout:     cfg.GetLLMTimeout(),
			Temperature: cfg.LLM.Temperature,
		})
		if err != nil {
			return nil, err
		}
	case ProviderOffline:
		svc = NewOfflineService()
	default:
		return nil, fmt.Errorf("unsupported provider: %s", cfg.LLM.Provider)
	}

	logging.Boot("Generation provider: %s (model=%s)", cfg.LLM.Provider, cfg.LLM.Model)
	return NewTracingService(svc, cfg.LLM.Provider), nil
}
