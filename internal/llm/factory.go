package llm

import (
	"fmt"

	"github.com/vytor/vocabflash/internal/config"
)

// NewFromConfig builds the provider selected by LLM_PROVIDER. Real providers
// come wrapped in a ResilientProvider.
func NewFromConfig(cfg config.Config) (Provider, error) {
	switch cfg.LLMProvider {
	case config.ProviderGemini:
		return NewResilientProvider(NewGeminiProvider(GeminiConfig{
			APIKey:  cfg.LLMAPIKey,
			BaseURL: cfg.LLMBaseURL,
			Model:   cfg.LLMModel,
			Timeout: cfg.LLMTimeout(),
		}), DefaultResilientConfig()), nil
	case config.ProviderOpenAI:
		return NewResilientProvider(NewOpenAIProvider(OpenAIConfig{
			APIKey:  cfg.LLMAPIKey,
			BaseURL: cfg.LLMBaseURL,
			Model:   cfg.LLMModel,
			Timeout: cfg.LLMTimeout(),
		}), DefaultResilientConfig()), nil
	case config.ProviderNone, "":
		return NewDisabledProvider(), nil
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.LLMProvider)
	}
}
