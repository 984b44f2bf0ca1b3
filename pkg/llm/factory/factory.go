package factory

import (
	"fmt"
	"time"

	"github.com/AHAD2911/AI-Powered-Survey-Platform/pkg/llm"
	"github.com/AHAD2911/AI-Powered-Survey-Platform/pkg/llm/gemini"
	"github.com/AHAD2911/AI-Powered-Survey-Platform/pkg/llm/huggingface"
	"github.com/AHAD2911/AI-Powered-Survey-Platform/pkg/llm/ollama"
	"github.com/AHAD2911/AI-Powered-Survey-Platform/pkg/llm/openai"
)

type ProviderConfig struct {
	Provider string
	Model    string
	BaseURL  string
	APIKey   string
	Timeout  time.Duration
}

func NewLLMProvider(cfg ProviderConfig) (llm.LLMProvider, error) {
	switch cfg.Provider {
	case "gemini", "":
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("gemini provider requires an API key")
		}
		return gemini.NewGeminiProvider(cfg.APIKey, cfg.BaseURL, cfg.Model, cfg.Timeout), nil
	case "ollama":
		return ollama.NewOllamaProvider(cfg.BaseURL, cfg.Model, cfg.Timeout), nil
	case "huggingface":
		return huggingface.NewHuggingFaceProvider(cfg.APIKey, cfg.BaseURL, cfg.Model, cfg.Timeout), nil
	case "openai":
		return openai.NewOpenAIProvider(cfg.APIKey, cfg.BaseURL, cfg.Model, cfg.Timeout), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Provider)
	}
}
