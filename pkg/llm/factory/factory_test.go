package factory

import (
	"testing"
	"time"

	"github.com/AHAD2911/AI-Powered-Survey-Platform/pkg/llm/gemini"
	"github.com/AHAD2911/AI-Powered-Survey-Platform/pkg/llm/huggingface"
	"github.com/AHAD2911/AI-Powered-Survey-Platform/pkg/llm/ollama"
	"github.com/AHAD2911/AI-Powered-Survey-Platform/pkg/llm/openai"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLLMProvider(t *testing.T) {
	tests := []struct {
		name     string
		cfg      ProviderConfig
		wantType interface{}
		wantErr  bool
	}{
		{"gemini", ProviderConfig{Provider: "gemini", Model: "gemini-2.0-flash", APIKey: "k"}, &gemini.GeminiProvider{}, false},
		{"gemini without key", ProviderConfig{Provider: "gemini"}, nil, true},
		{"ollama", ProviderConfig{Provider: "ollama", Model: "llama3"}, &ollama.OllamaProvider{}, false},
		{"huggingface", ProviderConfig{Provider: "huggingface", APIKey: "hf"}, &huggingface.HuggingFaceProvider{}, false},
		{"openai", ProviderConfig{Provider: "openai", APIKey: "sk", Timeout: time.Second}, &openai.OpenAIProvider{}, false},
		{"unknown", ProviderConfig{Provider: "bard"}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewLLMProvider(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.wantType, p)
		})
	}
}
