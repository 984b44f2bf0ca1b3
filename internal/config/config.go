package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Keys     APIKeys
	Ai       AIConfig
	Speech   SpeechConfig
	Tracing  TracingConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	RedisURL           string // empty keeps the turn guard in-process
	TurnGuardTTL       int    // seconds
}

type DatabaseConfig struct {
	Connection string
}

type APIKeys struct {
	GoogleGemini string
	HuggingFace  string
	OpenAI       string
	Speech       string
}

type AIConfig struct {
	LLMProvider    string // "gemini", "ollama", "huggingface", "openai"
	LLMModel       string
	LLMBaseURL     string // optional override of the provider endpoint
	TimeoutSeconds int
	MaxTokens      int
	Temperature    float64
	TopP           float64
	TopK           int
}

type SpeechConfig struct {
	LanguageCode string
	Endpoint     string // optional override, used by local fakes
}

type TracingConfig struct {
	Enabled  bool
	Endpoint string
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	googleKey := getEnv("GOOGLE_API_KEY", "")

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/viva.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			RedisURL:           getEnv("REDIS_URL", ""),
			TurnGuardTTL:       getEnvAsInt("TURN_GUARD_TTL_SECONDS", 120),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", "viva.db"),
		},
		Keys: APIKeys{
			GoogleGemini: googleKey,
			HuggingFace:  getEnv("HUGGINGFACE_API_KEY", ""),
			OpenAI:       getEnv("OPENAI_API_KEY", ""),
			Speech:       getEnv("SPEECH_API_KEY", googleKey),
		},
		Ai: AIConfig{
			LLMProvider:    getEnv("LLM_PROVIDER", "gemini"),
			LLMModel:       getEnv("LLM_MODEL", "gemini-2.0-flash"),
			LLMBaseURL:     getEnv("LLM_BASE_URL", ""),
			TimeoutSeconds: getEnvAsInt("LLM_TIMEOUT_SECONDS", 30),
			MaxTokens:      getEnvAsInt("LLM_MAX_TOKENS", 100),
			Temperature:    getEnvAsFloat("LLM_TEMPERATURE", 0.7),
			TopP:           getEnvAsFloat("LLM_TOP_P", 0.8),
			TopK:           getEnvAsInt("LLM_TOP_K", 40),
		},
		Speech: SpeechConfig{
			LanguageCode: getEnv("SPEECH_LANGUAGE_CODE", "en-US"),
			Endpoint:     getEnv("SPEECH_ENDPOINT", ""),
		},
		Tracing: TracingConfig{
			Enabled:  getEnv("OTEL_ENABLED", "") == "true",
			Endpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseFloat(strValue, 64); err == nil {
		return value
	}
	return fallback
}
