package bootstrap

import (
	"context"
	"log"
	"path/filepath"
	"time"

	"github.com/AHAD2911/AI-Powered-Survey-Platform/internal/config"
	"github.com/AHAD2911/AI-Powered-Survey-Platform/internal/controller"
	"github.com/AHAD2911/AI-Powered-Survey-Platform/internal/pkg/logger"
	"github.com/AHAD2911/AI-Powered-Survey-Platform/internal/pkg/metrics"
	"github.com/AHAD2911/AI-Powered-Survey-Platform/internal/repository/memory"
	"github.com/AHAD2911/AI-Powered-Survey-Platform/internal/repository/unitofwork"
	"github.com/AHAD2911/AI-Powered-Survey-Platform/internal/service"
	"github.com/AHAD2911/AI-Powered-Survey-Platform/pkg/interview"
	"github.com/AHAD2911/AI-Powered-Survey-Platform/pkg/llm"
	"github.com/AHAD2911/AI-Powered-Survey-Platform/pkg/llm/factory"
	"github.com/AHAD2911/AI-Powered-Survey-Platform/pkg/speech"

	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	SurveyController    controller.ISurveyController
	InterviewController controller.IInterviewController
	SpeechController    controller.ISpeechController

	Logger logger.ILogger

	closers []func() error
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	c := &Container{Logger: sysLogger}

	// 2. LLM Provider, selected by config
	llmProvider := newLLMProvider(cfg)

	generatorLogger := logger.NewIsolatedLogger(filepath.Join(filepath.Dir(cfg.App.LogFilePath), "generator.log"))
	generator := interview.NewGenerator(
		llmProvider,
		interview.GenerationParams{
			MaxTokens:   cfg.Ai.MaxTokens,
			Temperature: cfg.Ai.Temperature,
			TopP:        cfg.Ai.TopP,
			TopK:        cfg.Ai.TopK,
		},
		generatorLogger,
		func(source interview.Source) { metrics.ObserveGeneration(string(source)) },
	)

	// 3. Speech
	var transcriber speech.Transcriber
	if cfg.Keys.Speech == "" {
		log.Printf("[WARN] SPEECH_API_KEY not set, voice answers are disabled")
	} else {
		googleTranscriber, err := speech.NewGoogleTranscriber(
			context.Background(),
			cfg.Keys.Speech,
			cfg.Speech.Endpoint,
			cfg.Speech.LanguageCode,
			time.Duration(cfg.Ai.TimeoutSeconds)*time.Second,
		)
		if err != nil {
			log.Printf("[WARN] Failed to initialize speech client: %v", err)
		} else {
			transcriber = googleTranscriber
		}
	}

	// 4. Turn Guard
	turnGuard := c.newTurnGuard(cfg)

	// 5. Services
	surveyService := service.NewSurveyService(uowFactory, sysLogger)
	interviewService := service.NewInterviewService(uowFactory, generator, transcriber, turnGuard, sysLogger)

	// 6. Controllers
	c.SurveyController = controller.NewSurveyController(surveyService)
	c.InterviewController = controller.NewInterviewController(interviewService)
	c.SpeechController = controller.NewSpeechController(interviewService)

	c.closers = append(c.closers, sysLogger.Sync, generatorLogger.Sync)
	return c
}

// newLLMProvider returns nil when the provider cannot be built; the generator
// then answers with fallback phrases instead of failing requests.
func newLLMProvider(cfg *config.Config) llm.LLMProvider {
	apiKey := cfg.Keys.GoogleGemini
	switch cfg.Ai.LLMProvider {
	case "huggingface":
		apiKey = cfg.Keys.HuggingFace
	case "openai":
		apiKey = cfg.Keys.OpenAI
	}

	provider, err := factory.NewLLMProvider(factory.ProviderConfig{
		Provider: cfg.Ai.LLMProvider,
		Model:    cfg.Ai.LLMModel,
		BaseURL:  cfg.Ai.LLMBaseURL,
		APIKey:   apiKey,
		Timeout:  time.Duration(cfg.Ai.TimeoutSeconds) * time.Second,
	})
	if err != nil {
		log.Printf("[WARN] Failed to initialize LLM Provider: %v (fallback phrases only)", err)
		return nil
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)
	return provider
}

func (c *Container) newTurnGuard(cfg *config.Config) memory.TurnGuard {
	ttl := time.Duration(cfg.App.TurnGuardTTL) * time.Second

	if cfg.App.RedisURL != "" {
		guard, err := memory.NewRedisTurnGuardFromURL(context.Background(), cfg.App.RedisURL, ttl)
		if err == nil {
			log.Printf("[INFO] Using Redis turn guard")
			c.closers = append(c.closers, guard.Close)
			return guard
		}
		log.Printf("[WARN] Failed to connect to Redis: %v. Using in-process turn guard", err)
	}

	return memory.NewLocalTurnGuard(ttl)
}

// Close releases clients opened by NewContainer.
func (c *Container) Close() {
	for _, closer := range c.closers {
		_ = closer()
	}
}
