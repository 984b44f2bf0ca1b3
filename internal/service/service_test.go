package service

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/AHAD2911/AI-Powered-Survey-Platform/internal/model"
	"github.com/AHAD2911/AI-Powered-Survey-Platform/internal/pkg/logger"
	"github.com/AHAD2911/AI-Powered-Survey-Platform/internal/repository/memory"
	"github.com/AHAD2911/AI-Powered-Survey-Platform/internal/repository/unitofwork"
	"github.com/AHAD2911/AI-Powered-Survey-Platform/pkg/database"
	"github.com/AHAD2911/AI-Powered-Survey-Platform/pkg/interview"
	"github.com/AHAD2911/AI-Powered-Survey-Platform/pkg/llm"
	"github.com/AHAD2911/AI-Powered-Survey-Platform/pkg/speech"

	"github.com/stretchr/testify/require"
)

// scriptedProvider replays replies in order; an error entry fails that call.
type scriptedProvider struct {
	mu      sync.Mutex
	replies []interface{}
	prompts []string
	block   chan struct{}
}

func (p *scriptedProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	return p.Generate(ctx, history[len(history)-1].Content, options...)
}

func (p *scriptedProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	if p.block != nil {
		<-p.block
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.prompts = append(p.prompts, prompt)
	if len(p.replies) == 0 {
		return "Anything else?", nil
	}
	next := p.replies[0]
	p.replies = p.replies[1:]
	switch v := next.(type) {
	case error:
		return "", v
	case string:
		return v, nil
	}
	return "", errors.New("bad script entry")
}

type fakeTranscriber struct {
	text string
	err  error
}

func (f *fakeTranscriber) Transcribe(ctx context.Context, audio []byte) (string, error) {
	return f.text, f.err
}

type fixture struct {
	surveys   ISurveyService
	interview IInterviewService
	provider  *scriptedProvider
	factory   unitofwork.RepositoryFactory
}

func newFixture(t *testing.T, provider *scriptedProvider, transcriber speech.Transcriber) *fixture {
	t.Helper()
	db, err := database.NewQuietGormDB(filepath.Join(t.TempDir(), "service.db"))
	require.NoError(t, err)
	require.NoError(t, model.AutoMigrate(db))

	if provider == nil {
		provider = &scriptedProvider{}
	}
	log := logger.NewNopLogger()
	factory := unitofwork.NewRepositoryFactory(db)
	generator := interview.NewGenerator(provider, interview.DefaultGenerationParams(), log, nil)

	return &fixture{
		surveys:   NewSurveyService(factory, log),
		interview: NewInterviewService(factory, generator, transcriber, memory.NewLocalTurnGuard(time.Minute), log),
		provider:  provider,
		factory:   factory,
	}
}
