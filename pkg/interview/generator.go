package interview

import (
	"context"
	"fmt"

	"github.com/AHAD2911/AI-Powered-Survey-Platform/internal/pkg/logger"
	"github.com/AHAD2911/AI-Powered-Survey-Platform/pkg/llm"
)

// Source tells where a reply's text came from.
type Source string

const (
	SourceModel     Source = "model"
	SourceFallback  Source = "fallback"
	SourceClosing   Source = "closing"
	SourceRecovered Source = "recovered"
)

type Reply struct {
	Text   string
	Source Source
}

// IsProbe reports whether the reply asks a follow-up and so consumes budget.
func (r Reply) IsProbe() bool {
	return r.Source != SourceClosing
}

// Observer is notified of every reply produced.
type Observer func(Source)

type Generator struct {
	provider llm.LLMProvider
	params   GenerationParams
	logger   logger.ILogger
	observe  Observer
}

func NewGenerator(provider llm.LLMProvider, params GenerationParams, log logger.ILogger, observe Observer) *Generator {
	if log == nil {
		log = logger.NewNopLogger()
	}
	if observe == nil {
		observe = func(Source) {}
	}
	return &Generator{
		provider: provider,
		params:   params,
		logger:   log,
		observe:  observe,
	}
}

// Generate always returns non-empty, sanitized text. Model failures become a
// rotating fallback phrase and panics become GenericContinuation.
func (g *Generator) Generate(ctx context.Context, pc PromptContext) (reply Reply) {
	defer func() {
		if r := recover(); r != nil {
			g.logger.Error("generator", "Recovered from panic during generation", map[string]interface{}{
				"panic": fmt.Sprint(r),
			})
			reply = Reply{Text: GenericContinuation, Source: SourceRecovered}
		}
		g.observe(reply.Source)
	}()

	completed := CompletedProbes(pc.AITurnsIssued)
	if completed >= pc.ProbeLimit {
		g.logger.Info("generator", "Probe budget exhausted, closing interview", map[string]interface{}{
			"completed_probes": completed,
			"probe_limit":      pc.ProbeLimit,
		})
		return Reply{Text: ClosingSentence, Source: SourceClosing}
	}

	prompt := BuildPrompt(pc)
	g.logger.Debug("generator", "Requesting follow-up", map[string]interface{}{
		"prompt":           prompt,
		"completed_probes": completed,
	})

	if g.provider == nil {
		g.logger.Warn("generator", "No LLM provider configured, using fallback", nil)
		return Reply{Text: FallbackPhrase(completed), Source: SourceFallback}
	}

	raw, err := g.provider.Generate(ctx, prompt, g.params.options()...)
	if err != nil {
		g.logger.Warn("generator", "LLM call failed, using fallback", map[string]interface{}{
			"error":            err.Error(),
			"completed_probes": completed,
		})
		return Reply{Text: FallbackPhrase(completed), Source: SourceFallback}
	}

	text := Sanitize(raw)
	if text == "" {
		g.logger.Warn("generator", "LLM returned no usable text, using fallback", map[string]interface{}{
			"raw_length": len(raw),
		})
		return Reply{Text: FallbackPhrase(completed), Source: SourceFallback}
	}

	return Reply{Text: text, Source: SourceModel}
}
