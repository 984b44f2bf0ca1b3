package interview

import (
	"context"
	"errors"
	"testing"

	"github.com/AHAD2911/AI-Powered-Survey-Platform/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	reply   string
	err     error
	panicOn bool
	prompts []string
	opts    llm.Options
}

func (f *fakeProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	return f.Generate(ctx, history[len(history)-1].Content, options...)
}

func (f *fakeProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	if f.panicOn {
		panic("provider exploded")
	}
	f.prompts = append(f.prompts, prompt)
	f.opts = *llm.Apply(llm.Options{}, options...)
	return f.reply, f.err
}

func newTestGenerator(p llm.LLMProvider, sources *[]Source) *Generator {
	return NewGenerator(p, DefaultGenerationParams(), nil, func(s Source) {
		if sources != nil {
			*sources = append(*sources, s)
		}
	})
}

func TestGenerate_ModelReplyIsSanitized(t *testing.T) {
	p := &fakeProvider{reply: "  <b>What</b> made\n\n it   stressful? "}
	g := newTestGenerator(p, nil)

	reply := g.Generate(context.Background(), PromptContext{
		UserInput:     "It reduced commute stress.",
		AITurnsIssued: 1,
		ProbeLimit:    2,
	})

	assert.Equal(t, Reply{Text: "What made it stressful?", Source: SourceModel}, reply)
	require.Len(t, p.prompts, 1)
	assert.Equal(t, "Ask one follow-up about: It reduced commute stress.. Max 10 words.", p.prompts[0])
	assert.Equal(t, 100, p.opts.MaxTokens)
	assert.Equal(t, 0.7, p.opts.Temperature)
	assert.Equal(t, 0.8, p.opts.TopP)
	assert.Equal(t, 40, p.opts.TopK)
}

func TestGenerate_ClosingSkipsModel(t *testing.T) {
	p := &fakeProvider{reply: "should not be used"}
	var sources []Source
	g := newTestGenerator(p, &sources)

	reply := g.Generate(context.Background(), PromptContext{UserInput: "done", AITurnsIssued: 3, ProbeLimit: 2})

	assert.Equal(t, ClosingSentence, reply.Text)
	assert.Equal(t, SourceClosing, reply.Source)
	assert.False(t, reply.IsProbe())
	assert.Empty(t, p.prompts)
	assert.Equal(t, []Source{SourceClosing}, sources)
}

func TestGenerate_FallbackRotationIsDeterministic(t *testing.T) {
	p := &fakeProvider{err: errors.New("503 service unavailable")}
	g := newTestGenerator(p, nil)

	for round := 0; round < 2; round++ {
		for i := range FallbackPhrases {
			completed := round*len(FallbackPhrases) + i
			reply := g.Generate(context.Background(), PromptContext{
				UserInput:     "answer",
				AITurnsIssued: completed + 1,
				ProbeLimit:    100,
			})
			assert.Equal(t, FallbackPhrases[i], reply.Text, "completed probes %d", completed)
			assert.Equal(t, SourceFallback, reply.Source)
		}
	}
}

func TestGenerate_EmptyModelTextFallsBack(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"whitespace", "  \n\t "},
		{"only markup", "<p></p><br/>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGenerator(&fakeProvider{reply: tt.raw}, nil)
			reply := g.Generate(context.Background(), PromptContext{UserInput: "x", AITurnsIssued: 2, ProbeLimit: 3})
			assert.Equal(t, FallbackPhrases[1], reply.Text)
			assert.Equal(t, SourceFallback, reply.Source)
		})
	}
}

func TestGenerate_PanicBecomesGenericContinuation(t *testing.T) {
	var sources []Source
	g := newTestGenerator(&fakeProvider{panicOn: true}, &sources)

	var reply Reply
	require.NotPanics(t, func() {
		reply = g.Generate(context.Background(), PromptContext{UserInput: "x", AITurnsIssued: 1, ProbeLimit: 3})
	})

	assert.Equal(t, GenericContinuation, reply.Text)
	assert.Equal(t, SourceRecovered, reply.Source)
	assert.Equal(t, []Source{SourceRecovered}, sources)
}

func TestGenerate_NilProviderFallsBack(t *testing.T) {
	g := newTestGenerator(nil, nil)
	reply := g.Generate(context.Background(), PromptContext{UserInput: "x", AITurnsIssued: 1, ProbeLimit: 3})
	assert.Equal(t, FallbackPhrases[0], reply.Text)
}

func TestGenerate_NeverEmpty(t *testing.T) {
	providers := []llm.LLMProvider{
		&fakeProvider{reply: "Fine."},
		&fakeProvider{err: errors.New("boom")},
		&fakeProvider{reply: "<i> </i>"},
		&fakeProvider{panicOn: true},
		nil,
	}
	for _, p := range providers {
		g := newTestGenerator(p, nil)
		for turns := 0; turns < 8; turns++ {
			reply := g.Generate(context.Background(), PromptContext{UserInput: "x", AITurnsIssued: turns, ProbeLimit: 4})
			assert.NotEmpty(t, reply.Text)
			assert.Equal(t, Sanitize(reply.Text), reply.Text)
		}
	}
}
