package interview

import (
	"fmt"

	"github.com/AHAD2911/AI-Powered-Survey-Platform/pkg/llm"
)

// contextWindowMinHistory is the history size from which the last exchange is quoted.
const contextWindowMinHistory = 4

// Turn is one stored message as the generator sees it.
type Turn struct {
	Role    string
	Content string
}

// PromptContext bundles everything the generator needs for one reply.
// History includes the user message being answered.
type PromptContext struct {
	History        []Turn
	UserInput      string
	SurveyQuestion string
	AITurnsIssued  int
	ProbeLimit     int
}

// CompletedProbes is the single definition of how many follow-ups have been
// asked given the AI turns issued: the opening question is not a probe.
func CompletedProbes(aiTurnsIssued int) int {
	return max(0, aiTurnsIssued-1)
}

// BuildPrompt returns the directive sent to the model for the next follow-up.
func BuildPrompt(pc PromptContext) string {
	if pc.AITurnsIssued == 1 {
		return fmt.Sprintf("Ask one follow-up about: %s. Max 10 words.", pc.UserInput)
	}

	if n := len(pc.History); n >= contextWindowMinHistory {
		return fmt.Sprintf("Follow-up on: %s. Previous: %s - %s Max 10 words.",
			pc.UserInput, pc.History[n-2].Content, pc.History[n-1].Content)
	}
	return fmt.Sprintf("Follow-up on: %s. Max 10 words.", pc.UserInput)
}

// GenerationParams are the fixed sampling settings for every follow-up.
type GenerationParams struct {
	MaxTokens   int
	Temperature float64
	TopP        float64
	TopK        int
}

func DefaultGenerationParams() GenerationParams {
	return GenerationParams{
		MaxTokens:   100,
		Temperature: 0.7,
		TopP:        0.8,
		TopK:        40,
	}
}

func (p GenerationParams) options() []llm.Option {
	return []llm.Option{
		llm.WithMaxTokens(p.MaxTokens),
		llm.WithTemperature(p.Temperature),
		llm.WithTopP(p.TopP),
		llm.WithTopK(p.TopK),
	}
}
