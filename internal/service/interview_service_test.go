package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/AHAD2911/AI-Powered-Survey-Platform/internal/constant"
	"github.com/AHAD2911/AI-Powered-Survey-Platform/internal/dto"
	"github.com/AHAD2911/AI-Powered-Survey-Platform/internal/repository/specification"
	"github.com/AHAD2911/AI-Powered-Survey-Platform/pkg/interview"
	"github.com/AHAD2911/AI-Powered-Survey-Platform/pkg/speech"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createSurvey(t *testing.T, f *fixture, question string, probes int) uuid.UUID {
	t.Helper()
	created, err := f.surveys.CreateSurvey(context.Background(), &dto.CreateSurveyRequest{Question: question, Probes: probes})
	require.NoError(t, err)
	return created.Id
}

func turn(t *testing.T, f *fixture, id uuid.UUID, content string) *dto.TurnResponse {
	t.Helper()
	res, err := f.interview.SubmitTurn(context.Background(), id, &dto.SubmitTurnRequest{Content: content})
	require.NoError(t, err)
	return res
}

func TestInterview_ProbeBudgetScenario(t *testing.T) {
	provider := &scriptedProvider{replies: []interface{}{
		"How did you spend the time saved?",
		"Did your focus change at home?",
	}}
	f := newFixture(t, provider, nil)
	id := createSurvey(t, f, "Impact of remote work?", 2)

	first := turn(t, f, id, "It reduced commute stress.")
	assert.Equal(t, "How did you spend the time saved?", first.AIMessage.Content)
	assert.Equal(t, string(interview.SourceModel), first.ReplySource)
	assert.Equal(t, 1, first.State.CompletedProbes)
	assert.False(t, first.State.Completed)
	assert.Equal(t, "Ask one follow-up about: It reduced commute stress.. Max 10 words.", provider.prompts[0])

	second := turn(t, f, id, "Mostly exercise.")
	assert.Equal(t, "Did your focus change at home?", second.AIMessage.Content)
	assert.Equal(t, 2, second.State.CompletedProbes)
	assert.False(t, second.State.Completed)
	assert.Equal(t,
		"Follow-up on: Mostly exercise.. Previous: How did you spend the time saved? - Mostly exercise. Max 10 words.",
		provider.prompts[1])

	third := turn(t, f, id, "Yes, much better.")
	assert.Equal(t, interview.ClosingSentence, third.AIMessage.Content)
	assert.Equal(t, string(interview.SourceClosing), third.ReplySource)
	assert.Equal(t, 2, third.State.CompletedProbes, "closing is not a probe")
	assert.True(t, third.State.Completed)
	assert.Len(t, provider.prompts, 2, "closing never calls the model")

	messages, err := f.surveys.ListMessages(context.Background(), id)
	require.NoError(t, err)
	require.Len(t, messages, 7)
	assert.Equal(t, constant.MessageRoleAI, messages[0].Role)
	assert.Equal(t, "Impact of remote work?", messages[0].Content)
	for i, m := range messages {
		if i == 0 {
			continue
		}
		want := constant.MessageRoleUser
		if i%2 == 0 {
			want = constant.MessageRoleAI
		}
		assert.Equal(t, want, m.Role, "message %d", i)
	}

	_, err = f.interview.SubmitTurn(context.Background(), id, &dto.SubmitTurnRequest{Content: "one more"})
	assert.ErrorIs(t, err, ErrSurveyCompleted)

	after, err := f.surveys.ListMessages(context.Background(), id)
	require.NoError(t, err)
	assert.Len(t, after, 7, "no appends after completion")
}

func TestInterview_GenerationFailureKeepsSurveyActive(t *testing.T) {
	provider := &scriptedProvider{replies: []interface{}{
		"What changed first?",
		errors.New("model overloaded"),
	}}
	f := newFixture(t, provider, nil)
	id := createSurvey(t, f, "Impact of remote work?", 3)

	turn(t, f, id, "It reduced commute stress.")
	second := turn(t, f, id, "My mornings.")

	assert.Equal(t, interview.FallbackPhrases[1], second.AIMessage.Content)
	assert.Equal(t, string(interview.SourceFallback), second.ReplySource)
	assert.False(t, second.State.Completed)
	assert.Equal(t, 2, second.State.CompletedProbes)

	state, err := f.interview.GetState(context.Background(), id)
	require.NoError(t, err)
	assert.False(t, state.Completed)
}

func TestInterview_FirstTurnFailureUsesFirstFallback(t *testing.T) {
	provider := &scriptedProvider{replies: []interface{}{errors.New("timeout")}}
	f := newFixture(t, provider, nil)
	id := createSurvey(t, f, "Q?", 2)

	res := turn(t, f, id, "answer")
	assert.Equal(t, interview.FallbackPhrases[0], res.AIMessage.Content)
	assert.NotEmpty(t, res.AIMessage.Content)
	assert.False(t, res.State.Completed)
}

func TestInterview_ModelCompletionPhraseEndsInterview(t *testing.T) {
	provider := &scriptedProvider{replies: []interface{}{"Thank you, that covers everything."}}
	f := newFixture(t, provider, nil)
	id := createSurvey(t, f, "Q?", 5)

	res := turn(t, f, id, "answer")
	assert.True(t, res.State.Completed)

	survey, err := f.surveys.GetSurvey(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, constant.SurveyStatusCompleted, survey.Status)
}

func TestInterview_RejectsBlankAndUnknown(t *testing.T) {
	f := newFixture(t, nil, nil)
	id := createSurvey(t, f, "Q?", 2)

	_, err := f.interview.SubmitTurn(context.Background(), id, &dto.SubmitTurnRequest{Content: "   "})
	var ve *ValidationError
	assert.True(t, errors.As(err, &ve))

	_, err = f.interview.SubmitTurn(context.Background(), uuid.New(), &dto.SubmitTurnRequest{Content: "hi"})
	assert.ErrorIs(t, err, ErrSurveyNotFound)

	messages, err := f.surveys.ListMessages(context.Background(), id)
	require.NoError(t, err)
	assert.Len(t, messages, 1)
}

func TestInterview_ConcurrentTurnRejected(t *testing.T) {
	provider := &scriptedProvider{block: make(chan struct{})}
	f := newFixture(t, provider, nil)
	id := createSurvey(t, f, "Q?", 3)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := f.interview.SubmitTurn(context.Background(), id, &dto.SubmitTurnRequest{Content: "first"})
		assert.NoError(t, err)
	}()

	// wait until the first turn has stored its user message
	require.Eventually(t, func() bool {
		count, err := f.factory.NewUnitOfWork(context.Background()).MessageRepository().Count(context.Background(),
			specification.BySurveyID{SurveyID: id})
		return err == nil && count == 2
	}, 2*time.Second, 10*time.Millisecond)

	_, err := f.interview.SubmitTurn(context.Background(), id, &dto.SubmitTurnRequest{Content: "second"})
	assert.ErrorIs(t, err, ErrTurnInProgress)

	close(provider.block)
	wg.Wait()

	state, err := f.interview.GetState(context.Background(), id)
	require.NoError(t, err)
	assert.Len(t, state.Messages, 3)
	assert.Equal(t, 1, state.CompletedProbes)
}

func TestInterview_VoiceTurn(t *testing.T) {
	f := newFixture(t, &scriptedProvider{replies: []interface{}{"What did you hear?"}}, &fakeTranscriber{text: "it reduced commute stress"})
	id := createSurvey(t, f, "Q?", 2)

	res, err := f.interview.SubmitVoiceTurn(context.Background(), id, []byte("RIFF"))
	require.NoError(t, err)
	assert.True(t, res.UserMessage.IsAudio)
	assert.Equal(t, "it reduced commute stress", res.UserMessage.Content)
	assert.False(t, res.AIMessage.IsAudio)
}

func TestInterview_VoiceTurnTranscriptionFailure(t *testing.T) {
	tests := []struct {
		name    string
		tr      speech.Transcriber
		message string
	}{
		{"unintelligible", &fakeTranscriber{err: &speech.Error{Kind: speech.Unintelligible}}, "Error: Could not understand audio"},
		{"unavailable", &fakeTranscriber{err: &speech.Error{Kind: speech.ServiceUnavailable}}, "Error: Speech recognition API unavailable"},
		{"not configured", nil, "Error: Speech recognition API unavailable"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, nil, tt.tr)
			id := createSurvey(t, f, "Q?", 2)

			_, err := f.interview.SubmitVoiceTurn(context.Background(), id, []byte("audio"))
			var te *TranscriptionError
			require.True(t, errors.As(err, &te))
			assert.Equal(t, tt.message, te.Error())
			assert.Equal(t, 422, te.StatusCode())

			messages, err := f.surveys.ListMessages(context.Background(), id)
			require.NoError(t, err)
			assert.Len(t, messages, 1, "failed transcription stores nothing")
		})
	}
}

func TestInterview_GetStateRepairsFinishedTranscript(t *testing.T) {
	f := newFixture(t, nil, nil)
	ctx := context.Background()
	id := createSurvey(t, f, "Is the project finished?", 1)

	state, err := f.interview.GetState(ctx, id)
	require.NoError(t, err)
	assert.False(t, state.Completed, "opening question never completes")

	// simulate a crash after the closing reply was stored but before the status write
	_, err = f.surveys.AppendMessage(ctx, id, &dto.AppendMessageRequest{Role: "user", Content: "yes"})
	require.NoError(t, err)
	_, err = f.surveys.AppendMessage(ctx, id, &dto.AppendMessageRequest{Role: "ai", Content: interview.ClosingSentence})
	require.NoError(t, err)

	state, err = f.interview.GetState(ctx, id)
	require.NoError(t, err)
	assert.True(t, state.Completed)
	assert.Len(t, state.Messages, 3)

	survey, err := f.surveys.GetSurvey(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, constant.SurveyStatusCompleted, survey.Status)
}

func TestInterview_GetStateIgnoresFiller(t *testing.T) {
	f := newFixture(t, nil, nil)
	ctx := context.Background()
	id := createSurvey(t, f, "Q?", 3)

	_, err := f.surveys.AppendMessage(ctx, id, &dto.AppendMessageRequest{Role: "user", Content: "a"})
	require.NoError(t, err)
	_, err = f.surveys.AppendMessage(ctx, id, &dto.AppendMessageRequest{Role: "ai", Content: interview.GenericContinuation})
	require.NoError(t, err)

	state, err := f.interview.GetState(ctx, id)
	require.NoError(t, err)
	assert.False(t, state.Completed)
}

func TestTranscribe(t *testing.T) {
	f := newFixture(t, nil, &fakeTranscriber{text: "hello there"})
	res, err := f.interview.Transcribe(context.Background(), []byte("RIFF"))
	require.NoError(t, err)
	assert.Equal(t, "hello there", res.Text)
}
