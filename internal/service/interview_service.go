package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/AHAD2911/AI-Powered-Survey-Platform/internal/constant"
	"github.com/AHAD2911/AI-Powered-Survey-Platform/internal/dto"
	"github.com/AHAD2911/AI-Powered-Survey-Platform/internal/entity"
	"github.com/AHAD2911/AI-Powered-Survey-Platform/internal/pkg/logger"
	"github.com/AHAD2911/AI-Powered-Survey-Platform/internal/pkg/metrics"
	"github.com/AHAD2911/AI-Powered-Survey-Platform/internal/repository/memory"
	"github.com/AHAD2911/AI-Powered-Survey-Platform/internal/repository/specification"
	"github.com/AHAD2911/AI-Powered-Survey-Platform/internal/repository/unitofwork"
	"github.com/AHAD2911/AI-Powered-Survey-Platform/pkg/interview"
	"github.com/AHAD2911/AI-Powered-Survey-Platform/pkg/speech"

	"github.com/google/uuid"
)

const (
	turnModeText  = "text"
	turnModeVoice = "voice"
)

// IInterviewService runs the interview turn protocol on top of stored surveys.
type IInterviewService interface {
	SubmitTurn(ctx context.Context, surveyId uuid.UUID, request *dto.SubmitTurnRequest) (*dto.TurnResponse, error)
	SubmitVoiceTurn(ctx context.Context, surveyId uuid.UUID, audio []byte) (*dto.TurnResponse, error)
	Transcribe(ctx context.Context, audio []byte) (*dto.TranscribeResponse, error)
	GetState(ctx context.Context, surveyId uuid.UUID) (*dto.InterviewState, error)
}

type interviewService struct {
	uowFactory  unitofwork.RepositoryFactory
	generator   *interview.Generator
	transcriber speech.Transcriber
	turnGuard   memory.TurnGuard
	logger      logger.ILogger
}

func NewInterviewService(
	uowFactory unitofwork.RepositoryFactory,
	generator *interview.Generator,
	transcriber speech.Transcriber,
	turnGuard memory.TurnGuard,
	log logger.ILogger,
) IInterviewService {
	return &interviewService{
		uowFactory:  uowFactory,
		generator:   generator,
		transcriber: transcriber,
		turnGuard:   turnGuard,
		logger:      log,
	}
}

func (s *interviewService) SubmitTurn(ctx context.Context, surveyId uuid.UUID, request *dto.SubmitTurnRequest) (*dto.TurnResponse, error) {
	return s.submitTurn(ctx, surveyId, request.Content, false)
}

// SubmitVoiceTurn leaves stored state untouched when transcription fails.
func (s *interviewService) SubmitVoiceTurn(ctx context.Context, surveyId uuid.UUID, audio []byte) (*dto.TurnResponse, error) {
	survey, err := s.findSurvey(ctx, surveyId)
	if err != nil {
		return nil, err
	}
	if survey.Status == constant.SurveyStatusCompleted {
		return nil, ErrSurveyCompleted
	}

	text, err := s.transcribe(ctx, audio)
	if err != nil {
		return nil, err
	}

	return s.submitTurn(ctx, surveyId, text, true)
}

func (s *interviewService) Transcribe(ctx context.Context, audio []byte) (*dto.TranscribeResponse, error) {
	text, err := s.transcribe(ctx, audio)
	if err != nil {
		return nil, err
	}
	return &dto.TranscribeResponse{Text: text}, nil
}

func (s *interviewService) transcribe(ctx context.Context, audio []byte) (string, error) {
	if s.transcriber == nil {
		metrics.ObserveTranscription(string(speech.ServiceUnavailable))
		return "", &TranscriptionError{Err: &speech.Error{
			Kind: speech.ServiceUnavailable,
			Err:  errors.New("speech transcriber not configured"),
		}}
	}

	text, err := s.transcriber.Transcribe(ctx, audio)
	if err != nil {
		tErr := asTranscriptionError(err)
		metrics.ObserveTranscription(string(tErr.Err.Kind))
		s.logger.Warn("speech", "Transcription failed", map[string]interface{}{
			"kind":  string(tErr.Err.Kind),
			"error": err.Error(),
			"bytes": len(audio),
		})
		return "", tErr
	}

	metrics.ObserveTranscription("ok")
	return text, nil
}

func (s *interviewService) submitTurn(ctx context.Context, surveyId uuid.UUID, content string, isAudio bool) (*dto.TurnResponse, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, &ValidationError{Field: "content", Message: "is required"}
	}

	key := surveyId.String()
	acquired, err := s.turnGuard.Acquire(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("turn guard: %w", err)
	}
	if !acquired {
		return nil, ErrTurnInProgress
	}
	defer s.turnGuard.Release(ctx, key)

	start := time.Now()
	mode := turnModeText
	if isAudio {
		mode = turnModeVoice
	}

	survey, err := s.findSurvey(ctx, surveyId)
	if err != nil {
		return nil, err
	}
	if survey.Status == constant.SurveyStatusCompleted {
		return nil, ErrSurveyCompleted
	}

	// From here on the turn finishes even if the client goes away.
	ctx = context.WithoutCancel(ctx)
	uow := s.uowFactory.NewUnitOfWork(ctx)

	userMessage := entity.Message{
		SurveyId:  surveyId,
		Role:      constant.MessageRoleUser,
		Content:   content,
		IsAudio:   isAudio,
		Timestamp: time.Now().UTC(),
	}
	if err := uow.MessageRepository().Create(ctx, &userMessage); err != nil {
		return nil, fmt.Errorf("append user message: %w", err)
	}

	history, err := uow.MessageRepository().FindAll(ctx,
		specification.BySurveyID{SurveyID: surveyId},
		specification.Transcript,
	)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}

	reply := s.generator.Generate(ctx, interview.PromptContext{
		History:        toTurns(history),
		UserInput:      content,
		SurveyQuestion: survey.Question,
		AITurnsIssued:  survey.AITurnsIssued(),
		ProbeLimit:     survey.Probes,
	})
	completes := interview.ReplyCompletes(reply)

	aiMessage := entity.Message{
		SurveyId:  surveyId,
		Role:      constant.MessageRoleAI,
		Content:   reply.Text,
		Timestamp: time.Now().UTC(),
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("begin ai reply: %w", err)
	}
	defer uow.Rollback()

	if err := uow.MessageRepository().Create(ctx, &aiMessage); err != nil {
		return nil, fmt.Errorf("append ai message: %w", err)
	}
	if reply.IsProbe() {
		if err := uow.SurveyRepository().IncrementCompletedProbes(ctx, surveyId); err != nil {
			return nil, fmt.Errorf("increment probes: %w", err)
		}
		survey.CompletedProbes++
	}
	if completes {
		if err := uow.SurveyRepository().UpdateStatus(ctx, surveyId, constant.SurveyStatusCompleted); err != nil {
			return nil, fmt.Errorf("mark complete: %w", err)
		}
		survey.Status = constant.SurveyStatusCompleted
	}
	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("commit ai reply: %w", err)
	}

	metrics.ObserveTurn(mode, time.Since(start).Seconds())
	if completes {
		trigger := "phrase"
		if reply.Source == interview.SourceClosing {
			trigger = "budget"
		}
		metrics.ObserveCompletion(trigger)
		s.logger.Info("interview", "Interview completed", map[string]interface{}{
			"survey_id":        key,
			"trigger":          trigger,
			"completed_probes": survey.CompletedProbes,
		})
	}

	s.logger.Info("interview", "Turn processed", map[string]interface{}{
		"survey_id":        key,
		"mode":             mode,
		"reply_source":     string(reply.Source),
		"completed_probes": survey.CompletedProbes,
		"probes":           survey.Probes,
		"duration_ms":      time.Since(start).Milliseconds(),
	})

	return &dto.TurnResponse{
		UserMessage: toMessageResponse(&userMessage),
		AIMessage:   toMessageResponse(&aiMessage),
		ReplySource: string(reply.Source),
		State:       buildState(survey, nil),
	}, nil
}

// GetState also completes a survey whose stored transcript already ended,
// which happens when a process dies between the reply and the status write.
func (s *interviewService) GetState(ctx context.Context, surveyId uuid.UUID) (*dto.InterviewState, error) {
	survey, err := s.findSurvey(ctx, surveyId)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	messages, err := uow.MessageRepository().FindAll(ctx,
		specification.BySurveyID{SurveyID: surveyId},
		specification.Transcript,
	)
	if err != nil {
		return nil, fmt.Errorf("load messages: %w", err)
	}

	if survey.Status != constant.SurveyStatusCompleted && interview.TranscriptCompletes(aiContents(messages)) {
		if err := uow.SurveyRepository().UpdateStatus(ctx, surveyId, constant.SurveyStatusCompleted); err != nil {
			return nil, fmt.Errorf("repair status: %w", err)
		}
		survey.Status = constant.SurveyStatusCompleted
		metrics.ObserveCompletion("repair")
		s.logger.Warn("interview", "Completed survey found incomplete, status repaired", map[string]interface{}{
			"survey_id": surveyId.String(),
		})
	}

	state := buildState(survey, messages)
	return &state, nil
}

func (s *interviewService) findSurvey(ctx context.Context, id uuid.UUID) (*entity.Survey, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	survey, err := uow.SurveyRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, fmt.Errorf("find survey: %w", err)
	}
	if survey == nil {
		return nil, ErrSurveyNotFound
	}
	return survey, nil
}

func buildState(survey *entity.Survey, messages []*entity.Message) dto.InterviewState {
	state := dto.InterviewState{
		Survey:          toSurveyResponse(survey),
		CompletedProbes: survey.CompletedProbes,
		Probes:          survey.Probes,
		Completed:       survey.Status == constant.SurveyStatusCompleted,
	}
	if messages != nil {
		state.Messages = make([]dto.MessageResponse, 0, len(messages))
		for _, m := range messages {
			state.Messages = append(state.Messages, toMessageResponse(m))
		}
	}
	return state
}

func toTurns(messages []*entity.Message) []interview.Turn {
	turns := make([]interview.Turn, len(messages))
	for i, m := range messages {
		turns[i] = interview.Turn{Role: m.Role, Content: m.Content}
	}
	return turns
}

func aiContents(messages []*entity.Message) []string {
	var out []string
	for _, m := range messages {
		if m.Role == constant.MessageRoleAI {
			out = append(out, m.Content)
		}
	}
	return out
}
