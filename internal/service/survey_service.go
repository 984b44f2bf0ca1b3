package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/AHAD2911/AI-Powered-Survey-Platform/internal/constant"
	"github.com/AHAD2911/AI-Powered-Survey-Platform/internal/dto"
	"github.com/AHAD2911/AI-Powered-Survey-Platform/internal/entity"
	"github.com/AHAD2911/AI-Powered-Survey-Platform/internal/pkg/logger"
	"github.com/AHAD2911/AI-Powered-Survey-Platform/internal/repository/specification"
	"github.com/AHAD2911/AI-Powered-Survey-Platform/internal/repository/unitofwork"
	"github.com/AHAD2911/AI-Powered-Survey-Platform/pkg/interview"

	"github.com/google/uuid"
)

// ISurveyService owns survey records and their transcripts.
type ISurveyService interface {
	CreateSurvey(ctx context.Context, request *dto.CreateSurveyRequest) (*dto.CreateSurveyResponse, error)
	ListSurveys(ctx context.Context, status string) ([]*dto.SurveyResponse, error)
	GetSurvey(ctx context.Context, id uuid.UUID) (*dto.SurveyResponse, error)
	DeleteSurvey(ctx context.Context, id uuid.UUID) error
	AppendMessage(ctx context.Context, surveyId uuid.UUID, request *dto.AppendMessageRequest) (*dto.MessageResponse, error)
	ListMessages(ctx context.Context, surveyId uuid.UUID) ([]*dto.MessageResponse, error)
	MarkComplete(ctx context.Context, surveyId uuid.UUID) error
}

type surveyService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewSurveyService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) ISurveyService {
	return &surveyService{
		uowFactory: uowFactory,
		logger:     log,
	}
}

func (s *surveyService) CreateSurvey(ctx context.Context, request *dto.CreateSurveyRequest) (*dto.CreateSurveyResponse, error) {
	question := strings.TrimSpace(request.Question)
	if question == "" {
		return nil, &ValidationError{Field: "question", Message: "is required"}
	}

	probes := request.Probes
	if probes == 0 {
		probes = constant.DefaultSurveyProbes
	}
	if probes < 1 {
		return nil, &ValidationError{Field: "probes", Message: "must be positive"}
	}

	length := request.Length
	if length == 0 {
		length = constant.DefaultSurveyLength
	}
	if length < 1 {
		return nil, &ValidationError{Field: "length", Message: "must be positive"}
	}

	language := strings.TrimSpace(request.Language)
	if language == "" {
		language = constant.DefaultSurveyLanguage
	}

	now := time.Now().UTC()
	survey := entity.Survey{
		Id:        uuid.New(),
		Question:  question,
		Probes:    probes,
		Length:    length,
		Language:  language,
		Status:    constant.SurveyStatusIncomplete,
		CreatedAt: now,
	}

	opening := entity.Message{
		SurveyId:  survey.Id,
		Role:      constant.MessageRoleAI,
		Content:   question,
		Timestamp: now,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("begin create survey: %w", err)
	}
	defer uow.Rollback()

	if err := uow.SurveyRepository().Create(ctx, &survey); err != nil {
		return nil, fmt.Errorf("create survey: %w", err)
	}
	if err := uow.MessageRepository().Create(ctx, &opening); err != nil {
		return nil, fmt.Errorf("create opening message: %w", err)
	}
	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("commit create survey: %w", err)
	}

	s.logger.Info("survey", "Survey created", map[string]interface{}{
		"survey_id": survey.Id.String(),
		"probes":    probes,
		"language":  language,
	})

	return &dto.CreateSurveyResponse{Id: survey.Id}, nil
}

func (s *surveyService) ListSurveys(ctx context.Context, status string) ([]*dto.SurveyResponse, error) {
	if status == "" {
		status = constant.SurveyStatusIncomplete
	}
	if !constant.IsValidSurveyStatus(status) {
		return nil, &ValidationError{Field: "status", Message: "must be Incomplete or Completed"}
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	surveys, err := uow.SurveyRepository().FindAll(ctx,
		specification.ByStatus{Status: status},
		specification.NewestFirst,
	)
	if err != nil {
		return nil, fmt.Errorf("list surveys: %w", err)
	}

	res := make([]*dto.SurveyResponse, 0, len(surveys))
	for _, survey := range surveys {
		r := toSurveyResponse(survey)
		res = append(res, &r)
	}
	return res, nil
}

func (s *surveyService) GetSurvey(ctx context.Context, id uuid.UUID) (*dto.SurveyResponse, error) {
	survey, err := s.findSurvey(ctx, id)
	if err != nil {
		return nil, err
	}
	res := toSurveyResponse(survey)
	return &res, nil
}

func (s *surveyService) DeleteSurvey(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("begin delete survey: %w", err)
	}
	defer uow.Rollback()

	if err := uow.MessageRepository().DeleteBySurveyId(ctx, id); err != nil {
		return fmt.Errorf("delete messages: %w", err)
	}
	if err := uow.SurveyRepository().Delete(ctx, id); err != nil {
		return fmt.Errorf("delete survey: %w", err)
	}
	if err := uow.Commit(); err != nil {
		return fmt.Errorf("commit delete survey: %w", err)
	}

	s.logger.Info("survey", "Survey deleted", map[string]interface{}{
		"survey_id": id.String(),
	})
	return nil
}

// AppendMessage stores a message as given. An ai message still counts
// against the probe budget so the stored counter matches the transcript.
func (s *surveyService) AppendMessage(ctx context.Context, surveyId uuid.UUID, request *dto.AppendMessageRequest) (*dto.MessageResponse, error) {
	if !constant.IsValidMessageRole(request.Role) {
		return nil, &ValidationError{Field: "role", Message: "must be ai or user"}
	}
	if strings.TrimSpace(request.Content) == "" {
		return nil, &ValidationError{Field: "content", Message: "is required"}
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("begin append message: %w", err)
	}
	defer uow.Rollback()

	survey, err := uow.SurveyRepository().FindOne(ctx, specification.ByID{ID: surveyId})
	if err != nil {
		return nil, fmt.Errorf("find survey: %w", err)
	}
	if survey == nil {
		return nil, ErrSurveyNotFound
	}

	message := entity.Message{
		SurveyId:  surveyId,
		Role:      request.Role,
		Content:   request.Content,
		IsAudio:   request.IsAudio,
		Timestamp: time.Now().UTC(),
	}
	if err := uow.MessageRepository().Create(ctx, &message); err != nil {
		return nil, fmt.Errorf("append message: %w", err)
	}

	if request.Role == constant.MessageRoleAI &&
		survey.CompletedProbes < survey.Probes &&
		request.Content != interview.ClosingSentence {
		if err := uow.SurveyRepository().IncrementCompletedProbes(ctx, surveyId); err != nil {
			return nil, fmt.Errorf("increment probes: %w", err)
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("commit append message: %w", err)
	}

	res := toMessageResponse(&message)
	return &res, nil
}

func (s *surveyService) ListMessages(ctx context.Context, surveyId uuid.UUID) ([]*dto.MessageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	messages, err := uow.MessageRepository().FindAll(ctx,
		specification.BySurveyID{SurveyID: surveyId},
		specification.Transcript,
	)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}

	res := make([]*dto.MessageResponse, 0, len(messages))
	for _, m := range messages {
		r := toMessageResponse(m)
		res = append(res, &r)
	}
	return res, nil
}

func (s *surveyService) MarkComplete(ctx context.Context, surveyId uuid.UUID) error {
	survey, err := s.findSurvey(ctx, surveyId)
	if err != nil {
		return err
	}
	if survey.Status == constant.SurveyStatusCompleted {
		return nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.SurveyRepository().UpdateStatus(ctx, surveyId, constant.SurveyStatusCompleted); err != nil {
		return fmt.Errorf("mark complete: %w", err)
	}

	s.logger.Info("survey", "Survey marked complete", map[string]interface{}{
		"survey_id": surveyId.String(),
	})
	return nil
}

func (s *surveyService) findSurvey(ctx context.Context, id uuid.UUID) (*entity.Survey, error) {
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

func toSurveyResponse(s *entity.Survey) dto.SurveyResponse {
	return dto.SurveyResponse{
		Id:              s.Id,
		Question:        s.Question,
		Probes:          s.Probes,
		Length:          s.Length,
		Language:        s.Language,
		Status:          s.Status,
		CompletedProbes: s.CompletedProbes,
		CreatedAt:       s.CreatedAt,
	}
}

func toMessageResponse(m *entity.Message) dto.MessageResponse {
	display := m.Content
	if m.Role == constant.MessageRoleAI {
		display = interview.Sanitize(m.Content)
	}
	return dto.MessageResponse{
		Id:             m.Id,
		SurveyId:       m.SurveyId,
		Role:           m.Role,
		Content:        m.Content,
		DisplayContent: display,
		IsAudio:        m.IsAudio,
		Timestamp:      m.Timestamp,
	}
}
