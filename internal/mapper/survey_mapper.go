package mapper

import (
	"github.com/AHAD2911/AI-Powered-Survey-Platform/internal/entity"
	"github.com/AHAD2911/AI-Powered-Survey-Platform/internal/model"
)

type SurveyMapper struct{}

func NewSurveyMapper() *SurveyMapper {
	return &SurveyMapper{}
}

// Survey Mappers

func (m *SurveyMapper) SurveyToEntity(s *model.Survey) *entity.Survey {
	if s == nil {
		return nil
	}

	return &entity.Survey{
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

func (m *SurveyMapper) SurveyToModel(s *entity.Survey) *model.Survey {
	if s == nil {
		return nil
	}

	return &model.Survey{
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

func (m *SurveyMapper) SurveysToEntities(models []*model.Survey) []*entity.Survey {
	entities := make([]*entity.Survey, len(models))
	for i, s := range models {
		entities[i] = m.SurveyToEntity(s)
	}
	return entities
}

// Message Mappers

func (m *SurveyMapper) MessageToEntity(msg *model.Message) *entity.Message {
	if msg == nil {
		return nil
	}

	return &entity.Message{
		Id:        msg.Id,
		SurveyId:  msg.SurveyId,
		Role:      msg.Role,
		Content:   msg.Content,
		IsAudio:   msg.IsAudio,
		Timestamp: msg.Timestamp,
	}
}

func (m *SurveyMapper) MessageToModel(msg *entity.Message) *model.Message {
	if msg == nil {
		return nil
	}

	return &model.Message{
		Id:        msg.Id,
		SurveyId:  msg.SurveyId,
		Role:      msg.Role,
		Content:   msg.Content,
		IsAudio:   msg.IsAudio,
		Timestamp: msg.Timestamp,
	}
}

func (m *SurveyMapper) MessagesToEntities(models []*model.Message) []*entity.Message {
	entities := make([]*entity.Message, len(models))
	for i, msg := range models {
		entities[i] = m.MessageToEntity(msg)
	}
	return entities
}
