package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateSurveyRequest struct {
	Question string `json:"question" validate:"required,notblank,max=2000"`
	Probes   int    `json:"probes" validate:"omitempty,min=1,max=10"`
	Length   int    `json:"length" validate:"omitempty,min=30,max=600"`
	Language string `json:"language" validate:"omitempty,max=50"`
}

type CreateSurveyResponse struct {
	Id uuid.UUID `json:"id"`
}

type SurveyResponse struct {
	Id              uuid.UUID `json:"id"`
	Question        string    `json:"question"`
	Probes          int       `json:"probes"`
	Length          int       `json:"length"`
	Language        string    `json:"language"`
	Status          string    `json:"status"`
	CompletedProbes int       `json:"completed_probes"`
	CreatedAt       time.Time `json:"created_at"`
}

type ListSurveysQuery struct {
	Status string `query:"status" validate:"omitempty,oneof=Incomplete Completed"`
}

type AppendMessageRequest struct {
	Role    string `json:"role" validate:"required,oneof=ai user"`
	Content string `json:"content" validate:"required"`
	IsAudio bool   `json:"is_audio"`
}

type MessageResponse struct {
	Id             uint      `json:"id"`
	SurveyId       uuid.UUID `json:"survey_id"`
	Role           string    `json:"role"`
	Content        string    `json:"content"`
	DisplayContent string    `json:"display_content"`
	IsAudio        bool      `json:"is_audio"`
	Timestamp      time.Time `json:"timestamp"`
}
