package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BySurveyID struct {
	SurveyID uuid.UUID
}

func (s BySurveyID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("survey_id = ?", s.SurveyID)
}

type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

type ByRole struct {
	Role string
}

func (s ByRole) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("role = ?", s.Role)
}

// Transcript orders messages by insertion sequence.
var Transcript = OrderBy{Field: "id"}

// NewestFirst orders surveys by creation time, newest first.
var NewestFirst = OrderBy{Field: "created_at", Desc: true}
