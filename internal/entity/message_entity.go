package entity

import (
	"time"

	"github.com/google/uuid"
)

type Message struct {
	Id        uint
	SurveyId  uuid.UUID
	Role      string
	Content   string
	IsAudio   bool
	Timestamp time.Time
}
