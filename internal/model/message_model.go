package model

import (
	"time"

	"github.com/google/uuid"
)

// Message ids come from the auto-increment key and define transcript order.
type Message struct {
	Id        uint      `gorm:"primaryKey;autoIncrement"`
	SurveyId  uuid.UUID `gorm:"type:varchar(36);not null;index"`
	Role      string    `gorm:"type:varchar(10);not null"`
	Content   string    `gorm:"type:text;not null"`
	IsAudio   bool      `gorm:"not null;default:false"`
	Timestamp time.Time `gorm:"not null"`

	// Survey is only declared for the cascading foreign key; it is never loaded.
	Survey *Survey `gorm:"foreignKey:SurveyId;references:Id;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (Message) TableName() string {
	return "messages"
}
