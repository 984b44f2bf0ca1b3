package model

import (
	"time"

	"github.com/google/uuid"
)

type Survey struct {
	Id              uuid.UUID `gorm:"type:varchar(36);primaryKey"`
	Question        string    `gorm:"type:text;not null"`
	Probes          int       `gorm:"not null"`
	Length          int       `gorm:"not null"`
	Language        string    `gorm:"type:varchar(50);not null"`
	Status          string    `gorm:"type:varchar(20);not null;index"`
	CompletedProbes int       `gorm:"not null;default:0"`
	CreatedAt       time.Time `gorm:"index"`
}

func (Survey) TableName() string {
	return "surveys"
}
