package entity

import (
	"time"

	"github.com/google/uuid"
)

type Survey struct {
	Id              uuid.UUID
	Question        string
	Probes          int
	Length          int
	Language        string
	Status          string
	CompletedProbes int
	CreatedAt       time.Time
}

// AITurnsIssued counts the opening question plus every probe asked so far.
func (s *Survey) AITurnsIssued() int {
	return s.CompletedProbes + 1
}
