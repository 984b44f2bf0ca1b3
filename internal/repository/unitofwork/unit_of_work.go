package unitofwork

import (
	"context"

	"github.com/AHAD2911/AI-Powered-Survey-Platform/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	SurveyRepository() contract.SurveyRepository
	MessageRepository() contract.MessageRepository
}
