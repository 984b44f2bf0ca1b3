package contract

import (
	"context"

	"github.com/AHAD2911/AI-Powered-Survey-Platform/internal/entity"
	"github.com/AHAD2911/AI-Powered-Survey-Platform/internal/repository/specification"

	"github.com/google/uuid"
)

type MessageRepository interface {
	Create(ctx context.Context, message *entity.Message) error
	DeleteBySurveyId(ctx context.Context, surveyId uuid.UUID) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Message, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
