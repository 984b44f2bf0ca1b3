package contract

import (
	"context"

	"github.com/AHAD2911/AI-Powered-Survey-Platform/internal/entity"
	"github.com/AHAD2911/AI-Powered-Survey-Platform/internal/repository/specification"

	"github.com/google/uuid"
)

type SurveyRepository interface {
	Create(ctx context.Context, survey *entity.Survey) error
	Delete(ctx context.Context, id uuid.UUID) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	IncrementCompletedProbes(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Survey, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Survey, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
