package implementation

import (
	"context"
	"errors"

	"github.com/AHAD2911/AI-Powered-Survey-Platform/internal/entity"
	"github.com/AHAD2911/AI-Powered-Survey-Platform/internal/mapper"
	"github.com/AHAD2911/AI-Powered-Survey-Platform/internal/model"
	"github.com/AHAD2911/AI-Powered-Survey-Platform/internal/repository/contract"
	"github.com/AHAD2911/AI-Powered-Survey-Platform/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SurveyRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SurveyMapper
}

func NewSurveyRepository(db *gorm.DB) contract.SurveyRepository {
	return &SurveyRepositoryImpl{
		db:     db,
		mapper: mapper.NewSurveyMapper(),
	}
}

func (r *SurveyRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *SurveyRepositoryImpl) Create(ctx context.Context, survey *entity.Survey) error {
	m := r.mapper.SurveyToModel(survey)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*survey = *r.mapper.SurveyToEntity(m)
	return nil
}

func (r *SurveyRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Survey{}).Error
}

func (r *SurveyRepositoryImpl) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	return r.db.WithContext(ctx).
		Model(&model.Survey{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// IncrementCompletedProbes bumps the counter in SQL, never read-modify-write.
func (r *SurveyRepositoryImpl) IncrementCompletedProbes(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&model.Survey{}).
		Where("id = ?", id).
		UpdateColumn("completed_probes", gorm.Expr("completed_probes + ?", 1)).Error
}

func (r *SurveyRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Survey, error) {
	var m model.Survey
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.SurveyToEntity(&m), nil
}

func (r *SurveyRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Survey, error) {
	var models []*model.Survey
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.SurveysToEntities(models), nil
}

func (r *SurveyRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Survey{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
