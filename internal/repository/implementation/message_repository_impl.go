package implementation

import (
	"context"
	"time"

	"github.com/AHAD2911/AI-Powered-Survey-Platform/internal/entity"
	"github.com/AHAD2911/AI-Powered-Survey-Platform/internal/mapper"
	"github.com/AHAD2911/AI-Powered-Survey-Platform/internal/model"
	"github.com/AHAD2911/AI-Powered-Survey-Platform/internal/repository/contract"
	"github.com/AHAD2911/AI-Powered-Survey-Platform/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MessageRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SurveyMapper
}

func NewMessageRepository(db *gorm.DB) contract.MessageRepository {
	return &MessageRepositoryImpl{
		db:     db,
		mapper: mapper.NewSurveyMapper(),
	}
}

func (r *MessageRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *MessageRepositoryImpl) Create(ctx context.Context, message *entity.Message) error {
	m := r.mapper.MessageToModel(message)
	if m.Timestamp.IsZero() {
		m.Timestamp = time.Now().UTC()
	}
	if err := r.db.WithContext(ctx).Omit("Survey").Create(m).Error; err != nil {
		return err
	}
	*message = *r.mapper.MessageToEntity(m)
	return nil
}

func (r *MessageRepositoryImpl) DeleteBySurveyId(ctx context.Context, surveyId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("survey_id = ?", surveyId).Delete(&model.Message{}).Error
}

func (r *MessageRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Message, error) {
	var models []*model.Message
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.MessagesToEntities(models), nil
}

func (r *MessageRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Message{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
