package unitofwork

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/AHAD2911/AI-Powered-Survey-Platform/internal/constant"
	"github.com/AHAD2911/AI-Powered-Survey-Platform/internal/entity"
	"github.com/AHAD2911/AI-Powered-Survey-Platform/internal/model"
	"github.com/AHAD2911/AI-Powered-Survey-Platform/internal/repository/specification"
	"github.com/AHAD2911/AI-Powered-Survey-Platform/pkg/database"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFactory(t *testing.T) RepositoryFactory {
	t.Helper()
	db, err := database.NewQuietGormDB(filepath.Join(t.TempDir(), "uow.db"))
	require.NoError(t, err)
	require.NoError(t, model.AutoMigrate(db))
	return NewRepositoryFactory(db)
}

func survey() *entity.Survey {
	return &entity.Survey{
		Id:        uuid.New(),
		Question:  "What do you do on weekends?",
		Probes:    2,
		Length:    120,
		Language:  constant.DefaultSurveyLanguage,
		Status:    constant.SurveyStatusIncomplete,
		CreatedAt: time.Now().UTC(),
	}
}

func TestUnitOfWork_CommitPersistsAll(t *testing.T) {
	factory := newFactory(t)
	ctx := context.Background()
	s := survey()

	uow := factory.NewUnitOfWork(ctx)
	require.NoError(t, uow.Begin(ctx))
	defer uow.Rollback()

	require.NoError(t, uow.SurveyRepository().Create(ctx, s))
	require.NoError(t, uow.MessageRepository().Create(ctx, &entity.Message{SurveyId: s.Id, Role: constant.MessageRoleAI, Content: s.Question}))
	require.NoError(t, uow.Commit())

	reader := factory.NewUnitOfWork(ctx)
	count, err := reader.MessageRepository().Count(ctx, specification.BySurveyID{SurveyID: s.Id})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestUnitOfWork_RollbackDiscardsAll(t *testing.T) {
	factory := newFactory(t)
	ctx := context.Background()
	s := survey()

	uow := factory.NewUnitOfWork(ctx)
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.SurveyRepository().Create(ctx, s))
	require.NoError(t, uow.MessageRepository().Create(ctx, &entity.Message{SurveyId: s.Id, Role: constant.MessageRoleAI, Content: s.Question}))
	require.NoError(t, uow.Rollback())

	reader := factory.NewUnitOfWork(ctx)
	found, err := reader.SurveyRepository().FindOne(ctx, specification.ByID{ID: s.Id})
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestUnitOfWork_TransactionGuards(t *testing.T) {
	factory := newFactory(t)
	ctx := context.Background()

	uow := factory.NewUnitOfWork(ctx)
	assert.Error(t, uow.Commit())
	assert.NoError(t, uow.Rollback())

	require.NoError(t, uow.Begin(ctx))
	assert.Error(t, uow.Begin(ctx))
	require.NoError(t, uow.Commit())
	assert.NoError(t, uow.Rollback())
}
