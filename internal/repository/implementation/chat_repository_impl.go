package implementation

import (
	"context"

	"astro-observer/internal/entity"
	"astro-observer/internal/mapper"
	"astro-observer/internal/model"
	"astro-observer/internal/repository/contract"
	"astro-observer/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChatRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ChatMapper
}

func NewChatRepository(db *gorm.DB) contract.ChatRepository {
	return &ChatRepositoryImpl{db: db, mapper: mapper.NewChatMapper()}
}

func (r *ChatRepositoryImpl) Create(ctx context.Context, turn *entity.ChatTurn) error {
	m := r.mapper.TurnToModel(turn)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*turn = *r.mapper.TurnToEntity(m)
	return nil
}

func (r *ChatRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatTurn, error) {
	var models []*model.ChatTurn
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	out := make([]*entity.ChatTurn, len(models))
	for i, m := range models {
		out[i] = r.mapper.TurnToEntity(m)
	}
	return out, nil
}

func (r *ChatRepositoryImpl) DistinctSessions(ctx context.Context, userId uuid.UUID) ([]string, error) {
	var sessions []string
	err := r.db.WithContext(ctx).Model(&model.ChatTurn{}).
		Where("user_id = ?", userId).
		Distinct("session_id").
		Pluck("session_id", &sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}
