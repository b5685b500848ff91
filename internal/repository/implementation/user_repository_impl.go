package implementation

import (
	"context"
	"errors"
	"time"

	"astro-observer/internal/entity"
	"astro-observer/internal/mapper"
	"astro-observer/internal/model"
	"astro-observer/internal/repository/contract"
	"astro-observer/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.UserMapper
}

func NewUserRepository(db *gorm.DB) contract.UserRepository {
	return &UserRepositoryImpl{
		db:     db,
		mapper: mapper.NewUserMapper(),
	}
}

func applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *UserRepositoryImpl) Create(ctx context.Context, user *entity.User) error {
	m := r.mapper.ToModel(user)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*user = *r.mapper.ToEntity(m)
	return nil
}

func (r *UserRepositoryImpl) Update(ctx context.Context, user *entity.User) error {
	m := r.mapper.ToModel(user)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*user = *r.mapper.ToEntity(m)
	return nil
}

func (r *UserRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	var m model.User
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

// IncrementAiUsage bumps the daily counter, resetting it when the last reset
// was before today. Runs as a single UPDATE to stay safe under concurrency.
func (r *UserRepositoryImpl) IncrementAiUsage(ctx context.Context, id uuid.UUID) error {
	today := time.Now().Truncate(24 * time.Hour)
	return r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"ai_daily_usage": gorm.Expr(
				"CASE WHEN ai_daily_usage_last_reset < ? THEN 1 ELSE ai_daily_usage + 1 END", today),
			"ai_daily_usage_last_reset": gorm.Expr(
				"CASE WHEN ai_daily_usage_last_reset < ? THEN ? ELSE ai_daily_usage_last_reset END", today, today),
		}).Error
}
