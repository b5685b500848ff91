package implementation

import (
	"context"

	"astro-observer/internal/entity"
	"astro-observer/internal/mapper"
	"astro-observer/internal/model"
	"astro-observer/internal/repository/contract"
	"astro-observer/internal/repository/specification"

	"gorm.io/gorm"
)

type SpaceViewRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SpaceViewMapper
}

func NewSpaceViewRepository(db *gorm.DB) contract.SpaceViewRepository {
	return &SpaceViewRepositoryImpl{db: db, mapper: mapper.NewSpaceViewMapper()}
}

func (r *SpaceViewRepositoryImpl) Create(ctx context.Context, view *entity.SpaceView) error {
	m := r.mapper.ToModel(view)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*view = *r.mapper.ToEntity(m)
	return nil
}

func (r *SpaceViewRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SpaceView, error) {
	var models []*model.SpaceView
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	out := make([]*entity.SpaceView, len(models))
	for i, m := range models {
		out[i] = r.mapper.ToEntity(m)
	}
	return out, nil
}
