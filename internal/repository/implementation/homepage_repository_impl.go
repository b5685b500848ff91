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

type HomepageContentRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.HomepageMapper
}

func NewHomepageContentRepository(db *gorm.DB) contract.HomepageContentRepository {
	return &HomepageContentRepositoryImpl{db: db, mapper: mapper.NewHomepageMapper()}
}

func (r *HomepageContentRepositoryImpl) Create(ctx context.Context, content *entity.HomepageContent) error {
	m := r.mapper.ToModel(content)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*content = *r.mapper.ToEntity(m)
	return nil
}

func (r *HomepageContentRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.HomepageContent, error) {
	var models []*model.HomepageContent
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	out := make([]*entity.HomepageContent, len(models))
	for i, m := range models {
		out[i] = r.mapper.ToEntity(m)
	}
	return out, nil
}
