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

// Galaxy

type GalaxyRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ObservationMapper
}

func NewGalaxyRepository(db *gorm.DB) contract.GalaxyRepository {
	return &GalaxyRepositoryImpl{db: db, mapper: mapper.NewObservationMapper()}
}

func (r *GalaxyRepositoryImpl) Create(ctx context.Context, record *entity.GalaxyClassification) error {
	m := r.mapper.GalaxyToModel(record)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*record = *r.mapper.GalaxyToEntity(m)
	return nil
}

func (r *GalaxyRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.GalaxyClassification, error) {
	var models []*model.GalaxyClassification
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	out := make([]*entity.GalaxyClassification, len(models))
	for i, m := range models {
		out[i] = r.mapper.GalaxyToEntity(m)
	}
	return out, nil
}

// Constellation

type ConstellationRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ObservationMapper
}

func NewConstellationRepository(db *gorm.DB) contract.ConstellationRepository {
	return &ConstellationRepositoryImpl{db: db, mapper: mapper.NewObservationMapper()}
}

func (r *ConstellationRepositoryImpl) Create(ctx context.Context, record *entity.ConstellationRecognition) error {
	m := r.mapper.ConstellationToModel(record)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*record = *r.mapper.ConstellationToEntity(m)
	return nil
}

func (r *ConstellationRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ConstellationRecognition, error) {
	var models []*model.ConstellationRecognition
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	out := make([]*entity.ConstellationRecognition, len(models))
	for i, m := range models {
		out[i] = r.mapper.ConstellationToEntity(m)
	}
	return out, nil
}

// Positioning

type PositioningRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ObservationMapper
}

func NewPositioningRepository(db *gorm.DB) contract.PositioningRepository {
	return &PositioningRepositoryImpl{db: db, mapper: mapper.NewObservationMapper()}
}

func (r *PositioningRepositoryImpl) Create(ctx context.Context, record *entity.CelestialPositioning) error {
	m := r.mapper.PositioningToModel(record)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*record = *r.mapper.PositioningToEntity(m)
	return nil
}

func (r *PositioningRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CelestialPositioning, error) {
	var models []*model.CelestialPositioning
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	out := make([]*entity.CelestialPositioning, len(models))
	for i, m := range models {
		out[i] = r.mapper.PositioningToEntity(m)
	}
	return out, nil
}
