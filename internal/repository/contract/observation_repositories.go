package contract

import (
	"context"

	"astro-observer/internal/entity"
	"astro-observer/internal/repository/specification"
)

type GalaxyRepository interface {
	Create(ctx context.Context, record *entity.GalaxyClassification) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.GalaxyClassification, error)
}

type ConstellationRepository interface {
	Create(ctx context.Context, record *entity.ConstellationRecognition) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ConstellationRecognition, error)
}

type PositioningRepository interface {
	Create(ctx context.Context, record *entity.CelestialPositioning) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CelestialPositioning, error)
}
