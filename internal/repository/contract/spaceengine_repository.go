package contract

import (
	"context"

	"astro-observer/internal/entity"
	"astro-observer/internal/repository/specification"
)

type SpaceViewRepository interface {
	Create(ctx context.Context, view *entity.SpaceView) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SpaceView, error)
}
