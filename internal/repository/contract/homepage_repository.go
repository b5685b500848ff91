package contract

import (
	"context"

	"astro-observer/internal/entity"
	"astro-observer/internal/repository/specification"
)

type HomepageContentRepository interface {
	Create(ctx context.Context, content *entity.HomepageContent) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.HomepageContent, error)
}
