package contract

import (
	"context"

	"astro-observer/internal/entity"
	"astro-observer/internal/repository/specification"

	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, user *entity.User) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error)
	IncrementAiUsage(ctx context.Context, id uuid.UUID) error
}
