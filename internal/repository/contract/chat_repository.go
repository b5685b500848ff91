package contract

import (
	"context"

	"astro-observer/internal/entity"
	"astro-observer/internal/repository/specification"

	"github.com/google/uuid"
)

type ChatRepository interface {
	Create(ctx context.Context, turn *entity.ChatTurn) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatTurn, error)
	// DistinctSessions returns the session ids a user has chatted under.
	DistinctSessions(ctx context.Context, userId uuid.UUID) ([]string, error)
}
