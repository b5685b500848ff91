package unitofwork

import (
	"context"

	"astro-observer/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	GalaxyRepository() contract.GalaxyRepository
	ConstellationRepository() contract.ConstellationRepository
	PositioningRepository() contract.PositioningRepository
	ChatRepository() contract.ChatRepository
	HomepageContentRepository() contract.HomepageContentRepository
	SpaceViewRepository() contract.SpaceViewRepository
}
