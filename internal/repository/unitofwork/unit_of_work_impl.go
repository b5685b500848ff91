package unitofwork

import (
	"context"
	"fmt"

	"astro-observer/internal/repository/contract"
	"astro-observer/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB // active transaction, nil outside Begin/Commit
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) UserRepository() contract.UserRepository {
	return implementation.NewUserRepository(u.getDB())
}

func (u *UnitOfWorkImpl) GalaxyRepository() contract.GalaxyRepository {
	return implementation.NewGalaxyRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ConstellationRepository() contract.ConstellationRepository {
	return implementation.NewConstellationRepository(u.getDB())
}

func (u *UnitOfWorkImpl) PositioningRepository() contract.PositioningRepository {
	return implementation.NewPositioningRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ChatRepository() contract.ChatRepository {
	return implementation.NewChatRepository(u.getDB())
}

func (u *UnitOfWorkImpl) HomepageContentRepository() contract.HomepageContentRepository {
	return implementation.NewHomepageContentRepository(u.getDB())
}

func (u *UnitOfWorkImpl) SpaceViewRepository() contract.SpaceViewRepository {
	return implementation.NewSpaceViewRepository(u.getDB())
}
