package service

import (
	"context"
	"time"

	"astro-observer/internal/dto"
	"astro-observer/internal/entity"
	"astro-observer/internal/repository/specification"
	"astro-observer/internal/repository/unitofwork"

	"github.com/google/uuid"
)

const spaceDataLimit = 50

type ISpaceEngineService interface {
	SaveView(ctx context.Context, userId uuid.UUID, req *dto.SaveViewRequest) (*dto.SpaceViewDTO, error)
	GetData(ctx context.Context, userId uuid.UUID, dataType string) ([]*dto.SpaceViewDTO, error)
}

type spaceEngineService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewSpaceEngineService(uowFactory unitofwork.RepositoryFactory) ISpaceEngineService {
	return &spaceEngineService{uowFactory: uowFactory}
}

func (s *spaceEngineService) SaveView(ctx context.Context, userId uuid.UUID, req *dto.SaveViewRequest) (*dto.SpaceViewDTO, error) {
	view := &entity.SpaceView{
		Id:              uuid.New(),
		UserId:          userId,
		DataType:        req.DataType,
		SourceId:        req.SourceId,
		CelestialObject: req.CelestialObject,
		Ra:              req.Ra,
		Dec:             req.Dec,
		Distance:        req.Distance,
		ViewData:        req.ViewData,
		CreatedAt:       time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.SpaceViewRepository().Create(ctx, view); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return toSpaceViewDTO(view), nil
}

func (s *spaceEngineService) GetData(ctx context.Context, userId uuid.UUID, dataType string) ([]*dto.SpaceViewDTO, error) {
	specs := []specification.Specification{
		specification.ByUserID{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: spaceDataLimit},
	}
	if dataType != "" {
		specs = append([]specification.Specification{specification.Filter("data_type", dataType)}, specs...)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	views, err := uow.SpaceViewRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.SpaceViewDTO, 0, len(views))
	for _, v := range views {
		items = append(items, toSpaceViewDTO(v))
	}
	return items, nil
}

func toSpaceViewDTO(v *entity.SpaceView) *dto.SpaceViewDTO {
	return &dto.SpaceViewDTO{
		Id:              v.Id,
		DataType:        v.DataType,
		SourceId:        v.SourceId,
		CelestialObject: v.CelestialObject,
		Ra:              v.Ra,
		Dec:             v.Dec,
		Distance:        v.Distance,
		ViewData:        v.ViewData,
		CreatedAt:       v.CreatedAt,
	}
}
