package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"astro-observer/internal/dto"
	"astro-observer/internal/entity"
	"astro-observer/internal/pkg/logger"
	"astro-observer/internal/repository/specification"
	"astro-observer/internal/repository/unitofwork"

	"astro-observer/pkg/astrometry"
	"astro-observer/pkg/events"
	pktNats "astro-observer/pkg/nats"

	"github.com/google/uuid"
)

type IPositioningService interface {
	Solve(ctx context.Context, userId uuid.UUID, imagePath string) (*dto.PositioningSolveResult, error)
	History(ctx context.Context, userId uuid.UUID, limit int) ([]*dto.PositioningHistoryItem, error)
}

type positioningService struct {
	uowFactory     unitofwork.RepositoryFactory
	solver         *astrometry.Client
	eventPublisher *pktNats.Publisher
	logger         logger.ILogger
}

func NewPositioningService(uowFactory unitofwork.RepositoryFactory, solver *astrometry.Client, eventPublisher *pktNats.Publisher, log logger.ILogger) IPositioningService {
	return &positioningService{
		uowFactory:     uowFactory,
		solver:         solver,
		eventPublisher: eventPublisher,
		logger:         log,
	}
}

// Solve runs a plate-solve attempt and persists the outcome either way. A
// field the solver gives up on is still a valid observation record, so an
// unsolved result is not an error for the caller.
func (s *positioningService) Solve(ctx context.Context, userId uuid.UUID, imagePath string) (*dto.PositioningSolveResult, error) {
	result, err := s.solver.SolveField(ctx, imagePath)
	if err != nil && !errors.Is(err, astrometry.ErrUnsolved) {
		if result == nil {
			return nil, fmt.Errorf("plate solving failed: %w", err)
		}
		// Timed out: fall through and record the failed attempt.
	}

	record := &entity.CelestialPositioning{
		Id:        uuid.New(),
		UserId:    userId,
		ImagePath: imagePath,
		Solved:    result.Solved,
		CreatedAt: time.Now(),
	}
	solveTime := result.SolveTime
	record.SolveTime = &solveTime

	if result.Solved && result.Calibration != nil {
		cal := result.Calibration
		record.Ra = &cal.Ra
		record.Dec = &cal.Dec
		record.FieldWidth = &cal.FieldWidth
		record.FieldHeight = &cal.FieldHeight
		record.Orientation = &cal.Orientation
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.PositioningRepository().Create(ctx, record); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.publishResultEvent(ctx, userId, record.Id, record.Solved)

	return &dto.PositioningSolveResult{
		Solved:      record.Solved,
		Ra:          record.Ra,
		Dec:         record.Dec,
		FieldWidth:  record.FieldWidth,
		FieldHeight: record.FieldHeight,
		Orientation: record.Orientation,
		SolveTime:   record.SolveTime,
	}, nil
}

func (s *positioningService) History(ctx context.Context, userId uuid.UUID, limit int) ([]*dto.PositioningHistoryItem, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	records, err := uow.PositioningRepository().FindAll(ctx,
		specification.ByUserID{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit},
	)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.PositioningHistoryItem, 0, len(records))
	for _, r := range records {
		items = append(items, &dto.PositioningHistoryItem{
			Id:          r.Id,
			ImagePath:   r.ImagePath,
			Solved:      r.Solved,
			Ra:          r.Ra,
			Dec:         r.Dec,
			FieldWidth:  r.FieldWidth,
			FieldHeight: r.FieldHeight,
			Orientation: r.Orientation,
			SolveTime:   r.SolveTime,
			CreatedAt:   r.CreatedAt,
		})
	}
	return items, nil
}

func (s *positioningService) publishResultEvent(ctx context.Context, userId, recordId uuid.UUID, solved bool) {
	if s.eventPublisher == nil {
		return
	}
	event := events.BaseEvent{
		Type: events.TypeResultRecorded,
		Data: map[string]interface{}{
			"user_id":   userId,
			"record_id": recordId,
			"module":    "positioning",
			"solved":    solved,
		},
		OccurredAt: time.Now(),
	}
	if err := s.eventPublisher.Publish(ctx, event); err != nil {
		s.logger.Warn("PositioningService", "Failed to publish RESULT_RECORDED event", map[string]interface{}{"error": err.Error()})
	}
}
