package service

import (
	"context"
	"fmt"
	"time"

	"astro-observer/internal/dto"
	"astro-observer/internal/entity"
	"astro-observer/internal/pkg/logger"
	"astro-observer/internal/repository/specification"
	"astro-observer/internal/repository/unitofwork"

	"astro-observer/pkg/events"
	pktNats "astro-observer/pkg/nats"
	"astro-observer/pkg/vision"

	"github.com/google/uuid"
)

const defaultHistoryLimit = 20

type IGalaxyService interface {
	Classify(ctx context.Context, userId uuid.UUID, imagePath string) (*dto.GalaxyClassifyResult, error)
	History(ctx context.Context, userId uuid.UUID, limit int) ([]*dto.GalaxyHistoryItem, error)
}

type galaxyService struct {
	uowFactory     unitofwork.RepositoryFactory
	classifier     vision.Classifier
	eventPublisher *pktNats.Publisher
	logger         logger.ILogger
}

func NewGalaxyService(uowFactory unitofwork.RepositoryFactory, classifier vision.Classifier, eventPublisher *pktNats.Publisher, log logger.ILogger) IGalaxyService {
	return &galaxyService{
		uowFactory:     uowFactory,
		classifier:     classifier,
		eventPublisher: eventPublisher,
		logger:         log,
	}
}

func (s *galaxyService) Classify(ctx context.Context, userId uuid.UUID, imagePath string) (*dto.GalaxyClassifyResult, error) {
	result, err := s.classifier.Classify(ctx, imagePath)
	if err != nil {
		return nil, fmt.Errorf("classification failed: %w", err)
	}

	record := &entity.GalaxyClassification{
		Id:             uuid.New(),
		UserId:         userId,
		ImagePath:      imagePath,
		PredictedClass: result.PredictedClass,
		ClassName:      result.ClassName,
		Confidence:     result.Confidence,
		CreatedAt:      time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.GalaxyRepository().Create(ctx, record); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.publishResultEvent(ctx, userId, record.Id)

	return &dto.GalaxyClassifyResult{
		PredictedClass: result.PredictedClass,
		ClassName:      result.ClassName,
		Confidence:     result.Confidence,
		AllPredictions: result.AllPredictions,
	}, nil
}

func (s *galaxyService) History(ctx context.Context, userId uuid.UUID, limit int) ([]*dto.GalaxyHistoryItem, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	records, err := uow.GalaxyRepository().FindAll(ctx,
		specification.ByUserID{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit},
	)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.GalaxyHistoryItem, 0, len(records))
	for _, r := range records {
		items = append(items, &dto.GalaxyHistoryItem{
			Id:             r.Id,
			ImagePath:      r.ImagePath,
			PredictedClass: r.PredictedClass,
			ClassName:      r.ClassName,
			Confidence:     r.Confidence,
			CreatedAt:      r.CreatedAt,
		})
	}
	return items, nil
}

func (s *galaxyService) publishResultEvent(ctx context.Context, userId, recordId uuid.UUID) {
	if s.eventPublisher == nil {
		return
	}
	event := events.BaseEvent{
		Type: events.TypeResultRecorded,
		Data: map[string]interface{}{
			"user_id":   userId,
			"record_id": recordId,
			"module":    "galaxy",
		},
		OccurredAt: time.Now(),
	}
	if err := s.eventPublisher.Publish(ctx, event); err != nil {
		s.logger.Warn("GalaxyService", "Failed to publish RESULT_RECORDED event", map[string]interface{}{"error": err.Error()})
	}
}
