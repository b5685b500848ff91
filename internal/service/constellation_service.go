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

type IConstellationService interface {
	Recognize(ctx context.Context, userId uuid.UUID, imagePath string) (*dto.ConstellationRecognizeResult, error)
	History(ctx context.Context, userId uuid.UUID, limit int) ([]*dto.ConstellationHistoryItem, error)
}

type constellationService struct {
	uowFactory     unitofwork.RepositoryFactory
	detector       vision.Detector
	eventPublisher *pktNats.Publisher
	logger         logger.ILogger
}

func NewConstellationService(uowFactory unitofwork.RepositoryFactory, detector vision.Detector, eventPublisher *pktNats.Publisher, log logger.ILogger) IConstellationService {
	return &constellationService{
		uowFactory:     uowFactory,
		detector:       detector,
		eventPublisher: eventPublisher,
		logger:         log,
	}
}

func (s *constellationService) Recognize(ctx context.Context, userId uuid.UUID, imagePath string) (*dto.ConstellationRecognizeResult, error) {
	detections, err := s.detector.Detect(ctx, imagePath)
	if err != nil {
		return nil, fmt.Errorf("recognition failed: %w", err)
	}

	entityDetections := make([]entity.ConstellationDetection, 0, len(detections))
	var confidenceSum float64
	for _, d := range detections {
		entityDetections = append(entityDetections, entity.ConstellationDetection{
			Class:      d.Class,
			Confidence: d.Confidence,
			X:          d.X,
			Y:          d.Y,
			Width:      d.Width,
			Height:     d.Height,
		})
		confidenceSum += d.Confidence
	}

	avgConfidence := 0.0
	if len(detections) > 0 {
		avgConfidence = confidenceSum / float64(len(detections))
	}

	record := &entity.ConstellationRecognition{
		Id:         uuid.New(),
		UserId:     userId,
		ImagePath:  imagePath,
		Detections: entityDetections,
		Confidence: avgConfidence,
		CreatedAt:  time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.ConstellationRepository().Create(ctx, record); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.publishResultEvent(ctx, userId, record.Id)

	return &dto.ConstellationRecognizeResult{
		DetectedConstellations: toDetectionDTOs(entityDetections),
		Count:                  len(entityDetections),
		Confidence:             avgConfidence,
	}, nil
}

func (s *constellationService) History(ctx context.Context, userId uuid.UUID, limit int) ([]*dto.ConstellationHistoryItem, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	records, err := uow.ConstellationRepository().FindAll(ctx,
		specification.ByUserID{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit},
	)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.ConstellationHistoryItem, 0, len(records))
	for _, r := range records {
		items = append(items, &dto.ConstellationHistoryItem{
			Id:                     r.Id,
			ImagePath:              r.ImagePath,
			DetectedConstellations: toDetectionDTOs(r.Detections),
			Confidence:             r.Confidence,
			CreatedAt:              r.CreatedAt,
		})
	}
	return items, nil
}

func (s *constellationService) publishResultEvent(ctx context.Context, userId, recordId uuid.UUID) {
	if s.eventPublisher == nil {
		return
	}
	event := events.BaseEvent{
		Type: events.TypeResultRecorded,
		Data: map[string]interface{}{
			"user_id":   userId,
			"record_id": recordId,
			"module":    "constellation",
		},
		OccurredAt: time.Now(),
	}
	if err := s.eventPublisher.Publish(ctx, event); err != nil {
		s.logger.Warn("ConstellationService", "Failed to publish RESULT_RECORDED event", map[string]interface{}{"error": err.Error()})
	}
}

func toDetectionDTOs(detections []entity.ConstellationDetection) []dto.ConstellationDetectionDTO {
	out := make([]dto.ConstellationDetectionDTO, 0, len(detections))
	for _, d := range detections {
		out = append(out, dto.ConstellationDetectionDTO{
			Class:      d.Class,
			Confidence: d.Confidence,
			X:          d.X,
			Y:          d.Y,
			Width:      d.Width,
			Height:     d.Height,
		})
	}
	return out
}
