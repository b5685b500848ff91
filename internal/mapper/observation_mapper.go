package mapper

import (
	"encoding/json"

	"astro-observer/internal/entity"
	"astro-observer/internal/model"

	"gorm.io/datatypes"
)

type ObservationMapper struct{}

func NewObservationMapper() *ObservationMapper {
	return &ObservationMapper{}
}

// Galaxy

func (m *ObservationMapper) GalaxyToEntity(r *model.GalaxyClassification) *entity.GalaxyClassification {
	if r == nil {
		return nil
	}
	return &entity.GalaxyClassification{
		Id:             r.Id,
		UserId:         r.UserId,
		ImagePath:      r.ImagePath,
		PredictedClass: r.PredictedClass,
		ClassName:      r.ClassName,
		Confidence:     r.Confidence,
		CreatedAt:      r.CreatedAt,
	}
}

func (m *ObservationMapper) GalaxyToModel(r *entity.GalaxyClassification) *model.GalaxyClassification {
	if r == nil {
		return nil
	}
	return &model.GalaxyClassification{
		Id:             r.Id,
		UserId:         r.UserId,
		ImagePath:      r.ImagePath,
		PredictedClass: r.PredictedClass,
		ClassName:      r.ClassName,
		Confidence:     r.Confidence,
		CreatedAt:      r.CreatedAt,
	}
}

// Constellation
// Detections live in a jsonb column; unmarshal failures degrade to an empty
// list rather than failing the read.

func (m *ObservationMapper) ConstellationToEntity(r *model.ConstellationRecognition) *entity.ConstellationRecognition {
	if r == nil {
		return nil
	}
	var detections []entity.ConstellationDetection
	if len(r.Detections) > 0 {
		_ = json.Unmarshal(r.Detections, &detections)
	}
	return &entity.ConstellationRecognition{
		Id:         r.Id,
		UserId:     r.UserId,
		ImagePath:  r.ImagePath,
		Detections: detections,
		Confidence: r.Confidence,
		CreatedAt:  r.CreatedAt,
	}
}

func (m *ObservationMapper) ConstellationToModel(r *entity.ConstellationRecognition) *model.ConstellationRecognition {
	if r == nil {
		return nil
	}
	raw, _ := json.Marshal(r.Detections)
	return &model.ConstellationRecognition{
		Id:         r.Id,
		UserId:     r.UserId,
		ImagePath:  r.ImagePath,
		Detections: datatypes.JSON(raw),
		Confidence: r.Confidence,
		CreatedAt:  r.CreatedAt,
	}
}

// Positioning

func (m *ObservationMapper) PositioningToEntity(r *model.CelestialPositioning) *entity.CelestialPositioning {
	if r == nil {
		return nil
	}
	return &entity.CelestialPositioning{
		Id:          r.Id,
		UserId:      r.UserId,
		ImagePath:   r.ImagePath,
		Ra:          r.Ra,
		Dec:         r.Dec,
		FieldWidth:  r.FieldWidth,
		FieldHeight: r.FieldHeight,
		Orientation: r.Orientation,
		Solved:      r.Solved,
		SolveTime:   r.SolveTime,
		CreatedAt:   r.CreatedAt,
	}
}

func (m *ObservationMapper) PositioningToModel(r *entity.CelestialPositioning) *model.CelestialPositioning {
	if r == nil {
		return nil
	}
	return &model.CelestialPositioning{
		Id:          r.Id,
		UserId:      r.UserId,
		ImagePath:   r.ImagePath,
		Ra:          r.Ra,
		Dec:         r.Dec,
		FieldWidth:  r.FieldWidth,
		FieldHeight: r.FieldHeight,
		Orientation: r.Orientation,
		Solved:      r.Solved,
		SolveTime:   r.SolveTime,
		CreatedAt:   r.CreatedAt,
	}
}
