package dto

import (
	"time"

	"github.com/google/uuid"
)

type GalaxyClassifyResult struct {
	PredictedClass int                `json:"predicted_class"`
	ClassName      string             `json:"class_name"`
	Confidence     float64            `json:"confidence"`
	AllPredictions map[string]float64 `json:"all_predictions"`
}

type GalaxyHistoryItem struct {
	Id             uuid.UUID `json:"id"`
	ImagePath      string    `json:"image_path"`
	PredictedClass int       `json:"predicted_class"`
	ClassName      string    `json:"class_name"`
	Confidence     float64   `json:"confidence"`
	CreatedAt      time.Time `json:"created_at"`
}
