package dto

import (
	"time"

	"github.com/google/uuid"
)

type ConstellationDetectionDTO struct {
	Class      string  `json:"class"`
	Confidence float64 `json:"confidence"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
}

type ConstellationRecognizeResult struct {
	DetectedConstellations []ConstellationDetectionDTO `json:"detected_constellations"`
	Count                  int                         `json:"count"`
	Confidence             float64                     `json:"confidence"`
}

type ConstellationHistoryItem struct {
	Id                     uuid.UUID                   `json:"id"`
	ImagePath              string                      `json:"image_path"`
	DetectedConstellations []ConstellationDetectionDTO `json:"detected_constellations"`
	Confidence             float64                     `json:"confidence"`
	CreatedAt              time.Time                   `json:"created_at"`
}
