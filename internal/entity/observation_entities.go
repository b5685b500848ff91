package entity

import (
	"time"

	"github.com/google/uuid"
)

// GalaxyClassification is one classification record: which Galaxy10 class the
// remote model picked for an uploaded image and with what confidence.
type GalaxyClassification struct {
	Id             uuid.UUID
	UserId         uuid.UUID
	ImagePath      string
	PredictedClass int
	ClassName      string
	Confidence     float64
	CreatedAt      time.Time
}

// ConstellationDetection is a single detected constellation with its
// bounding box, as reported by the detection API.
type ConstellationDetection struct {
	Class      string  `json:"class"`
	Confidence float64 `json:"confidence"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
}

type ConstellationRecognition struct {
	Id         uuid.UUID
	UserId     uuid.UUID
	ImagePath  string
	Detections []ConstellationDetection
	Confidence float64 // average over detections, 0 when none
	CreatedAt  time.Time
}

// CelestialPositioning records one plate-solve attempt. Calibration fields
// are nil when the solver gave up.
type CelestialPositioning struct {
	Id          uuid.UUID
	UserId      uuid.UUID
	ImagePath   string
	Ra          *float64
	Dec         *float64
	FieldWidth  *float64
	FieldHeight *float64
	Orientation *float64
	Solved      bool
	SolveTime   *float64 // seconds
	CreatedAt   time.Time
}
