package dto

import (
	"time"

	"github.com/google/uuid"
)

// PositioningSolveResult mirrors the positioning page contract: when Solved
// is false, the calibration fields stay absent.
type PositioningSolveResult struct {
	Solved      bool     `json:"solved"`
	Ra          *float64 `json:"ra,omitempty"`
	Dec         *float64 `json:"dec,omitempty"`
	FieldWidth  *float64 `json:"field_width,omitempty"`
	FieldHeight *float64 `json:"field_height,omitempty"`
	Orientation *float64 `json:"orientation,omitempty"`
	SolveTime   *float64 `json:"solve_time,omitempty"`
}

type PositioningHistoryItem struct {
	Id          uuid.UUID `json:"id"`
	ImagePath   string    `json:"image_path"`
	Solved      bool      `json:"solved"`
	Ra          *float64  `json:"ra"`
	Dec         *float64  `json:"dec"`
	FieldWidth  *float64  `json:"field_width"`
	FieldHeight *float64  `json:"field_height"`
	Orientation *float64  `json:"orientation"`
	SolveTime   *float64  `json:"solve_time"`
	CreatedAt   time.Time `json:"created_at"`
}
