package entity

import (
	"time"

	"github.com/google/uuid"
)

// SpaceView is a saved camera state / object bookmark from the space-engine
// page, optionally linked to the record that produced it.
type SpaceView struct {
	Id              uuid.UUID
	UserId          uuid.UUID
	DataType        string // galaxy/constellation/positioning
	SourceId        *uuid.UUID
	CelestialObject *string
	Ra              *float64
	Dec             *float64
	Distance        *float64 // light years
	ViewData        map[string]interface{}
	CreatedAt       time.Time
}
