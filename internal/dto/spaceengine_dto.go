package dto

import (
	"time"

	"github.com/google/uuid"
)

type SaveViewRequest struct {
	DataType        string                 `json:"data_type" validate:"required,oneof=galaxy constellation positioning"`
	SourceId        *uuid.UUID             `json:"source_id"`
	CelestialObject *string                `json:"celestial_object"`
	Ra              *float64               `json:"ra"`
	Dec             *float64               `json:"dec"`
	Distance        *float64               `json:"distance"`
	ViewData        map[string]interface{} `json:"view_data"`
}

type SpaceViewDTO struct {
	Id              uuid.UUID              `json:"id"`
	DataType        string                 `json:"data_type"`
	SourceId        *uuid.UUID             `json:"source_id"`
	CelestialObject *string                `json:"celestial_object"`
	Ra              *float64               `json:"ra"`
	Dec             *float64               `json:"dec"`
	Distance        *float64               `json:"distance"`
	ViewData        map[string]interface{} `json:"view_data"`
	CreatedAt       time.Time              `json:"created_at"`
}
