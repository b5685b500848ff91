package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type SpaceView struct {
	Id              uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId          uuid.UUID  `gorm:"type:uuid;not null;index"`
	DataType        string     `gorm:"type:varchar(50);not null"`
	SourceId        *uuid.UUID `gorm:"type:uuid"`
	CelestialObject *string    `gorm:"type:varchar(100)"`
	Ra              *float64
	Dec             *float64
	Distance        *float64
	ViewData        datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt       time.Time      `gorm:"autoCreateTime;index"`
}

func (SpaceView) TableName() string {
	return "space_engine_data"
}
