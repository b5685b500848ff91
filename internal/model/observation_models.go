package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type GalaxyClassification struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId         uuid.UUID `gorm:"type:uuid;not null;index"`
	ImagePath      string    `gorm:"type:varchar(255);not null"`
	PredictedClass int       `gorm:"not null"`
	ClassName      string    `gorm:"type:varchar(100)"`
	Confidence     float64   `gorm:"not null"`
	CreatedAt      time.Time `gorm:"autoCreateTime;index"`
}

func (GalaxyClassification) TableName() string {
	return "galaxy_classifications"
}

type ConstellationRecognition struct {
	Id         uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId     uuid.UUID      `gorm:"type:uuid;not null;index"`
	ImagePath  string         `gorm:"type:varchar(255);not null"`
	Detections datatypes.JSON `gorm:"type:jsonb"`
	Confidence float64
	CreatedAt  time.Time `gorm:"autoCreateTime;index"`
}

func (ConstellationRecognition) TableName() string {
	return "constellation_recognitions"
}

type CelestialPositioning struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId      uuid.UUID `gorm:"type:uuid;not null;index"`
	ImagePath   string    `gorm:"type:varchar(255);not null"`
	Ra          *float64
	Dec         *float64
	FieldWidth  *float64
	FieldHeight *float64
	Orientation *float64
	Solved      bool `gorm:"default:false"`
	SolveTime   *float64
	CreatedAt   time.Time `gorm:"autoCreateTime;index"`
}

func (CelestialPositioning) TableName() string {
	return "celestial_positionings"
}
