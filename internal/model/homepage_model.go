package model

import (
	"time"

	"github.com/google/uuid"
)

type HomepageContent struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ContentType string    `gorm:"type:varchar(50);not null;index"`
	Title       string    `gorm:"type:varchar(200)"`
	Content     string    `gorm:"type:text"`
	ImageURL    string    `gorm:"type:varchar(255)"`
	LinkURL     string    `gorm:"type:varchar(255)"`
	SortOrder   int       `gorm:"default:0"`
	IsActive    bool      `gorm:"default:true"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (HomepageContent) TableName() string {
	return "homepage_contents"
}
