package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id                    uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Username              string    `gorm:"type:varchar(80);uniqueIndex;not null"`
	Email                 string    `gorm:"type:varchar(120);uniqueIndex;not null"`
	PasswordHash          string    `gorm:"type:varchar(255);not null"`
	Nickname              string    `gorm:"type:varchar(80);not null"`
	AvatarURL             *string   `gorm:"type:varchar(255)"`
	AiDailyUsage          int       `gorm:"default:0"`
	AiDailyUsageLastReset time.Time
	CreatedAt             time.Time `gorm:"autoCreateTime"`
	UpdatedAt             time.Time `gorm:"autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}
