package model

import (
	"time"

	"github.com/google/uuid"
)

type ChatTurn struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId        uuid.UUID `gorm:"type:uuid;not null;index"`
	SessionId     string    `gorm:"type:varchar(100);not null;index"`
	Role          string    `gorm:"type:varchar(20);not null"`
	Content       string    `gorm:"type:text;not null"`
	ModuleContext *string   `gorm:"type:varchar(50)"`
	CreatedAt     time.Time `gorm:"autoCreateTime;index"`
}

func (ChatTurn) TableName() string {
	return "tianxun_ai_chats"
}
