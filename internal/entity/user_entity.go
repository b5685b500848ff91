package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id           uuid.UUID
	Username     string
	Email        string
	PasswordHash string
	Nickname     string
	AvatarURL    *string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Rolling counter maintained by the usage consumer.
	AiDailyUsage          int
	AiDailyUsageLastReset time.Time
}
