package dto

import "github.com/google/uuid"

// AiUsageMessage is the payload published on the usage topic after every
// answered chat turn.
type AiUsageMessage struct {
	UserId uuid.UUID `json:"user_id"`
}
