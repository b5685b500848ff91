package dto

import (
	"time"

	"github.com/google/uuid"
)

type ChatRequest struct {
	Message       string `json:"message" validate:"required"`
	SessionId     string `json:"session_id"`
	ModuleContext string `json:"module_context"`
}

type ChatResult struct {
	SessionId string `json:"session_id"`
	Message   string `json:"message"`
	Role      string `json:"role"`
}

type ChatHistoryItem struct {
	Id            uuid.UUID `json:"id"`
	SessionId     string    `json:"session_id"`
	Role          string    `json:"role"`
	Content       string    `json:"content"`
	ModuleContext *string   `json:"module_context"`
	CreatedAt     time.Time `json:"created_at"`
}
