package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
)

// ChatTurn is one stored message of a TianXun AI conversation. The session id
// is client-generated, so it stays a plain string rather than a uuid.
type ChatTurn struct {
	Id            uuid.UUID
	UserId        uuid.UUID
	SessionId     string
	Role          string
	Content       string
	ModuleContext *string // galaxy/constellation/positioning/space_engine
	CreatedAt     time.Time
}
