package events

import "time"

// Event is anything publishable on the NATS bus.
type Event interface {
	EventType() string
	Payload() interface{}
}

// BaseEvent is the envelope used for auth and observation activity.
type BaseEvent struct {
	Type       string                 `json:"type"`
	Data       map[string]interface{} `json:"data"`
	OccurredAt time.Time              `json:"occurred_at"`
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() interface{} {
	return e
}

const (
	TypeUserLogin      = "USER_LOGIN"
	TypeUserRegistered = "USER_REGISTERED"
	TypeResultRecorded = "RESULT_RECORDED"
)
