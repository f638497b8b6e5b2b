package events

import (
	"errors"
	"time"
)

const (
	StreamName     = "EVENTS"
	SubjectPrefix  = "events."
	SubjectPattern = "events.>"

	TypeNoticeCreated = "NOTICE_CREATED"
)

// ErrInvalidPayload marks events that can never be processed. Consumers ack
// them instead of asking for redelivery.
var ErrInvalidPayload = errors.New("invalid event payload")

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "NOTICE_CREATED").
	EventType() string
	Payload() map[string]interface{}
	Timestamp() time.Time
}

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

func Subject(eventType string) string {
	return SubjectPrefix + eventType
}
