package events

import "time"

// Event codes emitted by the services. Subscribers use them to react to
// collection changes (e.g. tag cache invalidation).
const (
	PromptCreated    = "PROMPT_CREATED"
	PromptUpdated    = "PROMPT_UPDATED"
	PromptMovedToBin = "PROMPT_MOVED_TO_BIN"
	PromptRestored   = "PROMPT_RESTORED"
	RecycleBinPurged = "RECYCLE_BIN_PURGED"
	CategoryCreated  = "CATEGORY_CREATED"
	CategoryUpdated  = "CATEGORY_UPDATED"
	CategoryDeleted  = "CATEGORY_DELETED"
)

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g. "PROMPT_CREATED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
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
