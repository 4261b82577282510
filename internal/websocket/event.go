package websocket

import (
	"encoding/json"
	"fmt"
	"time"
)

// EventType represents the type of event (created, updated, deleted)
type EventType string

const (
	EventTypeCreated EventType = "created"
	EventTypeUpdated EventType = "updated"
	EventTypeDeleted EventType = "deleted"
)

// EntityType represents the type of entity the event is about
type EntityType string

const (
	EntityTypeDebt    EntityType = "debt"
	EntityTypeSummary EntityType = "summary"
	EntityTypeIncome  EntityType = "income"
)

// Event represents a WebSocket event message sent to clients
// Format: { type, entity, payload, timestamp }
type Event struct {
	Type      string      `json:"type"`      // Combined type e.g. "debt.created"
	Entity    EntityType  `json:"entity"`    // Entity type e.g. "debt"
	Payload   interface{} `json:"payload"`   // Full entity data
	Timestamp time.Time   `json:"timestamp"` // Event timestamp
}

// NewEvent creates a new event with the given type, entity, and payload
func NewEvent(eventType EventType, entityType EntityType, payload interface{}) Event {
	return Event{
		Type:      fmt.Sprintf("%s.%s", entityType, eventType),
		Entity:    entityType,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	}
}

// ToJSON serializes the event to JSON bytes
func (e Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// EventPublisher pushes events to the connected clients of one user.
// Services hold one and treat a nil publisher as "push disabled".
type EventPublisher interface {
	Publish(userID string, event Event)
}

// DebtCreated creates a debt.created event
func DebtCreated(payload interface{}) Event {
	return NewEvent(EventTypeCreated, EntityTypeDebt, payload)
}

// DebtUpdated creates a debt.updated event
func DebtUpdated(payload interface{}) Event {
	return NewEvent(EventTypeUpdated, EntityTypeDebt, payload)
}

// DebtDeleted creates a debt.deleted event
func DebtDeleted(payload interface{}) Event {
	return NewEvent(EventTypeDeleted, EntityTypeDebt, payload)
}

// SummaryUpdated creates a summary.updated event
func SummaryUpdated(payload interface{}) Event {
	return NewEvent(EventTypeUpdated, EntityTypeSummary, payload)
}

// IncomeUpdated creates an income.updated event
func IncomeUpdated(payload interface{}) Event {
	return NewEvent(EventTypeUpdated, EntityTypeIncome, payload)
}
