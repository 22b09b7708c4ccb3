package websocket

import (
	"encoding/json"
	"fmt"
	"time"
)

// EventType is what happened to an entity
type EventType string

const (
	EventTypeCreated  EventType = "created"
	EventTypeUpdated  EventType = "updated"
	EventTypeDeleted  EventType = "deleted"
	EventTypeClosed   EventType = "closed"
	EventTypeReversed EventType = "reversed"
	EventTypePaid     EventType = "paid"
	EventTypeAdjusted EventType = "adjusted"
)

// EntityType is the ledger entity an event is about
type EntityType string

const (
	EntityTypeLoan              EntityType = "loan"
	EntityTypePayment           EntityType = "payment"
	EntityTypeChitGroup         EntityType = "chit_group"
	EntityTypeChitLink          EntityType = "chit_link"
	EntityTypeAdjustment        EntityType = "adjustment"
	EntityTypeDirectChitPayment EntityType = "direct_chit_payment"
	EntityTypeIndividualChit    EntityType = "chit"
	EntityTypeScheduleLine      EntityType = "chit_schedule"
)

// ParseEntityType accepts the wire name of an entity type
func ParseEntityType(s string) (EntityType, bool) {
	switch e := EntityType(s); e {
	case EntityTypeLoan, EntityTypePayment, EntityTypeChitGroup, EntityTypeChitLink,
		EntityTypeAdjustment, EntityTypeDirectChitPayment, EntityTypeIndividualChit, EntityTypeScheduleLine:
		return e, true
	}
	return "", false
}

// Event is the message pushed to clients
// Format: { type, entity, payload, timestamp }
type Event struct {
	Type      string      `json:"type"`      // e.g. "adjustment.reversed"
	Entity    EntityType  `json:"entity"`    // e.g. "adjustment"
	Payload   interface{} `json:"payload"`   // the entity after the change
	Timestamp time.Time   `json:"timestamp"` // UTC
}

// NewEvent creates an event stamped with the current time
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

func LoanCreated(payload interface{}) Event {
	return NewEvent(EventTypeCreated, EntityTypeLoan, payload)
}

func LoanUpdated(payload interface{}) Event {
	return NewEvent(EventTypeUpdated, EntityTypeLoan, payload)
}

func LoanClosed(payload interface{}) Event {
	return NewEvent(EventTypeClosed, EntityTypeLoan, payload)
}

func PaymentCreated(payload interface{}) Event {
	return NewEvent(EventTypeCreated, EntityTypePayment, payload)
}

func ChitGroupCreated(payload interface{}) Event {
	return NewEvent(EventTypeCreated, EntityTypeChitGroup, payload)
}

func ChitGroupUpdated(payload interface{}) Event {
	return NewEvent(EventTypeUpdated, EntityTypeChitGroup, payload)
}

func ChitGroupClosed(payload interface{}) Event {
	return NewEvent(EventTypeClosed, EntityTypeChitGroup, payload)
}

func ChitLinkCreated(payload interface{}) Event {
	return NewEvent(EventTypeCreated, EntityTypeChitLink, payload)
}

func ChitLinkDeleted(payload interface{}) Event {
	return NewEvent(EventTypeDeleted, EntityTypeChitLink, payload)
}

// AdjustmentCreated creates an adjustment.created event
func AdjustmentCreated(payload interface{}) Event {
	return NewEvent(EventTypeCreated, EntityTypeAdjustment, payload)
}

// AdjustmentReversed carries the compensating entry
func AdjustmentReversed(payload interface{}) Event {
	return NewEvent(EventTypeReversed, EntityTypeAdjustment, payload)
}

func DirectChitPaymentCreated(payload interface{}) Event {
	return NewEvent(EventTypeCreated, EntityTypeDirectChitPayment, payload)
}

func IndividualChitCreated(payload interface{}) Event {
	return NewEvent(EventTypeCreated, EntityTypeIndividualChit, payload)
}

func IndividualChitUpdated(payload interface{}) Event {
	return NewEvent(EventTypeUpdated, EntityTypeIndividualChit, payload)
}

func IndividualChitClosed(payload interface{}) Event {
	return NewEvent(EventTypeClosed, EntityTypeIndividualChit, payload)
}

// ScheduleLinePaid is sent after a cash payment against a schedule line
func ScheduleLinePaid(payload interface{}) Event {
	return NewEvent(EventTypePaid, EntityTypeScheduleLine, payload)
}

// ScheduleLineAdjusted is sent after loan interest settled a schedule line
func ScheduleLineAdjusted(payload interface{}) Event {
	return NewEvent(EventTypeAdjusted, EntityTypeScheduleLine, payload)
}
