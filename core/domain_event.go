package core

import (
	"time"
)

// DomainEvents is a slice of DomainEvent instances
type DomainEvents = []DomainEvent

// DomainEvent represents a business fact produced by a use case. Events are
// return values only; the core never consumes them.
type DomainEvent interface {
	// EventType returns the string identifier for this event type
	EventType() string
	// HasOccurredAt returns when this event occurred
	HasOccurredAt() time.Time
}
