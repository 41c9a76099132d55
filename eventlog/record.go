// Package eventlog maps domain events to flat storable records. The core
// returns events instead of publishing them; hosts that keep an audit or
// outbox table use these records as the stable scalar shape.
package eventlog

import (
	"errors"
	"time"

	jsoniter "github.com/json-iterator/go"
)

var ErrInvalidPayloadJSON = errors.New("payload json is not valid")

// Records is an alias type for a slice of Record
type Records = []Record

// Record is a DTO built on scalars, agnostic of how domain events are
// implemented. While its properties are exported, it should only be
// constructed with BuildRecord or RecordFrom.
type Record struct {
	EventType   string
	OccurredAt  time.Time
	PayloadJSON []byte
}

// BuildRecord is a factory method for Record.
// Returns an error if payloadJSON is not valid JSON.
func BuildRecord(eventType string, occurredAt time.Time, payloadJSON []byte) (Record, error) {
	if !jsoniter.ConfigFastest.Valid(payloadJSON) {
		return Record{}, ErrInvalidPayloadJSON
	}

	return Record{
		EventType:   eventType,
		OccurredAt:  occurredAt,
		PayloadJSON: payloadJSON,
	}, nil
}
