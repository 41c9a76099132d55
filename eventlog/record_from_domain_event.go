package eventlog

import (
	"errors"

	jsoniter "github.com/json-iterator/go"

	"github.com/recordlane/releasecraft/core"
)

// ErrMappingToRecordFailed is returned when domain event serialization fails.
var ErrMappingToRecordFailed = errors.New("mapping to record failed for domain event")

// RecordFrom converts a DomainEvent to a storable Record.
func RecordFrom(event core.DomainEvent) (Record, error) {
	payloadJSON, err := jsoniter.ConfigFastest.Marshal(event)
	if err != nil {
		return Record{}, errors.Join(ErrMappingToRecordFailed, err)
	}

	record, err := BuildRecord(event.EventType(), event.HasOccurredAt(), payloadJSON)
	if err != nil {
		return Record{}, errors.Join(ErrMappingToRecordFailed, err)
	}

	return record, nil
}
