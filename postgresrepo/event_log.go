package postgresrepo

import (
	"context"

	"github.com/doug-martin/goqu/v9"

	"github.com/recordlane/releasecraft/core"
	"github.com/recordlane/releasecraft/eventlog"
)

// EventLogStore appends domain event records to the event_log table. It is
// host-side infrastructure: the core only returns events, and a host that
// wants an audit or outbox trail appends them here inside the same
// transaction as the use case.
type EventLogStore struct {
	store *Store
}

// Append stores the record for one domain event.
func (e *EventLogStore) Append(ctx context.Context, record eventlog.Record) error {
	sqlQuery, args, err := goqu.Dialect(dialectPostgres).
		Insert(tableEventLog).
		Cols(colEventType, colOccurredAt, colPayload).
		Vals(goqu.Vals{record.EventType, record.OccurredAt, string(record.PayloadJSON)}).
		Prepared(true).
		ToSQL()
	if err != nil {
		return err
	}

	_, err = e.store.exec(ctx, sqlQuery, args)

	return err
}

// AppendEvent maps a domain event to its record and stores it.
func (e *EventLogStore) AppendEvent(ctx context.Context, event core.DomainEvent) error {
	record, err := eventlog.RecordFrom(event)
	if err != nil {
		return err
	}

	return e.Append(ctx, record)
}
