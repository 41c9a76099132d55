package core

import (
	"time"
)

// OccurredAt is the timestamp carried by every domain event.
type OccurredAt = time.Time

// ToOccurredAt normalizes a timestamp to UTC with microsecond precision.
func ToOccurredAt(t time.Time) OccurredAt {
	return t.UTC().Truncate(time.Microsecond)
}

// ToReleaseDate normalizes a point in time to its calendar day (UTC midnight).
// Release dates have day granularity; "strictly after today" compares the
// results of this normalization.
func ToReleaseDate(t time.Time) time.Time {
	u := t.UTC()

	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
