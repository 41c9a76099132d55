package core

import (
	"time"
)

const ReleaseDistributedEventType = "ReleaseDistributed"

// ReleaseDistributed records that a release went out for streaming.
type ReleaseDistributed struct {
	ReleaseID  ReleaseID
	ReleasedOn time.Time
	OccurredAt OccurredAt
}

// BuildReleaseDistributed creates the event.
func BuildReleaseDistributed(releaseID ReleaseID, releasedOn time.Time, occurredAt time.Time) ReleaseDistributed {
	return ReleaseDistributed{
		ReleaseID:  releaseID,
		ReleasedOn: ToReleaseDate(releasedOn),
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

func (e ReleaseDistributed) EventType() string {
	return ReleaseDistributedEventType
}

func (e ReleaseDistributed) HasOccurredAt() time.Time {
	return e.OccurredAt
}
