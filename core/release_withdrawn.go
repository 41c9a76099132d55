package core

import (
	"time"
)

const ReleaseWithdrawnEventType = "ReleaseWithdrawn"

// ReleaseWithdrawn records that a released release was taken off distribution.
type ReleaseWithdrawn struct {
	ReleaseID  ReleaseID
	OccurredAt OccurredAt
}

// BuildReleaseWithdrawn creates the event.
func BuildReleaseWithdrawn(releaseID ReleaseID, occurredAt time.Time) ReleaseWithdrawn {
	return ReleaseWithdrawn{
		ReleaseID:  releaseID,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

func (e ReleaseWithdrawn) EventType() string {
	return ReleaseWithdrawnEventType
}

func (e ReleaseWithdrawn) HasOccurredAt() time.Time {
	return e.OccurredAt
}
