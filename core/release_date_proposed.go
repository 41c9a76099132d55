package core

import (
	"time"
)

const ReleaseDateProposedEventType = "ReleaseDateProposed"

// ReleaseDateProposed records that the artist proposed a release date.
type ReleaseDateProposed struct {
	ReleaseID    ReleaseID
	ProposedDate time.Time
	OccurredAt   OccurredAt
}

// BuildReleaseDateProposed creates the event.
func BuildReleaseDateProposed(releaseID ReleaseID, proposedDate time.Time, occurredAt time.Time) ReleaseDateProposed {
	return ReleaseDateProposed{
		ReleaseID:    releaseID,
		ProposedDate: ToReleaseDate(proposedDate),
		OccurredAt:   ToOccurredAt(occurredAt),
	}
}

func (e ReleaseDateProposed) EventType() string {
	return ReleaseDateProposedEventType
}

func (e ReleaseDateProposed) HasOccurredAt() time.Time {
	return e.OccurredAt
}
