package core

import (
	"time"
)

const ReleaseDateApprovedEventType = "ReleaseDateApproved"

// ReleaseDateApproved records that the artist's record label approved the
// actual release date.
type ReleaseDateApproved struct {
	ReleaseID     ReleaseID
	RecordLabelID RecordLabelID
	ActualDate    time.Time
	OccurredAt    OccurredAt
}

// BuildReleaseDateApproved creates the event.
func BuildReleaseDateApproved(
	releaseID ReleaseID,
	recordLabelID RecordLabelID,
	actualDate time.Time,
	occurredAt time.Time,
) ReleaseDateApproved {

	return ReleaseDateApproved{
		ReleaseID:     releaseID,
		RecordLabelID: recordLabelID,
		ActualDate:    ToReleaseDate(actualDate),
		OccurredAt:    ToOccurredAt(occurredAt),
	}
}

func (e ReleaseDateApproved) EventType() string {
	return ReleaseDateApprovedEventType
}

func (e ReleaseDateApproved) HasOccurredAt() time.Time {
	return e.OccurredAt
}
