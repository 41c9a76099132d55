package core

import (
	"time"
)

const ReleaseCreatedEventType = "ReleaseCreated"

// ReleaseCreated records that a new release was created with its initial song
// set and status.
type ReleaseCreated struct {
	ReleaseID  ReleaseID
	ArtistID   ArtistID
	SongIDs    []SongID
	Status     ReleaseStatus
	OccurredAt OccurredAt
}

// BuildReleaseCreated creates the event from the freshly created release.
func BuildReleaseCreated(release Release, occurredAt time.Time) ReleaseCreated {
	return ReleaseCreated{
		ReleaseID:  release.ID,
		ArtistID:   release.ArtistID,
		SongIDs:    append([]SongID(nil), release.SongIDs...),
		Status:     release.Status,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

func (e ReleaseCreated) EventType() string {
	return ReleaseCreatedEventType
}

func (e ReleaseCreated) HasOccurredAt() time.Time {
	return e.OccurredAt
}
