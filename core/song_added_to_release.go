package core

import (
	"time"
)

const SongAddedToReleaseEventType = "SongAddedToRelease"

// SongAddedToRelease records that a song was added to a draft release.
type SongAddedToRelease struct {
	ReleaseID  ReleaseID
	SongID     SongID
	OccurredAt OccurredAt
}

// BuildSongAddedToRelease creates the event.
func BuildSongAddedToRelease(releaseID ReleaseID, songID SongID, occurredAt time.Time) SongAddedToRelease {
	return SongAddedToRelease{
		ReleaseID:  releaseID,
		SongID:     songID,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

func (e SongAddedToRelease) EventType() string {
	return SongAddedToReleaseEventType
}

func (e SongAddedToRelease) HasOccurredAt() time.Time {
	return e.OccurredAt
}
