package core

import (
	"time"
)

const SongStreamedEventType = "SongStreamed"

// SongStreamed records one playback event of a released song, including its
// monetization classification.
type SongStreamed struct {
	StreamID        StreamID
	SongID          SongID
	DurationSeconds int
	Monetized       Monetized
	OccurredAt      OccurredAt
}

// BuildSongStreamed creates the event from the recorded stream.
func BuildSongStreamed(stream AudioStream, occurredAt time.Time) SongStreamed {
	return SongStreamed{
		StreamID:        stream.ID,
		SongID:          stream.SongID,
		DurationSeconds: stream.DurationSeconds,
		Monetized:       stream.Monetized,
		OccurredAt:      ToOccurredAt(occurredAt),
	}
}

func (e SongStreamed) EventType() string {
	return SongStreamedEventType
}

func (e SongStreamed) HasOccurredAt() time.Time {
	return e.OccurredAt
}
