package core

import (
	"fmt"
	"time"
)

// MonetizationThresholdSeconds is the minimum playback duration for a stream
// to count toward artist revenue. A stream of exactly this duration is
// monetized.
const MonetizationThresholdSeconds = 30

// Monetized is a two-valued classification of a playback event. It is a
// distinct type rather than a raw bool so the meaning is unambiguous at call
// sites and in stored data.
type Monetized string

const (
	MonetizedYes Monetized = "Yes"
	MonetizedNo  Monetized = "No"
)

// MonetizedFromDuration classifies a playback duration: monetized if and only
// if the duration reaches the threshold.
func MonetizedFromDuration(durationSeconds int) Monetized {
	if durationSeconds >= MonetizationThresholdSeconds {
		return MonetizedYes
	}

	return MonetizedNo
}

// Bool reports the classification as a plain bool, e.g. for storage columns.
func (m Monetized) Bool() bool {
	return m == MonetizedYes
}

// AudioStream is one playback event of a song. It is immutable once created:
// the duration and the monetization classification never change afterwards.
// The id and the timestamp are assigned by the system, not by the caller.
type AudioStream struct {
	ID              StreamID
	SongID          SongID
	DurationSeconds int
	RecordedAt      time.Time
	Monetized       Monetized
}

// BuildAudioStream validates and constructs an AudioStream, classifying it
// against the monetization threshold.
func BuildAudioStream(id StreamID, songID SongID, durationSeconds int, recordedAt time.Time) (AudioStream, error) {
	if id.IsZero() {
		return AudioStream{}, fmt.Errorf("%w: stream id must not be zero", ErrInvalidArgument)
	}

	if songID.IsZero() {
		return AudioStream{}, fmt.Errorf("%w: stream song id must not be zero", ErrInvalidArgument)
	}

	if durationSeconds <= 0 {
		return AudioStream{}, fmt.Errorf("%w: stream duration must be positive, got %d", ErrInvalidArgument, durationSeconds)
	}

	return AudioStream{
		ID:              id,
		SongID:          songID,
		DurationSeconds: durationSeconds,
		RecordedAt:      ToOccurredAt(recordedAt),
		Monetized:       MonetizedFromDuration(durationSeconds),
	}, nil
}
