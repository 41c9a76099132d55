package service

import (
	"context"
	"time"

	"github.com/recordlane/releasecraft/core"
)

// The collaborator contracts the orchestrator consumes and never implements.
// Lookups report absence through the bool result instead of an error; the
// orchestrator is the one that turns absence into core.ErrNotFound.

// ArtistRepository stores artists.
type ArtistRepository interface {
	FindByID(ctx context.Context, id core.ArtistID) (core.Artist, bool, error)
	Save(ctx context.Context, artist core.Artist) error
}

// SongRepository stores songs and answers release-related song queries.
type SongRepository interface {
	FindByID(ctx context.Context, id core.SongID) (core.Song, bool, error)
	// CountExisting returns how many of the given song ids exist.
	CountExisting(ctx context.Context, ids []core.SongID) (int, error)
	// ListReleased returns all songs that belong to at least one released release.
	ListReleased(ctx context.Context) ([]core.Song, error)
	// IsReleased reports whether the song belongs to at least one released release.
	IsReleased(ctx context.Context, id core.SongID) (bool, error)
	Save(ctx context.Context, song core.Song) error
}

// ReleaseRepository stores releases and performs their status transitions.
// The repository persists what the orchestrator already validated; it does
// not re-run the guards.
type ReleaseRepository interface {
	// Create stores a new release. The initial status is derived from the
	// proposed date: ProposedDate if one was given (non-zero), Draft otherwise.
	Create(ctx context.Context, artistID core.ArtistID, songIDs []core.SongID, proposedDate time.Time) (core.Release, error)
	FindByID(ctx context.Context, id core.ReleaseID) (core.Release, bool, error)
	AddSong(ctx context.Context, releaseID core.ReleaseID, songID core.SongID) error
	TransitionToProposed(ctx context.Context, releaseID core.ReleaseID, proposedDate time.Time) error
	TransitionToApproved(ctx context.Context, releaseID core.ReleaseID, actualDate time.Time) error
	TransitionToReleased(ctx context.Context, releaseID core.ReleaseID) error
	TransitionToWithdrawn(ctx context.Context, releaseID core.ReleaseID) error
}

// StreamRepository stores playback events.
type StreamRepository interface {
	Save(ctx context.Context, stream core.AudioStream) error
	ListByArtist(ctx context.Context, artistID core.ArtistID) ([]core.AudioStream, error)
	ListUnpaidMonetizedByArtist(ctx context.Context, artistID core.ArtistID) ([]core.AudioStream, error)
	MarkPaid(ctx context.Context, ids []core.StreamID) error
}

// PaymentRepository stores payments.
type PaymentRepository interface {
	Save(ctx context.Context, payment core.Payment) error
}

// Clock provides the current date and timestamp. The core never reads the
// system time directly.
type Clock interface {
	// Today returns the current date at day granularity (UTC midnight).
	Today() time.Time
	// Now returns the current instant.
	Now() time.Time
}

// IDGenerator produces fresh unique stream identifiers.
type IDGenerator interface {
	NewStreamID() core.StreamID
}
