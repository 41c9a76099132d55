package core

import (
	"fmt"
	"strings"
)

// Song is a recorded track owned by one artist. Songs are created
// independently of any release; a release only references song ids.
type Song struct {
	ID              SongID
	Title           string
	ArtistID        ArtistID
	DurationSeconds int
}

// BuildSong validates and constructs a Song.
func BuildSong(id SongID, title string, artistID ArtistID, durationSeconds int) (Song, error) {
	if id.IsZero() {
		return Song{}, fmt.Errorf("%w: song id must not be zero", ErrInvalidArgument)
	}

	if strings.TrimSpace(title) == "" {
		return Song{}, fmt.Errorf("%w: song title must not be empty", ErrInvalidArgument)
	}

	if artistID.IsZero() {
		return Song{}, fmt.Errorf("%w: song artist id must not be zero", ErrInvalidArgument)
	}

	if durationSeconds <= 0 {
		return Song{}, fmt.Errorf("%w: song duration must be positive, got %d", ErrInvalidArgument, durationSeconds)
	}

	return Song{ID: id, Title: title, ArtistID: artistID, DurationSeconds: durationSeconds}, nil
}
