package core

import (
	"fmt"
	"strings"
)

// Artist is a performer who owns songs and releases. An artist may be bound to
// a record label; the zero RecordLabelID means "unlabeled". Unlabeled artists
// cannot have release dates approved.
type Artist struct {
	ID    ArtistID
	Name  string
	Label RecordLabelID
}

// BuildArtist validates and constructs an Artist.
func BuildArtist(id ArtistID, name string, label RecordLabelID) (Artist, error) {
	if id.IsZero() {
		return Artist{}, fmt.Errorf("%w: artist id must not be zero", ErrInvalidArgument)
	}

	if strings.TrimSpace(name) == "" {
		return Artist{}, fmt.Errorf("%w: artist name must not be empty", ErrInvalidArgument)
	}

	return Artist{ID: id, Name: name, Label: label}, nil
}

// HasLabel reports whether the artist is bound to a record label.
func (a Artist) HasLabel() bool {
	return !a.Label.IsZero()
}

// RecordLabel represents a label that approves release dates for its artists.
type RecordLabel struct {
	ID   RecordLabelID
	Name string
}

// BuildRecordLabel validates and constructs a RecordLabel.
func BuildRecordLabel(id RecordLabelID, name string) (RecordLabel, error) {
	if id.IsZero() {
		return RecordLabel{}, fmt.Errorf("%w: record label id must not be zero", ErrInvalidArgument)
	}

	if strings.TrimSpace(name) == "" {
		return RecordLabel{}, fmt.Errorf("%w: record label name must not be empty", ErrInvalidArgument)
	}

	return RecordLabel{ID: id, Name: name}, nil
}
