package core

import (
	"fmt"

	"github.com/google/uuid"
)

// The identifier types wrap uuid.UUID in distinct structs so that, e.g.,
// a SongID can never be passed where an ArtistID is expected. They are
// comparable and usable as map keys; the zero value means "absent".

// ArtistID identifies an Artist.
type ArtistID struct {
	id uuid.UUID
}

// NewArtistID returns a fresh unique ArtistID.
func NewArtistID() ArtistID {
	return ArtistID{id: uuid.New()}
}

// ParseArtistID parses the canonical string form of an ArtistID.
func ParseArtistID(value string) (ArtistID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return ArtistID{}, fmt.Errorf("%w: artist id %q: %s", ErrInvalidArgument, value, err)
	}

	return ArtistID{id: id}, nil
}

func (i ArtistID) String() string {
	return i.id.String()
}

func (i ArtistID) IsZero() bool {
	return i.id == uuid.Nil
}

// MarshalText implements encoding.TextMarshaler for JSON/text encodings.
func (i ArtistID) MarshalText() ([]byte, error) {
	return []byte(i.id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (i *ArtistID) UnmarshalText(text []byte) error {
	parsed, err := ParseArtistID(string(text))
	if err != nil {
		return err
	}

	*i = parsed

	return nil
}

// SongID identifies a Song.
type SongID struct {
	id uuid.UUID
}

// NewSongID returns a fresh unique SongID.
func NewSongID() SongID {
	return SongID{id: uuid.New()}
}

// ParseSongID parses the canonical string form of a SongID.
func ParseSongID(value string) (SongID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return SongID{}, fmt.Errorf("%w: song id %q: %s", ErrInvalidArgument, value, err)
	}

	return SongID{id: id}, nil
}

func (i SongID) String() string {
	return i.id.String()
}

func (i SongID) IsZero() bool {
	return i.id == uuid.Nil
}

func (i SongID) MarshalText() ([]byte, error) {
	return []byte(i.id.String()), nil
}

func (i *SongID) UnmarshalText(text []byte) error {
	parsed, err := ParseSongID(string(text))
	if err != nil {
		return err
	}

	*i = parsed

	return nil
}

// ReleaseID identifies a Release.
type ReleaseID struct {
	id uuid.UUID
}

// NewReleaseID returns a fresh unique ReleaseID.
func NewReleaseID() ReleaseID {
	return ReleaseID{id: uuid.New()}
}

// ParseReleaseID parses the canonical string form of a ReleaseID.
func ParseReleaseID(value string) (ReleaseID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return ReleaseID{}, fmt.Errorf("%w: release id %q: %s", ErrInvalidArgument, value, err)
	}

	return ReleaseID{id: id}, nil
}

func (i ReleaseID) String() string {
	return i.id.String()
}

func (i ReleaseID) IsZero() bool {
	return i.id == uuid.Nil
}

func (i ReleaseID) MarshalText() ([]byte, error) {
	return []byte(i.id.String()), nil
}

func (i *ReleaseID) UnmarshalText(text []byte) error {
	parsed, err := ParseReleaseID(string(text))
	if err != nil {
		return err
	}

	*i = parsed

	return nil
}

// RecordLabelID identifies a RecordLabel.
type RecordLabelID struct {
	id uuid.UUID
}

// NewRecordLabelID returns a fresh unique RecordLabelID.
func NewRecordLabelID() RecordLabelID {
	return RecordLabelID{id: uuid.New()}
}

// ParseRecordLabelID parses the canonical string form of a RecordLabelID.
func ParseRecordLabelID(value string) (RecordLabelID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return RecordLabelID{}, fmt.Errorf("%w: record label id %q: %s", ErrInvalidArgument, value, err)
	}

	return RecordLabelID{id: id}, nil
}

func (i RecordLabelID) String() string {
	return i.id.String()
}

func (i RecordLabelID) IsZero() bool {
	return i.id == uuid.Nil
}

func (i RecordLabelID) MarshalText() ([]byte, error) {
	return []byte(i.id.String()), nil
}

func (i *RecordLabelID) UnmarshalText(text []byte) error {
	parsed, err := ParseRecordLabelID(string(text))
	if err != nil {
		return err
	}

	*i = parsed

	return nil
}

// StreamID identifies an AudioStream.
type StreamID struct {
	id uuid.UUID
}

// NewStreamID returns a fresh unique StreamID.
func NewStreamID() StreamID {
	return StreamID{id: uuid.New()}
}

// ParseStreamID parses the canonical string form of a StreamID.
func ParseStreamID(value string) (StreamID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return StreamID{}, fmt.Errorf("%w: stream id %q: %s", ErrInvalidArgument, value, err)
	}

	return StreamID{id: id}, nil
}

func (i StreamID) String() string {
	return i.id.String()
}

func (i StreamID) IsZero() bool {
	return i.id == uuid.Nil
}

func (i StreamID) MarshalText() ([]byte, error) {
	return []byte(i.id.String()), nil
}

func (i *StreamID) UnmarshalText(text []byte) error {
	parsed, err := ParseStreamID(string(text))
	if err != nil {
		return err
	}

	*i = parsed

	return nil
}
