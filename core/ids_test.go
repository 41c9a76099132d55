package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recordlane/releasecraft/core"
)

func Test_IDs_RoundTripThroughTheirStringForm(t *testing.T) {
	// arrange
	id := core.NewSongID()

	// act
	parsed, err := core.ParseSongID(id.String())

	// assert
	require.NoError(t, err)
	assert.Equal(t, id, parsed)
	assert.False(t, id.IsZero())
	assert.True(t, core.SongID{}.IsZero())
}

func Test_IDs_RejectMalformedInput(t *testing.T) {
	// act
	_, err := core.ParseArtistID("not-a-uuid")

	// assert
	assert.ErrorIs(t, err, core.ErrInvalidArgument)
}

func Test_IDs_MarshalAsText(t *testing.T) {
	// arrange
	id := core.NewReleaseID()

	// act
	text, err := id.MarshalText()
	require.NoError(t, err)

	var decoded core.ReleaseID
	err = decoded.UnmarshalText(text)

	// assert
	require.NoError(t, err)
	assert.Equal(t, id, decoded)
	assert.Equal(t, id.String(), string(text))
}
