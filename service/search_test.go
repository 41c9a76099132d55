package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recordlane/releasecraft/core"
)

func Test_SearchSongs_FindsOnlyReleasedSongs(t *testing.T) {
	// arrange
	env := newTestEnv(t)
	artist := givenArtist(t, env, core.NewRecordLabelID())
	released := givenReleasedSong(t, env, artist.ID, "Shape")
	givenSong(t, env, artist.ID, "Shapes", 200) // same title family, never released

	// act
	found, err := env.service.SearchSongs(context.Background(), "shape", 1)

	// assert
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, released.ID, found[0].ID)
}

func Test_SearchSongs_SortsMatchesByAscendingDistance(t *testing.T) {
	// arrange
	env := newTestEnv(t)
	artist := givenArtist(t, env, core.NewRecordLabelID())
	near := givenReleasedSong(t, env, artist.ID, "Shapes")
	exact := givenReleasedSong(t, env, artist.ID, "Shape")

	// act
	found, err := env.service.SearchSongs(context.Background(), "shape", 1)

	// assert
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, exact.ID, found[0].ID)
	assert.Equal(t, near.ID, found[1].ID)
}

func Test_SearchSongs_ReturnsNothingWithoutReleasedSongs(t *testing.T) {
	// arrange
	env := newTestEnv(t)
	artist := givenArtist(t, env, core.NewRecordLabelID())
	givenSong(t, env, artist.ID, "Shape", 240)

	// act
	found, err := env.service.SearchSongs(context.Background(), "shape", 0)

	// assert
	require.NoError(t, err)
	assert.Empty(t, found)
}

func Test_SearchSongs_RejectsEmptyQuery(t *testing.T) {
	// arrange
	env := newTestEnv(t)

	// act
	_, err := env.service.SearchSongs(context.Background(), "", 1)

	// assert
	assert.ErrorIs(t, err, core.ErrInvalidArgument)
}
