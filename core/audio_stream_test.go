package core_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recordlane/releasecraft/core"
)

func Test_MonetizedFromDuration_ClassifiesAroundTheThreshold(t *testing.T) {
	// assert
	assert.Equal(t, core.MonetizedNo, core.MonetizedFromDuration(29))
	assert.Equal(t, core.MonetizedYes, core.MonetizedFromDuration(30), "exactly the threshold is monetized")
	assert.Equal(t, core.MonetizedYes, core.MonetizedFromDuration(31))
}

func Test_BuildAudioStream_Success_ClassifiesAndNormalizesTimestamp(t *testing.T) {
	// arrange
	recordedAt := time.Date(2026, 8, 31, 12, 30, 0, 123456789, time.FixedZone("CEST", 2*60*60))

	// act
	stream, err := core.BuildAudioStream(core.NewStreamID(), core.NewSongID(), 45, recordedAt)

	// assert
	require.NoError(t, err)
	assert.Equal(t, core.MonetizedYes, stream.Monetized)
	assert.True(t, stream.Monetized.Bool())
	assert.Equal(t, time.UTC, stream.RecordedAt.Location())
	assert.Equal(t, stream.RecordedAt, stream.RecordedAt.Truncate(time.Microsecond))
}

func Test_BuildAudioStream_Fails_WithNonPositiveDuration(t *testing.T) {
	// act
	_, zeroErr := core.BuildAudioStream(core.NewStreamID(), core.NewSongID(), 0, time.Now())
	_, negativeErr := core.BuildAudioStream(core.NewStreamID(), core.NewSongID(), -10, time.Now())

	// assert
	assert.ErrorIs(t, zeroErr, core.ErrInvalidArgument)
	assert.ErrorIs(t, negativeErr, core.ErrInvalidArgument)
}

func Test_BuildStreamReport_PartitionsByMonetizationPreservingOrder(t *testing.T) {
	// arrange
	artistID := core.NewArtistID()
	songID := core.NewSongID()
	short := givenStream(t, songID, 10)
	long := givenStream(t, songID, 200)
	exact := givenStream(t, songID, 30)

	// act
	report := core.BuildStreamReport(artistID, []core.AudioStream{short, long, exact})

	// assert
	assert.Equal(t, artistID, report.ArtistID)
	assert.Equal(t, []core.AudioStream{long, exact}, report.Monetized)
	assert.Equal(t, []core.AudioStream{short}, report.NonMonetized)
}

func Test_BuildStreamReport_IsEmptyForNoStreams(t *testing.T) {
	// act
	report := core.BuildStreamReport(core.NewArtistID(), nil)

	// assert
	assert.Empty(t, report.Monetized)
	assert.Empty(t, report.NonMonetized)
}

func givenStream(t *testing.T, songID core.SongID, durationSeconds int) core.AudioStream {
	t.Helper()

	stream, err := core.BuildAudioStream(core.NewStreamID(), songID, durationSeconds, time.Now())
	require.NoError(t, err)

	return stream
}
