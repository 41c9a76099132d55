package postgresrepo

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recordlane/releasecraft/core"
)

func Test_StoreFactories_RejectNilHandles(t *testing.T) {
	// act
	_, pgxErr := NewStoreFromPGXPool(nil)
	_, sqlErr := NewStoreFromSQLDB(nil)
	_, sqlxErr := NewStoreFromSQLX(nil)

	// assert
	assert.ErrorIs(t, pgxErr, ErrNilDatabaseHandle)
	assert.ErrorIs(t, sqlErr, ErrNilDatabaseHandle)
	assert.ErrorIs(t, sqlxErr, ErrNilDatabaseHandle)
}

func Test_ArtistRepository_FindByID_MapsRowToArtist(t *testing.T) {
	// arrange
	store, db := newStubStore()
	labelID := core.NewRecordLabelID()
	db.queueRows([]any{"Nova Vale", labelID.String()})
	artistID := core.NewArtistID()

	// act
	artist, found, err := store.Artists().FindByID(context.Background(), artistID)

	// assert
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, artistID, artist.ID)
	assert.Equal(t, "Nova Vale", artist.Name)
	assert.Equal(t, labelID, artist.Label)

	require.Len(t, db.queries, 1)
	assert.Contains(t, db.queries[0].sql, tableArtists)
	assert.Equal(t, []any{artistID.String()}, db.queries[0].args)
}

func Test_ArtistRepository_FindByID_MapsNullLabelToUnlabeledArtist(t *testing.T) {
	// arrange
	store, db := newStubStore()
	db.queueRows([]any{"Indie Ida", nil})

	// act
	artist, found, err := store.Artists().FindByID(context.Background(), core.NewArtistID())

	// assert
	require.NoError(t, err)
	require.True(t, found)
	assert.False(t, artist.HasLabel())
}

func Test_ArtistRepository_FindByID_ReportsAbsence(t *testing.T) {
	// arrange
	store, db := newStubStore()
	db.queueRows() // empty result set

	// act
	_, found, err := store.Artists().FindByID(context.Background(), core.NewArtistID())

	// assert
	require.NoError(t, err)
	assert.False(t, found)
}

func Test_ArtistRepository_Save_UpsertsOnTheIDColumn(t *testing.T) {
	// arrange
	store, db := newStubStore()
	artist, err := core.BuildArtist(core.NewArtistID(), "Nova Vale", core.NewRecordLabelID())
	require.NoError(t, err)

	// act
	err = store.Artists().Save(context.Background(), artist)

	// assert
	require.NoError(t, err)
	require.Len(t, db.execs, 1)
	assert.Contains(t, db.execs[0].sql, "ON CONFLICT")
	assert.Contains(t, db.execs[0].args, artist.ID.String())
	assert.Contains(t, db.execs[0].args, artist.Name)
}

func Test_SongRepository_CountExisting_ScansTheCount(t *testing.T) {
	// arrange
	store, db := newStubStore()
	db.queueRows([]any{2})
	ids := []core.SongID{core.NewSongID(), core.NewSongID(), core.NewSongID()}

	// act
	count, err := store.Songs().CountExisting(context.Background(), ids)

	// assert
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	require.Len(t, db.queries, 1)
	assert.Len(t, db.queries[0].args, len(ids))
}

func Test_SongRepository_CountExisting_IsZeroForNoIDsWithoutQuerying(t *testing.T) {
	// arrange
	store, db := newStubStore()

	// act
	count, err := store.Songs().CountExisting(context.Background(), nil)

	// assert
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Empty(t, db.queries)
}

func Test_SongRepository_IsReleased_FiltersByReleasedStatus(t *testing.T) {
	// arrange
	store, db := newStubStore()
	db.queueRows([]any{1})

	// act
	released, err := store.Songs().IsReleased(context.Background(), core.NewSongID())

	// assert
	require.NoError(t, err)
	assert.True(t, released)
	require.Len(t, db.queries, 1)
	assert.Contains(t, db.queries[0].args, core.StatusReleased.String())
}

func Test_SongRepository_ListReleased_MapsRowsToSongs(t *testing.T) {
	// arrange
	store, db := newStubStore()
	songID := core.NewSongID()
	artistID := core.NewArtistID()
	db.queueRows([]any{songID.String(), "Shape", artistID.String(), 240})

	// act
	songs, err := store.Songs().ListReleased(context.Background())

	// assert
	require.NoError(t, err)
	require.Len(t, songs, 1)
	assert.Equal(t, songID, songs[0].ID)
	assert.Equal(t, "Shape", songs[0].Title)
	assert.Equal(t, artistID, songs[0].ArtistID)
	assert.Equal(t, 240, songs[0].DurationSeconds)
}

func Test_ReleaseRepository_Create_InsertsReleaseAndOrderedSongs(t *testing.T) {
	// arrange
	store, db := newStubStore()
	artistID := core.NewArtistID()
	songIDs := []core.SongID{core.NewSongID(), core.NewSongID()}

	// act
	release, err := store.Releases().Create(context.Background(), artistID, songIDs, time.Time{})

	// assert
	require.NoError(t, err)
	assert.Equal(t, core.StatusDraft, release.Status)
	assert.False(t, release.ID.IsZero())

	require.Len(t, db.execs, 2)
	assert.Contains(t, db.execs[0].sql, tableReleases)
	assert.Contains(t, db.execs[1].sql, tableReleaseSongs)
	assert.Contains(t, db.execs[1].args, songIDs[0].String())
	assert.Contains(t, db.execs[1].args, songIDs[1].String())
}

func Test_ReleaseRepository_Create_RejectsInvalidInputWithoutWriting(t *testing.T) {
	// arrange
	store, db := newStubStore()

	// act
	_, err := store.Releases().Create(context.Background(), core.NewArtistID(), nil, time.Time{})

	// assert
	assert.ErrorIs(t, err, core.ErrInvalidArgument)
	assert.Empty(t, db.execs)
}

func Test_ReleaseRepository_FindByID_MapsRowsToRelease(t *testing.T) {
	// arrange
	store, db := newStubStore()
	artistID := core.NewArtistID()
	first := core.NewSongID()
	second := core.NewSongID()
	actualDate := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	db.queueRows([]any{artistID.String(), nil, actualDate, core.StatusApproved.String()})
	db.queueRows([]any{first.String()}, []any{second.String()})

	releaseID := core.NewReleaseID()

	// act
	release, found, err := store.Releases().FindByID(context.Background(), releaseID)

	// assert
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, releaseID, release.ID)
	assert.Equal(t, artistID, release.ArtistID)
	assert.Equal(t, core.StatusApproved, release.Status)
	assert.True(t, release.ProposedDate.IsZero())
	assert.Equal(t, actualDate, release.ActualDate)
	assert.Equal(t, []core.SongID{first, second}, release.SongIDs)

	require.Len(t, db.queries, 2, "one query for the release, one for its songs")
}

func Test_ReleaseRepository_FindByID_ReportsAbsence(t *testing.T) {
	// arrange
	store, db := newStubStore()
	db.queueRows()

	// act
	_, found, err := store.Releases().FindByID(context.Background(), core.NewReleaseID())

	// assert
	require.NoError(t, err)
	assert.False(t, found)
	require.Len(t, db.queries, 1, "no song lookup for an absent release")
}

func Test_ReleaseRepository_AddSong_AppendsAtTheNextPosition(t *testing.T) {
	// arrange
	store, db := newStubStore()
	releaseID := core.NewReleaseID()
	songID := core.NewSongID()

	// act
	err := store.Releases().AddSong(context.Background(), releaseID, songID)

	// assert
	require.NoError(t, err)
	require.Len(t, db.execs, 1)
	assert.Contains(t, db.execs[0].sql, "COALESCE(MAX(position) + 1, 0)")
	assert.Contains(t, db.execs[0].args, releaseID.String())
	assert.Contains(t, db.execs[0].args, songID.String())
}

func Test_ReleaseRepository_Transitions_UpdateStatusAndDates(t *testing.T) {
	// arrange
	store, db := newStubStore()
	releaseID := core.NewReleaseID()
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	// act
	require.NoError(t, store.Releases().TransitionToProposed(context.Background(), releaseID, date))
	require.NoError(t, store.Releases().TransitionToApproved(context.Background(), releaseID, date))
	require.NoError(t, store.Releases().TransitionToReleased(context.Background(), releaseID))
	require.NoError(t, store.Releases().TransitionToWithdrawn(context.Background(), releaseID))

	// assert
	require.Len(t, db.execs, 4)
	assert.Contains(t, db.execs[0].args, core.StatusProposedDate.String())
	assert.Contains(t, db.execs[1].args, core.StatusApproved.String())
	assert.Contains(t, db.execs[2].args, core.StatusReleased.String())
	assert.Contains(t, db.execs[3].args, core.StatusWithdrawn.String())

	for _, exec := range db.execs {
		assert.Contains(t, exec.sql, "UPDATE")
		assert.Contains(t, exec.args, releaseID.String())
	}
}

func Test_StreamRepository_Save_InsertsUnpaidStream(t *testing.T) {
	// arrange
	store, db := newStubStore()
	stream, err := core.BuildAudioStream(core.NewStreamID(), core.NewSongID(), 45, time.Now())
	require.NoError(t, err)

	// act
	err = store.Streams().Save(context.Background(), stream)

	// assert
	require.NoError(t, err)
	require.Len(t, db.execs, 1)
	assert.Contains(t, db.execs[0].sql, tableAudioStreams)
	assert.Contains(t, db.execs[0].args, stream.ID.String())
	assert.Contains(t, db.execs[0].args, true, "monetized flag")
	assert.Contains(t, db.execs[0].args, false, "paid flag")
}

func Test_StreamRepository_ListUnpaidMonetizedByArtist_FiltersInSQL(t *testing.T) {
	// arrange
	store, db := newStubStore()
	streamID := core.NewStreamID()
	songID := core.NewSongID()
	recordedAt := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	db.queueRows([]any{streamID.String(), songID.String(), 45, recordedAt})

	// act
	streams, err := store.Streams().ListUnpaidMonetizedByArtist(context.Background(), core.NewArtistID())

	// assert
	require.NoError(t, err)
	require.Len(t, streams, 1)
	assert.Equal(t, streamID, streams[0].ID)
	assert.Equal(t, core.MonetizedYes, streams[0].Monetized)

	require.Len(t, db.queries, 1)
	assert.Contains(t, db.queries[0].sql, colMonetized)
	assert.Contains(t, db.queries[0].sql, colPaid)
}

func Test_StreamRepository_MarkPaid_TouchesOnlyUnpaidRows(t *testing.T) {
	// arrange
	store, db := newStubStore()
	ids := []core.StreamID{core.NewStreamID(), core.NewStreamID()}

	// act
	err := store.Streams().MarkPaid(context.Background(), ids)

	// assert
	require.NoError(t, err)
	require.Len(t, db.execs, 1)
	assert.Contains(t, db.execs[0].sql, "UPDATE")
	assert.True(t, strings.Contains(db.execs[0].sql, "IS FALSE"), "only unpaid rows may be flagged: %s", db.execs[0].sql)
	assert.Contains(t, db.execs[0].args, ids[0].String())
	assert.Contains(t, db.execs[0].args, ids[1].String())
}

func Test_StreamRepository_MarkPaid_DoesNothingForNoIDs(t *testing.T) {
	// arrange
	store, db := newStubStore()

	// act
	err := store.Streams().MarkPaid(context.Background(), nil)

	// assert
	require.NoError(t, err)
	assert.Empty(t, db.execs)
}

func Test_PaymentRepository_Save_InsertsPaymentAndCoveredStreams(t *testing.T) {
	// arrange
	store, db := newStubStore()
	streamIDs := []core.StreamID{core.NewStreamID(), core.NewStreamID()}
	amount, err := core.ComputePaymentAmount(len(streamIDs))
	require.NoError(t, err)
	payment, err := core.BuildPayment(core.NewArtistID(), amount, time.Now(), streamIDs)
	require.NoError(t, err)

	// act
	err = store.Payments().Save(context.Background(), payment)

	// assert
	require.NoError(t, err)
	require.Len(t, db.execs, 2)
	assert.Contains(t, db.execs[0].sql, tablePayments)
	assert.Contains(t, db.execs[0].args, "0.006")
	assert.Contains(t, db.execs[1].sql, tablePaymentItems)
	assert.Contains(t, db.execs[1].args, streamIDs[0].String())
	assert.Contains(t, db.execs[1].args, streamIDs[1].String())
}

func Test_EventLogStore_AppendEvent_StoresTypeAndPayload(t *testing.T) {
	// arrange
	store, db := newStubStore()
	stream, err := core.BuildAudioStream(core.NewStreamID(), core.NewSongID(), 45, time.Now())
	require.NoError(t, err)
	event := core.BuildSongStreamed(stream, time.Now())

	// act
	err = store.EventLog().AppendEvent(context.Background(), event)

	// assert
	require.NoError(t, err)
	require.Len(t, db.execs, 1)
	assert.Contains(t, db.execs[0].sql, tableEventLog)
	assert.Contains(t, db.execs[0].args, core.SongStreamedEventType)
}

func Test_Store_PropagatesAdapterErrors(t *testing.T) {
	// arrange
	store, db := newStubStore()
	adapterErr := errors.New("connection lost")
	db.queryErr = adapterErr
	db.execErr = adapterErr

	// act
	_, _, findErr := store.Artists().FindByID(context.Background(), core.NewArtistID())
	markErr := store.Streams().MarkPaid(context.Background(), []core.StreamID{core.NewStreamID()})

	// assert
	assert.ErrorIs(t, findErr, adapterErr)
	assert.ErrorIs(t, markErr, adapterErr)
}
