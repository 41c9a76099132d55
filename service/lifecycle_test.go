package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recordlane/releasecraft/core"
)

// The full path of one release: drafted, dated, approved, distributed,
// streamed, paid out and finally withdrawn.
func Test_ReleaseLifecycle_FromDraftToWithdrawal(t *testing.T) {
	ctx := context.Background()

	// arrange
	env := newTestEnv(t)
	labelID := core.NewRecordLabelID()
	artist := givenArtist(t, env, labelID)
	first := givenSong(t, env, artist.ID, "Shape", 240)
	second := givenSong(t, env, artist.ID, "Perfect", 263)

	// act + assert, step by step

	created, err := env.service.CreateRelease(ctx, artist.ID, []core.SongID{first.ID, second.ID}, time.Time{})
	require.NoError(t, err)
	require.Equal(t, core.StatusDraft, created.Status)
	releaseID := created.ReleaseID

	proposedDate := env.today().AddDate(0, 0, 10)
	_, err = env.service.ProposeReleaseDate(ctx, releaseID, proposedDate)
	require.NoError(t, err)

	approved, err := env.service.ApproveReleaseDate(ctx, releaseID, labelID, proposedDate)
	require.NoError(t, err)
	require.Equal(t, proposedDate, approved.ActualDate)

	// distribution before the approved date is rejected
	_, err = env.service.DistributeRelease(ctx, releaseID)
	require.ErrorIs(t, err, core.ErrInvalidState)

	env.clock.Advance(10 * 24 * time.Hour)
	_, err = env.service.DistributeRelease(ctx, releaseID)
	require.NoError(t, err)
	require.Equal(t, core.StatusReleased, storedRelease(t, env, releaseID).Status)
	env.songs.MarkReleased(first.ID)
	env.songs.MarkReleased(second.ID)

	streamed, err := env.service.RecordStream(ctx, first.ID, 40)
	require.NoError(t, err)
	require.Equal(t, core.MonetizedYes, streamed.Monetized)

	payment, err := env.service.FileForPayment(ctx, artist.ID)
	require.NoError(t, err)
	assert.True(t, payment.Amount.Equal(core.PerStreamRate), "one monetized stream pays exactly the per-stream rate")
	assert.Equal(t, []core.StreamID{streamed.StreamID}, payment.StreamIDs)

	_, err = env.service.WithdrawRelease(ctx, releaseID)
	require.NoError(t, err)
	require.Equal(t, core.StatusWithdrawn, storedRelease(t, env, releaseID).Status)

	// the lifecycle is over: no further transitions are possible
	_, err = env.service.DistributeRelease(ctx, releaseID)
	assert.ErrorIs(t, err, core.ErrInvalidState)
	_, err = env.service.WithdrawRelease(ctx, releaseID)
	assert.ErrorIs(t, err, core.ErrInvalidState)
}
