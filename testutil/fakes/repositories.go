package fakes

import (
	"context"
	"sync"
	"time"

	"github.com/recordlane/releasecraft/core"
	"github.com/recordlane/releasecraft/service"
)

// ArtistRepository is an in-memory service.ArtistRepository. Setting Err makes
// every method fail with it, for error-path tests.
type ArtistRepository struct {
	mu      sync.RWMutex
	artists map[core.ArtistID]core.Artist
	Err     error
}

func NewArtistRepository() *ArtistRepository {
	return &ArtistRepository{artists: make(map[core.ArtistID]core.Artist)}
}

func (r *ArtistRepository) FindByID(_ context.Context, id core.ArtistID) (core.Artist, bool, error) {
	if r.Err != nil {
		return core.Artist{}, false, r.Err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	artist, found := r.artists[id]

	return artist, found, nil
}

func (r *ArtistRepository) Save(_ context.Context, artist core.Artist) error {
	if r.Err != nil {
		return r.Err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.artists[artist.ID] = artist

	return nil
}

var _ service.ArtistRepository = (*ArtistRepository)(nil)

// SongRepository is an in-memory service.SongRepository. Which songs count as
// released is controlled directly through MarkReleased.
type SongRepository struct {
	mu       sync.RWMutex
	songs    map[core.SongID]core.Song
	order    []core.SongID
	released map[core.SongID]bool
	Err      error
}

func NewSongRepository() *SongRepository {
	return &SongRepository{
		songs:    make(map[core.SongID]core.Song),
		released: make(map[core.SongID]bool),
	}
}

func (r *SongRepository) FindByID(_ context.Context, id core.SongID) (core.Song, bool, error) {
	if r.Err != nil {
		return core.Song{}, false, r.Err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	song, found := r.songs[id]

	return song, found, nil
}

func (r *SongRepository) CountExisting(_ context.Context, ids []core.SongID) (int, error) {
	if r.Err != nil {
		return 0, r.Err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0

	for _, id := range ids {
		if _, found := r.songs[id]; found {
			count++
		}
	}

	return count, nil
}

func (r *SongRepository) ListReleased(_ context.Context) ([]core.Song, error) {
	if r.Err != nil {
		return nil, r.Err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var released []core.Song

	for _, id := range r.order {
		if r.released[id] {
			released = append(released, r.songs[id])
		}
	}

	return released, nil
}

func (r *SongRepository) IsReleased(_ context.Context, id core.SongID) (bool, error) {
	if r.Err != nil {
		return false, r.Err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.released[id], nil
}

func (r *SongRepository) Save(_ context.Context, song core.Song) error {
	if r.Err != nil {
		return r.Err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.songs[song.ID]; !exists {
		r.order = append(r.order, song.ID)
	}

	r.songs[song.ID] = song

	return nil
}

// MarkReleased flags a song as belonging to a released release.
func (r *SongRepository) MarkReleased(id core.SongID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.released[id] = true
}

var _ service.SongRepository = (*SongRepository)(nil)

// ReleaseRepository is an in-memory service.ReleaseRepository. The transition
// methods persist blindly, like the real repository: guard validation is the
// orchestrator's job.
type ReleaseRepository struct {
	mu       sync.RWMutex
	releases map[core.ReleaseID]core.Release
	Err      error
}

func NewReleaseRepository() *ReleaseRepository {
	return &ReleaseRepository{releases: make(map[core.ReleaseID]core.Release)}
}

func (r *ReleaseRepository) Create(
	_ context.Context,
	artistID core.ArtistID,
	songIDs []core.SongID,
	proposedDate time.Time,
) (core.Release, error) {

	if r.Err != nil {
		return core.Release{}, r.Err
	}

	release, err := core.BuildRelease(core.NewReleaseID(), artistID, songIDs, proposedDate)
	if err != nil {
		return core.Release{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.releases[release.ID] = release

	return release, nil
}

func (r *ReleaseRepository) FindByID(_ context.Context, id core.ReleaseID) (core.Release, bool, error) {
	if r.Err != nil {
		return core.Release{}, false, r.Err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	release, found := r.releases[id]

	return release, found, nil
}

func (r *ReleaseRepository) AddSong(_ context.Context, releaseID core.ReleaseID, songID core.SongID) error {
	return r.update(releaseID, func(release core.Release) core.Release {
		release.SongIDs = append(append([]core.SongID(nil), release.SongIDs...), songID)
		return release
	})
}

func (r *ReleaseRepository) TransitionToProposed(_ context.Context, releaseID core.ReleaseID, proposedDate time.Time) error {
	return r.update(releaseID, func(release core.Release) core.Release {
		release.ProposedDate = core.ToReleaseDate(proposedDate)
		release.Status = core.StatusProposedDate
		return release
	})
}

func (r *ReleaseRepository) TransitionToApproved(_ context.Context, releaseID core.ReleaseID, actualDate time.Time) error {
	return r.update(releaseID, func(release core.Release) core.Release {
		release.ActualDate = core.ToReleaseDate(actualDate)
		release.Status = core.StatusApproved
		return release
	})
}

func (r *ReleaseRepository) TransitionToReleased(_ context.Context, releaseID core.ReleaseID) error {
	return r.update(releaseID, func(release core.Release) core.Release {
		release.Status = core.StatusReleased
		return release
	})
}

func (r *ReleaseRepository) TransitionToWithdrawn(_ context.Context, releaseID core.ReleaseID) error {
	return r.update(releaseID, func(release core.Release) core.Release {
		release.Status = core.StatusWithdrawn
		return release
	})
}

func (r *ReleaseRepository) update(releaseID core.ReleaseID, change func(core.Release) core.Release) error {
	if r.Err != nil {
		return r.Err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	release, found := r.releases[releaseID]
	if !found {
		return nil // persisting an unknown release is the orchestrator's bug, not the fake's
	}

	r.releases[releaseID] = change(release)

	return nil
}

var _ service.ReleaseRepository = (*ReleaseRepository)(nil)

// StreamRepository is an in-memory service.StreamRepository. The
// artist-scoped listings resolve song ownership through the SongRepository
// the fake is constructed with.
type StreamRepository struct {
	mu      sync.RWMutex
	streams []core.AudioStream
	paid    map[core.StreamID]bool
	songs   *SongRepository
	Err     error
}

func NewStreamRepository(songs *SongRepository) *StreamRepository {
	return &StreamRepository{
		paid:  make(map[core.StreamID]bool),
		songs: songs,
	}
}

func (r *StreamRepository) Save(_ context.Context, stream core.AudioStream) error {
	if r.Err != nil {
		return r.Err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.streams = append(r.streams, stream)

	return nil
}

func (r *StreamRepository) ListByArtist(ctx context.Context, artistID core.ArtistID) ([]core.AudioStream, error) {
	return r.list(ctx, artistID, false)
}

func (r *StreamRepository) ListUnpaidMonetizedByArtist(ctx context.Context, artistID core.ArtistID) ([]core.AudioStream, error) {
	return r.list(ctx, artistID, true)
}

func (r *StreamRepository) MarkPaid(_ context.Context, ids []core.StreamID) error {
	if r.Err != nil {
		return r.Err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range ids {
		r.paid[id] = true
	}

	return nil
}

// IsPaid reports whether a stream has been marked paid.
func (r *StreamRepository) IsPaid(id core.StreamID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.paid[id]
}

func (r *StreamRepository) list(ctx context.Context, artistID core.ArtistID, unpaidMonetizedOnly bool) ([]core.AudioStream, error) {
	if r.Err != nil {
		return nil, r.Err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []core.AudioStream

	for _, stream := range r.streams {
		song, found, err := r.songs.FindByID(ctx, stream.SongID)
		if err != nil {
			return nil, err
		}

		if !found || song.ArtistID != artistID {
			continue
		}

		if unpaidMonetizedOnly && (!stream.Monetized.Bool() || r.paid[stream.ID]) {
			continue
		}

		result = append(result, stream)
	}

	return result, nil
}

var _ service.StreamRepository = (*StreamRepository)(nil)

// PaymentRepository is an in-memory service.PaymentRepository.
type PaymentRepository struct {
	mu       sync.RWMutex
	payments []core.Payment
	Err      error
}

func NewPaymentRepository() *PaymentRepository {
	return &PaymentRepository{}
}

func (r *PaymentRepository) Save(_ context.Context, payment core.Payment) error {
	if r.Err != nil {
		return r.Err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.payments = append(r.payments, payment)

	return nil
}

// Saved returns all payments stored so far.
func (r *PaymentRepository) Saved() []core.Payment {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]core.Payment(nil), r.payments...)
}

var _ service.PaymentRepository = (*PaymentRepository)(nil)
