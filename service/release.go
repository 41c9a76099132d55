package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/recordlane/releasecraft/core"
)

// CreateRelease creates a new release for an artist from existing songs. A
// zero proposedDate means no date was proposed yet; the release starts as
// Draft. A non-zero proposedDate must be in the future and the release starts
// as ProposedDate.
func (s *Service) CreateRelease(
	ctx context.Context,
	artistID core.ArtistID,
	songIDs []core.SongID,
	proposedDate time.Time,
) (event core.ReleaseCreated, err error) {

	start := time.Now()
	defer func() { s.observeUseCase(ctx, "CreateRelease", start, err) }()

	if len(songIDs) == 0 {
		return core.ReleaseCreated{}, fmt.Errorf("%w: a release needs at least one song", core.ErrInvalidArgument)
	}

	if _, err = s.findArtist(ctx, artistID); err != nil {
		return core.ReleaseCreated{}, err
	}

	existing, err := s.songs.CountExisting(ctx, songIDs)
	if err != nil {
		return core.ReleaseCreated{}, err
	}

	if existing != len(songIDs) {
		return core.ReleaseCreated{}, fmt.Errorf(
			"%w: only %d of %d referenced songs exist", core.ErrInvalidArgument, existing, len(songIDs))
	}

	if !proposedDate.IsZero() && !core.ToReleaseDate(proposedDate).After(s.clock.Today()) {
		return core.ReleaseCreated{}, fmt.Errorf("%w: proposed release date must be in the future", core.ErrInvalidArgument)
	}

	release, err := s.releases.Create(ctx, artistID, songIDs, proposedDate)
	if err != nil {
		return core.ReleaseCreated{}, err
	}

	return core.BuildReleaseCreated(release, s.clock.Now()), nil
}

// AddSongToRelease adds an existing song to a draft release. The release and
// the song are fetched concurrently; the first failure wins.
func (s *Service) AddSongToRelease(
	ctx context.Context,
	releaseID core.ReleaseID,
	songID core.SongID,
) (event core.SongAddedToRelease, err error) {

	start := time.Now()
	defer func() { s.observeUseCase(ctx, "AddSongToRelease", start, err) }()

	var release core.Release
	var song core.Song

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		found, lookupErr := s.findRelease(groupCtx, releaseID)
		if lookupErr != nil {
			return lookupErr
		}

		release = found

		return nil
	})

	group.Go(func() error {
		found, lookupErr := s.findSong(groupCtx, songID)
		if lookupErr != nil {
			return lookupErr
		}

		song = found

		return nil
	})

	if err = group.Wait(); err != nil {
		return core.SongAddedToRelease{}, err
	}

	if _, err = release.AddSong(song); err != nil {
		return core.SongAddedToRelease{}, err
	}

	if err = s.releases.AddSong(ctx, releaseID, songID); err != nil {
		return core.SongAddedToRelease{}, err
	}

	return core.BuildSongAddedToRelease(releaseID, songID, s.clock.Now()), nil
}

// ProposeReleaseDate proposes a release date for a draft release. The date
// must be strictly after today.
func (s *Service) ProposeReleaseDate(
	ctx context.Context,
	releaseID core.ReleaseID,
	proposedDate time.Time,
) (event core.ReleaseDateProposed, err error) {

	start := time.Now()
	defer func() { s.observeUseCase(ctx, "ProposeReleaseDate", start, err) }()

	release, err := s.findRelease(ctx, releaseID)
	if err != nil {
		return core.ReleaseDateProposed{}, err
	}

	updated, err := release.ProposeDate(proposedDate, s.clock.Today())
	if err != nil {
		return core.ReleaseDateProposed{}, err
	}

	if err = s.releases.TransitionToProposed(ctx, releaseID, updated.ProposedDate); err != nil {
		return core.ReleaseDateProposed{}, err
	}

	return core.BuildReleaseDateProposed(releaseID, updated.ProposedDate, s.clock.Now()), nil
}

// ApproveReleaseDate lets the record label bound to the release's artist
// approve the actual release date. Artists without a label cannot have a date
// approved; that rejection wraps core.ErrUnlabeledArtist.
func (s *Service) ApproveReleaseDate(
	ctx context.Context,
	releaseID core.ReleaseID,
	approver core.RecordLabelID,
	actualDate time.Time,
) (event core.ReleaseDateApproved, err error) {

	start := time.Now()
	defer func() { s.observeUseCase(ctx, "ApproveReleaseDate", start, err) }()

	release, err := s.findRelease(ctx, releaseID)
	if err != nil {
		return core.ReleaseDateApproved{}, err
	}

	artist, err := s.findArtist(ctx, release.ArtistID)
	if err != nil {
		return core.ReleaseDateApproved{}, err
	}

	updated, err := release.ApproveDate(artist, approver, actualDate, s.clock.Today())
	if err != nil {
		return core.ReleaseDateApproved{}, err
	}

	if err = s.releases.TransitionToApproved(ctx, releaseID, updated.ActualDate); err != nil {
		return core.ReleaseDateApproved{}, err
	}

	return core.BuildReleaseDateApproved(releaseID, approver, updated.ActualDate, s.clock.Now()), nil
}

// DistributeRelease puts an approved release out for streaming once its
// approved date has been reached.
func (s *Service) DistributeRelease(
	ctx context.Context,
	releaseID core.ReleaseID,
) (event core.ReleaseDistributed, err error) {

	start := time.Now()
	defer func() { s.observeUseCase(ctx, "DistributeRelease", start, err) }()

	release, err := s.findRelease(ctx, releaseID)
	if err != nil {
		return core.ReleaseDistributed{}, err
	}

	updated, err := release.Distribute(s.clock.Today())
	if err != nil {
		return core.ReleaseDistributed{}, err
	}

	if err = s.releases.TransitionToReleased(ctx, releaseID); err != nil {
		return core.ReleaseDistributed{}, err
	}

	return core.BuildReleaseDistributed(releaseID, updated.ActualDate, s.clock.Now()), nil
}

// WithdrawRelease takes a released release off distribution.
func (s *Service) WithdrawRelease(
	ctx context.Context,
	releaseID core.ReleaseID,
) (event core.ReleaseWithdrawn, err error) {

	start := time.Now()
	defer func() { s.observeUseCase(ctx, "WithdrawRelease", start, err) }()

	release, err := s.findRelease(ctx, releaseID)
	if err != nil {
		return core.ReleaseWithdrawn{}, err
	}

	if _, err = release.Withdraw(); err != nil {
		return core.ReleaseWithdrawn{}, err
	}

	if err = s.releases.TransitionToWithdrawn(ctx, releaseID); err != nil {
		return core.ReleaseWithdrawn{}, err
	}

	return core.BuildReleaseWithdrawn(releaseID, s.clock.Now()), nil
}

func (s *Service) findArtist(ctx context.Context, id core.ArtistID) (core.Artist, error) {
	artist, found, err := s.artists.FindByID(ctx, id)
	if err != nil {
		return core.Artist{}, err
	}

	if !found {
		return core.Artist{}, fmt.Errorf("%w: artist %s", core.ErrNotFound, id)
	}

	return artist, nil
}

func (s *Service) findSong(ctx context.Context, id core.SongID) (core.Song, error) {
	song, found, err := s.songs.FindByID(ctx, id)
	if err != nil {
		return core.Song{}, err
	}

	if !found {
		return core.Song{}, fmt.Errorf("%w: song %s", core.ErrNotFound, id)
	}

	return song, nil
}

func (s *Service) findRelease(ctx context.Context, id core.ReleaseID) (core.Release, error) {
	release, found, err := s.releases.FindByID(ctx, id)
	if err != nil {
		return core.Release{}, err
	}

	if !found {
		return core.Release{}, fmt.Errorf("%w: release %s", core.ErrNotFound, id)
	}

	return release, nil
}
