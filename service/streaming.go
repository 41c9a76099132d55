package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/recordlane/releasecraft/core"
)

// RecordStream records one playback event of a released song. The stream id
// and the creation timestamp come from the collaborators; the monetization
// classification is fixed at creation. Streams are assumed unique by
// identity; no deduplication happens here.
func (s *Service) RecordStream(
	ctx context.Context,
	songID core.SongID,
	durationSeconds int,
) (event core.SongStreamed, err error) {

	start := time.Now()
	defer func() { s.observeUseCase(ctx, "RecordStream", start, err) }()

	if _, err = s.findSong(ctx, songID); err != nil {
		return core.SongStreamed{}, err
	}

	released, err := s.songs.IsReleased(ctx, songID)
	if err != nil {
		return core.SongStreamed{}, err
	}

	if !released {
		return core.SongStreamed{}, fmt.Errorf(
			"%w: song %s is not released for streaming", core.ErrInvalidState, songID)
	}

	stream, err := core.BuildAudioStream(s.ids.NewStreamID(), songID, durationSeconds, s.clock.Now())
	if err != nil {
		return core.SongStreamed{}, err
	}

	if err = s.streams.Save(ctx, stream); err != nil {
		return core.SongStreamed{}, err
	}

	return core.BuildSongStreamed(stream, s.clock.Now()), nil
}

// GetStreamReport partitions all of an artist's recorded streams into
// monetized and non-monetized sets. The artist lookup and the stream listing
// are independent reads issued concurrently; the first failure wins.
func (s *Service) GetStreamReport(
	ctx context.Context,
	artistID core.ArtistID,
) (report core.StreamReport, err error) {

	start := time.Now()
	defer func() { s.observeUseCase(ctx, "GetStreamReport", start, err) }()

	var streams []core.AudioStream

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		_, lookupErr := s.findArtist(groupCtx, artistID)

		return lookupErr
	})

	group.Go(func() error {
		listed, listErr := s.streams.ListByArtist(groupCtx, artistID)
		if listErr != nil {
			return listErr
		}

		streams = listed

		return nil
	})

	if err = group.Wait(); err != nil {
		return core.StreamReport{}, err
	}

	return core.BuildStreamReport(artistID, streams), nil
}
