package service

import (
	"context"
	"time"

	"github.com/recordlane/releasecraft/core"
)

// SearchSongs finds released songs whose title is within the given
// edit-distance threshold of the query, compared case-insensitively.
// Results are sorted by ascending distance.
func (s *Service) SearchSongs(
	ctx context.Context,
	query string,
	threshold int,
) (matches []core.Song, err error) {

	start := time.Now()
	defer func() { s.observeUseCase(ctx, "SearchSongs", start, err) }()

	released, err := s.songs.ListReleased(ctx)
	if err != nil {
		return nil, err
	}

	return core.SearchSongs(released, query, threshold)
}
