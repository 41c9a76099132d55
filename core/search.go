package core

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// SearchSongs returns all songs whose title is within the given edit-distance
// threshold of the query, compared case-insensitively. Distance is the
// standard Levenshtein distance: single-character insertions, deletions and
// substitutions at cost 1 each.
//
// Results are sorted by ascending distance (stable within equal distances)
// for determinism.
func SearchSongs(songs []Song, query string, threshold int) ([]Song, error) {
	if query == "" {
		return nil, fmt.Errorf("%w: search query must not be empty", ErrInvalidArgument)
	}

	if threshold < 0 {
		return nil, fmt.Errorf("%w: search threshold must not be negative, got %d", ErrInvalidArgument, threshold)
	}

	normalizedQuery := strings.ToLower(query)

	type scoredSong struct {
		song     Song
		distance int
	}

	var matches []scoredSong

	for _, song := range songs {
		distance := levenshtein.ComputeDistance(normalizedQuery, strings.ToLower(song.Title))
		if distance <= threshold {
			matches = append(matches, scoredSong{song: song, distance: distance})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].distance < matches[j].distance
	})

	result := make([]Song, 0, len(matches))
	for _, match := range matches {
		result = append(result, match.song)
	}

	return result, nil
}
