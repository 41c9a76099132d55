package postgresrepo

import (
	"context"

	"github.com/doug-martin/goqu/v9"

	"github.com/recordlane/releasecraft/core"
	"github.com/recordlane/releasecraft/service"
)

// SongRepository is the Postgres implementation of service.SongRepository.
type SongRepository struct {
	store *Store
}

var _ service.SongRepository = (*SongRepository)(nil)

// FindByID loads a song by id; the bool result reports absence.
func (r *SongRepository) FindByID(ctx context.Context, id core.SongID) (core.Song, bool, error) {
	sqlQuery, args, err := goqu.Dialect(dialectPostgres).
		From(tableSongs).
		Select(colTitle, colArtistID, colDurationSeconds).
		Where(goqu.C(colID).Eq(id.String())).
		Prepared(true).
		ToSQL()
	if err != nil {
		return core.Song{}, false, err
	}

	rows, err := r.store.query(ctx, sqlQuery, args)
	if err != nil {
		return core.Song{}, false, err
	}
	defer r.store.closeRows(rows)

	if !rows.Next() {
		return core.Song{}, false, nil
	}

	var title string
	var artistValue string
	var durationSeconds int

	if err = rows.Scan(&title, &artistValue, &durationSeconds); err != nil {
		r.store.logError(logMsgScanFailed, logAttrError, err.Error(), logAttrTable, tableSongs)
		return core.Song{}, false, err
	}

	artistID, err := core.ParseArtistID(artistValue)
	if err != nil {
		return core.Song{}, false, err
	}

	song, err := core.BuildSong(id, title, artistID, durationSeconds)
	if err != nil {
		return core.Song{}, false, err
	}

	return song, true, nil
}

// CountExisting returns how many of the given song ids exist.
func (r *SongRepository) CountExisting(ctx context.Context, ids []core.SongID) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	idValues := make([]string, 0, len(ids))
	for _, id := range ids {
		idValues = append(idValues, id.String())
	}

	sqlQuery, args, err := goqu.Dialect(dialectPostgres).
		From(tableSongs).
		Select(goqu.COUNT(goqu.Star())).
		Where(goqu.C(colID).In(idValues)).
		Prepared(true).
		ToSQL()
	if err != nil {
		return 0, err
	}

	rows, err := r.store.query(ctx, sqlQuery, args)
	if err != nil {
		return 0, err
	}
	defer r.store.closeRows(rows)

	var count int

	if rows.Next() {
		if err = rows.Scan(&count); err != nil {
			r.store.logError(logMsgScanFailed, logAttrError, err.Error(), logAttrTable, tableSongs)
			return 0, err
		}
	}

	return count, nil
}

// ListReleased returns all songs that belong to at least one released release.
func (r *SongRepository) ListReleased(ctx context.Context) ([]core.Song, error) {
	sqlQuery, args, err := goqu.Dialect(dialectPostgres).
		From(tableSongs).
		Select(
			goqu.I(tableSongs+"."+colID),
			goqu.I(tableSongs+"."+colTitle),
			goqu.I(tableSongs+"."+colArtistID),
			goqu.I(tableSongs+"."+colDurationSeconds),
		).
		Distinct().
		Join(
			goqu.T(tableReleaseSongs),
			goqu.On(goqu.I(tableReleaseSongs+"."+colSongID).Eq(goqu.I(tableSongs+"."+colID))),
		).
		Join(
			goqu.T(tableReleases),
			goqu.On(goqu.I(tableReleases+"."+colID).Eq(goqu.I(tableReleaseSongs+"."+colReleaseID))),
		).
		Where(goqu.I(tableReleases + "." + colStatus).Eq(core.StatusReleased.String())).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, err
	}

	rows, err := r.store.query(ctx, sqlQuery, args)
	if err != nil {
		return nil, err
	}
	defer r.store.closeRows(rows)

	var songs []core.Song

	for rows.Next() {
		var idValue string
		var title string
		var artistValue string
		var durationSeconds int

		if err = rows.Scan(&idValue, &title, &artistValue, &durationSeconds); err != nil {
			r.store.logError(logMsgScanFailed, logAttrError, err.Error(), logAttrTable, tableSongs)
			return nil, err
		}

		id, parseErr := core.ParseSongID(idValue)
		if parseErr != nil {
			return nil, parseErr
		}

		artistID, parseErr := core.ParseArtistID(artistValue)
		if parseErr != nil {
			return nil, parseErr
		}

		song, buildErr := core.BuildSong(id, title, artistID, durationSeconds)
		if buildErr != nil {
			return nil, buildErr
		}

		songs = append(songs, song)
	}

	return songs, nil
}

// IsReleased reports whether the song belongs to at least one released release.
func (r *SongRepository) IsReleased(ctx context.Context, id core.SongID) (bool, error) {
	sqlQuery, args, err := goqu.Dialect(dialectPostgres).
		From(tableReleaseSongs).
		Select(goqu.COUNT(goqu.Star())).
		Join(
			goqu.T(tableReleases),
			goqu.On(goqu.I(tableReleases+"."+colID).Eq(goqu.I(tableReleaseSongs+"."+colReleaseID))),
		).
		Where(
			goqu.I(tableReleaseSongs+"."+colSongID).Eq(id.String()),
			goqu.I(tableReleases+"."+colStatus).Eq(core.StatusReleased.String()),
		).
		Prepared(true).
		ToSQL()
	if err != nil {
		return false, err
	}

	rows, err := r.store.query(ctx, sqlQuery, args)
	if err != nil {
		return false, err
	}
	defer r.store.closeRows(rows)

	var count int

	if rows.Next() {
		if err = rows.Scan(&count); err != nil {
			r.store.logError(logMsgScanFailed, logAttrError, err.Error(), logAttrTable, tableReleaseSongs)
			return false, err
		}
	}

	return count > 0, nil
}

// Save upserts a song.
func (r *SongRepository) Save(ctx context.Context, song core.Song) error {
	sqlQuery, args, err := goqu.Dialect(dialectPostgres).
		Insert(tableSongs).
		Rows(goqu.Record{
			colID:              song.ID.String(),
			colTitle:           song.Title,
			colArtistID:        song.ArtistID.String(),
			colDurationSeconds: song.DurationSeconds,
		}).
		OnConflict(goqu.DoUpdate(colID, goqu.Record{
			colTitle:           song.Title,
			colArtistID:        song.ArtistID.String(),
			colDurationSeconds: song.DurationSeconds,
		})).
		Prepared(true).
		ToSQL()
	if err != nil {
		return err
	}

	_, err = r.store.exec(ctx, sqlQuery, args)

	return err
}
