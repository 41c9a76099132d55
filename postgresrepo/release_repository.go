package postgresrepo

import (
	"context"
	"database/sql"
	"time"

	"github.com/doug-martin/goqu/v9"

	"github.com/recordlane/releasecraft/core"
	"github.com/recordlane/releasecraft/service"
)

// ReleaseRepository is the Postgres implementation of service.ReleaseRepository.
// It persists what the orchestrator already validated and does not re-run the
// transition guards.
type ReleaseRepository struct {
	store *Store
}

var _ service.ReleaseRepository = (*ReleaseRepository)(nil)

// Create stores a new release with a fresh id. The initial status is derived
// from the proposed date: ProposedDate if one was given, Draft otherwise.
func (r *ReleaseRepository) Create(
	ctx context.Context,
	artistID core.ArtistID,
	songIDs []core.SongID,
	proposedDate time.Time,
) (core.Release, error) {

	release, err := core.BuildRelease(core.NewReleaseID(), artistID, songIDs, proposedDate)
	if err != nil {
		return core.Release{}, err
	}

	var proposedValue any
	if !release.ProposedDate.IsZero() {
		proposedValue = release.ProposedDate
	}

	sqlQuery, args, err := goqu.Dialect(dialectPostgres).
		Insert(tableReleases).
		Rows(goqu.Record{
			colID:           release.ID.String(),
			colArtistID:     release.ArtistID.String(),
			colProposedDate: proposedValue,
			colActualDate:   nil,
			colStatus:       release.Status.String(),
		}).
		Prepared(true).
		ToSQL()
	if err != nil {
		return core.Release{}, err
	}

	if _, err = r.store.exec(ctx, sqlQuery, args); err != nil {
		return core.Release{}, err
	}

	songRows := make([]any, 0, len(release.SongIDs))
	for position, songID := range release.SongIDs {
		songRows = append(songRows, goqu.Record{
			colReleaseID: release.ID.String(),
			colSongID:    songID.String(),
			colPosition:  position,
		})
	}

	sqlQuery, args, err = goqu.Dialect(dialectPostgres).
		Insert(tableReleaseSongs).
		Rows(songRows...).
		Prepared(true).
		ToSQL()
	if err != nil {
		return core.Release{}, err
	}

	if _, err = r.store.exec(ctx, sqlQuery, args); err != nil {
		return core.Release{}, err
	}

	return release, nil
}

// FindByID loads a release with its ordered song ids; the bool result reports absence.
func (r *ReleaseRepository) FindByID(ctx context.Context, id core.ReleaseID) (core.Release, bool, error) {
	sqlQuery, args, err := goqu.Dialect(dialectPostgres).
		From(tableReleases).
		Select(colArtistID, colProposedDate, colActualDate, colStatus).
		Where(goqu.C(colID).Eq(id.String())).
		Prepared(true).
		ToSQL()
	if err != nil {
		return core.Release{}, false, err
	}

	rows, err := r.store.query(ctx, sqlQuery, args)
	if err != nil {
		return core.Release{}, false, err
	}
	defer r.store.closeRows(rows)

	if !rows.Next() {
		return core.Release{}, false, nil
	}

	var artistValue string
	var proposedValue sql.NullTime
	var actualValue sql.NullTime
	var statusValue string

	if err = rows.Scan(&artistValue, &proposedValue, &actualValue, &statusValue); err != nil {
		r.store.logError(logMsgScanFailed, logAttrError, err.Error(), logAttrTable, tableReleases)
		return core.Release{}, false, err
	}

	artistID, err := core.ParseArtistID(artistValue)
	if err != nil {
		return core.Release{}, false, err
	}

	status, err := core.ParseReleaseStatus(statusValue)
	if err != nil {
		return core.Release{}, false, err
	}

	songIDs, err := r.listSongIDs(ctx, id)
	if err != nil {
		return core.Release{}, false, err
	}

	release := core.Release{
		ID:       id,
		ArtistID: artistID,
		SongIDs:  songIDs,
		Status:   status,
	}

	if proposedValue.Valid {
		release.ProposedDate = core.ToReleaseDate(proposedValue.Time)
	}

	if actualValue.Valid {
		release.ActualDate = core.ToReleaseDate(actualValue.Time)
	}

	return release, true, nil
}

// AddSong appends a song to the release's ordered song list.
func (r *ReleaseRepository) AddSong(ctx context.Context, releaseID core.ReleaseID, songID core.SongID) error {
	nextPosition := goqu.From(tableReleaseSongs).
		Select(
			goqu.V(releaseID.String()),
			goqu.V(songID.String()),
			goqu.L("COALESCE(MAX(position) + 1, 0)"),
		).
		Where(goqu.C(colReleaseID).Eq(releaseID.String()))

	sqlQuery, args, err := goqu.Dialect(dialectPostgres).
		Insert(tableReleaseSongs).
		Cols(colReleaseID, colSongID, colPosition).
		FromQuery(nextPosition).
		Prepared(true).
		ToSQL()
	if err != nil {
		return err
	}

	_, err = r.store.exec(ctx, sqlQuery, args)

	return err
}

// TransitionToProposed stores the proposed date and the ProposedDate status.
func (r *ReleaseRepository) TransitionToProposed(ctx context.Context, releaseID core.ReleaseID, proposedDate time.Time) error {
	return r.updateRelease(ctx, releaseID, goqu.Record{
		colProposedDate: core.ToReleaseDate(proposedDate),
		colStatus:       core.StatusProposedDate.String(),
	})
}

// TransitionToApproved stores the actual date and the Approved status.
func (r *ReleaseRepository) TransitionToApproved(ctx context.Context, releaseID core.ReleaseID, actualDate time.Time) error {
	return r.updateRelease(ctx, releaseID, goqu.Record{
		colActualDate: core.ToReleaseDate(actualDate),
		colStatus:     core.StatusApproved.String(),
	})
}

// TransitionToReleased stores the Released status.
func (r *ReleaseRepository) TransitionToReleased(ctx context.Context, releaseID core.ReleaseID) error {
	return r.updateRelease(ctx, releaseID, goqu.Record{
		colStatus: core.StatusReleased.String(),
	})
}

// TransitionToWithdrawn stores the Withdrawn status.
func (r *ReleaseRepository) TransitionToWithdrawn(ctx context.Context, releaseID core.ReleaseID) error {
	return r.updateRelease(ctx, releaseID, goqu.Record{
		colStatus: core.StatusWithdrawn.String(),
	})
}

func (r *ReleaseRepository) updateRelease(ctx context.Context, releaseID core.ReleaseID, changes goqu.Record) error {
	sqlQuery, args, err := goqu.Dialect(dialectPostgres).
		Update(tableReleases).
		Set(changes).
		Where(goqu.C(colID).Eq(releaseID.String())).
		Prepared(true).
		ToSQL()
	if err != nil {
		return err
	}

	_, err = r.store.exec(ctx, sqlQuery, args)

	return err
}

func (r *ReleaseRepository) listSongIDs(ctx context.Context, releaseID core.ReleaseID) ([]core.SongID, error) {
	sqlQuery, args, err := goqu.Dialect(dialectPostgres).
		From(tableReleaseSongs).
		Select(colSongID).
		Where(goqu.C(colReleaseID).Eq(releaseID.String())).
		Order(goqu.I(colPosition).Asc()).
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

	var songIDs []core.SongID

	for rows.Next() {
		var value string

		if err = rows.Scan(&value); err != nil {
			r.store.logError(logMsgScanFailed, logAttrError, err.Error(), logAttrTable, tableReleaseSongs)
			return nil, err
		}

		songID, parseErr := core.ParseSongID(value)
		if parseErr != nil {
			return nil, parseErr
		}

		songIDs = append(songIDs, songID)
	}

	return songIDs, nil
}
