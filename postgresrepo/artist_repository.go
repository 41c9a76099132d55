package postgresrepo

import (
	"context"
	"database/sql"

	"github.com/doug-martin/goqu/v9"

	"github.com/recordlane/releasecraft/core"
	"github.com/recordlane/releasecraft/service"
)

// ArtistRepository is the Postgres implementation of service.ArtistRepository.
type ArtistRepository struct {
	store *Store
}

var _ service.ArtistRepository = (*ArtistRepository)(nil)

// FindByID loads an artist by id; the bool result reports absence.
func (r *ArtistRepository) FindByID(ctx context.Context, id core.ArtistID) (core.Artist, bool, error) {
	sqlQuery, args, err := goqu.Dialect(dialectPostgres).
		From(tableArtists).
		Select(colName, colRecordLabelID).
		Where(goqu.C(colID).Eq(id.String())).
		Prepared(true).
		ToSQL()
	if err != nil {
		return core.Artist{}, false, err
	}

	rows, err := r.store.query(ctx, sqlQuery, args)
	if err != nil {
		return core.Artist{}, false, err
	}
	defer r.store.closeRows(rows)

	if !rows.Next() {
		return core.Artist{}, false, nil
	}

	var name string
	var labelValue sql.NullString

	if err = rows.Scan(&name, &labelValue); err != nil {
		r.store.logError(logMsgScanFailed, logAttrError, err.Error(), logAttrTable, tableArtists)
		return core.Artist{}, false, err
	}

	var label core.RecordLabelID

	if labelValue.Valid {
		if label, err = core.ParseRecordLabelID(labelValue.String); err != nil {
			return core.Artist{}, false, err
		}
	}

	artist, err := core.BuildArtist(id, name, label)
	if err != nil {
		return core.Artist{}, false, err
	}

	return artist, true, nil
}

// Save upserts an artist.
func (r *ArtistRepository) Save(ctx context.Context, artist core.Artist) error {
	var labelValue any
	if artist.HasLabel() {
		labelValue = artist.Label.String()
	}

	row := goqu.Record{
		colID:            artist.ID.String(),
		colName:          artist.Name,
		colRecordLabelID: labelValue,
	}

	sqlQuery, args, err := goqu.Dialect(dialectPostgres).
		Insert(tableArtists).
		Rows(row).
		OnConflict(goqu.DoUpdate(colID, goqu.Record{
			colName:          artist.Name,
			colRecordLabelID: labelValue,
		})).
		Prepared(true).
		ToSQL()
	if err != nil {
		return err
	}

	_, err = r.store.exec(ctx, sqlQuery, args)

	return err
}
