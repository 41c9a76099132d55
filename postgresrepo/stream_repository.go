package postgresrepo

import (
	"context"
	"time"

	"github.com/doug-martin/goqu/v9"

	"github.com/recordlane/releasecraft/core"
	"github.com/recordlane/releasecraft/service"
)

// StreamRepository is the Postgres implementation of service.StreamRepository.
type StreamRepository struct {
	store *Store
}

var _ service.StreamRepository = (*StreamRepository)(nil)

// Save stores a playback event. Streams are immutable, so this is a plain
// insert, never an upsert.
func (r *StreamRepository) Save(ctx context.Context, stream core.AudioStream) error {
	sqlQuery, args, err := goqu.Dialect(dialectPostgres).
		Insert(tableAudioStreams).
		Rows(goqu.Record{
			colID:              stream.ID.String(),
			colSongID:          stream.SongID.String(),
			colDurationSeconds: stream.DurationSeconds,
			colRecordedAt:      stream.RecordedAt,
			colMonetized:       stream.Monetized.Bool(),
			colPaid:            false,
		}).
		Prepared(true).
		ToSQL()
	if err != nil {
		return err
	}

	_, err = r.store.exec(ctx, sqlQuery, args)

	return err
}

// ListByArtist returns all streams recorded for the artist's songs.
func (r *StreamRepository) ListByArtist(ctx context.Context, artistID core.ArtistID) ([]core.AudioStream, error) {
	return r.listStreams(ctx, artistID, false)
}

// ListUnpaidMonetizedByArtist returns the artist's monetized streams not yet
// covered by a payment.
func (r *StreamRepository) ListUnpaidMonetizedByArtist(ctx context.Context, artistID core.ArtistID) ([]core.AudioStream, error) {
	return r.listStreams(ctx, artistID, true)
}

// MarkPaid flags the given streams as paid. Only rows still unpaid are
// touched, so a transactional host can detect concurrent double-filing from
// the affected count.
func (r *StreamRepository) MarkPaid(ctx context.Context, ids []core.StreamID) error {
	if len(ids) == 0 {
		return nil
	}

	idValues := make([]string, 0, len(ids))
	for _, id := range ids {
		idValues = append(idValues, id.String())
	}

	sqlQuery, args, err := goqu.Dialect(dialectPostgres).
		Update(tableAudioStreams).
		Set(goqu.Record{colPaid: true}).
		Where(
			goqu.C(colID).In(idValues),
			goqu.C(colPaid).IsFalse(),
		).
		Prepared(true).
		ToSQL()
	if err != nil {
		return err
	}

	affected, err := r.store.exec(ctx, sqlQuery, args)
	if err != nil {
		return err
	}

	r.store.logDebug(logMsgSQLExecuted, logAttrTable, tableAudioStreams, logAttrRowsChanged, affected)

	return nil
}

func (r *StreamRepository) listStreams(ctx context.Context, artistID core.ArtistID, unpaidMonetizedOnly bool) ([]core.AudioStream, error) {
	query := goqu.Dialect(dialectPostgres).
		From(tableAudioStreams).
		Select(
			goqu.I(tableAudioStreams+"."+colID),
			goqu.I(tableAudioStreams+"."+colSongID),
			goqu.I(tableAudioStreams+"."+colDurationSeconds),
			goqu.I(tableAudioStreams+"."+colRecordedAt),
		).
		Join(
			goqu.T(tableSongs),
			goqu.On(goqu.I(tableSongs+"."+colID).Eq(goqu.I(tableAudioStreams+"."+colSongID))),
		).
		Where(goqu.I(tableSongs + "." + colArtistID).Eq(artistID.String())).
		Order(goqu.I(tableAudioStreams + "." + colRecordedAt).Asc())

	if unpaidMonetizedOnly {
		query = query.Where(
			goqu.I(tableAudioStreams+"."+colMonetized).IsTrue(),
			goqu.I(tableAudioStreams+"."+colPaid).IsFalse(),
		)
	}

	sqlQuery, args, err := query.Prepared(true).ToSQL()
	if err != nil {
		return nil, err
	}

	rows, err := r.store.query(ctx, sqlQuery, args)
	if err != nil {
		return nil, err
	}
	defer r.store.closeRows(rows)

	var streams []core.AudioStream

	for rows.Next() {
		var idValue string
		var songValue string
		var durationSeconds int
		var recordedAt time.Time

		if err = rows.Scan(&idValue, &songValue, &durationSeconds, &recordedAt); err != nil {
			r.store.logError(logMsgScanFailed, logAttrError, err.Error(), logAttrTable, tableAudioStreams)
			return nil, err
		}

		id, parseErr := core.ParseStreamID(idValue)
		if parseErr != nil {
			return nil, parseErr
		}

		songID, parseErr := core.ParseSongID(songValue)
		if parseErr != nil {
			return nil, parseErr
		}

		stream, buildErr := core.BuildAudioStream(id, songID, durationSeconds, recordedAt)
		if buildErr != nil {
			return nil, buildErr
		}

		streams = append(streams, stream)
	}

	return streams, nil
}
