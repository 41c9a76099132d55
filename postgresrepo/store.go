package postgresrepo

import (
	"context"
	"database/sql"
	"errors"

	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"

	"github.com/recordlane/releasecraft/postgresrepo/internal/adapters"
)

const (
	dialectPostgres = "postgres"

	logMsgSQLExecuted  = "executed sql"
	logMsgQueryFailed  = "database query execution failed"
	logMsgExecFailed   = "database statement execution failed"
	logMsgScanFailed   = "failed to scan database row"
	logMsgCloseFailed  = "failed to close database rows"
	logAttrError       = "error"
	logAttrQuery       = "query"
	logAttrTable       = "table"
	logAttrRowsChanged = "rows_changed"
)

// ErrNilDatabaseHandle is returned when a Store factory receives a nil handle.
var ErrNilDatabaseHandle = errors.New("nil database handle supplied")

// Store bundles a database adapter with the optional logger and hands out the
// repository implementations.
type Store struct {
	db     adapters.DBAdapter
	logger Logger
}

// NewStoreFromPGXPool creates a Store backed by a pgx connection pool.
func NewStoreFromPGXPool(pool *pgxpool.Pool, opts ...Option) (*Store, error) {
	if pool == nil {
		return nil, ErrNilDatabaseHandle
	}

	return newStore(adapters.NewPGXAdapter(pool), opts...), nil
}

// NewStoreFromSQLDB creates a Store backed by a standard library sql.DB.
func NewStoreFromSQLDB(db *sql.DB, opts ...Option) (*Store, error) {
	if db == nil {
		return nil, ErrNilDatabaseHandle
	}

	return newStore(adapters.NewSQLAdapter(db), opts...), nil
}

// NewStoreFromSQLX creates a Store backed by an sqlx.DB.
func NewStoreFromSQLX(db *sqlx.DB, opts ...Option) (*Store, error) {
	if db == nil {
		return nil, ErrNilDatabaseHandle
	}

	return newStore(adapters.NewSQLXAdapter(db), opts...), nil
}

func newStore(db adapters.DBAdapter, opts ...Option) *Store {
	store := &Store{db: db}

	for _, opt := range opts {
		opt(store)
	}

	return store
}

// Artists returns the artist repository backed by this store.
func (s *Store) Artists() *ArtistRepository {
	return &ArtistRepository{store: s}
}

// Songs returns the song repository backed by this store.
func (s *Store) Songs() *SongRepository {
	return &SongRepository{store: s}
}

// Releases returns the release repository backed by this store.
func (s *Store) Releases() *ReleaseRepository {
	return &ReleaseRepository{store: s}
}

// Streams returns the stream repository backed by this store.
func (s *Store) Streams() *StreamRepository {
	return &StreamRepository{store: s}
}

// Payments returns the payment repository backed by this store.
func (s *Store) Payments() *PaymentRepository {
	return &PaymentRepository{store: s}
}

// EventLog returns the event log store backed by this store.
func (s *Store) EventLog() *EventLogStore {
	return &EventLogStore{store: s}
}

// query runs a parameterized select with debug logging.
func (s *Store) query(ctx context.Context, sqlQuery string, args []any) (adapters.DBRows, error) {
	s.logDebug(logMsgSQLExecuted, logAttrQuery, sqlQuery)

	rows, err := s.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		s.logError(logMsgQueryFailed, logAttrError, err.Error(), logAttrQuery, sqlQuery)
		return nil, err
	}

	return rows, nil
}

// exec runs a parameterized statement and returns the number of affected rows.
func (s *Store) exec(ctx context.Context, sqlQuery string, args []any) (int64, error) {
	s.logDebug(logMsgSQLExecuted, logAttrQuery, sqlQuery)

	result, err := s.db.Exec(ctx, sqlQuery, args...)
	if err != nil {
		s.logError(logMsgExecFailed, logAttrError, err.Error(), logAttrQuery, sqlQuery)
		return 0, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		s.logError(logMsgExecFailed, logAttrError, err.Error(), logAttrQuery, sqlQuery)
		return 0, err
	}

	return affected, nil
}

func (s *Store) closeRows(rows adapters.DBRows) {
	if err := rows.Close(); err != nil {
		s.logWarn(logMsgCloseFailed, logAttrError, err.Error())
	}
}

func (s *Store) logDebug(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Debug(msg, args...)
	}
}

func (s *Store) logWarn(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Warn(msg, args...)
	}
}

func (s *Store) logError(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Error(msg, args...)
	}
}
