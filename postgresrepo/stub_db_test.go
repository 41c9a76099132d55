package postgresrepo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/recordlane/releasecraft/postgresrepo/internal/adapters"
)

// stubDB is a scripted adapters.DBAdapter. It records every statement and
// serves result sets in the order they were queued with queueRows.
type stubDB struct {
	queries     []capturedStatement
	execs       []capturedStatement
	resultSets  [][][]any
	execErr     error
	queryErr    error
	rowsChanged int64
}

type capturedStatement struct {
	sql  string
	args []any
}

func (db *stubDB) queueRows(rows ...[]any) {
	db.resultSets = append(db.resultSets, rows)
}

func (db *stubDB) Query(_ context.Context, query string, args ...any) (adapters.DBRows, error) {
	db.queries = append(db.queries, capturedStatement{sql: query, args: args})

	if db.queryErr != nil {
		return nil, db.queryErr
	}

	var rows [][]any
	if len(db.resultSets) > 0 {
		rows = db.resultSets[0]
		db.resultSets = db.resultSets[1:]
	}

	return &stubRows{rows: rows}, nil
}

func (db *stubDB) Exec(_ context.Context, query string, args ...any) (adapters.DBResult, error) {
	db.execs = append(db.execs, capturedStatement{sql: query, args: args})

	if db.execErr != nil {
		return nil, db.execErr
	}

	return stubResult{affected: db.rowsChanged}, nil
}

var _ adapters.DBAdapter = (*stubDB)(nil)

type stubRows struct {
	rows [][]any
	pos  int
}

func (r *stubRows) Next() bool {
	if r.pos >= len(r.rows) {
		return false
	}

	r.pos++

	return true
}

func (r *stubRows) Scan(dest ...any) error {
	row := r.rows[r.pos-1]
	if len(dest) != len(row) {
		return fmt.Errorf("scan expects %d destinations, row has %d values", len(dest), len(row))
	}

	for i, value := range row {
		if err := assignScanValue(dest[i], value); err != nil {
			return err
		}
	}

	return nil
}

func (r *stubRows) Close() error {
	return nil
}

func assignScanValue(dest any, value any) error {
	switch d := dest.(type) {
	case *string:
		*d = value.(string)
	case *int:
		*d = value.(int)
	case *int64:
		*d = value.(int64)
	case *bool:
		*d = value.(bool)
	case *time.Time:
		*d = value.(time.Time)
	case *sql.NullString:
		if value == nil {
			*d = sql.NullString{}
		} else {
			*d = sql.NullString{String: value.(string), Valid: true}
		}
	case *sql.NullTime:
		if value == nil {
			*d = sql.NullTime{}
		} else {
			*d = sql.NullTime{Time: value.(time.Time), Valid: true}
		}
	default:
		return fmt.Errorf("unsupported scan destination %T", dest)
	}

	return nil
}

type stubResult struct {
	affected int64
}

func (r stubResult) RowsAffected() (int64, error) {
	return r.affected, nil
}

func newStubStore() (*Store, *stubDB) {
	db := &stubDB{}

	return newStore(db), db
}
