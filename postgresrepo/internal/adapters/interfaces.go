// Package adapters wraps the supported database drivers behind one small
// interface so the repositories stay driver-agnostic.
package adapters

import "context"

// DBAdapter defines the interface for database operations needed by the repositories.
type DBAdapter interface {
	Query(ctx context.Context, query string, args ...any) (DBRows, error)
	Exec(ctx context.Context, query string, args ...any) (DBResult, error)
}

// DBRows defines the interface for query result rows.
type DBRows interface {
	Next() bool
	Scan(dest ...any) error
	Close() error
}

// DBResult defines the interface for execution results.
type DBResult interface {
	RowsAffected() (int64, error)
}
