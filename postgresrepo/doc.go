// Package postgresrepo provides Postgres-backed implementations of the
// collaborator contracts in package service, plus a store for domain event
// records. SQL is built with goqu and always parameterized; database access
// goes through a small adapter layer supporting pgx pools, database/sql
// handles and sqlx handles.
//
// The repositories persist what the orchestrator already validated. They do
// not open transactions themselves; the host is expected to wrap each use
// case in one transactional boundary.
package postgresrepo
