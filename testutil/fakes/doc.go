// Package fakes provides in-memory collaborator implementations for testing
// the workflow orchestrator without a database: repositories backed by maps,
// a settable clock, and an identifier generator that records what it issues.
package fakes
