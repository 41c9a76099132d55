// Package service implements the workflow orchestrator for the music release
// lifecycle. It composes the pure business logic of package core against the
// external collaborators (repositories, clock, identifier generator) to
// implement each use case end-to-end and returns a domain event describing
// what happened.
//
// The service holds no mutable state of its own between invocations. Within
// one use case, reads happen before guard checks, which happen before the
// single terminal write. The host is expected to wrap each use case call in a
// single transactional boundary.
package service
