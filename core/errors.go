package core

import (
	"errors"
	"fmt"
)

// The error kinds every use case can fail with. Callers match them with
// errors.Is; the concrete messages wrap one of these sentinels.
var (
	// ErrNotFound signals that a referenced Artist, Song or Release does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidState signals that the requested operation is not valid for the
	// entity's current state, e.g. distributing a release that is not approved.
	ErrInvalidState = errors.New("invalid state")

	// ErrInvalidArgument signals structurally invalid input, e.g. a release date
	// that is not in the future.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrPolicyViolation signals a domain-rule rejection distinct from a generic
	// invalid state, e.g. a label approving a release of an artist bound to a
	// different label.
	ErrPolicyViolation = errors.New("policy violation")

	// ErrInternal signals a condition the system guarantees can never occur.
	// It is a programmer error and must abort the operation.
	ErrInternal = errors.New("internal invariant violation")
)

// ErrUnlabeledArtist is the dedicated rejection for approving a release of an
// artist without a bound record label. It wraps ErrPolicyViolation, so callers
// may match either the specific or the general kind.
var ErrUnlabeledArtist = fmt.Errorf("%w: artist has no record label", ErrPolicyViolation)
