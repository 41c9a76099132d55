package core

import (
	"fmt"
)

// ReleaseStatus is the closed set of lifecycle states a release moves through:
// Draft, ProposedDate, Approved, Released, Withdrawn. Every transition
// site switches exhaustively over all five values, with the default branch
// reporting an internal error, so a new status cannot be added without
// updating every guard.
type ReleaseStatus string

const (
	StatusDraft        ReleaseStatus = "Draft"
	StatusProposedDate ReleaseStatus = "ProposedDate"
	StatusApproved     ReleaseStatus = "Approved"
	StatusReleased     ReleaseStatus = "Released"
	StatusWithdrawn    ReleaseStatus = "Withdrawn"
)

// ParseReleaseStatus maps the stored text form back to a ReleaseStatus.
func ParseReleaseStatus(value string) (ReleaseStatus, error) {
	switch status := ReleaseStatus(value); status {
	case StatusDraft, StatusProposedDate, StatusApproved, StatusReleased, StatusWithdrawn:
		return status, nil
	default:
		return "", fmt.Errorf("%w: unknown release status %q", ErrInvalidArgument, value)
	}
}

func (s ReleaseStatus) String() string {
	return string(s)
}

// IsTerminal reports whether no transition leaves this status.
func (s ReleaseStatus) IsTerminal() bool {
	return s == StatusWithdrawn
}
