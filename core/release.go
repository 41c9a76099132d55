package core

import (
	"fmt"
	"time"
)

// Release is a bundle of songs from one artist moving through the approval
// and distribution lifecycle. The transition methods are pure guards: they
// take the current value plus the inputs of the transition and return the
// updated value, never mutating the receiver.
//
// Invariants:
//   - at least one song at all times
//   - ProposedDate is set once the status reaches ProposedDate
//   - ActualDate is set if and only if the status is Approved, Released or Withdrawn
type Release struct {
	ID           ReleaseID
	ArtistID     ArtistID
	SongIDs      []SongID
	ProposedDate time.Time // zero until a date is proposed
	ActualDate   time.Time // zero until a date is approved
	Status       ReleaseStatus
}

// BuildRelease validates and constructs a Release. The initial status is
// Draft, or ProposedDate when a proposed date is supplied at creation.
func BuildRelease(id ReleaseID, artistID ArtistID, songIDs []SongID, proposedDate time.Time) (Release, error) {
	if id.IsZero() {
		return Release{}, fmt.Errorf("%w: release id must not be zero", ErrInvalidArgument)
	}

	if artistID.IsZero() {
		return Release{}, fmt.Errorf("%w: release artist id must not be zero", ErrInvalidArgument)
	}

	if len(songIDs) == 0 {
		return Release{}, fmt.Errorf("%w: a release needs at least one song", ErrInvalidArgument)
	}

	release := Release{
		ID:       id,
		ArtistID: artistID,
		SongIDs:  append([]SongID(nil), songIDs...),
		Status:   StatusDraft,
	}

	if !proposedDate.IsZero() {
		release.ProposedDate = ToReleaseDate(proposedDate)
		release.Status = StatusProposedDate
	}

	return release, nil
}

// AddSong appends a song to a draft release. The song must belong to the same
// artist as the release.
func (r Release) AddSong(song Song) (Release, error) {
	switch r.Status {
	case StatusDraft:
		// songs can only be added while drafting
	case StatusProposedDate, StatusApproved, StatusReleased, StatusWithdrawn:
		return Release{}, fmt.Errorf("%w: cannot add a song to a release in status %s", ErrInvalidState, r.Status)
	default:
		return Release{}, fmt.Errorf("%w: unknown release status %q", ErrInternal, r.Status)
	}

	if song.ArtistID != r.ArtistID {
		return Release{}, fmt.Errorf(
			"%w: song %s belongs to a different artist than the release", ErrInvalidArgument, song.ID)
	}

	r.SongIDs = append(append([]SongID(nil), r.SongIDs...), song.ID)

	return r, nil
}

// ProposeDate moves a draft release to ProposedDate. The proposed date must be
// strictly after today.
func (r Release) ProposeDate(date time.Time, today time.Time) (Release, error) {
	switch r.Status {
	case StatusDraft:
		// only drafts can have a date proposed
	case StatusProposedDate, StatusApproved, StatusReleased, StatusWithdrawn:
		return Release{}, fmt.Errorf("%w: cannot propose a date for a release in status %s", ErrInvalidState, r.Status)
	default:
		return Release{}, fmt.Errorf("%w: unknown release status %q", ErrInternal, r.Status)
	}

	proposed := ToReleaseDate(date)
	if !proposed.After(ToReleaseDate(today)) {
		return Release{}, fmt.Errorf("%w: proposed release date must be in the future", ErrInvalidArgument)
	}

	r.ProposedDate = proposed
	r.Status = StatusProposedDate

	return r, nil
}

// ApproveDate moves a release from ProposedDate to Approved. Only the record
// label bound to the release's artist may approve; the artist must have a
// label at all, and the approved date must be strictly after today.
func (r Release) ApproveDate(artist Artist, approver RecordLabelID, date time.Time, today time.Time) (Release, error) {
	switch r.Status {
	case StatusProposedDate:
		// approval follows a proposed date
	case StatusDraft, StatusApproved, StatusReleased, StatusWithdrawn:
		return Release{}, fmt.Errorf("%w: cannot approve a release in status %s", ErrInvalidState, r.Status)
	default:
		return Release{}, fmt.Errorf("%w: unknown release status %q", ErrInternal, r.Status)
	}

	if artist.ID != r.ArtistID {
		return Release{}, fmt.Errorf("%w: artist %s does not own release %s", ErrInternal, artist.ID, r.ID)
	}

	if !artist.HasLabel() {
		return Release{}, fmt.Errorf("%w: cannot approve release %s", ErrUnlabeledArtist, r.ID)
	}

	if artist.Label != approver {
		return Release{}, fmt.Errorf(
			"%w: record label %s is not the label of artist %s", ErrPolicyViolation, approver, artist.ID)
	}

	actual := ToReleaseDate(date)
	if !actual.After(ToReleaseDate(today)) {
		return Release{}, fmt.Errorf("%w: approved release date must be in the future", ErrInvalidArgument)
	}

	r.ActualDate = actual
	r.Status = StatusApproved

	return r, nil
}

// Distribute moves an approved release to Released once its approved date has
// been reached (on or before today).
func (r Release) Distribute(today time.Time) (Release, error) {
	switch r.Status {
	case StatusApproved:
		// only approved releases can be distributed
	case StatusDraft, StatusProposedDate, StatusReleased, StatusWithdrawn:
		return Release{}, fmt.Errorf("%w: cannot distribute a release in status %s", ErrInvalidState, r.Status)
	default:
		return Release{}, fmt.Errorf("%w: unknown release status %q", ErrInternal, r.Status)
	}

	if r.ActualDate.IsZero() {
		return Release{}, fmt.Errorf("%w: approved release %s has no actual release date", ErrInternal, r.ID)
	}

	if r.ActualDate.After(ToReleaseDate(today)) {
		return Release{}, fmt.Errorf(
			"%w: release date %s has not been reached yet", ErrInvalidState, r.ActualDate.Format(time.DateOnly))
	}

	r.Status = StatusReleased

	return r, nil
}

// Withdraw takes a released release off distribution. Withdrawn is terminal.
func (r Release) Withdraw() (Release, error) {
	switch r.Status {
	case StatusReleased:
		// only released releases can be withdrawn
	case StatusDraft, StatusProposedDate, StatusApproved, StatusWithdrawn:
		return Release{}, fmt.Errorf("%w: cannot withdraw a release in status %s", ErrInvalidState, r.Status)
	default:
		return Release{}, fmt.Errorf("%w: unknown release status %q", ErrInternal, r.Status)
	}

	r.Status = StatusWithdrawn

	return r, nil
}
