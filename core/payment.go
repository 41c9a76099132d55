package core

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// PerStreamRate is the amount an artist earns per unpaid monetized stream.
var PerStreamRate = decimal.RequireFromString("0.003")

// ComputePaymentAmount calculates the payable amount for the given number of
// unpaid monetized streams. The caller guarantees a positive count; a
// non-positive result is an invariant violation reported as ErrInternal,
// never as a user-facing error.
func ComputePaymentAmount(streamCount int) (decimal.Decimal, error) {
	if streamCount <= 0 {
		return decimal.Decimal{}, fmt.Errorf(
			"%w: payment amount requested for %d streams", ErrInternal, streamCount)
	}

	amount := PerStreamRate.Mul(decimal.NewFromInt(int64(streamCount)))
	if !amount.IsPositive() {
		return decimal.Decimal{}, fmt.Errorf(
			"%w: payment amount %s for %d streams is not positive", ErrInternal, amount, streamCount)
	}

	return amount, nil
}

// Payment is the immutable record of one payout to an artist, covering a
// non-empty set of streams. It identifies the covered streams but never
// mutates them; marking them paid happens out-of-band in the stream store.
type Payment struct {
	ArtistID  ArtistID
	Amount    decimal.Decimal
	PaidAt    time.Time
	StreamIDs []StreamID
}

// BuildPayment validates and constructs a Payment.
func BuildPayment(artistID ArtistID, amount decimal.Decimal, paidAt time.Time, streamIDs []StreamID) (Payment, error) {
	if artistID.IsZero() {
		return Payment{}, fmt.Errorf("%w: payment artist id must not be zero", ErrInvalidArgument)
	}

	if !amount.IsPositive() {
		return Payment{}, fmt.Errorf("%w: payment amount must be positive, got %s", ErrInvalidArgument, amount)
	}

	if len(streamIDs) == 0 {
		return Payment{}, fmt.Errorf("%w: a payment must cover at least one stream", ErrInvalidArgument)
	}

	return Payment{
		ArtistID:  artistID,
		Amount:    amount,
		PaidAt:    ToOccurredAt(paidAt),
		StreamIDs: append([]StreamID(nil), streamIDs...),
	}, nil
}
