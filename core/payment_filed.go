package core

import (
	"time"

	"github.com/shopspring/decimal"
)

const PaymentFiledEventType = "PaymentFiled"

// PaymentFiled records that a payment was filed for an artist, covering the
// listed streams.
type PaymentFiled struct {
	ArtistID   ArtistID
	Amount     decimal.Decimal
	StreamIDs  []StreamID
	OccurredAt OccurredAt
}

// BuildPaymentFiled creates the event from the filed payment.
func BuildPaymentFiled(payment Payment, occurredAt time.Time) PaymentFiled {
	return PaymentFiled{
		ArtistID:   payment.ArtistID,
		Amount:     payment.Amount,
		StreamIDs:  append([]StreamID(nil), payment.StreamIDs...),
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

func (e PaymentFiled) EventType() string {
	return PaymentFiledEventType
}

func (e PaymentFiled) HasOccurredAt() time.Time {
	return e.OccurredAt
}
