package postgresrepo

import (
	"context"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"

	"github.com/recordlane/releasecraft/core"
	"github.com/recordlane/releasecraft/service"
)

// PaymentRepository is the Postgres implementation of service.PaymentRepository.
type PaymentRepository struct {
	store *Store
}

var _ service.PaymentRepository = (*PaymentRepository)(nil)

// Save stores a payment and the set of streams it covers. Payments are
// immutable, so this is a plain insert. The row key is storage-internal;
// the domain identifies a payment by artist, amount and covered streams.
func (r *PaymentRepository) Save(ctx context.Context, payment core.Payment) error {
	paymentKey := uuid.New().String()

	sqlQuery, args, err := goqu.Dialect(dialectPostgres).
		Insert(tablePayments).
		Rows(goqu.Record{
			colID:       paymentKey,
			colArtistID: payment.ArtistID.String(),
			colAmount:   payment.Amount.String(),
			colPaidAt:   payment.PaidAt,
		}).
		Prepared(true).
		ToSQL()
	if err != nil {
		return err
	}

	if _, err = r.store.exec(ctx, sqlQuery, args); err != nil {
		return err
	}

	itemRows := make([]any, 0, len(payment.StreamIDs))
	for _, streamID := range payment.StreamIDs {
		itemRows = append(itemRows, goqu.Record{
			colPaymentID: paymentKey,
			colStreamID:  streamID.String(),
		})
	}

	sqlQuery, args, err = goqu.Dialect(dialectPostgres).
		Insert(tablePaymentItems).
		Rows(itemRows...).
		Prepared(true).
		ToSQL()
	if err != nil {
		return err
	}

	_, err = r.store.exec(ctx, sqlQuery, args)

	return err
}
