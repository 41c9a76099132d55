package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/recordlane/releasecraft/core"
)

// FileForPayment aggregates the artist's unpaid monetized streams into a
// payment, stores it, and marks the covered streams paid. Saving the payment
// and marking the streams are one logical operation from the caller's
// perspective: the host must wrap the call in a single transaction so a
// downstream failure aborts both writes.
//
// Having no unpaid monetized streams is a domain rule violation
// (core.ErrInvalidState), not a transient condition.
func (s *Service) FileForPayment(
	ctx context.Context,
	artistID core.ArtistID,
) (event core.PaymentFiled, err error) {

	start := time.Now()
	defer func() { s.observeUseCase(ctx, "FileForPayment", start, err) }()

	var unpaid []core.AudioStream

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		_, lookupErr := s.findArtist(groupCtx, artistID)

		return lookupErr
	})

	group.Go(func() error {
		listed, listErr := s.streams.ListUnpaidMonetizedByArtist(groupCtx, artistID)
		if listErr != nil {
			return listErr
		}

		unpaid = listed

		return nil
	})

	if err = group.Wait(); err != nil {
		return core.PaymentFiled{}, err
	}

	if len(unpaid) == 0 {
		return core.PaymentFiled{}, fmt.Errorf(
			"%w: artist %s has no unpaid monetized streams", core.ErrInvalidState, artistID)
	}

	amount, err := core.ComputePaymentAmount(len(unpaid))
	if err != nil {
		return core.PaymentFiled{}, err
	}

	streamIDs := make([]core.StreamID, 0, len(unpaid))
	for _, stream := range unpaid {
		streamIDs = append(streamIDs, stream.ID)
	}

	payment, err := core.BuildPayment(artistID, amount, s.clock.Now(), streamIDs)
	if err != nil {
		return core.PaymentFiled{}, err
	}

	if err = s.payments.Save(ctx, payment); err != nil {
		return core.PaymentFiled{}, err
	}

	if err = s.streams.MarkPaid(ctx, streamIDs); err != nil {
		return core.PaymentFiled{}, err
	}

	return core.BuildPaymentFiled(payment, s.clock.Now()), nil
}
