package commands

import (
	"context"
	"log/slog"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/pkg/errs"
	"travel-booking/internal/pkg/patch"
	"travel-booking/internal/usecase/shared"
)

type UpdateBookingStatusRequest struct {
	Kind          booking.Kind
	Reference     string
	Status        *booking.Status
	PaymentStatus *booking.PaymentStatus
}

type BookingAdminCommands interface {
	UpdateBookingStatus(ctx context.Context, req UpdateBookingStatusRequest) (*shared.BookingSnapshot, error)
}

type bookingAdminUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewBookingAdminUseCase(uow shared.UnitOfWork) BookingAdminCommands {
	return &bookingAdminUseCaseImpl{uow: uow}
}

func (uc *bookingAdminUseCaseImpl) UpdateBookingStatus(ctx context.Context, req UpdateBookingStatusRequest) (*shared.BookingSnapshot, error) {
	if !req.Kind.IsValid() {
		return nil, invalid("kind", errs.New("unknown booking kind"))
	}

	var updated *shared.BookingSnapshot
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().BookingByReference(ctx, req.Kind, req.Reference)
		if err != nil {
			return notFoundAs(err, ErrBookingNotFound)
		}

		status, statusChanged := patch.Apply(req.Status, snap.Status)
		if statusChanged && !booking.CanTransition(req.Kind, snap.Status, status) {
			return errs.Wrap(ErrInvalidStatusTransition, string(snap.Status)+" -> "+string(status))
		}
		paymentStatus, paymentChanged := patch.Apply(req.PaymentStatus, snap.PaymentStatus)
		if paymentChanged && !booking.CanTransitionPayment(snap.PaymentStatus, paymentStatus) {
			return errs.Wrap(ErrInvalidPaymentTransition, string(snap.PaymentStatus)+" -> "+string(paymentStatus))
		}

		next := *snap
		next.Status, next.PaymentStatus = status, paymentStatus
		updated = &next
		if !statusChanged && !paymentChanged {
			return nil
		}
		return tx.Bookings().UpdateStatus(ctx, tx.DB(), req.Kind, req.Reference, status, paymentStatus)
	})
	if err != nil {
		return nil, classify(err)
	}

	slog.InfoContext(ctx, "booking status updated",
		"kind", req.Kind, "reference", req.Reference, "status", updated.Status, "payment_status", updated.PaymentStatus)
	return updated, nil
}
