package commands

import (
	"errors"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/infra"
	"travel-booking/internal/pkg/errs"
)

var (
	ErrRoomTypeNotFound         = errs.Mark(errs.New("room type not found"), errs.ErrNotFound)
	ErrCarNotFound              = errs.Mark(errs.New("car not found"), errs.ErrNotFound)
	ErrFlightNotFound           = errs.Mark(errs.New("flight not found"), errs.ErrNotFound)
	ErrHotelNotFound            = errs.Mark(errs.New("hotel not found"), errs.ErrNotFound)
	ErrBookingNotFound          = errs.Mark(errs.New("booking not found"), errs.ErrNotFound)
	ErrDraftNotFound            = errs.Mark(errs.New("draft not found"), errs.ErrNotFound)
	ErrInvalidStatusTransition  = errs.Mark(errs.New("invalid status transition"), errs.ErrValidation)
	ErrInvalidPaymentTransition = errs.Mark(errs.New("invalid payment status transition"), errs.ErrValidation)
	ErrReferenceExhausted       = errs.New("could not allocate a unique booking reference")
)

// classify marks domain and repository errors with the shared taxonomy.
func classify(err error) error {
	if err == nil {
		return nil
	}
	var verr *booking.ValidationError
	var aerr *booking.AvailabilityError
	switch {
	case errors.As(err, &verr):
		return errs.Mark(err, errs.ErrValidation)
	case errors.As(err, &aerr):
		return errs.Mark(err, errs.ErrAvailability)
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, errs.ErrNotFound)
	}
	return err
}

func invalid(field string, err error) error {
	return errs.Mark(booking.NewValidationError(field, err.Error()), errs.ErrValidation)
}

// notFoundAs returns sentinel when err is a repository miss.
func notFoundAs(err, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return sentinel
	}
	return errs.Wrap(err, "failed to load resource")
}
