package errs

import "errors"

// Error taxonomy shared by usecases and handlers. Usecases Mark concrete
// errors with one of these; handlers switch on errors.Is.
var (
	// User-correctable input problems
	ErrValidation = errors.New("validation error")

	// Capacity or state conflicts, detail carried by booking.AvailabilityError
	ErrAvailability = errors.New("availability error")

	// Payment provider refused or failed; inventory already rolled back
	ErrPaymentProvider = errors.New("payment provider error")

	// Missing resource, or a booking outside the caller's scope
	ErrNotFound = errors.New("not found")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
