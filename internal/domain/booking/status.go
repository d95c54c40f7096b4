package booking

import "errors"

var (
	ErrInvalidStatus            = errors.New("invalid booking status")
	ErrInvalidPaymentStatus     = errors.New("invalid payment status")
	ErrInvalidStatusTransition  = errors.New("invalid status transition")
	ErrInvalidPaymentTransition = errors.New("invalid payment status transition")
)

type Status string

const (
	StatusBooked     Status = "booked"
	StatusCheckedIn  Status = "checked_in"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// lifecycles lists each kind's forward path; cancelled is reachable from any non-terminal state.
var lifecycles = map[Kind][]Status{
	KindHotel:  {StatusBooked, StatusCheckedIn, StatusCompleted},
	KindCar:    {StatusBooked, StatusInProgress, StatusCompleted},
	KindFlight: {StatusBooked, StatusCompleted},
}

func (s Status) IsValidFor(kind Kind) bool {
	if s == StatusCancelled {
		return kind.IsValid()
	}
	for _, st := range lifecycles[kind] {
		if st == s {
			return true
		}
	}
	return false
}

func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

func CanTransition(kind Kind, from, to Status) bool {
	if !from.IsValidFor(kind) || !to.IsValidFor(kind) || from.IsTerminal() {
		return false
	}
	if to == StatusCancelled {
		return true
	}
	path := lifecycles[kind]
	for i := 0; i < len(path)-1; i++ {
		if path[i] == from {
			return path[i+1] == to
		}
	}
	return false
}

type PaymentStatus string

const (
	PaymentPending    PaymentStatus = "pending"
	PaymentAuthorized PaymentStatus = "authorized"
	PaymentSettled    PaymentStatus = "settled"
	PaymentRefunded   PaymentStatus = "refunded"
)

var paymentOrder = map[PaymentStatus]int{
	PaymentPending:    0,
	PaymentAuthorized: 1,
	PaymentSettled:    2,
	PaymentRefunded:   3,
}

func (p PaymentStatus) String() string {
	return string(p)
}

func (p PaymentStatus) IsValid() bool {
	_, ok := paymentOrder[p]
	return ok
}

// CanTransitionPayment allows forward moves only.
func CanTransitionPayment(from, to PaymentStatus) bool {
	f, okFrom := paymentOrder[from]
	t, okTo := paymentOrder[to]
	return okFrom && okTo && t > f
}

func PaymentStatusFromCharge(success bool) PaymentStatus {
	if success {
		return PaymentSettled
	}
	return PaymentPending
}
