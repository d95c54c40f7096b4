package draft

import (
	"errors"
	"time"

	"travel-booking/internal/domain/booking"

	"github.com/google/uuid"
)

var (
	ErrInvalidStep       = errors.New("invalid draft step")
	ErrInvalidTransition = errors.New("draft cannot skip ahead")
	ErrInvalidKey        = errors.New("invalid draft key")
)

type Step string

const (
	StepSearch  Step = "search"
	StepDetails Step = "details"
	StepReview  Step = "review"
	StepPayment Step = "payment"
)

var stepOrder = map[Step]int{
	StepSearch:  0,
	StepDetails: 1,
	StepReview:  2,
	StepPayment: 3,
}

func (s Step) IsValid() bool {
	_, ok := stepOrder[s]
	return ok
}

// Key identifies one in-progress booking wizard.
type Key struct {
	UserID     uuid.UUID
	Kind       booking.Kind
	ResourceID uuid.UUID
}

func NewKey(userID uuid.UUID, kind booking.Kind, resourceID uuid.UUID) (Key, error) {
	if userID == uuid.Nil || resourceID == uuid.Nil || !kind.IsValid() {
		return Key{}, ErrInvalidKey
	}
	return Key{UserID: userID, Kind: kind, ResourceID: resourceID}, nil
}

func (k Key) String() string {
	return k.UserID.String() + ":" + string(k.Kind) + ":" + k.ResourceID.String()
}

type Draft struct {
	Key       Key            `json:"-"`
	Step      Step           `json:"step"`
	Data      map[string]any `json:"data"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func New(key Key, now time.Time) *Draft {
	return &Draft{Key: key, Step: StepSearch, Data: map[string]any{}, UpdatedAt: now}
}

// Advance moves to step, merging data. Moving forward by more than one step is rejected.
func (d *Draft) Advance(step Step, data map[string]any, now time.Time) error {
	if !step.IsValid() {
		return ErrInvalidStep
	}
	if stepOrder[step] > stepOrder[d.Step]+1 {
		return ErrInvalidTransition
	}
	if d.Data == nil {
		d.Data = map[string]any{}
	}
	for k, v := range data {
		d.Data[k] = v
	}
	d.Step = step
	d.UpdatedAt = now
	return nil
}
