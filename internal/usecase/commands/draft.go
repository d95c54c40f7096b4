package commands

import (
	"context"
	"time"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/domain/draft"
	"travel-booking/internal/pkg/clock"
	"travel-booking/internal/pkg/errs"
	"travel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

const defaultDraftTTL = 30 * time.Minute

type SaveDraftRequest struct {
	Kind       booking.Kind
	ResourceID uuid.UUID
	Step       draft.Step
	Data       map[string]any
}

type DraftCommands interface {
	GetDraft(ctx context.Context, userID uuid.UUID, kind booking.Kind, resourceID uuid.UUID) (*draft.Draft, error)
	SaveDraft(ctx context.Context, userID uuid.UUID, req SaveDraftRequest) (*draft.Draft, error)
	DeleteDraft(ctx context.Context, userID uuid.UUID, kind booking.Kind, resourceID uuid.UUID) error
}

type draftUseCaseImpl struct {
	store shared.DraftStore
	clock clock.Clock
	ttl   time.Duration
}

func NewDraftUseCase(store shared.DraftStore, clk clock.Clock, ttl time.Duration) DraftCommands {
	if ttl <= 0 {
		ttl = defaultDraftTTL
	}
	return &draftUseCaseImpl{store: store, clock: clk, ttl: ttl}
}

func (uc *draftUseCaseImpl) GetDraft(ctx context.Context, userID uuid.UUID, kind booking.Kind, resourceID uuid.UUID) (*draft.Draft, error) {
	key, err := draft.NewKey(userID, kind, resourceID)
	if err != nil {
		return nil, invalid("draft", err)
	}
	d, err := uc.store.Get(ctx, key)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load draft")
	}
	if d == nil {
		return nil, ErrDraftNotFound
	}
	return d, nil
}

// SaveDraft starts a new draft when none is stored and refreshes the TTL on every save.
func (uc *draftUseCaseImpl) SaveDraft(ctx context.Context, userID uuid.UUID, req SaveDraftRequest) (*draft.Draft, error) {
	key, err := draft.NewKey(userID, req.Kind, req.ResourceID)
	if err != nil {
		return nil, invalid("draft", err)
	}
	d, err := uc.store.Get(ctx, key)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load draft")
	}
	now := uc.clock.Now()
	if d == nil {
		d = draft.New(key, now)
	}
	if err := d.Advance(req.Step, req.Data, now); err != nil {
		return nil, invalid("step", err)
	}
	if err := uc.store.Save(ctx, d, uc.ttl); err != nil {
		return nil, errs.Wrap(err, "failed to save draft")
	}
	return d, nil
}

func (uc *draftUseCaseImpl) DeleteDraft(ctx context.Context, userID uuid.UUID, kind booking.Kind, resourceID uuid.UUID) error {
	key, err := draft.NewKey(userID, kind, resourceID)
	if err != nil {
		return invalid("draft", err)
	}
	if err := uc.store.Delete(ctx, key); err != nil {
		return errs.Wrap(err, "failed to delete draft")
	}
	return nil
}
