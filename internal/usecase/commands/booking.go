package commands

import (
	"context"
	"log/slog"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/domain/draft"
	"travel-booking/internal/domain/flight"
	"travel-booking/internal/domain/payment"
	"travel-booking/internal/domain/user"
	"travel-booking/internal/pkg/clock"
	"travel-booking/internal/pkg/errs"
	"travel-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	tracerName            = "travel-booking/usecase/commands"
	defaultReferenceTries = 5
)

type BookingSettings struct {
	Currency       string
	FromEmail      string
	ReferenceTries int
}

type BookingResult struct {
	Kind             booking.Kind
	ID               uuid.UUID
	Reference        string
	TotalPrice       booking.Money
	Status           booking.Status
	PaymentStatus    booking.PaymentStatus
	PaymentReference string
	Payment          *payment.ChargeResult
	// Seats is set for flights only
	Seats map[flight.Leg][]string
	// NotificationErr reports a confirmation that could not be handed off; the booking itself stands.
	NotificationErr error
}

type BookingCommands interface {
	CreateHotelBooking(ctx context.Context, actor user.Recipient, req HotelBookingRequest) (*BookingResult, error)
	CreateCarBooking(ctx context.Context, actor user.Recipient, req CarBookingRequest) (*BookingResult, error)
	CreateFlightBooking(ctx context.Context, actor user.Recipient, req FlightBookingRequest) (*BookingResult, error)
}

type bookingUseCaseImpl struct {
	uow      shared.UnitOfWork
	clock    clock.Clock
	gateway  shared.PaymentGateway
	notifier shared.Notifier
	drafts   shared.DraftStore
	metrics  shared.BookingMetrics
	refs     booking.ReferenceGenerator
	settings BookingSettings
	checker  AvailabilityChecker
	tracer   trace.Tracer
}

func NewBookingUseCase(
	uow shared.UnitOfWork,
	clk clock.Clock,
	gateway shared.PaymentGateway,
	notifier shared.Notifier,
	drafts shared.DraftStore,
	metrics shared.BookingMetrics,
	refs booking.ReferenceGenerator,
	settings BookingSettings,
) BookingCommands {
	if settings.ReferenceTries < 1 {
		settings.ReferenceTries = defaultReferenceTries
	}
	return &bookingUseCaseImpl{
		uow:      uow,
		clock:    clk,
		gateway:  gateway,
		notifier: notifier,
		drafts:   drafts,
		metrics:  metrics,
		refs:     refs,
		settings: settings,
		tracer:   otel.Tracer(tracerName),
	}
}

// bookingPlan is one kind's side of a booking attempt. The executor drives
// the phases and owns the transaction, the charge and the notifications.
type bookingPlan interface {
	kind() booking.Kind
	resourceID() uuid.UUID
	// prepare validates input and re-checks availability
	prepare(ctx context.Context, tx shared.Tx) error
	reserve(ctx context.Context, tx shared.Tx) error
	release(ctx context.Context, tx shared.Tx) error
	chargeRequest(currency string) payment.ChargeRequest
	// persist inserts the booking under ref; false means ref was already taken
	persist(ctx context.Context, tx shared.Tx, res *payment.ChargeResult, ref string) (bool, error)
	result() *BookingResult
	confirmation() shared.Message
}

// staffNotice is implemented by plans that may copy staff on a new booking.
type staffNotice interface {
	staffMessage() (shared.Message, bool)
}

func (uc *bookingUseCaseImpl) execute(ctx context.Context, actor user.Recipient, plan bookingPlan) (*BookingResult, error) {
	kind := plan.kind()
	ctx, span := uc.tracer.Start(ctx, "booking.create",
		trace.WithAttributes(attribute.String("booking.kind", kind.String()), attribute.String("user.id", actor.ID.String())))
	defer span.End()

	phase := booking.PhaseValidating
	enter := func(p booking.Phase) {
		phase = p
		span.AddEvent(p.String())
	}

	var charged *payment.ChargeResult
	err := uc.uow.WithinOnce(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Users().Upsert(ctx, tx.DB(), actor); err != nil {
			return err
		}
		if err := plan.prepare(ctx, tx); err != nil {
			return err
		}

		enter(booking.PhaseReserving)
		if err := plan.reserve(ctx, tx); err != nil {
			return err
		}

		enter(booking.PhaseCharging)
		req := plan.chargeRequest(uc.settings.Currency)
		started := uc.clock.Now()
		res, err := uc.gateway.Charge(ctx, req)
		if err != nil {
			if rerr := plan.release(ctx, tx); rerr != nil {
				slog.ErrorContext(ctx, "failed to release inventory after payment error", "kind", kind, "error", rerr)
			}
			return errs.Mark(errs.Wrap(err, "charge failed"), errs.ErrPaymentProvider)
		}
		uc.metrics.ObserveCharge(res.Provider, res.Success, uc.clock.Now().Sub(started))
		charged = res

		enter(booking.PhasePersisting)
		if err := uc.persistWithReference(ctx, tx, plan, res); err != nil {
			return err
		}
		out := plan.result()
		ref, err := payment.NewBookingRef(kind, out.ID)
		if err != nil {
			return err
		}
		return tx.Payments().Create(ctx, tx.DB(), payment.NewRecord(actor.ID, ref, req, res, uc.clock.Now()))
	})
	if err != nil {
		err = classify(err)
		uc.metrics.BookingFailed(kind, phase)
		span.RecordError(err)
		span.SetStatus(codes.Error, phase.String())
		slog.WarnContext(ctx, "booking attempt failed", "kind", kind, "phase", phase, "error", err)
		return nil, err
	}

	enter(booking.PhaseNotifying)
	out := plan.result()
	out.Payment = charged
	out.NotificationErr = uc.notify(ctx, plan)
	uc.dropDraft(ctx, actor.ID, kind, plan.resourceID())

	enter(booking.PhaseDone)
	uc.metrics.BookingCreated(kind, out.TotalPrice)
	span.SetAttributes(attribute.String("booking.reference", out.Reference))
	slog.InfoContext(ctx, "booking created",
		"kind", kind, "reference", out.Reference, "total", out.TotalPrice.String(), "payment_status", out.PaymentStatus)
	return out, nil
}

func (uc *bookingUseCaseImpl) persistWithReference(ctx context.Context, tx shared.Tx, plan bookingPlan, res *payment.ChargeResult) error {
	prefix := plan.kind().ReferencePrefix()
	for attempt := 1; attempt <= uc.settings.ReferenceTries; attempt++ {
		ref := uc.refs.Generate(prefix)
		inserted, err := plan.persist(ctx, tx, res, ref)
		if err != nil {
			return err
		}
		if inserted {
			return nil
		}
		slog.WarnContext(ctx, "booking reference collision", "reference", ref, "attempt", attempt)
	}
	return ErrReferenceExhausted
}

// notify is not retried. Only the customer confirmation is reported back.
func (uc *bookingUseCaseImpl) notify(ctx context.Context, plan bookingPlan) error {
	msg := plan.confirmation()
	msg.From = uc.settings.FromEmail
	var confirmErr error
	if err := uc.notifier.Send(ctx, msg); err != nil {
		slog.WarnContext(ctx, "failed to send booking confirmation", "kind", plan.kind(), "error", err)
		confirmErr = errs.Wrap(err, "failed to send booking confirmation")
	}

	sn, ok := plan.(staffNotice)
	if !ok {
		return confirmErr
	}
	staffMsg, wanted := sn.staffMessage()
	if !wanted {
		return confirmErr
	}
	staff, err := uc.uow.CommandReads().StaffRecipients(ctx)
	if err != nil {
		slog.WarnContext(ctx, "failed to load staff recipients", "error", err)
		return confirmErr
	}
	staffMsg.From = uc.settings.FromEmail
	staffMsg.Recipients = user.StaffEmails(staff)
	if err := uc.notifier.Send(ctx, staffMsg); err != nil {
		slog.WarnContext(ctx, "failed to notify staff", "error", err)
	}
	return confirmErr
}

func (uc *bookingUseCaseImpl) dropDraft(ctx context.Context, userID uuid.UUID, kind booking.Kind, resourceID uuid.UUID) {
	key, err := draft.NewKey(userID, kind, resourceID)
	if err != nil {
		return
	}
	if err := uc.drafts.Delete(ctx, key); err != nil {
		slog.WarnContext(ctx, "failed to delete booking draft", "key", key.String(), "error", err)
	}
}
