package payment

import (
	"errors"
	"time"

	"travel-booking/internal/domain/booking"

	"github.com/google/uuid"
)

var ErrInvalidBookingRef = errors.New("invalid booking reference")

type Provider string

const (
	ProviderStripe Provider = "stripe"
	ProviderTest   Provider = "test"
)

type Status string

const (
	StatusInitiated  Status = "initiated"
	StatusAuthorized Status = "authorized"
	StatusSucceeded  Status = "succeeded"
	StatusFailed     Status = "failed"
	StatusRefunded   Status = "refunded"
)

// BookingRef points at exactly one booking of one kind.
type BookingRef struct {
	Kind booking.Kind
	ID   uuid.UUID
}

func NewBookingRef(kind booking.Kind, id uuid.UUID) (BookingRef, error) {
	if !kind.IsValid() || id == uuid.Nil {
		return BookingRef{}, ErrInvalidBookingRef
	}
	return BookingRef{Kind: kind, ID: id}, nil
}

type ChargeRequest struct {
	Amount       booking.Money
	Currency     string
	Description  string
	Metadata     map[string]string
	Token        *string
	ReceiptEmail string
}

type ChargeResult struct {
	Reference    string
	Status       string
	Success      bool
	ClientSecret string
	Provider     Provider
	Metadata     map[string]string
}

// Record is the immutable audit row written next to each booking.
type Record struct {
	id                uuid.UUID
	userID            uuid.UUID
	booking           BookingRef
	amount            booking.Money
	currency          string
	status            Status
	provider          Provider
	providerReference string
	clientSecret      string
	metadata          map[string]string
	createdAt         time.Time
}

func NewRecord(userID uuid.UUID, ref BookingRef, req ChargeRequest, res *ChargeResult, now time.Time) *Record {
	status := StatusFailed
	if res.Success {
		status = StatusSucceeded
	}
	return &Record{
		id:                uuid.New(),
		userID:            userID,
		booking:           ref,
		amount:            req.Amount,
		currency:          req.Currency,
		status:            status,
		provider:          res.Provider,
		providerReference: res.Reference,
		clientSecret:      res.ClientSecret,
		metadata:          res.Metadata,
		createdAt:         now,
	}
}

func (r *Record) ID() uuid.UUID               { return r.id }
func (r *Record) UserID() uuid.UUID           { return r.userID }
func (r *Record) Booking() BookingRef         { return r.booking }
func (r *Record) Amount() booking.Money       { return r.amount }
func (r *Record) Currency() string            { return r.currency }
func (r *Record) Status() Status              { return r.status }
func (r *Record) Provider() Provider          { return r.provider }
func (r *Record) ProviderReference() string   { return r.providerReference }
func (r *Record) ClientSecret() string        { return r.clientSecret }
func (r *Record) Metadata() map[string]string { return r.metadata }
func (r *Record) CreatedAt() time.Time        { return r.createdAt }
