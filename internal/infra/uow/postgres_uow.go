package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/domain/car"
	"travel-booking/internal/domain/flight"
	"travel-booking/internal/domain/hotel"
	"travel-booking/internal/domain/user"
	"travel-booking/internal/infra"
	"travel-booking/internal/infra/pgsql"
	"travel-booking/internal/infra/repository"
	"travel-booking/internal/infra/repository/converter"
	"travel-booking/internal/pkg/errs"
	"travel-booking/internal/pkg/pgconv"
	"travel-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const maxTxRetries = 3

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
	q    *pgsql.Queries
}

func NewPostgresUoW(pool *pgxpool.Pool, q *pgsql.Queries) shared.UnitOfWork {
	return &PostgresUoW{
		pool: pool,
		q:    q,
	}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, maxTxRetries, fn)
}

// WithinOnce never re-runs fn; a payment charge inside it must not be repeated
func (u *PostgresUoW) WithinOnce(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, 0, fn)
}

// Read-only transaction for consistent multi-table snapshots
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db pgsql.DBTX) error) error {
	return u.runReadOnlyTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly}, fn)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db pgsql.DBTX) error) error {
	return fn(ctx, u.pool)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{uow: u, dbtx: u.pool}
}

// Each attempt runs in its own call so the deferred rollback fires per attempt
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, maxRetries int, fn func(ctx context.Context, tx shared.Tx) error) error {
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		err := u.runAttempt(ctx, options, attempt, fn)
		if err == nil {
			return nil
		}
		if errors.Is(err, errTransactionBegin) {
			return err
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries && maxRetries > 0 {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

// runAttempt rolls the transaction back on every exit except a successful
// commit, including when fn panics.
func (u *PostgresUoW) runAttempt(ctx context.Context, options pgx.TxOptions, attempt int, fn func(ctx context.Context, tx shared.Tx) error) (err error) {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		// Rollback must not inherit a cancelled request context or the locks stay held.
		if rollbackErr := pgxTx.Rollback(context.WithoutCancel(ctx)); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}
	}()

	tx := &pgTx{
		dbtx: pgxTx,
		uow:  u,
	}

	if err = fn(ctx, tx); err != nil {
		return err
	}
	if err = pgxTx.Commit(ctx); err != nil {
		return errs.Mark(err, errTransactionCommit)
	}
	committed = true
	return nil
}

func (u *PostgresUoW) runReadOnlyTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, db pgsql.DBTX) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback read-only transaction", "error", rollbackErr.Error())
			}
		}
	}()

	if err := fn(ctx, pgxTx); err != nil {
		return err
	}

	return pgxTx.Commit(ctx)
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// Fallback to a simple calculation if crypto/rand fails
		return 0
	}
	// Safe conversion: mask high bit to ensure positive int64
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx pgsql.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	userRepo       shared.UserRepository
	hotelInventory shared.DailyInventoryRepository
	carInventory   shared.DailyInventoryRepository
	flightSeats    shared.FlightSeatRepository
	bookingRepo    shared.BookingRepository
	paymentRepo    shared.PaymentRepository
	catalogRepo    shared.CatalogRepository
	commandReads   shared.CommandReads
}

func (t *pgTx) DB() pgsql.DBTX {
	return t.dbtx
}

func (t *pgTx) Users() shared.UserRepository {
	if t.userRepo == nil {
		t.userRepo = repository.NewUserRepository(t.uow.q)
	}
	return t.userRepo
}

func (t *pgTx) HotelInventory() shared.DailyInventoryRepository {
	if t.hotelInventory == nil {
		t.hotelInventory = repository.NewHotelInventoryRepository(t.uow.q)
	}
	return t.hotelInventory
}

func (t *pgTx) CarInventory() shared.DailyInventoryRepository {
	if t.carInventory == nil {
		t.carInventory = repository.NewCarInventoryRepository(t.uow.q)
	}
	return t.carInventory
}

func (t *pgTx) FlightSeats() shared.FlightSeatRepository {
	if t.flightSeats == nil {
		t.flightSeats = repository.NewFlightSeatRepository(t.uow.q)
	}
	return t.flightSeats
}

func (t *pgTx) Bookings() shared.BookingRepository {
	if t.bookingRepo == nil {
		t.bookingRepo = repository.NewBookingRepository(t.uow.q)
	}
	return t.bookingRepo
}

func (t *pgTx) Payments() shared.PaymentRepository {
	if t.paymentRepo == nil {
		t.paymentRepo = repository.NewPaymentRepository(t.uow.q)
	}
	return t.paymentRepo
}

func (t *pgTx) Catalog() shared.CatalogRepository {
	if t.catalogRepo == nil {
		t.catalogRepo = repository.NewCatalogRepository(t.uow.q)
	}
	return t.catalogRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			uow:  t.uow,
			dbtx: t.dbtx,
		}
	}
	return t.commandReads
}

// commandReads loads aggregates for command validation; inside a transaction
// it runs on that transaction.
type commandReads struct {
	uow  *PostgresUoW
	dbtx pgsql.DBTX
}

func (r *commandReads) RoomTypeByID(ctx context.Context, id uuid.UUID) (*hotel.RoomType, error) {
	row, err := r.uow.q.GetRoomTypeByID(ctx, r.dbtx, id)
	if err != nil {
		return nil, notFoundOr("room type", err)
	}
	return converter.RoomTypeFromInfra(row), nil
}

func (r *commandReads) CarByID(ctx context.Context, id uuid.UUID) (*car.Car, error) {
	row, err := r.uow.q.GetCarByID(ctx, r.dbtx, id)
	if err != nil {
		return nil, notFoundOr("car", err)
	}
	return converter.CarFromInfra(row), nil
}

func (r *commandReads) FlightByID(ctx context.Context, id uuid.UUID) (*flight.Flight, error) {
	row, err := r.uow.q.GetFlightByID(ctx, r.dbtx, id)
	if err != nil {
		return nil, notFoundOr("flight", err)
	}
	return converter.FlightFromInfra(row), nil
}

func (r *commandReads) BookingByReference(ctx context.Context, kind booking.Kind, reference string) (*shared.BookingSnapshot, error) {
	row, err := r.uow.q.GetBookingStateForUpdate(ctx, r.dbtx, kind.String(), reference)
	if err != nil {
		return nil, notFoundOr("booking", err)
	}
	return &shared.BookingSnapshot{
		ID:            row.ID,
		UserID:        row.UserID,
		Kind:          kind,
		Reference:     reference,
		Status:        booking.Status(row.Status),
		PaymentStatus: booking.PaymentStatus(row.PaymentStatus),
	}, nil
}

func (r *commandReads) StaffRecipients(ctx context.Context) ([]user.Recipient, error) {
	rows, err := r.uow.q.ListStaffUsers(ctx, r.dbtx)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list staff users", err)
	}
	out := make([]user.Recipient, len(rows))
	for i, row := range rows {
		out[i] = user.Recipient{
			ID:       row.ID,
			Email:    row.Email,
			Role:     user.Role(row.Role),
			IsActive: row.IsActive,
		}
	}
	return out, nil
}

func notFoundOr(what string, err error) error {
	if pgconv.IsNoRows(err) {
		return infra.WrapRepoErr(what+" not found", err, infra.KindNotFound)
	}
	return infra.WrapRepoErr("failed to load "+what, err)
}
