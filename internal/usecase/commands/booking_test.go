//go:build unit

package commands_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/domain/car"
	"travel-booking/internal/domain/draft"
	"travel-booking/internal/domain/flight"
	"travel-booking/internal/domain/inventory"
	"travel-booking/internal/domain/payment"
	"travel-booking/internal/domain/user"
	"travel-booking/internal/infra"
	"travel-booking/internal/infra/pgsql"
	"travel-booking/internal/pkg/clock"
	"travel-booking/internal/pkg/errs"
	"travel-booking/internal/usecase/commands"
	"travel-booking/internal/usecase/shared"
	"travel-booking/tests/common/builder"
	sharedmock "travel-booking/tests/mock/shared"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// sequenceRefs hands out PREFIX-0001, PREFIX-0002, ... so collisions can be staged.
type sequenceRefs struct{ n int }

func (r *sequenceRefs) Generate(prefix string) string {
	r.n++
	return fmt.Sprintf("%s-%04d", prefix, r.n)
}

type txMocks struct {
	uow      *sharedmock.MockUnitOfWork
	tx       *sharedmock.MockTx
	reads    *sharedmock.MockCommandReads
	users    *sharedmock.MockUserRepository
	hotelInv *sharedmock.MockDailyInventoryRepository
	carInv   *sharedmock.MockDailyInventoryRepository
	seats    *sharedmock.MockFlightSeatRepository
	bookings *sharedmock.MockBookingRepository
	payments *sharedmock.MockPaymentRepository
	catalog  *sharedmock.MockCatalogRepository
}

// newTxMocks wires a unit of work whose transactions run fn straight away against mock repositories.
func newTxMocks(ctrl *gomock.Controller) *txMocks {
	m := &txMocks{
		uow:      sharedmock.NewMockUnitOfWork(ctrl),
		tx:       sharedmock.NewMockTx(ctrl),
		reads:    sharedmock.NewMockCommandReads(ctrl),
		users:    sharedmock.NewMockUserRepository(ctrl),
		hotelInv: sharedmock.NewMockDailyInventoryRepository(ctrl),
		carInv:   sharedmock.NewMockDailyInventoryRepository(ctrl),
		seats:    sharedmock.NewMockFlightSeatRepository(ctrl),
		bookings: sharedmock.NewMockBookingRepository(ctrl),
		payments: sharedmock.NewMockPaymentRepository(ctrl),
		catalog:  sharedmock.NewMockCatalogRepository(ctrl),
	}
	run := func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
		return fn(ctx, m.tx)
	}
	m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(run).AnyTimes()
	m.uow.EXPECT().WithinOnce(gomock.Any(), gomock.Any()).DoAndReturn(run).AnyTimes()
	m.uow.EXPECT().CommandReads().Return(m.reads).AnyTimes()

	m.tx.EXPECT().Users().Return(m.users).AnyTimes()
	m.tx.EXPECT().HotelInventory().Return(m.hotelInv).AnyTimes()
	m.tx.EXPECT().CarInventory().Return(m.carInv).AnyTimes()
	m.tx.EXPECT().FlightSeats().Return(m.seats).AnyTimes()
	m.tx.EXPECT().Bookings().Return(m.bookings).AnyTimes()
	m.tx.EXPECT().Payments().Return(m.payments).AnyTimes()
	m.tx.EXPECT().Catalog().Return(m.catalog).AnyTimes()
	m.tx.EXPECT().Reads().Return(m.reads).AnyTimes()
	m.tx.EXPECT().DB().Return(nil).AnyTimes()
	return m
}

func fullLedger(capacity int) *inventory.Ledger {
	l, _ := inventory.NewLedger(capacity)
	return l
}

type moneyMatcher struct{ want booking.Money }

func (m moneyMatcher) Matches(x any) bool {
	got, ok := x.(booking.Money)
	return ok && got.Equal(m.want)
}

func (m moneyMatcher) String() string { return "equals " + m.want.String() }

func money(s string) gomock.Matcher {
	return moneyMatcher{want: booking.MustParseMoney(s)}
}

var notFound = infra.WrapRepoErr("not found", nil, infra.KindNotFound)

type BookingCommandsTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	m        *txMocks
	gateway  *sharedmock.MockPaymentGateway
	notifier *sharedmock.MockNotifier
	drafts   *sharedmock.MockDraftStore
	metrics  *sharedmock.MockBookingMetrics
	refs     *sequenceRefs
	clock    *clock.Fixed
	actor    user.Recipient
	tries    int
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.m = newTxMocks(s.ctrl)
	s.gateway = sharedmock.NewMockPaymentGateway(s.ctrl)
	s.notifier = sharedmock.NewMockNotifier(s.ctrl)
	s.drafts = sharedmock.NewMockDraftStore(s.ctrl)
	s.metrics = sharedmock.NewMockBookingMetrics(s.ctrl)
	s.refs = &sequenceRefs{}
	s.clock = clock.NewFixed(time.Date(2030, 5, 20, 12, 0, 0, 0, time.UTC))
	s.actor = builder.NewRecipient(user.RoleCustomer)
	s.tries = 3
}

func (s *BookingCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestBookingCommandsSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

func (s *BookingCommandsTestSuite) useCase() commands.BookingCommands {
	return commands.NewBookingUseCase(s.m.uow, s.clock, s.gateway, s.notifier, s.drafts, s.metrics, s.refs,
		commands.BookingSettings{Currency: "usd", FromEmail: "bookings@example.com", ReferenceTries: s.tries})
}

func settled(ref string) *payment.ChargeResult {
	return &payment.ChargeResult{Reference: ref, Status: "succeeded", Success: true, Provider: payment.ProviderTest}
}

// expectHotelReserved stages the reads and inventory calls up to a successful reserve.
func (s *BookingCommandsTestSuite) expectHotelReserved(b *builder.HotelBookingBuilder) {
	rt := b.BuildRoomType()
	s.m.users.EXPECT().Upsert(gomock.Any(), gomock.Any(), s.actor).Return(nil)
	s.m.reads.EXPECT().RoomTypeByID(gomock.Any(), b.RoomTypeID).Return(rt, nil)
	s.m.hotelInv.EXPECT().Ensure(gomock.Any(), gomock.Any(), b.RoomTypeID, gomock.Any(), b.TotalRooms).Return(nil)
	s.m.hotelInv.EXPECT().Load(gomock.Any(), gomock.Any(), b.RoomTypeID, gomock.Any(), b.TotalRooms).Return(fullLedger(b.TotalRooms), nil)
	s.m.hotelInv.EXPECT().TakeDay(gomock.Any(), gomock.Any(), b.RoomTypeID, gomock.Any(), b.Rooms).Return(true, nil).Times(3)
}

// ================================================================================
// Hotel
// ================================================================================

func (s *BookingCommandsTestSuite) TestCreateHotelBooking() {
	s.Run("success: charges, persists and confirms", func() {
		s.SetupTest()
		b := builder.NewHotelBookingBuilder()
		s.expectHotelReserved(b)

		var charged payment.ChargeRequest
		s.gateway.EXPECT().Charge(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req payment.ChargeRequest) (*payment.ChargeResult, error) {
				charged = req
				return settled("pi_1"), nil
			})
		s.metrics.EXPECT().ObserveCharge(payment.ProviderTest, true, gomock.Any())
		s.m.bookings.EXPECT().CreateHotel(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
		s.m.payments.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		var sent shared.Message
		s.notifier.EXPECT().Send(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, msg shared.Message) error {
				sent = msg
				return nil
			})
		key, _ := draft.NewKey(s.actor.ID, booking.KindHotel, b.RoomTypeID)
		s.drafts.EXPECT().Delete(gomock.Any(), key).Return(nil)
		s.metrics.EXPECT().BookingCreated(booking.KindHotel, money("360.00"))

		got, err := s.useCase().CreateHotelBooking(context.Background(), s.actor, b.BuildCommand())

		s.Require().NoError(err)
		s.Equal("HTL-0001", got.Reference)
		s.Equal("360.00", got.TotalPrice.String())
		s.Equal(booking.StatusBooked, got.Status)
		s.Equal(booking.PaymentSettled, got.PaymentStatus)
		s.Equal("pi_1", got.PaymentReference)
		s.NoError(got.NotificationErr)

		s.Equal("usd", charged.Currency)
		s.Equal(int64(36000), charged.Amount.MinorUnits())
		s.Equal("hotel", charged.Metadata["booking_type"])
		s.Equal("2030-06-01", charged.Metadata["check_in"])
		s.Equal("tanaka@example.com", charged.ReceiptEmail)

		s.Equal("bookings@example.com", sent.From)
		s.Equal([]string{"tanaka@example.com"}, sent.Recipients)
		s.Contains(sent.Body, "HTL-0001")
	})

	s.Run("error: payment failure releases the rooms", func() {
		s.SetupTest()
		b := builder.NewHotelBookingBuilder()
		s.expectHotelReserved(b)

		s.gateway.EXPECT().Charge(gomock.Any(), gomock.Any()).Return(nil, errs.New("card declined"))
		s.m.hotelInv.EXPECT().Release(gomock.Any(), gomock.Any(), b.RoomTypeID, gomock.Any(), b.Rooms, b.TotalRooms).Return(nil)
		s.metrics.EXPECT().BookingFailed(booking.KindHotel, booking.PhaseCharging)

		got, err := s.useCase().CreateHotelBooking(context.Background(), s.actor, b.BuildCommand())

		s.Nil(got)
		s.True(errs.Is(err, errs.ErrPaymentProvider))
		s.Contains(err.Error(), "card declined")
	})

	s.Run("success: retries a taken reference", func() {
		s.SetupTest()
		b := builder.NewHotelBookingBuilder()
		s.expectHotelReserved(b)

		s.gateway.EXPECT().Charge(gomock.Any(), gomock.Any()).Return(settled("pi_2"), nil)
		s.metrics.EXPECT().ObserveCharge(gomock.Any(), gomock.Any(), gomock.Any())
		gomock.InOrder(
			s.m.bookings.EXPECT().CreateHotel(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil),
			s.m.bookings.EXPECT().CreateHotel(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil),
		)
		s.m.payments.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.notifier.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil)
		s.drafts.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
		s.metrics.EXPECT().BookingCreated(booking.KindHotel, gomock.Any())

		got, err := s.useCase().CreateHotelBooking(context.Background(), s.actor, b.BuildCommand())

		s.Require().NoError(err)
		s.Equal("HTL-0002", got.Reference)
	})

	s.Run("error: every reference taken", func() {
		s.SetupTest()
		s.tries = 2
		b := builder.NewHotelBookingBuilder()
		s.expectHotelReserved(b)

		s.gateway.EXPECT().Charge(gomock.Any(), gomock.Any()).Return(settled("pi_3"), nil)
		s.metrics.EXPECT().ObserveCharge(gomock.Any(), gomock.Any(), gomock.Any())
		s.m.bookings.EXPECT().CreateHotel(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil).Times(2)
		s.metrics.EXPECT().BookingFailed(booking.KindHotel, booking.PhasePersisting)

		_, err := s.useCase().CreateHotelBooking(context.Background(), s.actor, b.BuildCommand())

		s.ErrorIs(err, commands.ErrReferenceExhausted)
	})

	s.Run("success: confirmation failure does not undo the booking", func() {
		s.SetupTest()
		b := builder.NewHotelBookingBuilder()
		s.expectHotelReserved(b)

		s.gateway.EXPECT().Charge(gomock.Any(), gomock.Any()).Return(settled("pi_4"), nil)
		s.metrics.EXPECT().ObserveCharge(gomock.Any(), gomock.Any(), gomock.Any())
		s.m.bookings.EXPECT().CreateHotel(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
		s.m.payments.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.notifier.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errs.New("relay down"))
		s.drafts.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(errs.New("redis down"))
		s.metrics.EXPECT().BookingCreated(booking.KindHotel, gomock.Any())

		got, err := s.useCase().CreateHotelBooking(context.Background(), s.actor, b.BuildCommand())

		s.Require().NoError(err)
		s.Equal("HTL-0001", got.Reference)
		s.Error(got.NotificationErr)
	})

	s.Run("error: sold out day is reported per date", func() {
		s.SetupTest()
		b := builder.NewHotelBookingBuilder().With(func(b *builder.HotelBookingBuilder) { b.Rooms = 2 })
		ledger := fullLedger(b.TotalRooms)
		second, _ := booking.ParseDate("2030-06-02")
		ledger.Set(second, 1)

		s.m.users.EXPECT().Upsert(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.m.reads.EXPECT().RoomTypeByID(gomock.Any(), b.RoomTypeID).Return(b.BuildRoomType(), nil)
		s.m.hotelInv.EXPECT().Ensure(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.m.hotelInv.EXPECT().Load(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(ledger, nil)
		s.metrics.EXPECT().BookingFailed(booking.KindHotel, booking.PhaseValidating)

		_, err := s.useCase().CreateHotelBooking(context.Background(), s.actor, b.BuildCommand())

		var aerr *booking.AvailabilityError
		s.Require().True(errs.As(err, &aerr))
		s.Equal([]string{"Only 1 rooms left on 2030-06-02"}, aerr.Fields["rooms"])
		s.True(errs.Is(err, errs.ErrAvailability))
	})

	s.Run("error: lost race while reserving", func() {
		s.SetupTest()
		b := builder.NewHotelBookingBuilder()
		s.m.users.EXPECT().Upsert(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.m.reads.EXPECT().RoomTypeByID(gomock.Any(), gomock.Any()).Return(b.BuildRoomType(), nil)
		s.m.hotelInv.EXPECT().Ensure(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.m.hotelInv.EXPECT().Load(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(fullLedger(5), nil)
		gomock.InOrder(
			s.m.hotelInv.EXPECT().TakeDay(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil),
			s.m.hotelInv.EXPECT().TakeDay(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil),
		)
		s.metrics.EXPECT().BookingFailed(booking.KindHotel, booking.PhaseReserving)

		_, err := s.useCase().CreateHotelBooking(context.Background(), s.actor, b.BuildCommand())

		var aerr *booking.AvailabilityError
		s.Require().True(errs.As(err, &aerr))
		s.Equal([]string{"Insufficient rooms available for 2030-06-02"}, aerr.Fields["rooms"])
	})

	s.Run("error: more rooms than the type has is reported per date", func() {
		s.SetupTest()
		b := builder.NewHotelBookingBuilder().With(func(b *builder.HotelBookingBuilder) { b.Rooms = 6 })
		s.m.users.EXPECT().Upsert(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.m.reads.EXPECT().RoomTypeByID(gomock.Any(), b.RoomTypeID).Return(b.BuildRoomType(), nil)
		s.m.hotelInv.EXPECT().Ensure(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.m.hotelInv.EXPECT().Load(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(fullLedger(b.TotalRooms), nil)
		s.metrics.EXPECT().BookingFailed(booking.KindHotel, booking.PhaseValidating)

		_, err := s.useCase().CreateHotelBooking(context.Background(), s.actor, b.BuildCommand())

		var aerr *booking.AvailabilityError
		s.Require().True(errs.As(err, &aerr))
		s.Equal([]string{
			"Only 5 rooms left on 2030-06-01",
			"Only 5 rooms left on 2030-06-02",
			"Only 5 rooms left on 2030-06-03",
		}, aerr.Fields["rooms"])
		s.True(errs.Is(err, errs.ErrAvailability))
	})

	s.Run("error: guests beyond the rooms' occupancy fail before any charge", func() {
		s.SetupTest()
		b := builder.NewHotelBookingBuilder().With(func(b *builder.HotelBookingBuilder) { b.Guests = 3_000_000_000 })
		s.m.users.EXPECT().Upsert(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.m.reads.EXPECT().RoomTypeByID(gomock.Any(), b.RoomTypeID).Return(b.BuildRoomType(), nil)
		s.gateway.EXPECT().Charge(gomock.Any(), gomock.Any()).Times(0)
		s.m.bookings.EXPECT().CreateHotel(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		s.metrics.EXPECT().BookingFailed(booking.KindHotel, booking.PhaseValidating)

		_, err := s.useCase().CreateHotelBooking(context.Background(), s.actor, b.BuildCommand())

		var verr *booking.ValidationError
		s.Require().True(errs.As(err, &verr))
		s.Equal("guests", verr.Field)
		s.True(errs.Is(err, errs.ErrValidation))
	})

	s.Run("error: unknown room type", func() {
		s.SetupTest()
		b := builder.NewHotelBookingBuilder()
		s.m.users.EXPECT().Upsert(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.m.reads.EXPECT().RoomTypeByID(gomock.Any(), gomock.Any()).Return(nil, notFound)
		s.metrics.EXPECT().BookingFailed(booking.KindHotel, booking.PhaseValidating)

		_, err := s.useCase().CreateHotelBooking(context.Background(), s.actor, b.BuildCommand())

		s.True(errs.Is(err, commands.ErrRoomTypeNotFound))
		s.True(errs.Is(err, errs.ErrNotFound))
	})

	s.Run("error: check in in the past", func() {
		s.SetupTest()
		b := builder.NewHotelBookingBuilder().With(func(b *builder.HotelBookingBuilder) {
			b.CheckIn, b.CheckOut = "2030-05-19", "2030-05-21"
		})
		s.m.users.EXPECT().Upsert(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.m.reads.EXPECT().RoomTypeByID(gomock.Any(), gomock.Any()).Return(b.BuildRoomType(), nil)
		s.metrics.EXPECT().BookingFailed(booking.KindHotel, booking.PhaseValidating)

		_, err := s.useCase().CreateHotelBooking(context.Background(), s.actor, b.BuildCommand())

		var verr *booking.ValidationError
		s.Require().True(errs.As(err, &verr))
		s.Equal("check_in", verr.Field)
		s.True(errs.Is(err, errs.ErrValidation))
	})
}

// ================================================================================
// Car
// ================================================================================

func (s *BookingCommandsTestSuite) TestCreateCarBooking() {
	s.Run("success: per day price over the rental", func() {
		s.SetupTest()
		b := builder.NewCarBookingBuilder()
		s.m.users.EXPECT().Upsert(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.m.reads.EXPECT().CarByID(gomock.Any(), b.CarID).Return(b.BuildCar(), nil)
		s.m.carInv.EXPECT().Ensure(gomock.Any(), gomock.Any(), b.CarID, gomock.Any(), b.Units).Return(nil)
		s.m.carInv.EXPECT().Load(gomock.Any(), gomock.Any(), b.CarID, gomock.Any(), b.Units).Return(fullLedger(b.Units), nil)
		s.m.carInv.EXPECT().TakeDay(gomock.Any(), gomock.Any(), b.CarID, gomock.Any(), 1).Return(true, nil).Times(2)
		s.gateway.EXPECT().Charge(gomock.Any(), gomock.Any()).Return(settled("pi_car"), nil)
		s.metrics.EXPECT().ObserveCharge(gomock.Any(), gomock.Any(), gomock.Any())

		var persisted string
		s.m.bookings.EXPECT().CreateCar(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ pgsql.DBTX, cb *car.Booking) (bool, error) {
				persisted = cb.PickupLocation()
				return true, nil
			})
		s.m.payments.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.notifier.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil)
		s.drafts.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
		s.metrics.EXPECT().BookingCreated(booking.KindCar, money("90.00"))

		got, err := s.useCase().CreateCarBooking(context.Background(), s.actor, b.BuildCommand())

		s.Require().NoError(err)
		s.Equal("CAR-0001", got.Reference)
		s.Equal("90.00", got.TotalPrice.String())
		s.Equal("Lisbon Airport", persisted)
	})

	s.Run("error: car already rented on a day", func() {
		s.SetupTest()
		b := builder.NewCarBookingBuilder()
		ledger := fullLedger(1)
		first, _ := booking.ParseDate("2030-06-01")
		ledger.Set(first, 0)

		s.m.users.EXPECT().Upsert(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.m.reads.EXPECT().CarByID(gomock.Any(), b.CarID).Return(b.BuildCar(), nil)
		s.m.carInv.EXPECT().Ensure(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.m.carInv.EXPECT().Load(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(ledger, nil)
		s.metrics.EXPECT().BookingFailed(booking.KindCar, booking.PhaseValidating)

		_, err := s.useCase().CreateCarBooking(context.Background(), s.actor, b.BuildCommand())

		var aerr *booking.AvailabilityError
		s.Require().True(errs.As(err, &aerr))
		s.Equal([]string{"Car unavailable on 2030-06-01"}, aerr.Fields["car"])
	})

	s.Run("error: unknown car", func() {
		s.SetupTest()
		s.m.users.EXPECT().Upsert(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.m.reads.EXPECT().CarByID(gomock.Any(), gomock.Any()).Return(nil, notFound)
		s.metrics.EXPECT().BookingFailed(booking.KindCar, booking.PhaseValidating)

		_, err := s.useCase().CreateCarBooking(context.Background(), s.actor, builder.NewCarBookingBuilder().BuildCommand())

		s.True(errs.Is(err, commands.ErrCarNotFound))
	})
}

// ================================================================================
// Flight
// ================================================================================

func (s *BookingCommandsTestSuite) TestCreateFlightBooking() {
	s.Run("success: round trip copies staff when asked", func() {
		s.SetupTest()
		b := builder.NewFlightBookingBuilder().With(func(b *builder.FlightBookingBuilder) {
			b.RoundTrip = true
			b.Passengers = 2
			b.NotifyAdmin = true
		})
		f := b.BuildFlight()
		all := f.DefaultSeats()
		outbound := flight.PickSeats(all, flight.LegOutbound, 2)
		inbound := flight.PickSeats(all, flight.LegReturn, 2)

		s.m.users.EXPECT().Upsert(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.m.reads.EXPECT().FlightByID(gomock.Any(), b.FlightID).Return(f, nil)
		s.m.seats.EXPECT().ListSeats(gomock.Any(), gomock.Any(), b.FlightID).Return(all, nil)
		s.m.seats.EXPECT().LockUnreserved(gomock.Any(), gomock.Any(), b.FlightID, flight.LegOutbound, 2).Return(outbound, nil)
		s.m.seats.EXPECT().LockUnreserved(gomock.Any(), gomock.Any(), b.FlightID, flight.LegReturn, 2).Return(inbound, nil)
		s.m.seats.EXPECT().MarkReserved(gomock.Any(), gomock.Any(), gomock.Len(4)).Return(int64(4), nil)
		s.gateway.EXPECT().Charge(gomock.Any(), gomock.Any()).Return(settled("pi_fl"), nil)
		s.metrics.EXPECT().ObserveCharge(gomock.Any(), gomock.Any(), gomock.Any())
		s.m.bookings.EXPECT().CreateFlight(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
		s.m.payments.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.m.reads.EXPECT().StaffRecipients(gomock.Any()).Return([]user.Recipient{
			{Email: "staff@example.com", Role: user.RoleStaff, IsActive: true},
		}, nil)

		var sent []shared.Message
		s.notifier.EXPECT().Send(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, msg shared.Message) error {
				sent = append(sent, msg)
				return nil
			}).Times(2)
		s.drafts.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
		s.metrics.EXPECT().BookingCreated(booking.KindFlight, money("760.00"))

		got, err := s.useCase().CreateFlightBooking(context.Background(), s.actor, b.BuildCommand())

		s.Require().NoError(err)
		s.Equal("FLT-0001", got.Reference)
		s.Equal([]string{"S01", "S02"}, got.Seats[flight.LegOutbound])
		s.Equal([]string{"S01", "S02"}, got.Seats[flight.LegReturn])

		s.Require().Len(sent, 2)
		s.Equal([]string{"flyer@example.com"}, sent[0].Recipients)
		s.Equal([]string{"staff@example.com"}, sent[1].Recipients)
		s.Equal("New flight booking", sent[1].Subject)
	})

	s.Run("error: too many passengers", func() {
		s.SetupTest()
		b := builder.NewFlightBookingBuilder().With(func(b *builder.FlightBookingBuilder) { b.Passengers = 8 })
		s.m.users.EXPECT().Upsert(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.m.reads.EXPECT().FlightByID(gomock.Any(), gomock.Any()).Return(b.BuildFlight(), nil)
		s.metrics.EXPECT().BookingFailed(booking.KindFlight, booking.PhaseValidating)

		_, err := s.useCase().CreateFlightBooking(context.Background(), s.actor, b.BuildCommand())

		var aerr *booking.AvailabilityError
		s.Require().True(errs.As(err, &aerr))
		s.Equal([]string{"Passengers must be between 1 and 7"}, aerr.Fields[flight.PassengersField])
	})

	s.Run("error: seats taken between check and lock", func() {
		s.SetupTest()
		b := builder.NewFlightBookingBuilder().With(func(b *builder.FlightBookingBuilder) { b.Passengers = 3 })
		f := b.BuildFlight()
		all := f.DefaultSeats()

		s.m.users.EXPECT().Upsert(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.m.reads.EXPECT().FlightByID(gomock.Any(), gomock.Any()).Return(f, nil)
		s.m.seats.EXPECT().ListSeats(gomock.Any(), gomock.Any(), gomock.Any()).Return(all, nil)
		s.m.seats.EXPECT().LockUnreserved(gomock.Any(), gomock.Any(), gomock.Any(), flight.LegOutbound, 3).
			Return(flight.PickSeats(all, flight.LegOutbound, 1), nil)
		s.metrics.EXPECT().BookingFailed(booking.KindFlight, booking.PhaseReserving)

		_, err := s.useCase().CreateFlightBooking(context.Background(), s.actor, b.BuildCommand())

		var aerr *booking.AvailabilityError
		s.Require().True(errs.As(err, &aerr))
		s.Equal([]string{"Only 1 seat(s) remaining"}, aerr.Fields[flight.SeatsField])
	})

	s.Run("error: payment failure releases the seats", func() {
		s.SetupTest()
		b := builder.NewFlightBookingBuilder()
		f := b.BuildFlight()
		all := f.DefaultSeats()
		outbound := flight.PickSeats(all, flight.LegOutbound, 1)

		s.m.users.EXPECT().Upsert(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.m.reads.EXPECT().FlightByID(gomock.Any(), gomock.Any()).Return(f, nil)
		s.m.seats.EXPECT().ListSeats(gomock.Any(), gomock.Any(), gomock.Any()).Return(all, nil)
		s.m.seats.EXPECT().LockUnreserved(gomock.Any(), gomock.Any(), gomock.Any(), flight.LegOutbound, 1).Return(outbound, nil)
		s.m.seats.EXPECT().MarkReserved(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil)
		s.gateway.EXPECT().Charge(gomock.Any(), gomock.Any()).Return(nil, errs.New("gateway timeout"))
		s.m.seats.EXPECT().Release(gomock.Any(), gomock.Any(), gomock.Len(1)).Return(nil)
		s.metrics.EXPECT().BookingFailed(booking.KindFlight, booking.PhaseCharging)

		_, err := s.useCase().CreateFlightBooking(context.Background(), s.actor, b.BuildCommand())

		s.True(errs.Is(err, errs.ErrPaymentProvider))
	})
}
