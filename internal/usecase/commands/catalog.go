package commands

import (
	"context"
	"log/slog"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/domain/car"
	"travel-booking/internal/domain/flight"
	"travel-booking/internal/domain/hotel"
	"travel-booking/internal/infra"
	"travel-booking/internal/pkg/errs"
	"travel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrDuplicateRoomType   = errs.Mark(errs.New("hotel already has this room type"), errs.ErrValidation)
	ErrDuplicateFlightCode = errs.Mark(errs.New("flight code already exists"), errs.ErrValidation)
)

type CreateRoomTypeRequest struct {
	HotelID     uuid.UUID
	Kind        hotel.RoomKind
	BasePrice   booking.Money
	TotalRooms  int
	Description string
}

type RepriceRoomTypeRequest struct {
	BasePrice  *booking.Money
	TotalRooms *int
}

type RepriceCarRequest struct {
	Price       *booking.Money
	PricingMode *car.PricingMode
	Units       *int
}

type RepriceFlightRequest struct {
	BasePrice       *booking.Money
	ReturnBasePrice *booking.Money
}

type CatalogCommands interface {
	CreateHotel(ctx context.Context, p hotel.HotelParams) (uuid.UUID, error)
	CreateRoomType(ctx context.Context, req CreateRoomTypeRequest) (uuid.UUID, error)
	RepriceRoomType(ctx context.Context, id uuid.UUID, req RepriceRoomTypeRequest) error
	CreateCar(ctx context.Context, p car.Params) (uuid.UUID, error)
	RepriceCar(ctx context.Context, id uuid.UUID, req RepriceCarRequest) error
	// CreateFlight also seeds the seat map of every leg
	CreateFlight(ctx context.Context, p flight.Params) (uuid.UUID, error)
	RepriceFlight(ctx context.Context, id uuid.UUID, req RepriceFlightRequest) error
}

type catalogUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewCatalogUseCase(uow shared.UnitOfWork) CatalogCommands {
	return &catalogUseCaseImpl{uow: uow}
}

func (uc *catalogUseCaseImpl) CreateHotel(ctx context.Context, p hotel.HotelParams) (uuid.UUID, error) {
	h, err := hotel.NewHotel(p)
	if err != nil {
		return uuid.Nil, invalid("hotel", err)
	}
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Catalog().CreateHotel(ctx, tx.DB(), h)
	})
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	slog.InfoContext(ctx, "hotel created", "hotel_id", h.ID(), "slug", h.Slug())
	return h.ID(), nil
}

func (uc *catalogUseCaseImpl) CreateRoomType(ctx context.Context, req CreateRoomTypeRequest) (uuid.UUID, error) {
	rt, err := hotel.NewRoomType(req.HotelID, req.Kind, req.BasePrice, req.TotalRooms, req.Description)
	if err != nil {
		return uuid.Nil, invalid("room_type", err)
	}
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Catalog().CreateRoomType(ctx, tx.DB(), rt)
	})
	switch {
	case err == nil:
	case infra.IsKind(err, infra.KindForeignKeyViolated):
		return uuid.Nil, ErrHotelNotFound
	case infra.IsKind(err, infra.KindDuplicateKey):
		return uuid.Nil, ErrDuplicateRoomType
	default:
		return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return rt.ID(), nil
}

func (uc *catalogUseCaseImpl) RepriceRoomType(ctx context.Context, id uuid.UUID, req RepriceRoomTypeRequest) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rt, err := tx.Reads().RoomTypeByID(ctx, id)
		if err != nil {
			return notFoundAs(err, ErrRoomTypeNotFound)
		}
		if err := rt.Reprice(req.BasePrice, req.TotalRooms); err != nil {
			return invalid("room_type", err)
		}
		return tx.Catalog().UpdateRoomType(ctx, tx.DB(), rt)
	})
	return classify(err)
}

func (uc *catalogUseCaseImpl) CreateCar(ctx context.Context, p car.Params) (uuid.UUID, error) {
	c, err := car.NewCar(p)
	if err != nil {
		return uuid.Nil, invalid("car", err)
	}
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Catalog().CreateCar(ctx, tx.DB(), c)
	})
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	slog.InfoContext(ctx, "car created", "car_id", c.ID(), "car", c.DisplayName())
	return c.ID(), nil
}

func (uc *catalogUseCaseImpl) RepriceCar(ctx context.Context, id uuid.UUID, req RepriceCarRequest) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, err := tx.Reads().CarByID(ctx, id)
		if err != nil {
			return notFoundAs(err, ErrCarNotFound)
		}
		if err := c.Reprice(req.Price, req.PricingMode, req.Units); err != nil {
			return invalid("car", err)
		}
		return tx.Catalog().UpdateCar(ctx, tx.DB(), c)
	})
	return classify(err)
}

func (uc *catalogUseCaseImpl) CreateFlight(ctx context.Context, p flight.Params) (uuid.UUID, error) {
	f, err := flight.NewFlight(p)
	if err != nil {
		return uuid.Nil, invalid("flight", err)
	}
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Catalog().CreateFlight(ctx, tx.DB(), f); err != nil {
			return err
		}
		return tx.FlightSeats().CreateSeats(ctx, tx.DB(), f.DefaultSeats())
	})
	switch {
	case err == nil:
	case infra.IsKind(err, infra.KindDuplicateKey):
		return uuid.Nil, ErrDuplicateFlightCode
	default:
		return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	slog.InfoContext(ctx, "flight created", "flight_id", f.ID(), "code", f.Code(), "round_trip", f.HasReturn())
	return f.ID(), nil
}

func (uc *catalogUseCaseImpl) RepriceFlight(ctx context.Context, id uuid.UUID, req RepriceFlightRequest) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		f, err := tx.Reads().FlightByID(ctx, id)
		if err != nil {
			return notFoundAs(err, ErrFlightNotFound)
		}
		if err := f.Reprice(req.BasePrice, req.ReturnBasePrice); err != nil {
			return invalid("flight", err)
		}
		return tx.Catalog().UpdateFlight(ctx, tx.DB(), f)
	})
	return classify(err)
}
