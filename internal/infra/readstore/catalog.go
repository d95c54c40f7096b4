package readstore

import (
	"context"
	"time"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/infra"
	"travel-booking/internal/infra/pgsql"
	"travel-booking/internal/pkg/pgconv"
	"travel-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CatalogViewQueries interface {
	ListHotelsByLocation(ctx context.Context, db pgsql.DBTX, location string) ([]pgsql.Hotel, error)
	ListRoomTypesByHotelIDs(ctx context.Context, db pgsql.DBTX, hotelIDs []uuid.UUID) ([]pgsql.HotelRoomType, error)
	ListCarsByLocation(ctx context.Context, db pgsql.DBTX, location string) ([]pgsql.Car, error)
	SearchFlights(ctx context.Context, db pgsql.DBTX, arg pgsql.SearchFlightsParams) ([]pgsql.SearchFlightsRow, error)
}

type CatalogReadStore struct {
	queries CatalogViewQueries
	db      pgsql.DBTX
}

func NewCatalogReadStore(queries CatalogViewQueries, db pgsql.DBTX) *CatalogReadStore {
	return &CatalogReadStore{
		queries: queries,
		db:      db,
	}
}

// FindHotels loads matching hotels and attaches their room types with a second query.
func (r *CatalogReadStore) FindHotels(ctx context.Context, location string) ([]*queries.HotelView, error) {
	hotels, err := r.queries.ListHotelsByLocation(ctx, r.db, location)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list hotels", err)
	}
	if len(hotels) == 0 {
		return []*queries.HotelView{}, nil
	}

	ids := make([]uuid.UUID, len(hotels))
	views := make([]*queries.HotelView, len(hotels))
	byID := make(map[uuid.UUID]*queries.HotelView, len(hotels))
	for i, h := range hotels {
		ids[i] = h.ID
		views[i] = &queries.HotelView{
			ID:           h.ID,
			Name:         h.Name,
			Slug:         h.Slug,
			Description:  h.Description,
			Location:     h.Location,
			Address:      h.Address,
			ContactEmail: h.ContactEmail,
			ContactPhone: h.ContactPhone,
			Amenities:    nonNil(h.Amenities),
			RoomTypes:    []*queries.RoomTypeView{},
		}
		byID[h.ID] = views[i]
	}

	roomTypes, err := r.queries.ListRoomTypesByHotelIDs(ctx, r.db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list room types", err)
	}
	for _, rt := range roomTypes {
		if h, ok := byID[rt.HotelID]; ok {
			h.RoomTypes = append(h.RoomTypes, toRoomTypeView(rt))
		}
	}
	return views, nil
}

func (r *CatalogReadStore) FindCars(ctx context.Context, location string) ([]*queries.CarView, error) {
	rows, err := r.queries.ListCarsByLocation(ctx, r.db, location)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list cars", err)
	}
	views := make([]*queries.CarView, len(rows))
	for i, c := range rows {
		views[i] = &queries.CarView{
			ID:              c.ID,
			Company:         c.Company,
			Model:           c.Model,
			Category:        c.Category,
			Seats:           c.Seats,
			LuggageCapacity: c.LuggageCapacity,
			Location:        c.Location,
			PickupLocation:  c.PickupLocation,
			DropoffLocation: c.DropoffLocation,
			Price:           money(c.Price),
			PricingMode:     c.PricingMode,
			Units:           c.Units,
		}
	}
	return views, nil
}

func (r *CatalogReadStore) SearchFlights(ctx context.Context, search queries.FlightSearch) ([]*queries.FlightView, error) {
	rows, err := r.queries.SearchFlights(ctx, r.db, pgsql.SearchFlightsParams{
		Origin:        search.Origin,
		Destination:   search.Destination,
		DepartureDate: pgconv.DateToPgtype(search.DepartureDate),
		ReturnDate:    pgconv.DatePtrToPgtype(search.ReturnDate),
		Passengers:    int32(search.Passengers), // #nosec G115 -- clamped to the seat capacity
		Limit:         int32(search.Limit),      // #nosec G115 -- bounded by MaxListLimit
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search flights", err)
	}
	views := make([]*queries.FlightView, len(rows))
	for i, row := range rows {
		views[i] = toFlightView(row.Flight, row.AvailableSeats)
	}
	return views, nil
}

func toRoomTypeView(rt pgsql.HotelRoomType) *queries.RoomTypeView {
	return &queries.RoomTypeView{
		ID:          rt.ID,
		HotelID:     rt.HotelID,
		HotelName:   rt.HotelName,
		RoomType:    rt.RoomType,
		BasePrice:   money(rt.BasePrice),
		TotalRooms:  rt.TotalRooms,
		Description: rt.Description,
	}
}

func toFlightView(f pgsql.Flight, available int32) *queries.FlightView {
	v := &queries.FlightView{
		ID: f.ID,
		Outbound: queries.FlightLegView{
			Code:          f.Code,
			Origin:        f.Origin,
			Destination:   f.Destination,
			DepartureTime: f.DepartureTime,
			ArrivalTime:   f.ArrivalTime,
		},
		BasePrice:       money(f.BasePrice),
		ReturnBasePrice: money(f.ReturnBasePrice),
		SeatCapacity:    f.SeatCapacity,
		AvailableSeats:  available,
		Description:     f.Description,
	}
	if f.ReturnCode.Valid {
		v.Return = &queries.FlightLegView{
			Code:          f.ReturnCode.String,
			Origin:        f.ReturnOrigin.String,
			Destination:   f.ReturnDestination.String,
			DepartureTime: pgconv.TimeFromPgtype(f.ReturnDepartureTime),
			ArrivalTime:   pgconv.TimeFromPgtype(f.ReturnArrivalTime),
		}
	}
	return v
}

func money(d decimal.Decimal) string {
	return booking.NewMoney(d).String()
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func formatDate(valid bool, t time.Time) string {
	if !valid {
		return ""
	}
	return booking.FormatDate(t)
}
