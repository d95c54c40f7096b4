package converter

import (
	"travel-booking/internal/domain/booking"
	"travel-booking/internal/domain/car"
	"travel-booking/internal/domain/flight"
	"travel-booking/internal/domain/hotel"
	"travel-booking/internal/infra/pgsql"
	"travel-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func HotelToInfra(h *hotel.Hotel) pgsql.CreateHotelParams {
	amenities := h.Amenities()
	if amenities == nil {
		amenities = []string{}
	}
	return pgsql.CreateHotelParams{
		ID:           h.ID(),
		Name:         h.Name(),
		Slug:         h.Slug(),
		Description:  h.Description(),
		Location:     h.Location(),
		Address:      h.Address(),
		ContactEmail: h.ContactEmail(),
		ContactPhone: h.ContactPhone(),
		Amenities:    amenities,
	}
}

func RoomTypeToInfra(rt *hotel.RoomType) (pgsql.CreateRoomTypeParams, error) {
	totalRooms, err := pgconv.Int32(rt.TotalRooms())
	if err != nil {
		return pgsql.CreateRoomTypeParams{}, err
	}
	return pgsql.CreateRoomTypeParams{
		ID:          rt.ID(),
		HotelID:     rt.HotelID(),
		RoomType:    rt.Kind().String(),
		BasePrice:   rt.BasePrice().Decimal(),
		TotalRooms:  totalRooms,
		Description: rt.Description(),
	}, nil
}

func RoomTypeFromInfra(row pgsql.HotelRoomType) *hotel.RoomType {
	return hotel.ReconstructRoomType(
		row.ID,
		row.HotelID,
		row.HotelName,
		hotel.RoomKind(row.RoomType),
		booking.NewMoney(row.BasePrice),
		int(row.TotalRooms),
		row.Description,
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func CarToInfra(c *car.Car) (pgsql.CreateCarParams, error) {
	var counts [3]int32
	for i, v := range []int{c.Seats(), c.LuggageCapacity(), c.Units()} {
		n, err := pgconv.Int32(v)
		if err != nil {
			return pgsql.CreateCarParams{}, err
		}
		counts[i] = n
	}
	return pgsql.CreateCarParams{
		ID:              c.ID(),
		Company:         c.Company(),
		Model:           c.Model(),
		Category:        c.Category(),
		Seats:           counts[0],
		LuggageCapacity: counts[1],
		Location:        c.Location(),
		PickupLocation:  c.PickupLocation(),
		DropoffLocation: c.DropoffLocation(),
		Price:           c.Price().Decimal(),
		PricingMode:     string(c.PricingMode()),
		Units:           counts[2],
	}, nil
}

func CarFromInfra(row pgsql.Car) *car.Car {
	return car.ReconstructCar(row.ID, car.Params{
		Company:         row.Company,
		Model:           row.Model,
		Category:        row.Category,
		Seats:           int(row.Seats),
		LuggageCapacity: int(row.LuggageCapacity),
		Location:        row.Location,
		PickupLocation:  row.PickupLocation,
		DropoffLocation: row.DropoffLocation,
		Price:           booking.NewMoney(row.Price),
		PricingMode:     car.PricingMode(row.PricingMode),
		Units:           int(row.Units),
	}, row.IsActive)
}

func FlightToInfra(f *flight.Flight) (pgsql.CreateFlightParams, error) {
	seatCapacity, err := pgconv.Int32(f.SeatCapacity())
	if err != nil {
		return pgsql.CreateFlightParams{}, err
	}
	out := f.Outbound()
	params := pgsql.CreateFlightParams{
		ID:              f.ID(),
		Code:            out.Code,
		Origin:          out.Origin,
		Destination:     out.Destination,
		DepartureTime:   out.DepartureTime,
		ArrivalTime:     out.ArrivalTime,
		BasePrice:       f.BasePrice().Decimal(),
		ReturnBasePrice: f.ReturnBasePrice().Decimal(),
		SeatCapacity:    seatCapacity,
		Description:     f.Description(),
	}
	if ret := f.Return(); ret != nil {
		params.ReturnCode = pgconv.StringToPgtype(ret.Code)
		params.ReturnOrigin = pgconv.StringToPgtype(ret.Origin)
		params.ReturnDestination = pgconv.StringToPgtype(ret.Destination)
		params.ReturnDepartureTime = pgconv.TimeToPgtype(ret.DepartureTime)
		params.ReturnArrivalTime = pgconv.TimeToPgtype(ret.ArrivalTime)
	}
	return params, nil
}

func FlightFromInfra(row pgsql.Flight) *flight.Flight {
	params := flight.Params{
		Outbound: flight.Schedule{
			Code:          row.Code,
			Origin:        row.Origin,
			Destination:   row.Destination,
			DepartureTime: row.DepartureTime,
			ArrivalTime:   row.ArrivalTime,
		},
		BasePrice:       booking.NewMoney(row.BasePrice),
		ReturnBasePrice: booking.NewMoney(row.ReturnBasePrice),
		Description:     row.Description,
	}
	if row.ReturnCode.Valid {
		params.Return = &flight.Schedule{
			Code:          row.ReturnCode.String,
			Origin:        textOrEmpty(row.ReturnOrigin),
			Destination:   textOrEmpty(row.ReturnDestination),
			DepartureTime: pgconv.TimeFromPgtype(row.ReturnDepartureTime),
			ArrivalTime:   pgconv.TimeFromPgtype(row.ReturnArrivalTime),
		}
	}
	return flight.ReconstructFlight(row.ID, params, int(row.SeatCapacity), row.IsActive)
}

func SeatToInfra(s *flight.Seat) pgsql.FlightSeat {
	return pgsql.FlightSeat{
		ID:            s.ID(),
		FlightID:      s.FlightID(),
		Leg:           s.Leg().String(),
		SeatNumber:    s.Number(),
		SeatClass:     string(s.Class()),
		PriceModifier: s.PriceModifier(),
		IsReserved:    s.IsReserved(),
	}
}

func SeatFromInfra(row pgsql.FlightSeat) *flight.Seat {
	return flight.ReconstructSeat(
		row.ID,
		row.FlightID,
		flight.Leg(row.Leg),
		row.SeatNumber,
		flight.SeatClass(row.SeatClass),
		row.PriceModifier,
		row.IsReserved,
	)
}

func textOrEmpty(t pgtype.Text) string {
	if p := pgconv.StringPtrFromPgtype(t); p != nil {
		return *p
	}
	return ""
}
