package queries

import (
	"context"
	"strings"
	"time"

	"travel-booking/internal/domain/flight"
)

const defaultFlightSearchLimit = 50

type FlightSearch struct {
	Origin        string
	Destination   string
	DepartureDate time.Time
	ReturnDate    *time.Time
	Passengers    int
	Limit         int
}

type CatalogReadStore interface {
	FindHotels(ctx context.Context, location string) ([]*HotelView, error)
	FindCars(ctx context.Context, location string) ([]*CarView, error)
	SearchFlights(ctx context.Context, search FlightSearch) ([]*FlightView, error)
}

type CatalogQueries interface {
	ListHotels(ctx context.Context, location string) ([]*HotelView, error)
	ListCars(ctx context.Context, location string) ([]*CarView, error)
	SearchFlights(ctx context.Context, search FlightSearch) ([]*FlightView, error)
}

type catalogQueriesImpl struct {
	store CatalogReadStore
}

func NewCatalogQueries(store CatalogReadStore) CatalogQueries {
	return &catalogQueriesImpl{store: store}
}

func (q *catalogQueriesImpl) ListHotels(ctx context.Context, location string) ([]*HotelView, error) {
	return q.store.FindHotels(ctx, strings.TrimSpace(location))
}

func (q *catalogQueriesImpl) ListCars(ctx context.Context, location string) ([]*CarView, error) {
	return q.store.FindCars(ctx, strings.TrimSpace(location))
}

// SearchFlights clamps the passenger count before filtering on free outbound seats.
func (q *catalogQueriesImpl) SearchFlights(ctx context.Context, search FlightSearch) ([]*FlightView, error) {
	search.Origin = strings.TrimSpace(search.Origin)
	search.Destination = strings.TrimSpace(search.Destination)
	search.Passengers = flight.ClampPassengers(search.Passengers)
	if search.Limit <= 0 || search.Limit > MaxListLimit {
		search.Limit = defaultFlightSearchLimit
	}
	return q.store.SearchFlights(ctx, search)
}
