package components

import (
	"travel-booking/internal/handler"
	"travel-booking/internal/handler/api"
	"travel-booking/internal/handler/middleware"
	"travel-booking/internal/infra/metrics"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewHotelHandler,
		api.NewCarHandler,
		api.NewFlightHandler,
		api.NewBookingHandler,
		api.NewDraftHandler,
		api.NewDashboardHandler,
		api.NewSiteHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
		NewObservability,
	),
	fx.Invoke(handler.NewRouter),
)

type handlerParams struct {
	fx.In

	Hotel     *api.HotelHandler
	Car       *api.CarHandler
	Flight    *api.FlightHandler
	Booking   *api.BookingHandler
	Draft     *api.DraftHandler
	Dashboard *api.DashboardHandler
	Site      *api.SiteHandler
}

func NewHandlers(p handlerParams) handler.Handlers {
	return handler.Handlers{
		Hotel:     p.Hotel,
		Car:       p.Car,
		Flight:    p.Flight,
		Booking:   p.Booking,
		Draft:     p.Draft,
		Dashboard: p.Dashboard,
		Site:      p.Site,
	}
}

func NewObservability(m *metrics.Metrics) handler.Observability {
	return handler.Observability{HTTP: m, Metrics: m.Handler()}
}
