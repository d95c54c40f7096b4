package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"travel-booking/internal/domain/user"
	"travel-booking/internal/handler/api"
	reqdto "travel-booking/internal/handler/dto/request"
	"travel-booking/internal/handler/middleware"
	"travel-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Hotel     *api.HotelHandler
	Car       *api.CarHandler
	Flight    *api.FlightHandler
	Booking   *api.BookingHandler
	Draft     *api.DraftHandler
	Dashboard *api.DashboardHandler
	Site      *api.SiteHandler
}

// Observability carries the HTTP collectors and the scrape endpoint.
type Observability struct {
	HTTP    middleware.HTTPObserver
	Metrics http.Handler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware, obs Observability) error {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := reqdto.RegisterValidators(v); err != nil {
			return err
		}
	}
	setupMiddleware(engine, cfg, obs)
	setupRoutes(engine, h, authMiddleware, obs)
	return nil
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, obs Observability) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.TracingMiddleware())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	if obs.HTTP != nil {
		engine.Use(middleware.MetricsMiddleware(obs.HTTP))
	}
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware, obs Observability) {
	engine.GET("/health", healthCheck)
	if obs.Metrics != nil {
		engine.GET("/metrics", gin.WrapH(obs.Metrics))
	}

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := authMiddleware.RequireAuth()

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/site", Handler: h.Site.Get},
		})

		hotels := apiGroup.Group("/hotels")
		addRoutes(hotels, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Hotel.List},
			{Method: http.MethodGet, Path: "/room-types/:id/availability", Handler: h.Hotel.Availability, Mw: []gin.HandlerFunc{requireAuth}},
			{Method: http.MethodPost, Path: "/bookings", Handler: h.Hotel.Book, Mw: []gin.HandlerFunc{requireAuth}},
		})

		cars := apiGroup.Group("/cars")
		addRoutes(cars, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Car.List},
			{Method: http.MethodGet, Path: "/:id/availability", Handler: h.Car.Availability, Mw: []gin.HandlerFunc{requireAuth}},
			{Method: http.MethodPost, Path: "/bookings", Handler: h.Car.Book, Mw: []gin.HandlerFunc{requireAuth}},
		})

		flights := apiGroup.Group("/flights")
		addRoutes(flights, []route{
			{Method: http.MethodGet, Path: "/search", Handler: h.Flight.Search},
			{Method: http.MethodGet, Path: "/:id/availability", Handler: h.Flight.Availability, Mw: []gin.HandlerFunc{requireAuth}},
			{Method: http.MethodPost, Path: "/bookings", Handler: h.Flight.Book, Mw: []gin.HandlerFunc{requireAuth}},
		})

		bookings := apiGroup.Group("/bookings")
		bookings.Use(requireAuth)
		{
			addRoutes(bookings, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Booking.List},
				{Method: http.MethodGet, Path: "/:kind/:reference", Handler: h.Booking.Get},
			})
		}

		drafts := apiGroup.Group("/drafts")
		drafts.Use(requireAuth)
		{
			addRoutes(drafts, []route{
				{Method: http.MethodGet, Path: "/:kind/:resourceId", Handler: h.Draft.Get},
				{Method: http.MethodPut, Path: "/:kind/:resourceId", Handler: h.Draft.Save},
				{Method: http.MethodDelete, Path: "/:kind/:resourceId", Handler: h.Draft.Delete},
			})
		}

		dashboard := apiGroup.Group("/dashboard")
		dashboard.Use(requireAuth, authMiddleware.RequireRoleAtLeast(user.RoleStaff))
		{
			addRoutes(dashboard, []route{
				{Method: http.MethodGet, Path: "/overview", Handler: h.Dashboard.Overview},
				{Method: http.MethodGet, Path: "/bookings", Handler: h.Dashboard.Bookings},
				{Method: http.MethodPatch, Path: "/bookings/:kind/:reference", Handler: h.Dashboard.UpdateBookingStatus},
				{Method: http.MethodPost, Path: "/hotels", Handler: h.Dashboard.CreateHotel},
				{Method: http.MethodPost, Path: "/hotels/:id/room-types", Handler: h.Dashboard.CreateRoomType},
				{Method: http.MethodPatch, Path: "/room-types/:id", Handler: h.Dashboard.RepriceRoomType},
				{Method: http.MethodPost, Path: "/cars", Handler: h.Dashboard.CreateCar},
				{Method: http.MethodPatch, Path: "/cars/:id", Handler: h.Dashboard.RepriceCar},
				{Method: http.MethodPost, Path: "/flights", Handler: h.Dashboard.CreateFlight},
				{Method: http.MethodPatch, Path: "/flights/:id", Handler: h.Dashboard.RepriceFlight},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
