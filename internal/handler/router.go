package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"booking-core/internal/handler/api"
	"booking-core/internal/handler/middleware"
	"booking-core/internal/pkg/config"
	"booking-core/internal/pkg/jwt"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Booking      *api.BookingHandler
	Verification *api.VerificationHandler
	Schedule     *api.ScheduleHandler
	Service      *api.ServiceHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, cfg, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requester := authMiddleware.RequireRole(jwt.RoleRequester)
	provider := authMiddleware.RequireRole(jwt.RoleProvider)
	verifyLimiter := middleware.NewRateLimiter(cfg.Verification.RatePerMinute, cfg.Verification.RateBurst)

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		bookings := apiGroup.Group("/bookings")
		addRoutes(bookings, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Booking.Create, Mw: []gin.HandlerFunc{requester}},
			{Method: http.MethodGet, Path: "", Handler: h.Booking.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.Get},
			{Method: http.MethodPost, Path: "/:id/respond", Handler: h.Booking.Respond},
			{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Booking.Cancel},
			{Method: http.MethodPost, Path: "/:id/complete", Handler: h.Booking.Complete},
			{Method: http.MethodPost, Path: "/:id/reprice", Handler: h.Booking.Reprice},

			{Method: http.MethodPost, Path: "/:id/verification-code", Handler: h.Verification.Issue},
			{Method: http.MethodGet, Path: "/:id/verification-code", Handler: h.Verification.Status},
			{Method: http.MethodPost, Path: "/:id/verification-code/resend", Handler: h.Verification.Resend},
			{Method: http.MethodPost, Path: "/:id/verification-code/verify", Handler: h.Verification.Verify, Mw: []gin.HandlerFunc{verifyLimiter.Middleware()}},
		})

		sched := apiGroup.Group("/schedule")
		addRoutes(sched, []route{
			{Method: http.MethodGet, Path: "/staffable", Handler: h.Schedule.Staffable},
			{Method: http.MethodGet, Path: "/assignments", Handler: h.Schedule.ListAssignments, Mw: []gin.HandlerFunc{provider}},
			{Method: http.MethodPost, Path: "/assignments", Handler: h.Schedule.Assign, Mw: []gin.HandlerFunc{provider}},
			{Method: http.MethodDelete, Path: "/assignments/:id", Handler: h.Schedule.Unassign, Mw: []gin.HandlerFunc{provider}},
			{Method: http.MethodPost, Path: "/assignments/:id/windows", Handler: h.Schedule.SetWindow, Mw: []gin.HandlerFunc{provider}},
			{Method: http.MethodDelete, Path: "/windows/:id", Handler: h.Schedule.RemoveWindow, Mw: []gin.HandlerFunc{provider}},
		})

		services := apiGroup.Group("/services")
		addRoutes(services, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Service.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Service.Get},
			{Method: http.MethodPost, Path: "", Handler: h.Service.Register, Mw: []gin.HandlerFunc{provider}},
			{Method: http.MethodPatch, Path: "/:id", Handler: h.Service.Update, Mw: []gin.HandlerFunc{provider}},
		})
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
