package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"mentor-availability/internal/handler/api"
	"mentor-availability/internal/handler/middleware"
	"mentor-availability/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

type Handlers struct {
	Timeslots    *api.TimeslotHandler
	Sessions     *api.SessionHandler
	Availability *api.AvailabilityHandler
}

func NewHandlers(t *api.TimeslotHandler, s *api.SessionHandler, a *api.AvailabilityHandler) Handlers {
	return Handlers{Timeslots: t, Sessions: s, Availability: a}
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware, limiter *middleware.RateLimiter) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware, limiter)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware, limiter *middleware.RateLimiter) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth(), limiter.PerMentor())
	{
		addRoutes(apiGroup.Group("/timeslots"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Timeslots.List},
			{Method: http.MethodPost, Path: "", Handler: h.Timeslots.Create},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Timeslots.Get},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Timeslots.Update},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Timeslots.Delete},
		})

		addRoutes(apiGroup.Group("/sessions"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Sessions.List},
			{Method: http.MethodPost, Path: "", Handler: h.Sessions.Create},
			{Method: http.MethodGet, Path: "/:id/timeslots", Handler: h.Sessions.ListTimeslots},
			{Method: http.MethodPost, Path: "/:id/timeslots", Handler: h.Sessions.AddTimeslots},
		})

		addRoutes(apiGroup.Group("/availability"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Availability.Aggregate},
			{Method: http.MethodGet, Path: "/recent", Handler: h.Availability.Recent},
		})

		addRoutes(apiGroup.Group("/profile"), []route{
			{Method: http.MethodGet, Path: "/session-defaults", Handler: h.Availability.SessionDefaults},
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
