package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/gracefleet/routeengine/internal/pkg/constants"
	"github.com/gracefleet/routeengine/internal/pkg/database"
	"github.com/gracefleet/routeengine/internal/pkg/middleware"
	"github.com/gracefleet/routeengine/internal/pkg/models"
	natspkg "github.com/gracefleet/routeengine/internal/pkg/nats"
	"github.com/gracefleet/routeengine/services/routes"
	httpHandler "github.com/gracefleet/routeengine/services/routes/handler/http"
	natsHandler "github.com/gracefleet/routeengine/services/routes/handler/nats"
)

// Handler combines the HTTP and NATS handlers for the routes service
type Handler struct {
	routesHTTP  *httpHandler.RoutesHandler
	routesNATS  *natsHandler.RoutesHandler
	redisClient *database.RedisClient
	cfg         *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(
	routeUC routes.RouteUC,
	natsClient *natspkg.Client,
	redisClient *database.RedisClient,
	cfg *models.Config,
) *Handler {
	return &Handler{
		routesHTTP:  httpHandler.NewRoutesHandler(routeUC),
		routesNATS:  natsHandler.NewRoutesHandler(routeUC, natsClient),
		redisClient: redisClient,
		cfg:         cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1", middleware.JWTAuthMiddleware(h.cfg.JWT))

	planLimiter := middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
		RedisClient: h.redisClient.GetClient(),
		Key:         constants.KeyRateLimit,
		Limit:       30,
		Period:      time.Minute,
	})

	routesGroup := api.Group("/routes")
	routesGroup.POST("", h.routesHTTP.PlanRoute, planLimiter)
	routesGroup.GET("", h.routesHTTP.ListRoutes)
	routesGroup.GET("/:routeID", h.routesHTTP.GetRoute)
	routesGroup.PATCH("/:routeID/status", h.routesHTTP.UpdateRouteStatus)

	api.GET("/analytics/routes", h.routesHTTP.GetRouteAnalytics)
}

// InitNATSConsumers initializes all NATS consumers
func (h *Handler) InitNATSConsumers() error {
	return h.routesNATS.InitNATSConsumers()
}
