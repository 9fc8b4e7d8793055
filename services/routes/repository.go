package routes

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/gracefleet/routeengine/internal/pkg/models"
)

// RouteRepo defines the interface for route data access operations. Every
// method requires an active tenant scope on the context and fails with a
// ScopeError without one.
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/gracefleet/routeengine/services/routes RouteRepo
type RouteRepo interface {
	GetRoute(ctx context.Context, routeID uuid.UUID) (*models.Route, error)
	ListRoutes(ctx context.Context, driverID uuid.UUID, from, to *time.Time) ([]*models.Route, error)
	GetPickupRequests(ctx context.Context, requestIDs []uuid.UUID) ([]*models.PickupRequest, error)
	CreateRouteWithStops(ctx context.Context, route *models.Route, stops []*models.Stop) error
	UpdateRouteStatus(ctx context.Context, routeID uuid.UUID, from, to models.RouteStatus, actualStartAt, actualEndAt *time.Time) (*models.Route, error)
	GetRouteAnalytics(ctx context.Context, from, to time.Time) (*models.RouteAnalytics, error)
	UpdateAddressCoordinates(ctx context.Context, addressID uuid.UUID, lat, lng float64) error
}
