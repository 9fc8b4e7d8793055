package routes

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/gracefleet/routeengine/internal/pkg/models"
)

// RouteUC defines the interface for route business logic
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/gracefleet/routeengine/services/routes RouteUC
type RouteUC interface {
	PlanRoute(ctx context.Context, req models.PlanRouteRequest) (*models.Route, error)
	GetRoute(ctx context.Context, routeID uuid.UUID) (*models.Route, error)
	ListRoutes(ctx context.Context, driverID uuid.UUID, from, to *time.Time) ([]*models.Route, error)
	UpdateRouteStatus(ctx context.Context, routeID uuid.UUID, req models.UpdateRouteStatusRequest) (*models.Route, error)
	GetAnalytics(ctx context.Context, from, to time.Time) (*models.RouteAnalytics, error)
	HandleAddressGeocoded(ctx context.Context, evt models.AddressGeocodedEvent) error
}
