package routes

import (
	"context"

	"github.com/gracefleet/routeengine/internal/pkg/geo"
	"github.com/gracefleet/routeengine/internal/pkg/models"
)

// RouteGW defines the interface for route event publishing. All publishes
// are fire-and-forget from the caller's point of view: a failure is logged
// and never rolls back the route operation that triggered it.
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/gracefleet/routeengine/services/routes RouteGW,GeocodeGW
type RouteGW interface {
	PublishRoutePlanned(ctx context.Context, route *models.Route) error
	PublishRouteStatusChanged(ctx context.Context, route *models.Route, previous models.RouteStatus) error
}

// GeocodeGW resolves a postal address to coordinates through the external
// geocoding service. A nil point with a nil error means the address could
// not be located.
type GeocodeGW interface {
	Locate(ctx context.Context, query string) (*geo.Point, error)
}
