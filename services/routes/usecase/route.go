package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gracefleet/routeengine/internal/pkg/apperrors"
	"github.com/gracefleet/routeengine/internal/pkg/geo"
	"github.com/gracefleet/routeengine/internal/pkg/logger"
	"github.com/gracefleet/routeengine/internal/pkg/models"
	nrpkg "github.com/gracefleet/routeengine/internal/pkg/newrelic"
	"github.com/gracefleet/routeengine/internal/pkg/tenant"
	"github.com/gracefleet/routeengine/services/routes"
)

// routeUC implements the routes.RouteUC interface
type routeUC struct {
	cfg      *models.Config
	repo     routes.RouteRepo
	gw       routes.RouteGW
	geocoder routes.GeocodeGW
}

// NewRouteUC creates a new route use case
func NewRouteUC(
	cfg *models.Config,
	repo routes.RouteRepo,
	gw routes.RouteGW,
	geocoder routes.GeocodeGW,
) (routes.RouteUC, error) {
	if repo == nil || gw == nil {
		return nil, fmt.Errorf("route usecase requires a repository and a gateway")
	}
	return &routeUC{
		cfg:      cfg,
		repo:     repo,
		gw:       gw,
		geocoder: geocoder,
	}, nil
}

// PlanRoute sequences the given pickup requests into a new route for the
// driver using the nearest-neighbor heuristic and persists the route, its
// stops and the request assignments as one atomic write.
func (uc *routeUC) PlanRoute(ctx context.Context, req models.PlanRouteRequest) (*models.Route, error) {
	orgID, err := tenant.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	if len(req.PickupRequestIDs) == 0 {
		return nil, apperrors.NewValidationError("pickup request list must not be empty")
	}
	if !geo.ValidCoordinate(req.StartLocation.Latitude, req.StartLocation.Longitude) {
		return nil, apperrors.NewValidationError("start location (%f, %f) is not a valid coordinate",
			req.StartLocation.Latitude, req.StartLocation.Longitude)
	}
	if req.DriverID == uuid.Nil {
		return nil, apperrors.NewValidationError("driver_id is required")
	}
	if req.ServiceDayID == uuid.Nil {
		return nil, apperrors.NewValidationError("service_day_id is required")
	}

	requestIDs := dedupe(req.PickupRequestIDs)
	if max := uc.cfg.Planner.MaxStopsPerRoute; max > 0 && len(requestIDs) > max {
		return nil, apperrors.NewValidationError("route exceeds the maximum of %d stops", max)
	}

	fetched, err := uc.repo.GetPickupRequests(ctx, requestIDs)
	if err != nil {
		return nil, err
	}

	// The repository returns rows in database order; restore the caller's
	// order so ungeocoded requests keep their requested sequence at the
	// tail of the route
	byID := make(map[uuid.UUID]*models.PickupRequest, len(fetched))
	for _, p := range fetched {
		byID[p.ID] = p
	}
	pickups := make([]*models.PickupRequest, 0, len(requestIDs))
	for _, id := range requestIDs {
		p, ok := byID[id]
		if !ok {
			return nil, apperrors.NewNotFoundError("pickup request", id.String())
		}
		pickups = append(pickups, p)
	}

	// ACCEPTED means the request rides on a live route; any other
	// non-PENDING status is simply not plannable
	var conflicting []uuid.UUID
	for _, p := range pickups {
		switch p.Status {
		case models.PickupStatusPending:
		case models.PickupStatusAccepted:
			conflicting = append(conflicting, p.ID)
		default:
			return nil, apperrors.NewValidationError("pickup request %s is %s and cannot be planned",
				p.ID, p.Status)
		}
	}
	if len(conflicting) > 0 {
		return nil, apperrors.NewConflictError(conflicting)
	}

	uc.resolveMissingCoordinates(ctx, pickups)

	start := geo.Point{
		Latitude:  req.StartLocation.Latitude,
		Longitude: req.StartLocation.Longitude,
	}

	var (
		ordered []plannedStop
		totalKm *float64
	)
	err = nrpkg.WithSegment(ctx, "planner.nearestNeighbor", func() error {
		ordered, totalKm = nearestNeighborOrder(start, pickups)
		return nil
	})
	if err != nil {
		return nil, err
	}

	now := models.Now()
	route := &models.Route{
		ID:              uuid.New(),
		OrgID:           orgID,
		DriverID:        req.DriverID,
		ServiceDayID:    req.ServiceDayID,
		RouteDate:       req.RouteDate,
		Status:          models.RouteStatusPlanned,
		TotalDistanceKm: totalKm,
		PlannedStartAt:  req.PlannedStartAt,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	stops := make([]*models.Stop, 0, len(ordered))
	for i, ps := range ordered {
		stops = append(stops, &models.Stop{
			ID:              uuid.New(),
			RouteID:         route.ID,
			PickupRequestID: ps.request.ID,
			Position:        i,
			LegDistanceKm:   ps.legKm,
			CreatedAt:       now,
		})
	}
	route.Stops = stops

	if err := uc.repo.CreateRouteWithStops(ctx, route, stops); err != nil {
		return nil, err
	}

	logger.Info("Planned route",
		logger.String("route_id", route.ID.String()),
		logger.String("driver_id", route.DriverID.String()),
		logger.Int("stops", len(stops)),
		logger.String("start_geohash", geo.Encode(start, 6)))

	if err := uc.gw.PublishRoutePlanned(ctx, route); err != nil {
		logger.Warn("Failed to publish route planned event",
			logger.String("route_id", route.ID.String()),
			logger.Err(err))
	}

	return route, nil
}

// GetRoute fetches one route with its stops
func (uc *routeUC) GetRoute(ctx context.Context, routeID uuid.UUID) (*models.Route, error) {
	return uc.repo.GetRoute(ctx, routeID)
}

// ListRoutes lists a driver's routes, most recent first
func (uc *routeUC) ListRoutes(ctx context.Context, driverID uuid.UUID, from, to *time.Time) ([]*models.Route, error) {
	if driverID == uuid.Nil {
		return nil, apperrors.NewValidationError("driver_id is required")
	}
	return uc.repo.ListRoutes(ctx, driverID, from, to)
}

// UpdateRouteStatus applies a lifecycle transition to a route. Cancelling
// also reverts the route's pickup requests to PENDING so they become
// eligible for re-routing; that reversion and the status change are applied
// in the same transaction by the repository.
func (uc *routeUC) UpdateRouteStatus(ctx context.Context, routeID uuid.UUID, req models.UpdateRouteStatusRequest) (*models.Route, error) {
	if !KnownStatus(req.Status) {
		return nil, apperrors.NewValidationError("unknown route status %q", string(req.Status))
	}

	route, err := uc.repo.GetRoute(ctx, routeID)
	if err != nil {
		return nil, err
	}

	previous := route.Status
	if !CanTransition(previous, req.Status) {
		return nil, apperrors.NewInvalidTransitionError(previous, req.Status)
	}

	var startAt, endAt *time.Time
	switch req.Status {
	case models.RouteStatusInProgress:
		startAt = req.ActualStartAt
		if startAt == nil {
			now := models.Now()
			startAt = &now
		}
	case models.RouteStatusCompleted:
		endAt = req.ActualEndAt
		if endAt == nil {
			now := models.Now()
			endAt = &now
		}
	}

	updated, err := uc.repo.UpdateRouteStatus(ctx, routeID, previous, req.Status, startAt, endAt)
	if err != nil {
		return nil, err
	}

	logger.Info("Route status changed",
		logger.String("route_id", routeID.String()),
		logger.String("from", string(previous)),
		logger.String("to", string(req.Status)))

	if err := uc.gw.PublishRouteStatusChanged(ctx, updated, previous); err != nil {
		logger.Warn("Failed to publish route status event",
			logger.String("route_id", routeID.String()),
			logger.Err(err))
	}

	return updated, nil
}

// HandleAddressGeocoded applies coordinates announced by the geocoding
// service to the owning tenant's address
func (uc *routeUC) HandleAddressGeocoded(ctx context.Context, evt models.AddressGeocodedEvent) error {
	if !geo.ValidCoordinate(evt.Latitude, evt.Longitude) {
		return apperrors.NewValidationError("geocoded coordinate (%f, %f) is out of range",
			evt.Latitude, evt.Longitude)
	}

	// Events carry their own tenant; scope the operation to it
	ctx = tenant.WithScope(ctx, evt.OrgID)

	return uc.repo.UpdateAddressCoordinates(ctx, evt.AddressID, evt.Latitude, evt.Longitude)
}

// resolveMissingCoordinates asks the geocoding gateway for coordinates of
// requests whose address has none yet. Best-effort: a geocoder failure
// leaves the request ungeocoded and it is appended to the tail of the route.
func (uc *routeUC) resolveMissingCoordinates(ctx context.Context, pickups []*models.PickupRequest) {
	if uc.geocoder == nil {
		return
	}

	for _, p := range pickups {
		if p.Geocoded() || p.PickupAddress == "" {
			continue
		}

		point, err := uc.geocoder.Locate(ctx, p.PickupAddress)
		if err != nil {
			logger.Debug("Geocoder lookup failed",
				logger.String("pickup_request_id", p.ID.String()),
				logger.Err(err))
			continue
		}
		if point == nil {
			continue
		}

		lat, lng := point.Latitude, point.Longitude
		p.PickupLatitude = &lat
		p.PickupLongitude = &lng
	}
}

func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]bool, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
