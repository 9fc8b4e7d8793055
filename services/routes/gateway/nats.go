package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gracefleet/routeengine/internal/pkg/constants"
	"github.com/gracefleet/routeengine/internal/pkg/logger"
	"github.com/gracefleet/routeengine/internal/pkg/models"
	natspkg "github.com/gracefleet/routeengine/internal/pkg/nats"
	nrpkg "github.com/gracefleet/routeengine/internal/pkg/newrelic"
	"github.com/gracefleet/routeengine/services/routes"
)

// RouteGW publishes route lifecycle events to NATS
type RouteGW struct {
	cfg        *models.Config
	natsClient *natspkg.Client
}

// NewRouteGW creates a new route gateway
func NewRouteGW(cfg *models.Config, natsClient *natspkg.Client) *RouteGW {
	return &RouteGW{
		cfg:        cfg,
		natsClient: natsClient,
	}
}

var _ routes.RouteGW = (*RouteGW)(nil)

// PublishRoutePlanned publishes a route.planned event
func (g *RouteGW) PublishRoutePlanned(ctx context.Context, route *models.Route) error {
	event := models.RoutePlannedEvent{
		RouteID:         route.ID,
		OrgID:           route.OrgID,
		DriverID:        route.DriverID,
		ServiceDayID:    route.ServiceDayID,
		RouteDate:       route.RouteDate,
		StopCount:       len(route.Stops),
		TotalDistanceKm: route.TotalDistanceKm,
		PlannedAt:       models.Now(),
	}

	return g.publish(ctx, constants.SubjectRoutePlanned, event)
}

// PublishRouteStatusChanged publishes a route.status_changed event, and
// additionally a route.cancelled event when the transition cancelled the
// route, so cancellation-only consumers need not filter the full stream.
func (g *RouteGW) PublishRouteStatusChanged(ctx context.Context, route *models.Route, previous models.RouteStatus) error {
	event := models.RouteStatusChangedEvent{
		RouteID:        route.ID,
		OrgID:          route.OrgID,
		DriverID:       route.DriverID,
		PreviousStatus: previous,
		Status:         route.Status,
		ChangedAt:      models.Now(),
	}

	if err := g.publish(ctx, constants.SubjectRouteStatusChanged, event); err != nil {
		return err
	}

	if route.Status == models.RouteStatusCancelled {
		return g.publish(ctx, constants.SubjectRouteCancelled, event)
	}
	return nil
}

func (g *RouteGW) publish(ctx context.Context, subject string, event interface{}) error {
	return nrpkg.WithSegment(ctx, "nats.publish."+subject, func() error {
		data, err := json.Marshal(event)
		if err != nil {
			return fmt.Errorf("marshal %s event: %w", subject, err)
		}

		if err := g.natsClient.Publish(subject, data); err != nil {
			return fmt.Errorf("publish %s: %w", subject, err)
		}

		logger.Debug("published event",
			logger.String("subject", subject),
			logger.Int("bytes", len(data)))
		return nil
	})
}
