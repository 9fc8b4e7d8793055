package nats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"

	"github.com/gracefleet/routeengine/internal/pkg/constants"
	"github.com/gracefleet/routeengine/internal/pkg/logger"
	"github.com/gracefleet/routeengine/internal/pkg/models"
	natspkg "github.com/gracefleet/routeengine/internal/pkg/nats"
	"github.com/gracefleet/routeengine/services/routes"
)

// RoutesHandler consumes NATS events for the routes service
type RoutesHandler struct {
	routeUC    routes.RouteUC
	natsClient *natspkg.Client
	subs       []*nats.Subscription
}

// NewRoutesHandler creates a new routes NATS handler
func NewRoutesHandler(routeUC routes.RouteUC, natsClient *natspkg.Client) *RoutesHandler {
	return &RoutesHandler{
		routeUC:    routeUC,
		natsClient: natsClient,
		subs:       make([]*nats.Subscription, 0),
	}
}

// InitNATSConsumers initializes all NATS consumers for the routes service
func (h *RoutesHandler) InitNATSConsumers() error {
	sub, err := h.natsClient.Subscribe(constants.SubjectAddressGeocoded, h.handleAddressGeocoded)
	if err != nil {
		return fmt.Errorf("subscribe %s: %w", constants.SubjectAddressGeocoded, err)
	}
	h.subs = append(h.subs, sub)

	logger.Info("NATS consumers initialized",
		logger.String("subject", constants.SubjectAddressGeocoded))
	return nil
}

// handleAddressGeocoded stores freshly geocoded coordinates so future plans
// can place the address
func (h *RoutesHandler) handleAddressGeocoded(msg *nats.Msg) {
	var evt models.AddressGeocodedEvent
	if err := json.Unmarshal(msg.Data, &evt); err != nil {
		logger.Error("Failed to unmarshal address geocoded event",
			logger.String("subject", msg.Subject),
			logger.Err(err))
		return
	}

	if err := h.routeUC.HandleAddressGeocoded(context.Background(), evt); err != nil {
		logger.Error("Failed to apply address geocoded event",
			logger.String("address_id", evt.AddressID.String()),
			logger.Err(err))
		return
	}

	logger.Debug("Address coordinates updated from event",
		logger.String("address_id", evt.AddressID.String()))
}
