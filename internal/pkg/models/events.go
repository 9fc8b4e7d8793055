package models

import (
	"time"

	"github.com/google/uuid"
)

// RoutePlannedEvent is published after a route has been planned and persisted
type RoutePlannedEvent struct {
	RouteID         uuid.UUID `json:"route_id"`
	OrgID           uuid.UUID `json:"org_id"`
	DriverID        uuid.UUID `json:"driver_id"`
	ServiceDayID    uuid.UUID `json:"service_day_id"`
	RouteDate       time.Time `json:"route_date"`
	StopCount       int       `json:"stop_count"`
	TotalDistanceKm *float64  `json:"total_distance_km"`
	PlannedAt       time.Time `json:"planned_at"`
}

// RouteStatusChangedEvent is published after a lifecycle transition
type RouteStatusChangedEvent struct {
	RouteID        uuid.UUID   `json:"route_id"`
	OrgID          uuid.UUID   `json:"org_id"`
	DriverID       uuid.UUID   `json:"driver_id"`
	PreviousStatus RouteStatus `json:"previous_status"`
	Status         RouteStatus `json:"status"`
	ChangedAt      time.Time   `json:"changed_at"`
}

// AddressGeocodedEvent is consumed when the geocoding service resolves an
// address to coordinates
type AddressGeocodedEvent struct {
	AddressID uuid.UUID `json:"address_id"`
	OrgID     uuid.UUID `json:"org_id"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
}
