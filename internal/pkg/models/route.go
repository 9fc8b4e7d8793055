package models

import (
	"time"

	"github.com/google/uuid"
)

// RouteStatus represents the lifecycle status of a route
type RouteStatus string

const (
	RouteStatusPlanned    RouteStatus = "PLANNED"
	RouteStatusInProgress RouteStatus = "IN_PROGRESS"
	RouteStatusCompleted  RouteStatus = "COMPLETED"
	RouteStatusCancelled  RouteStatus = "CANCELLED"
)

// IsTerminal reports whether no further transition is allowed out of s.
func (s RouteStatus) IsTerminal() bool {
	return s == RouteStatusCompleted || s == RouteStatusCancelled
}

// Route represents a planned stop sequence for one driver on one service day
type Route struct {
	ID              uuid.UUID   `json:"id" db:"id"`
	OrgID           uuid.UUID   `json:"org_id" db:"org_id"`
	DriverID        uuid.UUID   `json:"driver_id" db:"driver_id"`
	ServiceDayID    uuid.UUID   `json:"service_day_id" db:"service_day_id"`
	RouteDate       time.Time   `json:"route_date" db:"route_date"`
	Status          RouteStatus `json:"status" db:"status"`
	TotalDistanceKm *float64    `json:"total_distance_km" db:"total_distance_km"`
	PlannedStartAt  *time.Time  `json:"planned_start_at" db:"planned_start_at"`
	ActualStartAt   *time.Time  `json:"actual_start_at" db:"actual_start_at"`
	ActualEndAt     *time.Time  `json:"actual_end_at" db:"actual_end_at"`
	CreatedAt       time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at" db:"updated_at"`
	Stops           []*Stop     `json:"stops,omitempty" db:"-"`
}

// Stop represents one ordered visit in a route. Position is 0-based and
// defines the visiting order; LegDistanceKm is the distance from the previous
// stop (or the start location for position 0), nil when the pickup address
// has no geocoded coordinates.
type Stop struct {
	ID              uuid.UUID `json:"id" db:"id"`
	RouteID         uuid.UUID `json:"route_id" db:"route_id"`
	PickupRequestID uuid.UUID `json:"pickup_request_id" db:"pickup_request_id"`
	Position        int       `json:"position" db:"position"`
	LegDistanceKm   *float64  `json:"leg_distance_km" db:"leg_distance_km"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}

// PlanRouteRequest carries the input for planning a new route
type PlanRouteRequest struct {
	DriverID         uuid.UUID   `json:"driver_id"`
	ServiceDayID     uuid.UUID   `json:"service_day_id"`
	RouteDate        time.Time   `json:"route_date"`
	PickupRequestIDs []uuid.UUID `json:"pickup_request_ids"`
	StartLocation    Location    `json:"start_location"`
	PlannedStartAt   *time.Time  `json:"planned_start_at"`
}

// UpdateRouteStatusRequest carries a requested lifecycle transition
type UpdateRouteStatusRequest struct {
	Status        RouteStatus `json:"status"`
	ActualStartAt *time.Time  `json:"actual_start_at"`
	ActualEndAt   *time.Time  `json:"actual_end_at"`
}
