package models

import "time"

// RouteAnalytics is a derived aggregate computed on demand for a tenant and
// date window. AverageDistanceKm covers only routes whose total distance is
// known; DistanceKnown is false when no route qualifies.
type RouteAnalytics struct {
	From              time.Time `json:"from"`
	To                time.Time `json:"to"`
	RouteCount        int       `json:"route_count"`
	CompletedCount    int       `json:"completed_count"`
	CancelledCount    int       `json:"cancelled_count"`
	AverageDistanceKm float64   `json:"average_distance_km"`
	DistanceKnown     bool      `json:"distance_known"`
	CompletionRate    float64   `json:"completion_rate"`
}
