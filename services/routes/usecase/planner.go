package usecase

import (
	"github.com/gracefleet/routeengine/internal/pkg/geo"
	"github.com/gracefleet/routeengine/internal/pkg/models"
)

// plannedStop pairs a pickup request with its computed leg distance. A nil
// leg means the request's address has no coordinates and could not be
// distance-ordered.
type plannedStop struct {
	request *models.PickupRequest
	legKm   *float64
}

// nearestNeighborOrder sequences pickup requests with a greedy
// nearest-neighbor walk from the start location: at each step the closest
// unvisited geocoded request becomes the next stop and the walk advances
// there. Ties break on ascending request ID so the result is deterministic.
// Requests without coordinates cannot be distance-ordered; they are appended
// after all geocoded ones, in input order, with an unknown leg.
//
// Route sizes are small (single-digit to low tens of stops per driver per
// day), so the O(n^2) walk stays well inside request latency budgets.
func nearestNeighborOrder(start geo.Point, requests []*models.PickupRequest) ([]plannedStop, *float64) {
	var geocoded, ungeocoded []*models.PickupRequest
	for _, req := range requests {
		if req.Geocoded() {
			geocoded = append(geocoded, req)
		} else {
			ungeocoded = append(ungeocoded, req)
		}
	}

	stops := make([]plannedStop, 0, len(requests))
	current := start
	total := 0.0

	remaining := make([]*models.PickupRequest, len(geocoded))
	copy(remaining, geocoded)

	for len(remaining) > 0 {
		bestIdx := -1
		bestDist := 0.0

		for i, candidate := range remaining {
			point := geo.Point{
				Latitude:  *candidate.PickupLatitude,
				Longitude: *candidate.PickupLongitude,
			}
			dist := geo.Distance(current, point)

			switch {
			case bestIdx < 0 || dist < bestDist:
				bestIdx = i
				bestDist = dist
			case dist == bestDist && candidate.ID.String() < remaining[bestIdx].ID.String():
				bestIdx = i
			}
		}

		next := remaining[bestIdx]
		leg := bestDist
		stops = append(stops, plannedStop{request: next, legKm: &leg})
		total += leg

		current = geo.Point{
			Latitude:  *next.PickupLatitude,
			Longitude: *next.PickupLongitude,
		}
		remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)
	}

	for _, req := range ungeocoded {
		stops = append(stops, plannedStop{request: req})
	}

	if len(geocoded) == 0 {
		return stops, nil
	}
	return stops, &total
}
