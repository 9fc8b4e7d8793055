package usecase

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gracefleet/routeengine/internal/pkg/geo"
	"github.com/gracefleet/routeengine/internal/pkg/models"
)

// Downtown Toronto. One degree of latitude is ~111 km, so an offset of
// 0.009 degrees is roughly one kilometer.
var plannerStart = geo.Point{Latitude: 43.6500, Longitude: -79.3800}

func pickupAt(lat, lng float64) *models.PickupRequest {
	return &models.PickupRequest{
		ID:              uuid.New(),
		Status:          models.PickupStatusPending,
		PickupLatitude:  &lat,
		PickupLongitude: &lng,
	}
}

func pickupUngeocoded() *models.PickupRequest {
	return &models.PickupRequest{
		ID:     uuid.New(),
		Status: models.PickupStatusPending,
	}
}

func TestNearestNeighborOrdersByProximity(t *testing.T) {
	// Roughly 2 km, 5 km and 1 km north of the start
	twoKm := pickupAt(plannerStart.Latitude+0.018, plannerStart.Longitude)
	fiveKm := pickupAt(plannerStart.Latitude+0.045, plannerStart.Longitude)
	oneKm := pickupAt(plannerStart.Latitude+0.009, plannerStart.Longitude)

	stops, total := nearestNeighborOrder(plannerStart, []*models.PickupRequest{twoKm, fiveKm, oneKm})

	require.Len(t, stops, 3)
	assert.Equal(t, oneKm.ID, stops[0].request.ID)
	assert.Equal(t, twoKm.ID, stops[1].request.ID)
	assert.Equal(t, fiveKm.ID, stops[2].request.ID)

	// All stops are on the same meridian, so the walk never backtracks:
	// the total is the distance from start to the farthest stop
	require.NotNil(t, total)
	assert.InDelta(t, 5.0, *total, 0.2)

	for _, stop := range stops {
		require.NotNil(t, stop.legKm)
	}
	assert.InDelta(t, 1.0, *stops[0].legKm, 0.1)
	assert.InDelta(t, 1.0, *stops[1].legKm, 0.1)
	assert.InDelta(t, 3.0, *stops[2].legKm, 0.15)
}

func TestNearestNeighborGreedyNotOptimal(t *testing.T) {
	// The walk commits to the closest stop first even when a different
	// order would have a shorter grand total
	near := pickupAt(plannerStart.Latitude+0.009, plannerStart.Longitude)
	farWest := pickupAt(plannerStart.Latitude, plannerStart.Longitude-0.060)

	stops, _ := nearestNeighborOrder(plannerStart, []*models.PickupRequest{farWest, near})

	require.Len(t, stops, 2)
	assert.Equal(t, near.ID, stops[0].request.ID)
	assert.Equal(t, farWest.ID, stops[1].request.ID)
}

func TestNearestNeighborTieBreaksOnID(t *testing.T) {
	// Two requests at the exact same coordinates: the lower UUID wins,
	// regardless of input order
	a := pickupAt(plannerStart.Latitude+0.009, plannerStart.Longitude)
	b := pickupAt(plannerStart.Latitude+0.009, plannerStart.Longitude)

	lower, higher := a, b
	if b.ID.String() < a.ID.String() {
		lower, higher = b, a
	}

	stops1, _ := nearestNeighborOrder(plannerStart, []*models.PickupRequest{a, b})
	stops2, _ := nearestNeighborOrder(plannerStart, []*models.PickupRequest{b, a})

	require.Len(t, stops1, 2)
	require.Len(t, stops2, 2)
	assert.Equal(t, lower.ID, stops1[0].request.ID)
	assert.Equal(t, higher.ID, stops1[1].request.ID)
	assert.Equal(t, lower.ID, stops2[0].request.ID)
	assert.Equal(t, higher.ID, stops2[1].request.ID)
}

func TestNearestNeighborUngeocodedAppendedLast(t *testing.T) {
	geocoded := pickupAt(plannerStart.Latitude+0.009, plannerStart.Longitude)
	blindA := pickupUngeocoded()
	blindB := pickupUngeocoded()

	stops, total := nearestNeighborOrder(plannerStart,
		[]*models.PickupRequest{blindA, geocoded, blindB})

	require.Len(t, stops, 3)
	assert.Equal(t, geocoded.ID, stops[0].request.ID)

	// Ungeocoded requests keep their input order and have no leg distance
	assert.Equal(t, blindA.ID, stops[1].request.ID)
	assert.Equal(t, blindB.ID, stops[2].request.ID)
	assert.Nil(t, stops[1].legKm)
	assert.Nil(t, stops[2].legKm)

	// The total only covers the geocoded walk
	require.NotNil(t, total)
	assert.InDelta(t, 1.0, *total, 0.1)
}

func TestNearestNeighborAllUngeocoded(t *testing.T) {
	blindA := pickupUngeocoded()
	blindB := pickupUngeocoded()

	stops, total := nearestNeighborOrder(plannerStart, []*models.PickupRequest{blindA, blindB})

	require.Len(t, stops, 2)
	assert.Equal(t, blindA.ID, stops[0].request.ID)
	assert.Equal(t, blindB.ID, stops[1].request.ID)

	// With nothing to measure, the total is unknown rather than zero
	assert.Nil(t, total)
}

func TestNearestNeighborEmptyInput(t *testing.T) {
	stops, total := nearestNeighborOrder(plannerStart, nil)
	assert.Empty(t, stops)
	assert.Nil(t, total)
}

func TestNearestNeighborSingleStop(t *testing.T) {
	only := pickupAt(plannerStart.Latitude+0.018, plannerStart.Longitude)

	stops, total := nearestNeighborOrder(plannerStart, []*models.PickupRequest{only})

	require.Len(t, stops, 1)
	require.NotNil(t, stops[0].legKm)
	require.NotNil(t, total)
	assert.Equal(t, *stops[0].legKm, *total)
	assert.InDelta(t, 2.0, *total, 0.1)
}
