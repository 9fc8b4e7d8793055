package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gracefleet/routeengine/internal/pkg/apperrors"
	"github.com/gracefleet/routeengine/internal/pkg/geo"
	"github.com/gracefleet/routeengine/internal/pkg/models"
	"github.com/gracefleet/routeengine/internal/pkg/tenant"
	"github.com/gracefleet/routeengine/services/routes"
	"github.com/gracefleet/routeengine/services/routes/mocks"
)

type ucFixture struct {
	ctrl     *gomock.Controller
	repo     *mocks.MockRouteRepo
	gw       *mocks.MockRouteGW
	geocoder *mocks.MockGeocodeGW
	uc       routes.RouteUC
	orgID    uuid.UUID
	ctx      context.Context
}

func newUCFixture(t *testing.T) *ucFixture {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRouteRepo(ctrl)
	gw := mocks.NewMockRouteGW(ctrl)
	geocoder := mocks.NewMockGeocodeGW(ctrl)

	cfg := &models.Config{
		Planner: models.PlannerConfig{MaxStopsPerRoute: 50},
	}

	uc, err := NewRouteUC(cfg, repo, gw, geocoder)
	require.NoError(t, err)

	orgID := uuid.New()
	return &ucFixture{
		ctrl:     ctrl,
		repo:     repo,
		gw:       gw,
		geocoder: geocoder,
		uc:       uc,
		orgID:    orgID,
		ctx:      tenant.WithScope(context.Background(), orgID),
	}
}

func (f *ucFixture) pendingPickup(lat, lng float64) *models.PickupRequest {
	return &models.PickupRequest{
		ID:              uuid.New(),
		OrgID:           f.orgID,
		Status:          models.PickupStatusPending,
		PickupLatitude:  &lat,
		PickupLongitude: &lng,
	}
}

func validPlanRequest(ids ...uuid.UUID) models.PlanRouteRequest {
	return models.PlanRouteRequest{
		DriverID:         uuid.New(),
		ServiceDayID:     uuid.New(),
		RouteDate:        time.Date(2025, 11, 2, 0, 0, 0, 0, time.UTC),
		PickupRequestIDs: ids,
		StartLocation:    models.Location{Latitude: 43.6500, Longitude: -79.3800},
	}
}

func TestPlanRouteOrdersStopsAndPersists(t *testing.T) {
	f := newUCFixture(t)
	defer f.ctrl.Finish()

	near := f.pendingPickup(43.6590, -79.3800)  // ~1 km
	far := f.pendingPickup(43.6950, -79.3800)   // ~5 km
	middle := f.pendingPickup(43.6680, -79.3800) // ~2 km

	req := validPlanRequest(far.ID, near.ID, middle.ID)

	f.repo.EXPECT().
		GetPickupRequests(gomock.Any(), []uuid.UUID{far.ID, near.ID, middle.ID}).
		Return([]*models.PickupRequest{far, near, middle}, nil)

	var saved *models.Route
	f.repo.EXPECT().
		CreateRouteWithStops(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, route *models.Route, stops []*models.Stop) error {
			saved = route
			return nil
		})

	f.gw.EXPECT().PublishRoutePlanned(gomock.Any(), gomock.Any()).Return(nil)

	route, err := f.uc.PlanRoute(f.ctx, req)
	require.NoError(t, err)
	require.NotNil(t, route)
	require.Same(t, saved, route)

	assert.Equal(t, f.orgID, route.OrgID)
	assert.Equal(t, req.DriverID, route.DriverID)
	assert.Equal(t, models.RouteStatusPlanned, route.Status)
	require.NotNil(t, route.TotalDistanceKm)

	require.Len(t, route.Stops, 3)
	assert.Equal(t, near.ID, route.Stops[0].PickupRequestID)
	assert.Equal(t, middle.ID, route.Stops[1].PickupRequestID)
	assert.Equal(t, far.ID, route.Stops[2].PickupRequestID)
	for i, stop := range route.Stops {
		assert.Equal(t, i, stop.Position)
		assert.Equal(t, route.ID, stop.RouteID)
	}
}

func TestPlanRouteWithoutScope(t *testing.T) {
	f := newUCFixture(t)
	defer f.ctrl.Finish()

	_, err := f.uc.PlanRoute(context.Background(), validPlanRequest(uuid.New()))
	require.Error(t, err)
	assert.True(t, apperrors.IsScope(err))
}

func TestPlanRouteEmptyRequestList(t *testing.T) {
	f := newUCFixture(t)
	defer f.ctrl.Finish()

	_, err := f.uc.PlanRoute(f.ctx, validPlanRequest())
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestPlanRouteInvalidStartLocation(t *testing.T) {
	f := newUCFixture(t)
	defer f.ctrl.Finish()

	req := validPlanRequest(uuid.New())
	req.StartLocation = models.Location{Latitude: 120.0, Longitude: 0}

	_, err := f.uc.PlanRoute(f.ctx, req)
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestPlanRouteTooManyStops(t *testing.T) {
	f := newUCFixture(t)
	defer f.ctrl.Finish()

	ids := make([]uuid.UUID, 51)
	for i := range ids {
		ids[i] = uuid.New()
	}

	_, err := f.uc.PlanRoute(f.ctx, validPlanRequest(ids...))
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestPlanRouteDeduplicatesRequestIDs(t *testing.T) {
	f := newUCFixture(t)
	defer f.ctrl.Finish()

	pickup := f.pendingPickup(43.6590, -79.3800)

	f.repo.EXPECT().
		GetPickupRequests(gomock.Any(), []uuid.UUID{pickup.ID}).
		Return([]*models.PickupRequest{pickup}, nil)
	f.repo.EXPECT().
		CreateRouteWithStops(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)
	f.gw.EXPECT().PublishRoutePlanned(gomock.Any(), gomock.Any()).Return(nil)

	route, err := f.uc.PlanRoute(f.ctx, validPlanRequest(pickup.ID, pickup.ID, pickup.ID))
	require.NoError(t, err)
	assert.Len(t, route.Stops, 1)
}

func TestPlanRouteUnknownPickupRequest(t *testing.T) {
	f := newUCFixture(t)
	defer f.ctrl.Finish()

	known := f.pendingPickup(43.6590, -79.3800)
	unknown := uuid.New()

	f.repo.EXPECT().
		GetPickupRequests(gomock.Any(), gomock.Any()).
		Return([]*models.PickupRequest{known}, nil)

	_, err := f.uc.PlanRoute(f.ctx, validPlanRequest(known.ID, unknown))
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
	assert.Contains(t, err.Error(), unknown.String())
}

func TestPlanRouteConflictingPickupRequest(t *testing.T) {
	f := newUCFixture(t)
	defer f.ctrl.Finish()

	pending := f.pendingPickup(43.6590, -79.3800)
	taken := f.pendingPickup(43.6680, -79.3800)
	taken.Status = models.PickupStatusAccepted

	f.repo.EXPECT().
		GetPickupRequests(gomock.Any(), gomock.Any()).
		Return([]*models.PickupRequest{pending, taken}, nil)

	_, err := f.uc.PlanRoute(f.ctx, validPlanRequest(pending.ID, taken.ID))
	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))

	var conflict *apperrors.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, []uuid.UUID{taken.ID}, conflict.PickupRequestIDs)
}

func TestPlanRouteTerminalPickupRequestIsNotAConflict(t *testing.T) {
	f := newUCFixture(t)
	defer f.ctrl.Finish()

	done := f.pendingPickup(43.6590, -79.3800)
	done.Status = models.PickupStatusCancelled

	f.repo.EXPECT().
		GetPickupRequests(gomock.Any(), gomock.Any()).
		Return([]*models.PickupRequest{done}, nil)

	_, err := f.uc.PlanRoute(f.ctx, validPlanRequest(done.ID))
	require.Error(t, err)
	assert.False(t, apperrors.IsConflict(err))
	assert.True(t, apperrors.IsValidation(err))
	assert.Contains(t, err.Error(), "CANCELLED")
}

func TestPlanRouteUngeocodedTailFollowsRequestOrder(t *testing.T) {
	f := newUCFixture(t)
	defer f.ctrl.Finish()

	first := &models.PickupRequest{
		ID:     uuid.New(),
		OrgID:  f.orgID,
		Status: models.PickupStatusPending,
	}
	second := &models.PickupRequest{
		ID:     uuid.New(),
		OrgID:  f.orgID,
		Status: models.PickupStatusPending,
	}

	// The repository hands rows back in whatever order the database
	// produced; the planner must still see the caller's order
	f.repo.EXPECT().
		GetPickupRequests(gomock.Any(), []uuid.UUID{first.ID, second.ID}).
		Return([]*models.PickupRequest{second, first}, nil)
	f.repo.EXPECT().
		CreateRouteWithStops(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)
	f.gw.EXPECT().PublishRoutePlanned(gomock.Any(), gomock.Any()).Return(nil)

	route, err := f.uc.PlanRoute(f.ctx, validPlanRequest(first.ID, second.ID))
	require.NoError(t, err)

	require.Len(t, route.Stops, 2)
	assert.Equal(t, first.ID, route.Stops[0].PickupRequestID)
	assert.Equal(t, second.ID, route.Stops[1].PickupRequestID)
}

func TestPlanRouteGeocodesBlindAddresses(t *testing.T) {
	f := newUCFixture(t)
	defer f.ctrl.Finish()

	geocoded := f.pendingPickup(43.6590, -79.3800)
	blind := &models.PickupRequest{
		ID:            uuid.New(),
		OrgID:         f.orgID,
		Status:        models.PickupStatusPending,
		PickupAddress: "100 Queen St W, Toronto",
	}

	f.repo.EXPECT().
		GetPickupRequests(gomock.Any(), gomock.Any()).
		Return([]*models.PickupRequest{geocoded, blind}, nil)
	f.geocoder.EXPECT().
		Locate(gomock.Any(), "100 Queen St W, Toronto").
		Return(&geo.Point{Latitude: 43.6690, Longitude: -79.3800}, nil)
	f.repo.EXPECT().
		CreateRouteWithStops(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)
	f.gw.EXPECT().PublishRoutePlanned(gomock.Any(), gomock.Any()).Return(nil)

	route, err := f.uc.PlanRoute(f.ctx, validPlanRequest(geocoded.ID, blind.ID))
	require.NoError(t, err)

	// The geocoder resolved the blind request, so both stops have legs
	// and the closer one leads
	require.Len(t, route.Stops, 2)
	assert.Equal(t, geocoded.ID, route.Stops[0].PickupRequestID)
	assert.Equal(t, blind.ID, route.Stops[1].PickupRequestID)
	require.NotNil(t, route.Stops[1].LegDistanceKm)
	require.NotNil(t, route.TotalDistanceKm)
}

func TestPlanRouteGeocoderFailureLeavesRequestBlind(t *testing.T) {
	f := newUCFixture(t)
	defer f.ctrl.Finish()

	blind := &models.PickupRequest{
		ID:            uuid.New(),
		OrgID:         f.orgID,
		Status:        models.PickupStatusPending,
		PickupAddress: "nowhere in particular",
	}

	f.repo.EXPECT().
		GetPickupRequests(gomock.Any(), gomock.Any()).
		Return([]*models.PickupRequest{blind}, nil)
	f.geocoder.EXPECT().
		Locate(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("geocoder unavailable"))
	f.repo.EXPECT().
		CreateRouteWithStops(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)
	f.gw.EXPECT().PublishRoutePlanned(gomock.Any(), gomock.Any()).Return(nil)

	route, err := f.uc.PlanRoute(f.ctx, validPlanRequest(blind.ID))
	require.NoError(t, err)

	require.Len(t, route.Stops, 1)
	assert.Nil(t, route.Stops[0].LegDistanceKm)
	assert.Nil(t, route.TotalDistanceKm)
}

func TestPlanRoutePublishFailureDoesNotFailPlan(t *testing.T) {
	f := newUCFixture(t)
	defer f.ctrl.Finish()

	pickup := f.pendingPickup(43.6590, -79.3800)

	f.repo.EXPECT().
		GetPickupRequests(gomock.Any(), gomock.Any()).
		Return([]*models.PickupRequest{pickup}, nil)
	f.repo.EXPECT().
		CreateRouteWithStops(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)
	f.gw.EXPECT().
		PublishRoutePlanned(gomock.Any(), gomock.Any()).
		Return(errors.New("nats down"))

	route, err := f.uc.PlanRoute(f.ctx, validPlanRequest(pickup.ID))
	require.NoError(t, err)
	assert.NotNil(t, route)
}

func TestPlanRouteRepositoryConflictPropagates(t *testing.T) {
	f := newUCFixture(t)
	defer f.ctrl.Finish()

	pickup := f.pendingPickup(43.6590, -79.3800)

	f.repo.EXPECT().
		GetPickupRequests(gomock.Any(), gomock.Any()).
		Return([]*models.PickupRequest{pickup}, nil)
	f.repo.EXPECT().
		CreateRouteWithStops(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(apperrors.NewConflictError([]uuid.UUID{pickup.ID}))

	_, err := f.uc.PlanRoute(f.ctx, validPlanRequest(pickup.ID))
	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))
}

func TestUpdateRouteStatusStart(t *testing.T) {
	f := newUCFixture(t)
	defer f.ctrl.Finish()

	routeID := uuid.New()
	current := &models.Route{ID: routeID, OrgID: f.orgID, Status: models.RouteStatusPlanned}
	updated := &models.Route{ID: routeID, OrgID: f.orgID, Status: models.RouteStatusInProgress}

	f.repo.EXPECT().GetRoute(gomock.Any(), routeID).Return(current, nil)
	f.repo.EXPECT().
		UpdateRouteStatus(gomock.Any(), routeID, models.RouteStatusPlanned, models.RouteStatusInProgress, gomock.Not(gomock.Nil()), gomock.Nil()).
		Return(updated, nil)
	f.gw.EXPECT().
		PublishRouteStatusChanged(gomock.Any(), updated, models.RouteStatusPlanned).
		Return(nil)

	result, err := f.uc.UpdateRouteStatus(f.ctx, routeID,
		models.UpdateRouteStatusRequest{Status: models.RouteStatusInProgress})
	require.NoError(t, err)
	assert.Equal(t, models.RouteStatusInProgress, result.Status)
}

func TestUpdateRouteStatusCompleteKeepsProvidedTimestamp(t *testing.T) {
	f := newUCFixture(t)
	defer f.ctrl.Finish()

	routeID := uuid.New()
	endAt := time.Date(2025, 11, 2, 13, 30, 0, 0, time.UTC)
	current := &models.Route{ID: routeID, OrgID: f.orgID, Status: models.RouteStatusInProgress}
	updated := &models.Route{ID: routeID, OrgID: f.orgID, Status: models.RouteStatusCompleted}

	f.repo.EXPECT().GetRoute(gomock.Any(), routeID).Return(current, nil)
	f.repo.EXPECT().
		UpdateRouteStatus(gomock.Any(), routeID, models.RouteStatusInProgress, models.RouteStatusCompleted, gomock.Nil(), &endAt).
		Return(updated, nil)
	f.gw.EXPECT().PublishRouteStatusChanged(gomock.Any(), updated, models.RouteStatusInProgress).Return(nil)

	_, err := f.uc.UpdateRouteStatus(f.ctx, routeID,
		models.UpdateRouteStatusRequest{Status: models.RouteStatusCompleted, ActualEndAt: &endAt})
	require.NoError(t, err)
}

func TestUpdateRouteStatusIllegalTransition(t *testing.T) {
	f := newUCFixture(t)
	defer f.ctrl.Finish()

	routeID := uuid.New()
	current := &models.Route{ID: routeID, OrgID: f.orgID, Status: models.RouteStatusCompleted}

	f.repo.EXPECT().GetRoute(gomock.Any(), routeID).Return(current, nil)

	_, err := f.uc.UpdateRouteStatus(f.ctx, routeID,
		models.UpdateRouteStatusRequest{Status: models.RouteStatusCancelled})
	require.Error(t, err)
	assert.True(t, apperrors.IsInvalidTransition(err))

	var transition *apperrors.InvalidTransitionError
	require.ErrorAs(t, err, &transition)
	assert.Equal(t, models.RouteStatusCompleted, transition.From)
	assert.Equal(t, models.RouteStatusCancelled, transition.To)
}

func TestUpdateRouteStatusUnknownStatus(t *testing.T) {
	f := newUCFixture(t)
	defer f.ctrl.Finish()

	_, err := f.uc.UpdateRouteStatus(f.ctx, uuid.New(),
		models.UpdateRouteStatusRequest{Status: "PAUSED"})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestUpdateRouteStatusRouteNotFound(t *testing.T) {
	f := newUCFixture(t)
	defer f.ctrl.Finish()

	routeID := uuid.New()
	f.repo.EXPECT().
		GetRoute(gomock.Any(), routeID).
		Return(nil, apperrors.NewNotFoundError("route", routeID.String()))

	_, err := f.uc.UpdateRouteStatus(f.ctx, routeID,
		models.UpdateRouteStatusRequest{Status: models.RouteStatusInProgress})
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestListRoutesRequiresDriver(t *testing.T) {
	f := newUCFixture(t)
	defer f.ctrl.Finish()

	_, err := f.uc.ListRoutes(f.ctx, uuid.Nil, nil, nil)
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestHandleAddressGeocoded(t *testing.T) {
	f := newUCFixture(t)
	defer f.ctrl.Finish()

	evt := models.AddressGeocodedEvent{
		AddressID: uuid.New(),
		OrgID:     uuid.New(),
		Latitude:  43.6532,
		Longitude: -79.3832,
	}

	f.repo.EXPECT().
		UpdateAddressCoordinates(gomock.Any(), evt.AddressID, evt.Latitude, evt.Longitude).
		DoAndReturn(func(ctx context.Context, _ uuid.UUID, _, _ float64) error {
			// The event's own tenant drives the scope
			scoped, err := tenant.FromContext(ctx)
			require.NoError(t, err)
			assert.Equal(t, evt.OrgID, scoped)
			return nil
		})

	require.NoError(t, f.uc.HandleAddressGeocoded(context.Background(), evt))
}

func TestHandleAddressGeocodedRejectsBadCoordinates(t *testing.T) {
	f := newUCFixture(t)
	defer f.ctrl.Finish()

	err := f.uc.HandleAddressGeocoded(context.Background(), models.AddressGeocodedEvent{
		AddressID: uuid.New(),
		OrgID:     uuid.New(),
		Latitude:  91.0,
		Longitude: 0,
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}
