package usecase

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gracefleet/routeengine/internal/pkg/apperrors"
	"github.com/gracefleet/routeengine/internal/pkg/models"
)

func analyticsWindow() (time.Time, time.Time) {
	from := time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 11, 30, 0, 0, 0, 0, time.UTC)
	return from, to
}

func TestGetAnalyticsComputesCompletionRate(t *testing.T) {
	f := newUCFixture(t)
	defer f.ctrl.Finish()

	from, to := analyticsWindow()
	f.repo.EXPECT().
		GetRouteAnalytics(gomock.Any(), from, to).
		Return(&models.RouteAnalytics{
			RouteCount:        10,
			CompletedCount:    7,
			CancelledCount:    2,
			AverageDistanceKm: 12.4,
			DistanceKnown:     true,
		}, nil)

	analytics, err := f.uc.GetAnalytics(f.ctx, from, to)
	require.NoError(t, err)

	assert.Equal(t, 10, analytics.RouteCount)
	assert.InDelta(t, 0.7, analytics.CompletionRate, 0.0001)
	assert.Equal(t, from, analytics.From)
	assert.Equal(t, to, analytics.To)
	assert.True(t, analytics.DistanceKnown)
}

func TestGetAnalyticsEmptyWindow(t *testing.T) {
	f := newUCFixture(t)
	defer f.ctrl.Finish()

	from, to := analyticsWindow()
	f.repo.EXPECT().
		GetRouteAnalytics(gomock.Any(), from, to).
		Return(&models.RouteAnalytics{}, nil)

	analytics, err := f.uc.GetAnalytics(f.ctx, from, to)
	require.NoError(t, err)

	// No routes: rate is zero, not NaN, and the average is flagged unknown
	assert.Zero(t, analytics.RouteCount)
	assert.Zero(t, analytics.CompletionRate)
	assert.False(t, analytics.DistanceKnown)
}

func TestGetAnalyticsInvertedWindow(t *testing.T) {
	f := newUCFixture(t)
	defer f.ctrl.Finish()

	from, to := analyticsWindow()

	_, err := f.uc.GetAnalytics(f.ctx, to, from)
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestGetAnalyticsSingleDayWindow(t *testing.T) {
	f := newUCFixture(t)
	defer f.ctrl.Finish()

	day := time.Date(2025, 11, 2, 0, 0, 0, 0, time.UTC)
	f.repo.EXPECT().
		GetRouteAnalytics(gomock.Any(), day, day).
		Return(&models.RouteAnalytics{RouteCount: 3, CompletedCount: 3}, nil)

	analytics, err := f.uc.GetAnalytics(f.ctx, day, day)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, analytics.CompletionRate, 0.0001)
}
