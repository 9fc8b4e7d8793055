package usecase

import (
	"context"
	"time"

	"github.com/gracefleet/routeengine/internal/pkg/apperrors"
	"github.com/gracefleet/routeengine/internal/pkg/models"
)

// GetAnalytics computes summary statistics over the tenant's routes within
// the date window. Read-only; recomputed per query from database
// aggregates, never cached.
func (uc *routeUC) GetAnalytics(ctx context.Context, from, to time.Time) (*models.RouteAnalytics, error) {
	if to.Before(from) {
		return nil, apperrors.NewValidationError("date window end %s precedes start %s",
			to.Format("2006-01-02"), from.Format("2006-01-02"))
	}

	analytics, err := uc.repo.GetRouteAnalytics(ctx, from, to)
	if err != nil {
		return nil, err
	}

	// Guard the rate against an empty window instead of dividing by zero
	if analytics.RouteCount > 0 {
		analytics.CompletionRate = float64(analytics.CompletedCount) / float64(analytics.RouteCount)
	} else {
		analytics.CompletionRate = 0
	}

	analytics.From = from
	analytics.To = to

	return analytics, nil
}
