package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/gracefleet/routeengine/internal/pkg/apperrors"
	"github.com/gracefleet/routeengine/internal/pkg/models"
	"github.com/gracefleet/routeengine/internal/pkg/tenant"
	"github.com/gracefleet/routeengine/services/routes"
)

// RouteRepo implements routes.RouteRepo against PostgreSQL. Every query is
// filtered by the org in the tenant scope; rows belonging to another tenant
// are invisible, and a missing scope fails before any SQL runs.
type RouteRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewRouteRepository creates a new route repository
func NewRouteRepository(cfg *models.Config, db *sqlx.DB) *RouteRepo {
	return &RouteRepo{
		cfg: cfg,
		db:  db,
	}
}

var _ routes.RouteRepo = (*RouteRepo)(nil)

const routeColumns = `
	id, org_id, driver_id, service_day_id, route_date, status,
	total_distance_km, planned_start_at, actual_start_at, actual_end_at,
	created_at, updated_at
`

// GetRoute retrieves a route and its stops by ID
func (r *RouteRepo) GetRoute(ctx context.Context, routeID uuid.UUID) (*models.Route, error) {
	orgID, err := tenant.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + routeColumns + ` FROM routes WHERE id = $1 AND org_id = $2`

	route := &models.Route{}
	if err := r.db.GetContext(ctx, route, query, routeID, orgID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("route", routeID.String())
		}
		return nil, fmt.Errorf("get route: %w", err)
	}

	if err := r.loadStops(ctx, route); err != nil {
		return nil, err
	}

	return route, nil
}

// ListRoutes lists a driver's routes within an optional date window, most
// recent first
func (r *RouteRepo) ListRoutes(ctx context.Context, driverID uuid.UUID, from, to *time.Time) ([]*models.Route, error) {
	orgID, err := tenant.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + routeColumns + ` FROM routes WHERE org_id = $1 AND driver_id = $2`
	args := []interface{}{orgID, driverID}

	if from != nil {
		args = append(args, *from)
		query += fmt.Sprintf(" AND route_date >= $%d", len(args))
	}
	if to != nil {
		args = append(args, *to)
		query += fmt.Sprintf(" AND route_date <= $%d", len(args))
	}
	query += " ORDER BY route_date DESC, created_at DESC"

	result := []*models.Route{}
	if err := r.db.SelectContext(ctx, &result, query, args...); err != nil {
		return nil, fmt.Errorf("list routes: %w", err)
	}

	for _, route := range result {
		if err := r.loadStops(ctx, route); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// GetPickupRequests retrieves tenant-scoped pickup requests by ID, with
// their address coordinates joined in for the planner
func (r *RouteRepo) GetPickupRequests(ctx context.Context, requestIDs []uuid.UUID) ([]*models.PickupRequest, error) {
	orgID, err := tenant.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	if len(requestIDs) == 0 {
		return []*models.PickupRequest{}, nil
	}

	query, args, err := sqlx.In(`
		SELECT
			pr.id, pr.org_id, pr.user_id, pr.address_id, pr.service_day_id,
			pr.status, pr.driver_id, pr.distance_km, pr.created_at, pr.updated_at,
			a.latitude AS pickup_latitude,
			a.longitude AS pickup_longitude,
			concat_ws(', ', a.street, a.city, a.region, a.postal_code) AS pickup_address
		FROM pickup_requests pr
		JOIN addresses a ON a.id = pr.address_id
		WHERE pr.org_id = ? AND pr.id IN (?)`,
		orgID, requestIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("get pickup requests: %w", err)
	}

	result := []*models.PickupRequest{}
	if err := r.db.SelectContext(ctx, &result, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("get pickup requests: %w", err)
	}

	return result, nil
}

// CreateRouteWithStops persists a route, its stops and the pickup request
// assignments in one transaction. The requests are locked first so that two
// concurrent plans over the same request resolve to exactly one success and
// one ConflictError.
func (r *RouteRepo) CreateRouteWithStops(ctx context.Context, route *models.Route, stops []*models.Stop) error {
	orgID, err := tenant.FromContext(ctx)
	if err != nil {
		return err
	}
	if route.OrgID != orgID {
		return apperrors.NewScopeError("route organization %s is outside scope %s", route.OrgID, orgID)
	}
	if len(stops) == 0 {
		return apperrors.NewValidationError("a route must have at least one stop")
	}

	requestIDs := make([]uuid.UUID, 0, len(stops))
	for _, stop := range stops {
		requestIDs = append(requestIDs, stop.PickupRequestID)
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("create route: begin: %w", err)
	}
	defer tx.Rollback()

	// Lock the requests for the duration of the transaction
	lockQuery, lockArgs, err := sqlx.In(`
		SELECT id, status FROM pickup_requests
		WHERE org_id = ? AND id IN (?)
		FOR UPDATE`,
		orgID, requestIDs,
	)
	if err != nil {
		return fmt.Errorf("create route: lock: %w", err)
	}

	var locked []struct {
		ID     uuid.UUID                  `db:"id"`
		Status models.PickupRequestStatus `db:"status"`
	}
	if err := tx.SelectContext(ctx, &locked, tx.Rebind(lockQuery), lockArgs...); err != nil {
		return fmt.Errorf("create route: lock: %w", err)
	}

	if len(locked) != len(requestIDs) {
		found := make(map[uuid.UUID]bool, len(locked))
		for _, row := range locked {
			found[row.ID] = true
		}
		for _, id := range requestIDs {
			if !found[id] {
				return apperrors.NewNotFoundError("pickup request", id.String())
			}
		}
	}

	var conflicting []uuid.UUID
	for _, row := range locked {
		if row.Status != models.PickupStatusPending {
			conflicting = append(conflicting, row.ID)
		}
	}

	// A request may also be pinned by a stop of a non-cancelled route even
	// if its status was reset out of band; check both
	attachedQuery, attachedArgs, err := sqlx.In(`
		SELECT DISTINCT s.pickup_request_id
		FROM stops s
		JOIN routes rt ON rt.id = s.route_id
		WHERE rt.org_id = ? AND rt.status <> ? AND s.pickup_request_id IN (?)`,
		orgID, models.RouteStatusCancelled, requestIDs,
	)
	if err != nil {
		return fmt.Errorf("create route: conflict check: %w", err)
	}

	var attached []uuid.UUID
	if err := tx.SelectContext(ctx, &attached, tx.Rebind(attachedQuery), attachedArgs...); err != nil {
		return fmt.Errorf("create route: conflict check: %w", err)
	}

	seen := make(map[uuid.UUID]bool, len(conflicting))
	for _, id := range conflicting {
		seen[id] = true
	}
	for _, id := range attached {
		if !seen[id] {
			seen[id] = true
			conflicting = append(conflicting, id)
		}
	}
	if len(conflicting) > 0 {
		return apperrors.NewConflictError(conflicting)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO routes (
			id, org_id, driver_id, service_day_id, route_date, status,
			total_distance_km, planned_start_at, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		route.ID,
		route.OrgID,
		route.DriverID,
		route.ServiceDayID,
		route.RouteDate,
		route.Status,
		route.TotalDistanceKm,
		route.PlannedStartAt,
		route.CreatedAt,
		route.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create route: insert route: %w", err)
	}

	for _, stop := range stops {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO stops (
				id, route_id, pickup_request_id, position, leg_distance_km, created_at
			) VALUES ($1, $2, $3, $4, $5, $6)`,
			stop.ID,
			stop.RouteID,
			stop.PickupRequestID,
			stop.Position,
			stop.LegDistanceKm,
			stop.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("create route: insert stop %d: %w", stop.Position, err)
		}
	}

	assignQuery, assignArgs, err := sqlx.In(`
		UPDATE pickup_requests
		SET status = ?, driver_id = ?, updated_at = ?
		WHERE org_id = ? AND id IN (?)`,
		models.PickupStatusAccepted, route.DriverID, models.Now(), orgID, requestIDs,
	)
	if err != nil {
		return fmt.Errorf("create route: assign requests: %w", err)
	}
	if _, err := tx.ExecContext(ctx, tx.Rebind(assignQuery), assignArgs...); err != nil {
		return fmt.Errorf("create route: assign requests: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("create route: commit: %w", err)
	}

	return nil
}

// UpdateRouteStatus applies a lifecycle transition with an optimistic guard
// on the expected current status. Cancellation reverts the route's pickup
// requests to PENDING in the same transaction.
func (r *RouteRepo) UpdateRouteStatus(ctx context.Context, routeID uuid.UUID, from, to models.RouteStatus, actualStartAt, actualEndAt *time.Time) (*models.Route, error) {
	orgID, err := tenant.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("update route status: begin: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		UPDATE routes
		SET status = $1,
		    actual_start_at = COALESCE($2, actual_start_at),
		    actual_end_at = COALESCE($3, actual_end_at),
		    updated_at = $4
		WHERE id = $5 AND org_id = $6 AND status = $7`,
		to, actualStartAt, actualEndAt, models.Now(), routeID, orgID, from,
	)
	if err != nil {
		return nil, fmt.Errorf("update route status: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("update route status: %w", err)
	}

	if affected == 0 {
		// Either the route is gone or a concurrent transition got there
		// first; report which
		var current models.RouteStatus
		err := tx.GetContext(ctx, &current,
			`SELECT status FROM routes WHERE id = $1 AND org_id = $2`, routeID, orgID)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("route", routeID.String())
		}
		if err != nil {
			return nil, fmt.Errorf("update route status: %w", err)
		}
		return nil, apperrors.NewInvalidTransitionError(current, to)
	}

	if to == models.RouteStatusCancelled {
		_, err = tx.ExecContext(ctx, `
			UPDATE pickup_requests
			SET status = $1, driver_id = NULL, updated_at = $2
			WHERE org_id = $3 AND id IN (
				SELECT pickup_request_id FROM stops WHERE route_id = $4
			)`,
			models.PickupStatusPending, models.Now(), orgID, routeID,
		)
		if err != nil {
			return nil, fmt.Errorf("update route status: revert requests: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("update route status: commit: %w", err)
	}

	return r.GetRoute(ctx, routeID)
}

// GetRouteAnalytics computes aggregate statistics over the tenant's routes
// in the window. The average only covers routes with a known distance.
func (r *RouteRepo) GetRouteAnalytics(ctx context.Context, from, to time.Time) (*models.RouteAnalytics, error) {
	orgID, err := tenant.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT
			COUNT(*) AS route_count,
			COUNT(*) FILTER (WHERE status = $1) AS completed_count,
			COUNT(*) FILTER (WHERE status = $2) AS cancelled_count,
			AVG(total_distance_km) AS avg_distance_km
		FROM routes
		WHERE org_id = $3 AND route_date >= $4 AND route_date <= $5`

	var row struct {
		RouteCount     int             `db:"route_count"`
		CompletedCount int             `db:"completed_count"`
		CancelledCount int             `db:"cancelled_count"`
		AvgDistanceKm  sql.NullFloat64 `db:"avg_distance_km"`
	}
	if err := r.db.GetContext(ctx, &row, query,
		models.RouteStatusCompleted, models.RouteStatusCancelled, orgID, from, to); err != nil {
		return nil, fmt.Errorf("route analytics: %w", err)
	}

	analytics := &models.RouteAnalytics{
		RouteCount:     row.RouteCount,
		CompletedCount: row.CompletedCount,
		CancelledCount: row.CancelledCount,
	}
	if row.AvgDistanceKm.Valid {
		analytics.AverageDistanceKm = row.AvgDistanceKm.Float64
		analytics.DistanceKnown = true
	}

	return analytics, nil
}

// UpdateAddressCoordinates stores geocoded coordinates on a tenant's address
func (r *RouteRepo) UpdateAddressCoordinates(ctx context.Context, addressID uuid.UUID, lat, lng float64) error {
	orgID, err := tenant.FromContext(ctx)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE addresses
		SET latitude = $1, longitude = $2, updated_at = $3
		WHERE id = $4 AND org_id = $5`,
		lat, lng, models.Now(), addressID, orgID,
	)
	if err != nil {
		return fmt.Errorf("update address coordinates: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update address coordinates: %w", err)
	}
	if affected == 0 {
		return apperrors.NewNotFoundError("address", addressID.String())
	}

	return nil
}

func (r *RouteRepo) loadStops(ctx context.Context, route *models.Route) error {
	stops := []*models.Stop{}
	err := r.db.SelectContext(ctx, &stops, `
		SELECT id, route_id, pickup_request_id, position, leg_distance_km, created_at
		FROM stops
		WHERE route_id = $1
		ORDER BY position ASC`,
		route.ID,
	)
	if err != nil {
		return fmt.Errorf("load stops: %w", err)
	}

	route.Stops = stops
	return nil
}
