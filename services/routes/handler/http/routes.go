package http

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/gracefleet/routeengine/internal/pkg/logger"
	"github.com/gracefleet/routeengine/internal/pkg/models"
	nrpkg "github.com/gracefleet/routeengine/internal/pkg/newrelic"
	"github.com/gracefleet/routeengine/internal/utils"
	"github.com/gracefleet/routeengine/services/routes"
)

// RoutesHandler handles HTTP requests for route operations
type RoutesHandler struct {
	routeUC routes.RouteUC
}

// NewRoutesHandler creates a new routes HTTP handler
func NewRoutesHandler(routeUC routes.RouteUC) *RoutesHandler {
	return &RoutesHandler{
		routeUC: routeUC,
	}
}

// planRouteRequest is the wire form of a plan request; route_date travels
// as a plain calendar date
type planRouteRequest struct {
	DriverID         string          `json:"driver_id"`
	ServiceDayID     string          `json:"service_day_id"`
	RouteDate        string          `json:"route_date"`
	PickupRequestIDs []string        `json:"pickup_request_ids"`
	StartLocation    models.Location `json:"start_location"`
	PlannedStartAt   *time.Time      `json:"planned_start_at"`
}

// PlanRoute handles the route planning request
func (h *RoutesHandler) PlanRoute(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Routes.PlanRoute")

	var req planRouteRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	driverID, err := uuid.Parse(req.DriverID)
	if err != nil {
		return utils.BadRequestResponse(c, "driver_id is not a valid UUID")
	}
	serviceDayID, err := uuid.Parse(req.ServiceDayID)
	if err != nil {
		return utils.BadRequestResponse(c, "service_day_id is not a valid UUID")
	}
	routeDate, err := models.ParseDate(req.RouteDate)
	if err != nil {
		return utils.BadRequestResponse(c, "route_date must be formatted as YYYY-MM-DD")
	}

	requestIDs := make([]uuid.UUID, 0, len(req.PickupRequestIDs))
	for _, raw := range req.PickupRequestIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return utils.BadRequestResponse(c, "pickup_request_ids contains an invalid UUID: "+raw)
		}
		requestIDs = append(requestIDs, id)
	}

	planReq := models.PlanRouteRequest{
		DriverID:         driverID,
		ServiceDayID:     serviceDayID,
		RouteDate:        routeDate,
		PickupRequestIDs: requestIDs,
		StartLocation:    req.StartLocation,
		PlannedStartAt:   req.PlannedStartAt,
	}

	route, err := h.routeUC.PlanRoute(c.Request().Context(), planReq)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.MapDomainError(c, err)
	}

	logger.Info("Route planned",
		logger.String("route_id", route.ID.String()),
		logger.String("driver_id", route.DriverID.String()),
		logger.Int("stop_count", len(route.Stops)))

	return utils.SuccessResponse(c, http.StatusCreated, "Route planned successfully", route)
}

// GetRoute handles a single route lookup
func (h *RoutesHandler) GetRoute(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Routes.GetRoute")

	routeID, err := uuid.Parse(c.Param("routeID"))
	if err != nil {
		return utils.BadRequestResponse(c, "routeID is not a valid UUID")
	}
	nrpkg.AddTransactionAttribute(txn, "route.id", routeID.String())

	route, err := h.routeUC.GetRoute(c.Request().Context(), routeID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.MapDomainError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Route retrieved successfully", route)
}

// ListRoutes handles listing a driver's routes. Drivers always see their
// own routes; coordinators pick the driver with the driver_id query param.
func (h *RoutesHandler) ListRoutes(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Routes.ListRoutes")

	var driverID uuid.UUID
	if role, _ := c.Get("user_role").(string); role == "driver" {
		driverID, _ = c.Get("user_id").(uuid.UUID)
	} else {
		raw := c.QueryParam("driver_id")
		if raw == "" {
			return utils.BadRequestResponse(c, "driver_id query parameter is required")
		}
		var err error
		driverID, err = uuid.Parse(raw)
		if err != nil {
			return utils.BadRequestResponse(c, "driver_id is not a valid UUID")
		}
	}

	from, err := optionalDateParam(c, "from")
	if err != nil {
		return utils.BadRequestResponse(c, "from must be formatted as YYYY-MM-DD")
	}
	to, err := optionalDateParam(c, "to")
	if err != nil {
		return utils.BadRequestResponse(c, "to must be formatted as YYYY-MM-DD")
	}

	result, err := h.routeUC.ListRoutes(c.Request().Context(), driverID, from, to)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.MapDomainError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Routes retrieved successfully", result)
}

// UpdateRouteStatus handles a lifecycle transition request
func (h *RoutesHandler) UpdateRouteStatus(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Routes.UpdateRouteStatus")

	routeID, err := uuid.Parse(c.Param("routeID"))
	if err != nil {
		return utils.BadRequestResponse(c, "routeID is not a valid UUID")
	}
	nrpkg.AddTransactionAttribute(txn, "route.id", routeID.String())

	var req models.UpdateRouteStatusRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	route, err := h.routeUC.UpdateRouteStatus(c.Request().Context(), routeID, req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.MapDomainError(c, err)
	}

	logger.Info("Route status updated",
		logger.String("route_id", route.ID.String()),
		logger.String("status", string(route.Status)))

	return utils.SuccessResponse(c, http.StatusOK, "Route status updated successfully", route)
}

// GetRouteAnalytics handles the per-tenant route analytics request
func (h *RoutesHandler) GetRouteAnalytics(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Routes.GetRouteAnalytics")

	fromRaw := c.QueryParam("from")
	toRaw := c.QueryParam("to")
	if fromRaw == "" || toRaw == "" {
		return utils.BadRequestResponse(c, "from and to query parameters are required")
	}

	from, err := models.ParseDate(fromRaw)
	if err != nil {
		return utils.BadRequestResponse(c, "from must be formatted as YYYY-MM-DD")
	}
	to, err := models.ParseDate(toRaw)
	if err != nil {
		return utils.BadRequestResponse(c, "to must be formatted as YYYY-MM-DD")
	}

	analytics, err := h.routeUC.GetAnalytics(c.Request().Context(), from, to)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.MapDomainError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Analytics retrieved successfully", analytics)
}

func optionalDateParam(c echo.Context, name string) (*time.Time, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	parsed, err := models.ParseDate(raw)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
