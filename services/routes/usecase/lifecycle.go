package usecase

import "github.com/gracefleet/routeengine/internal/pkg/models"

// transitions is the single source of truth for the route state machine:
// PLANNED -> IN_PROGRESS -> COMPLETED, with cancellation allowed from
// PLANNED and IN_PROGRESS. COMPLETED and CANCELLED are terminal.
var transitions = map[models.RouteStatus][]models.RouteStatus{
	models.RouteStatusPlanned:    {models.RouteStatusInProgress, models.RouteStatusCancelled},
	models.RouteStatusInProgress: {models.RouteStatusCompleted, models.RouteStatusCancelled},
	models.RouteStatusCompleted:  {},
	models.RouteStatusCancelled:  {},
}

// CanTransition reports whether the lifecycle permits moving from one
// status to another.
func CanTransition(from, to models.RouteStatus) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// KnownStatus reports whether s is a member of the closed status set.
func KnownStatus(s models.RouteStatus) bool {
	_, ok := transitions[s]
	return ok
}
