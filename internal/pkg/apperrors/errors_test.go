package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/gracefleet/routeengine/internal/pkg/models"
)

func TestErrorClassification(t *testing.T) {
	validation := NewValidationError("bad input")
	notFound := NewNotFoundError("route", uuid.New().String())
	conflict := NewConflictError([]uuid.UUID{uuid.New()})
	transition := NewInvalidTransitionError(models.RouteStatusCompleted, models.RouteStatusPlanned)
	scope := NewScopeError("no active tenant scope")

	assert.True(t, IsValidation(validation))
	assert.True(t, IsNotFound(notFound))
	assert.True(t, IsConflict(conflict))
	assert.True(t, IsInvalidTransition(transition))
	assert.True(t, IsScope(scope))

	// Each class matches only itself
	assert.False(t, IsValidation(notFound))
	assert.False(t, IsNotFound(conflict))
	assert.False(t, IsConflict(scope))
	assert.False(t, IsScope(transition))
	assert.False(t, IsInvalidTransition(validation))
}

func TestClassificationThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("plan route: %w", NewConflictError([]uuid.UUID{uuid.New()}))
	assert.True(t, IsConflict(wrapped))

	var conflict *ConflictError
	assert.True(t, errors.As(wrapped, &conflict))
	assert.Len(t, conflict.PickupRequestIDs, 1)
}

func TestConflictErrorNamesEveryRequest(t *testing.T) {
	a := uuid.New()
	b := uuid.New()

	err := NewConflictError([]uuid.UUID{a, b})
	assert.Contains(t, err.Error(), a.String())
	assert.Contains(t, err.Error(), b.String())
}

func TestInvalidTransitionErrorCarriesBothStates(t *testing.T) {
	err := NewInvalidTransitionError(models.RouteStatusCompleted, models.RouteStatusInProgress)
	assert.Contains(t, err.Error(), "COMPLETED")
	assert.Contains(t, err.Error(), "IN_PROGRESS")
}
