package apperrors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/gracefleet/routeengine/internal/pkg/models"
)

// ValidationError reports malformed input: bad coordinates, empty request
// lists, missing references. Always recoverable by the caller correcting
// the input.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return "validation: " + e.Msg
}

// NewValidationError creates a ValidationError with a formatted message
func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// NotFoundError reports an unknown tenant-scoped entity. Never masked as
// empty success.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	if e.ID == "" {
		return e.Entity + " not found"
	}
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

// NewNotFoundError creates a NotFoundError for the given entity and ID
func NewNotFoundError(entity, id string) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

// ConflictError reports pickup requests already committed to another active
// route. Names every offending request so the caller can correct its set.
type ConflictError struct {
	PickupRequestIDs []uuid.UUID
}

func (e *ConflictError) Error() string {
	ids := make([]string, 0, len(e.PickupRequestIDs))
	for _, id := range e.PickupRequestIDs {
		ids = append(ids, id.String())
	}
	return "pickup requests already assigned to an active route: " + strings.Join(ids, ", ")
}

// NewConflictError creates a ConflictError naming the offending requests
func NewConflictError(requestIDs []uuid.UUID) *ConflictError {
	return &ConflictError{PickupRequestIDs: requestIDs}
}

// InvalidTransitionError reports an illegal lifecycle move, carrying both
// the current and the requested state for diagnosability.
type InvalidTransitionError struct {
	From models.RouteStatus
	To   models.RouteStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid route transition from %s to %s", e.From, e.To)
}

// NewInvalidTransitionError creates an InvalidTransitionError
func NewInvalidTransitionError(from, to models.RouteStatus) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

// ScopeError reports a tenant isolation violation: an operation attempted
// without an active tenant scope, or against another tenant's data. Treated
// as a security-relevant fault and never auto-corrected.
type ScopeError struct {
	Msg string
}

func (e *ScopeError) Error() string {
	return "tenant scope: " + e.Msg
}

// NewScopeError creates a ScopeError with a formatted message
func NewScopeError(format string, args ...interface{}) *ScopeError {
	return &ScopeError{Msg: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a ValidationError
func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// IsNotFound reports whether err is a NotFoundError
func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// IsConflict reports whether err is a ConflictError
func IsConflict(err error) bool {
	var target *ConflictError
	return errors.As(err, &target)
}

// IsInvalidTransition reports whether err is an InvalidTransitionError
func IsInvalidTransition(err error) bool {
	var target *InvalidTransitionError
	return errors.As(err, &target)
}

// IsScope reports whether err is a ScopeError
func IsScope(err error) bool {
	var target *ScopeError
	return errors.As(err, &target)
}
