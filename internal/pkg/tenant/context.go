package tenant

import (
	"context"

	"github.com/google/uuid"

	"github.com/gracefleet/routeengine/internal/pkg/apperrors"
)

// contextKey is an unexported type so no other package can collide with the
// scope key
type contextKey string

const scopeKey contextKey = "tenant_scope"

// WithScope returns a context carrying the organization scope. The scope is
// per-operation filtering metadata, never shared mutable state: every
// logical operation establishes its own scope and it dies with the context.
func WithScope(ctx context.Context, orgID uuid.UUID) context.Context {
	return context.WithValue(ctx, scopeKey, orgID)
}

// FromContext retrieves the organization scope from the context. Operations
// attempted without an active scope fail with a ScopeError.
func FromContext(ctx context.Context) (uuid.UUID, error) {
	orgID, ok := ctx.Value(scopeKey).(uuid.UUID)
	if !ok || orgID == uuid.Nil {
		return uuid.Nil, apperrors.NewScopeError("no active tenant scope")
	}
	return orgID, nil
}

// Verify checks that the scope in the context matches the expected
// organization. A mismatch is a cross-tenant access attempt and fails loud.
func Verify(ctx context.Context, orgID uuid.UUID) error {
	scoped, err := FromContext(ctx)
	if err != nil {
		return err
	}
	if scoped != orgID {
		return apperrors.NewScopeError("scope %s does not cover organization %s", scoped, orgID)
	}
	return nil
}
