package tenant

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gracefleet/routeengine/internal/pkg/apperrors"
)

func TestScopeRoundTrip(t *testing.T) {
	orgID := uuid.New()
	ctx := WithScope(context.Background(), orgID)

	scoped, err := FromContext(ctx)
	require.NoError(t, err)
	assert.Equal(t, orgID, scoped)
}

func TestFromContextWithoutScope(t *testing.T) {
	_, err := FromContext(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.IsScope(err))
}

func TestFromContextNilOrg(t *testing.T) {
	ctx := WithScope(context.Background(), uuid.Nil)

	_, err := FromContext(ctx)
	require.Error(t, err)
	assert.True(t, apperrors.IsScope(err))
}

func TestVerify(t *testing.T) {
	orgID := uuid.New()
	ctx := WithScope(context.Background(), orgID)

	assert.NoError(t, Verify(ctx, orgID))

	err := Verify(ctx, uuid.New())
	require.Error(t, err)
	assert.True(t, apperrors.IsScope(err))
}

func TestScopesAreIndependent(t *testing.T) {
	// Two concurrent operations must never observe each other's scope
	orgA := uuid.New()
	orgB := uuid.New()

	ctxA := WithScope(context.Background(), orgA)
	ctxB := WithScope(context.Background(), orgB)

	scopedA, err := FromContext(ctxA)
	require.NoError(t, err)
	scopedB, err := FromContext(ctxB)
	require.NoError(t, err)

	assert.Equal(t, orgA, scopedA)
	assert.Equal(t, orgB, scopedB)
}
