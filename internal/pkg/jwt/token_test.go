package jwt

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gracefleet/routeengine/internal/pkg/models"
)

func testConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret-key",
			Expiration: 60,
			Issuer:     "routeengine-test",
		},
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	cfg := testConfig()
	userID := uuid.New()
	orgID := uuid.New()

	token, expiresAt, err := GenerateToken(userID, orgID, "coordinator", cfg)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Greater(t, expiresAt, int64(0))

	claims, err := ValidateToken(token, cfg.JWT.Secret)
	require.NoError(t, err)

	assert.Equal(t, userID.String(), (*claims)["user_id"])
	assert.Equal(t, orgID.String(), (*claims)["org_id"])
	assert.Equal(t, "coordinator", (*claims)["role"])
	assert.Equal(t, cfg.JWT.Issuer, (*claims)["iss"])
}

func TestValidateTokenWrongSecret(t *testing.T) {
	cfg := testConfig()

	token, _, err := GenerateToken(uuid.New(), uuid.New(), "driver", cfg)
	require.NoError(t, err)

	_, err = ValidateToken(token, "a-different-secret")
	assert.Error(t, err)
}

func TestValidateTokenGarbage(t *testing.T) {
	_, err := ValidateToken("not.a.token", "test-secret-key")
	assert.Error(t, err)
}
