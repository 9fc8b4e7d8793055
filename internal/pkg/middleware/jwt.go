package middleware

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	jwtpkg "github.com/gracefleet/routeengine/internal/pkg/jwt"
	"github.com/gracefleet/routeengine/internal/pkg/models"
	"github.com/gracefleet/routeengine/internal/pkg/tenant"
	"github.com/gracefleet/routeengine/internal/utils"
)

// JWTAuthMiddleware creates a middleware for JWT authentication. Besides
// validating the token it installs the caller's organization as the tenant
// scope on the request context, so every downstream data access is filtered
// by it.
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			tokenString := parts[1]

			claims, err := jwtpkg.ValidateToken(tokenString, config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			userIDStr, ok := (*claims)["user_id"]
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid token: missing user_id claim")
			}

			orgIDStr, ok := (*claims)["org_id"]
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid token: missing org_id claim")
			}

			role, ok := (*claims)["role"]
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid token: missing role claim")
			}

			userID, err := uuid.Parse(fmt.Sprintf("%v", userIDStr))
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token: user_id is not a valid UUID")
			}

			orgID, err := uuid.Parse(fmt.Sprintf("%v", orgIDStr))
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token: org_id is not a valid UUID")
			}

			c.Set("user_id", userID)
			c.Set("user_role", role)
			c.Set("org_id", orgID)

			// Tenant scope on the request context only, never process-wide
			ctx := tenant.WithScope(c.Request().Context(), orgID)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}
