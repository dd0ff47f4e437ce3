package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/explora/travel-system/internal/core/domain"
	"github.com/explora/travel-system/internal/core/security"
)

// BootstrapHeader carries the one-time bootstrap token for role elevation
// when no admin exists yet to authorize it.
const BootstrapHeader = "X-Bootstrap-Token"

// TokenRedeemer consumes a one-time bootstrap token. Redeem returns true only
// on the token's first valid use.
type TokenRedeemer interface {
	Redeem(ctx context.Context, token string) (bool, error)
}

// ElevationGuard authorizes the role elevation endpoint. Two paths are
// accepted: a valid bearer token with the admin role, or the one-time
// bootstrap token in the X-Bootstrap-Token header. An unauthorized elevation
// endpoint is an account-takeover hole, so there is no open fallback.
func ElevationGuard(codec *security.TokenCodec, bootstrap TokenRedeemer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if authHeader := c.Request().Header.Get("Authorization"); authHeader != "" {
				parts := strings.SplitN(authHeader, " ", 2)
				if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
				}
				claims, err := codec.Decode(parts[1])
				if err != nil {
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
				}
				if claims.Role != domain.RoleAdmin {
					return echo.NewHTTPError(http.StatusForbidden, "admin access required")
				}
				return next(c)
			}

			if presented := c.Request().Header.Get(BootstrapHeader); presented != "" {
				ok, err := bootstrap.Redeem(c.Request().Context(), presented)
				if err != nil {
					return err
				}
				if !ok {
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid or already redeemed bootstrap token")
				}
				return next(c)
			}

			return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
		}
	}
}
