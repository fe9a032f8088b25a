package middleware

import (
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/gameronce/commerce-api/internal/core/domain"
	"github.com/gameronce/commerce-api/internal/core/ports"
)

// principalKey is the echo context key under which Authenticate stores the
// resolved *domain.Principal.
const principalKey = "principal"

// Authenticate verifies the Bearer access token and resolves the account
// behind it. The resolution step re-checks the database so a deactivated
// account is locked out immediately, even while its tokens are still within
// their expiry window.
func Authenticate(tokens ports.TokenIssuer, auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return fmt.Errorf("missing authorization header: %w", domain.ErrTokenInvalid)
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return fmt.Errorf("malformed authorization header: %w", domain.ErrTokenInvalid)
			}

			claims, err := tokens.VerifyAccess(parts[1])
			if err != nil {
				return err
			}

			principal, err := auth.ResolvePrincipal(c.Request().Context(), claims.ID, claims.Type)
			if err != nil {
				return err
			}

			c.Set(principalKey, principal)
			return next(c)
		}
	}
}

// Principal extracts the authenticated principal set by Authenticate. The
// boolean is false when the middleware did not run on this route.
func Principal(c echo.Context) (*domain.Principal, bool) {
	p, ok := c.Get(principalKey).(*domain.Principal)
	return p, ok
}

// SetPrincipal injects a principal directly, bypassing token verification.
// Test helper for exercising handlers behind Authenticate.
func SetPrincipal(c echo.Context, p *domain.Principal) {
	c.Set(principalKey, p)
}
