package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/gameronce/commerce-api/internal/core/domain"
)

// RequireAdmin lets any back-office account through, regardless of its role.
func RequireAdmin() echo.MiddlewareFunc {
	return requirePrincipal(func(p *domain.Principal) bool {
		return p.IsAdmin()
	})
}

// RequireSuperAdmin lets only superadmin accounts through.
func RequireSuperAdmin() echo.MiddlewareFunc {
	return requirePrincipal(func(p *domain.Principal) bool {
		return p.IsSuperAdmin()
	})
}

func requirePrincipal(allowed func(*domain.Principal) bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p, ok := Principal(c)
			if !ok {
				return domain.ErrTokenInvalid
			}
			if !allowed(p) {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
