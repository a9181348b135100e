package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"ecocollect-backend/internal/models"
)

// Context key for the resolved principal
const ContextKeyPrincipal = "principal"

// RequireUser middleware rejects requests without a valid user session.
// The resolved principal is stored in the context for handlers.
func RequireUser(authSvc *Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := authSvc.ResolveUser(c)
			if user == nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error": "authentication required",
				})
			}

			c.Set(ContextKeyPrincipal, models.NewUserPrincipal(user))
			return next(c)
		}
	}
}

// RequireAdmin middleware rejects requests without an admin session
func RequireAdmin(authSvc *Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			admin := authSvc.ResolveAdmin(c)
			if admin == nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error": "authentication required",
				})
			}

			c.Set(ContextKeyPrincipal, models.NewAdminPrincipal(admin))
			return next(c)
		}
	}
}

// GetPrincipal retrieves the resolved principal from the context
func GetPrincipal(c echo.Context) *models.Principal {
	p, ok := c.Get(ContextKeyPrincipal).(*models.Principal)
	if !ok {
		return nil
	}
	return p
}

// GetUserFromContext retrieves the authenticated user, or nil when the
// request carries no user principal
func GetUserFromContext(c echo.Context) *models.User {
	p := GetPrincipal(c)
	if p == nil || p.Kind != models.PrincipalUser {
		return nil
	}
	return p.User
}

// GetAdminFromContext retrieves the authenticated admin, or nil when
// the request carries no admin principal
func GetAdminFromContext(c echo.Context) *models.AdminSession {
	p := GetPrincipal(c)
	if p == nil || p.Kind != models.PrincipalAdmin {
		return nil
	}
	return p.Admin
}
