package web

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"ecocollect-backend/internal/auth"
	"ecocollect-backend/internal/models"
)

// Page guards resolve the principal before any page body is written,
// so protected markup can never flash for an unauthenticated visitor.
// A failed or errored resolution redirects to the matching sign-in
// page (fail closed).

// RequirePageUser guards user-facing pages
func RequirePageUser(authSvc *auth.Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := authSvc.ResolveUser(c)
			if user == nil {
				return c.Redirect(http.StatusSeeOther, "/login")
			}

			c.Set(auth.ContextKeyPrincipal, models.NewUserPrincipal(user))
			return next(c)
		}
	}
}

// RequirePageAdmin guards the admin pages
func RequirePageAdmin(authSvc *auth.Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			admin := authSvc.ResolveAdmin(c)
			if admin == nil {
				return c.Redirect(http.StatusSeeOther, "/admin/login")
			}

			c.Set(auth.ContextKeyPrincipal, models.NewAdminPrincipal(admin))
			return next(c)
		}
	}
}
