package web

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"ecocollect-backend/internal/auth"
)

// RegisterPages wires the server-rendered pages. Sign-in pages bounce
// already-authenticated visitors to their dashboard; protected pages
// sit behind the page guards.
func RegisterPages(e *echo.Echo, authSvc *auth.Service) {
	e.Renderer = NewRenderer()

	e.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusSeeOther, "/dashboard")
	})

	e.GET("/login", func(c echo.Context) error {
		if authSvc.ResolveUser(c) != nil {
			return c.Redirect(http.StatusSeeOther, "/dashboard")
		}
		return c.Render(http.StatusOK, "login", map[string]interface{}{
			"Title": "Sign in",
		})
	})

	e.GET("/admin/login", func(c echo.Context) error {
		if authSvc.ResolveAdmin(c) != nil {
			return c.Redirect(http.StatusSeeOther, "/admin")
		}
		return c.Render(http.StatusOK, "admin_login", map[string]interface{}{
			"Title": "Administrator sign in",
		})
	})

	dashboard := e.Group("/dashboard")
	dashboard.Use(RequirePageUser(authSvc))
	dashboard.GET("", func(c echo.Context) error {
		return c.Render(http.StatusOK, "dashboard", map[string]interface{}{
			"Title": "Dashboard",
			"User":  auth.GetUserFromContext(c),
		})
	})

	admin := e.Group("/admin")
	admin.Use(RequirePageAdmin(authSvc))
	admin.GET("", func(c echo.Context) error {
		return c.Render(http.StatusOK, "admin_dashboard", map[string]interface{}{
			"Title": "Administration",
			"Admin": auth.GetAdminFromContext(c),
		})
	})
}
