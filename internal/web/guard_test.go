package web

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"ecocollect-backend/internal/auth"
	"ecocollect-backend/internal/database"
	"ecocollect-backend/internal/models"
)

func newTestPages(t *testing.T) (*echo.Echo, *auth.Service) {
	t.Helper()
	require.NoError(t, database.OpenInMemory())
	t.Cleanup(func() { database.Close() })

	svc := auth.NewService(auth.NewTokens("test-secret"), nil, false)
	e := echo.New()
	RegisterPages(e, svc)
	return e, svc
}

func userCookie(t *testing.T, svc *auth.Service) *http.Cookie {
	t.Helper()
	user := &models.User{Email: "u@example.com", Name: "Ursula"}
	require.NoError(t, database.NewUserRepo().Create(user))

	token, err := svc.Tokens().Create(user.ID, user.Email, user.Name)
	require.NoError(t, err)
	return &http.Cookie{Name: auth.UserCookieName, Value: token}
}

func adminCookie() *http.Cookie {
	session := models.AdminSession{ID: 1, Email: "admin@example.com", Name: "Admin"}
	return &http.Cookie{Name: auth.AdminCookieName, Value: auth.EncodeAdminSession(session)}
}

func getPage(e *echo.Echo, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestDashboardRedirectsAnonymous(t *testing.T) {
	e, _ := newTestPages(t)

	rec := getPage(e, "/dashboard")
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))
	// Redirect before render: no protected markup in the response
	require.NotContains(t, rec.Body.String(), "Dashboard")
}

func TestDashboardRendersForUser(t *testing.T) {
	e, svc := newTestPages(t)
	cookie := userCookie(t, svc)

	rec := getPage(e, "/dashboard", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Ursula")
}

func TestDashboardRedirectsOnBadToken(t *testing.T) {
	e, _ := newTestPages(t)

	rec := getPage(e, "/dashboard", &http.Cookie{Name: auth.UserCookieName, Value: "garbage"})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))
}

func TestAdminPageRedirectsAnonymous(t *testing.T) {
	e, _ := newTestPages(t)

	rec := getPage(e, "/admin")
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/admin/login", rec.Header().Get(echo.HeaderLocation))
}

func TestAdminPageRendersForAdmin(t *testing.T) {
	e, _ := newTestPages(t)

	rec := getPage(e, "/admin", adminCookie())
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "admin@example.com")
}

func TestAdminPageRejectsUserSession(t *testing.T) {
	e, svc := newTestPages(t)
	cookie := userCookie(t, svc)

	// A user session carries no admin privilege
	rec := getPage(e, "/admin", cookie)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/admin/login", rec.Header().Get(echo.HeaderLocation))
}

func TestSignInPagesBounceAuthenticatedVisitors(t *testing.T) {
	e, svc := newTestPages(t)

	rec := getPage(e, "/login", userCookie(t, svc))
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/dashboard", rec.Header().Get(echo.HeaderLocation))

	rec = getPage(e, "/admin/login", adminCookie())
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/admin", rec.Header().Get(echo.HeaderLocation))
}

func TestRootRedirectsToDashboard(t *testing.T) {
	e, _ := newTestPages(t)

	rec := getPage(e, "/")
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/dashboard", rec.Header().Get(echo.HeaderLocation))
}
