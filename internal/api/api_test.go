package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"ecocollect-backend/internal/auth"
	"ecocollect-backend/internal/config"
	"ecocollect-backend/internal/database"
	"ecocollect-backend/internal/models"
)

const (
	testAdminEmail    = "admin@example.com"
	testAdminPassword = "admin-pass"
)

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()
	require.NoError(t, database.OpenInMemory())
	t.Cleanup(func() { database.Close() })

	// Each test gets a fresh limiter so failed attempts do not leak
	// between tests
	auth.LoginRateLimiter = auth.DefaultRateLimiter()
	t.Cleanup(auth.LoginRateLimiter.Stop)

	admins := []models.Admin{
		{ID: 1, Email: testAdminEmail, Password: testAdminPassword, Name: "Admin"},
	}
	svc := auth.NewService(auth.NewTokens("test-secret"), admins, false)

	e := echo.New()
	RegisterRoutes(e.Group("/api"), svc, nil, &config.Config{UploadDir: t.TempDir()})
	return e
}

func doJSON(e *echo.Echo, method, path string, body interface{}, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func cookieNamed(t *testing.T, rec *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	t.Fatalf("cookie %q not set", name)
	return nil
}

// registerUser creates an account through the public endpoint and
// returns its session cookie
func registerUser(t *testing.T, e *echo.Echo, email, password string) *http.Cookie {
	t.Helper()
	rec := doJSON(e, http.MethodPost, "/api/auth/register", map[string]string{
		"email":    email,
		"password": password,
		"name":     "Test User",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	return cookieNamed(t, rec, auth.UserCookieName)
}

// adminLogin authenticates against the allow-list and returns the
// admin session cookie
func adminLogin(t *testing.T, e *echo.Echo) *http.Cookie {
	t.Helper()
	rec := doJSON(e, http.MethodPost, "/api/admin/auth/login", map[string]string{
		"email":    testAdminEmail,
		"password": testAdminPassword,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	return cookieNamed(t, rec, auth.AdminCookieName)
}
