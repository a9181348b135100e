package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"ecocollect-backend/internal/models"
)

func newTestContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestWriteCookieAttributes(t *testing.T) {
	c, rec := newTestContext(t)

	WriteCookie(c, UserCookieName, "tok", UserCookieMaxAge, false)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	cookie := cookies[0]
	require.Equal(t, UserCookieName, cookie.Name)
	require.Equal(t, "tok", cookie.Value)
	require.Equal(t, "/", cookie.Path)
	require.True(t, cookie.HttpOnly)
	require.False(t, cookie.Secure)
	require.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	require.Equal(t, int((30 * 24 * time.Hour).Seconds()), cookie.MaxAge)
}

func TestWriteCookieSecureInProduction(t *testing.T) {
	c, rec := newTestContext(t)

	WriteCookie(c, AdminCookieName, "v", AdminCookieMaxAge, true)

	cookie := rec.Result().Cookies()[0]
	require.True(t, cookie.Secure)
	require.Equal(t, int((8 * time.Hour).Seconds()), cookie.MaxAge)
}

func TestClearCookie(t *testing.T) {
	c, rec := newTestContext(t)

	ClearCookie(c, UserCookieName, false)

	cookie := rec.Result().Cookies()[0]
	require.Equal(t, UserCookieName, cookie.Name)
	require.Empty(t, cookie.Value)
	require.Negative(t, cookie.MaxAge)
}

func TestReadCookieAbsent(t *testing.T) {
	c, _ := newTestContext(t)
	require.Empty(t, ReadCookie(c, UserCookieName))
}

func TestAdminSessionRoundTrip(t *testing.T) {
	session := models.AdminSession{ID: 3, Email: "ops@example.com", Name: "Ops"}

	encoded := EncodeAdminSession(session)
	require.NotEmpty(t, encoded)

	decoded := DecodeAdminSession(encoded)
	require.NotNil(t, decoded)
	require.Equal(t, session, *decoded)
}

func TestDecodeAdminSessionMalformed(t *testing.T) {
	// Parse failures read as "not authenticated", never an error
	require.Nil(t, DecodeAdminSession(""))
	require.Nil(t, DecodeAdminSession("%%%not-base64%%%"))
	require.Nil(t, DecodeAdminSession("bm90LWpzb24")) // base64("not-json")
	// Valid JSON with no email is rejected too
	require.Nil(t, DecodeAdminSession(EncodeAdminSession(models.AdminSession{ID: 1})))
}
