package auth

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"ecocollect-backend/internal/models"
)

// Cookie names for the two principal classes. The cookies are
// independent and may coexist in one browser.
const (
	UserCookieName  = "auth_token"
	AdminCookieName = "admin_session"
)

// Cookie lifetimes
const (
	UserCookieMaxAge  = 30 * 24 * time.Hour
	AdminCookieMaxAge = 8 * time.Hour
)

// WriteCookie sets a session cookie with the fixed attribute policy:
// HttpOnly, SameSite=Lax, Path=/, Secure only in production.
func WriteCookie(c echo.Context, name, value string, maxAge time.Duration, secure bool) {
	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(maxAge.Seconds()),
	})
}

// ClearCookie overwrites a session cookie with an empty value and a
// negative max-age, the canonical clear. Clearing a cookie that was
// never set is harmless.
func ClearCookie(c echo.Context, name string, secure bool) {
	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

// ReadCookie returns the raw value of the named cookie, or "" when the
// cookie is absent. Decoding is the caller's job; the user and admin
// cookies carry different payload shapes.
func ReadCookie(c echo.Context, name string) string {
	cookie, err := c.Cookie(name)
	if err != nil || cookie.Value == "" {
		return ""
	}
	return cookie.Value
}

// EncodeAdminSession serializes the admin cookie payload. The JSON is
// base64url-encoded because raw JSON is not a legal cookie value; the
// payload itself carries no signature.
func EncodeAdminSession(session models.AdminSession) string {
	b, err := json.Marshal(session)
	if err != nil {
		return ""
	}
	return base64.RawURLEncoding.EncodeToString(b)
}

// DecodeAdminSession parses an admin cookie value. Returns nil on any
// decode failure; callers treat nil as "not authenticated".
func DecodeAdminSession(value string) *models.AdminSession {
	b, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return nil
	}

	var session models.AdminSession
	if err := json.Unmarshal(b, &session); err != nil {
		return nil
	}
	if session.Email == "" {
		return nil
	}

	return &session
}
