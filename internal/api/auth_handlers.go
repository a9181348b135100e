package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"ecocollect-backend/internal/auth"
	"ecocollect-backend/internal/database"
	"ecocollect-backend/internal/models"
)

// audit records an authentication event. The write is best effort: a
// failure is logged and never surfaced to the client.
func audit(c echo.Context, principal models.PrincipalKind, subject, action string, details interface{}) {
	if err := auditRepo.Log(principal, subject, action, c.RealIP(), details); err != nil {
		c.Logger().Warn("audit log error: ", err)
	}
}

// publicUser is the sanitized principal shape returned by login and
// auth-check. The password hash never appears here.
func publicUser(u *models.User) map[string]interface{} {
	var name interface{}
	if u.Name != "" {
		name = u.Name
	}
	return map[string]interface{}{
		"id":    u.ID,
		"email": u.Email,
		"name":  name,
	}
}

// registerHandler handles POST /api/auth/register
func registerHandler(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{
			"error": "invalid request body",
		})
	}

	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{
			"error": "email and password are required",
		})
	}
	if len(req.Password) < 8 {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{
			"error": "password must be at least 8 characters",
		})
	}

	exists, err := userRepo.ExistsByEmail(req.Email)
	if err != nil {
		c.Logger().Error("register lookup error: ", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "registration failed",
		})
	}
	if exists {
		return c.JSON(http.StatusConflict, map[string]string{
			"error": "email already registered",
		})
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		c.Logger().Error("hash password error: ", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "registration failed",
		})
	}

	user := &models.User{
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: passwordHash,
	}
	if err := userRepo.Create(user); err != nil {
		c.Logger().Error("create user error: ", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "registration failed",
		})
	}

	token, err := authService.Tokens().Create(user.ID, user.Email, user.Name)
	if err != nil {
		c.Logger().Error("issue token error: ", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "registration failed",
		})
	}

	auth.WriteCookie(c, auth.UserCookieName, token, auth.UserCookieMaxAge, authService.SecureCookies())
	audit(c, models.PrincipalUser, user.Email, models.ActionRegister, nil)

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"user": publicUser(user),
	})
}

// loginHandler handles POST /api/auth/login
func loginHandler(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{
			"error": "invalid request body",
		})
	}

	// Fail fast before touching the account store or hashing anything
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{
			"error": "email and password are required",
		})
	}

	user, token, err := authService.LoginUser(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			audit(c, models.PrincipalUser, req.Email, models.ActionLoginFailed, nil)
			return c.JSON(http.StatusUnauthorized, map[string]string{
				"error": "invalid email or password",
			})
		}
		c.Logger().Error("login error: ", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "authentication failed",
		})
	}

	auth.LoginRateLimiter.RecordSuccess(c.RealIP())
	auth.WriteCookie(c, auth.UserCookieName, token, auth.UserCookieMaxAge, authService.SecureCookies())
	audit(c, models.PrincipalUser, user.Email, models.ActionLogin, nil)

	return c.JSON(http.StatusOK, map[string]interface{}{
		"user": publicUser(user),
	})
}

// logoutHandler handles POST /api/auth/logout. Always clears the cookie
// and reports success, whether or not a session existed.
func logoutHandler(c echo.Context) error {
	if user := authService.ResolveUser(c); user != nil {
		audit(c, models.PrincipalUser, user.Email, models.ActionLogout, nil)
	}

	auth.ClearCookie(c, auth.UserCookieName, authService.SecureCookies())

	return c.JSON(http.StatusOK, map[string]bool{
		"success": true,
	})
}

// checkAuthHandler handles GET /api/auth/check
func checkAuthHandler(c echo.Context) error {
	user := authService.ResolveUser(c)
	if user == nil {
		return c.JSON(http.StatusUnauthorized, map[string]bool{
			"isAuthenticated": false,
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"isAuthenticated": true,
		"user":            publicUser(user),
	})
}

// updatePasswordHandler handles PUT /api/auth/password
func updatePasswordHandler(c echo.Context) error {
	user := auth.GetUserFromContext(c)
	if user == nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{
			"error": "authentication required",
		})
	}

	var req models.UpdatePasswordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{
			"error": "invalid request body",
		})
	}
	if req.CurrentPassword == "" || req.NewPassword == "" {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{
			"error": "current and new password are required",
		})
	}
	if len(req.NewPassword) < 8 {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{
			"error": "password must be at least 8 characters",
		})
	}

	if !auth.CheckPassword(req.CurrentPassword, user.PasswordHash) {
		return c.JSON(http.StatusUnauthorized, map[string]string{
			"error": "invalid email or password",
		})
	}

	passwordHash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		c.Logger().Error("hash password error: ", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "password change failed",
		})
	}

	if err := userRepo.UpdatePassword(user.ID, passwordHash); err != nil {
		c.Logger().Error("update password error: ", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "password change failed",
		})
	}

	audit(c, models.PrincipalUser, user.Email, models.ActionPasswordChange, nil)

	return c.JSON(http.StatusOK, map[string]bool{
		"success": true,
	})
}

// ssoStateCookie binds the SSO redirect to its callback
const ssoStateCookie = "sso_state"

// ssoLoginHandler handles GET /api/auth/sso/login
func ssoLoginHandler(c echo.Context) error {
	if oidcClient == nil {
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": "single sign-on is not configured",
		})
	}

	state := auth.GenerateState()
	auth.WriteCookie(c, ssoStateCookie, state, 10*time.Minute, authService.SecureCookies())

	return c.Redirect(http.StatusFound, oidcClient.AuthURL(state))
}

// ssoCallbackHandler handles GET /api/auth/sso/callback
func ssoCallbackHandler(c echo.Context) error {
	if oidcClient == nil {
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": "single sign-on is not configured",
		})
	}

	state := auth.ReadCookie(c, ssoStateCookie)
	auth.ClearCookie(c, ssoStateCookie, authService.SecureCookies())
	if state == "" || c.QueryParam("state") != state {
		return c.JSON(http.StatusUnauthorized, map[string]string{
			"error": "state mismatch",
		})
	}

	identity, err := oidcClient.Exchange(c.Request().Context(), c.QueryParam("code"))
	if err != nil {
		c.Logger().Error("sso exchange error: ", err)
		return c.JSON(http.StatusUnauthorized, map[string]string{
			"error": "sign-on failed",
		})
	}

	user, err := userRepo.GetByEmail(identity.Email)
	if errors.Is(err, database.ErrUserNotFound) {
		// First sign-on: provision an account with no password set.
		// Password login stays impossible until the user sets one.
		user = &models.User{Email: identity.Email, Name: identity.Name}
		err = userRepo.Create(user)
	}
	if err != nil {
		c.Logger().Error("sso provision error: ", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "sign-on failed",
		})
	}

	token, err := authService.Tokens().Create(user.ID, user.Email, user.Name)
	if err != nil {
		c.Logger().Error("issue token error: ", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "sign-on failed",
		})
	}

	auth.WriteCookie(c, auth.UserCookieName, token, auth.UserCookieMaxAge, authService.SecureCookies())
	userRepo.UpdateLastLogin(user.ID)
	audit(c, models.PrincipalUser, user.Email, models.ActionLogin, map[string]string{"method": "sso"})

	return c.Redirect(http.StatusSeeOther, "/dashboard")
}

// healthCheck handles GET /api/health
func healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}
