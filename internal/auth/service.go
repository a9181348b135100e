package auth

import (
	"errors"

	"github.com/labstack/echo/v4"

	"ecocollect-backend/internal/database"
	"ecocollect-backend/internal/models"
)

var (
	// ErrInvalidCredentials covers a missing account, an account with no
	// password set, and a password mismatch alike. Callers must not be
	// able to tell which one happened.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Service handles authentication for both principal classes: users,
// verified against the account store with signed tokens, and admins,
// verified against the injected allow-list with a serialized cookie.
type Service struct {
	userRepo      *database.UserRepo
	tokens        *Tokens
	admins        []models.Admin
	secureCookies bool
}

// NewService creates a new auth service
func NewService(tokens *Tokens, admins []models.Admin, secureCookies bool) *Service {
	return &Service{
		userRepo:      database.NewUserRepo(),
		tokens:        tokens,
		admins:        admins,
		secureCookies: secureCookies,
	}
}

// SecureCookies reports whether session cookies carry the Secure attribute
func (s *Service) SecureCookies() bool {
	return s.secureCookies
}

// Tokens exposes the token service for flows that issue tokens directly
// (SSO callback, websocket handshake).
func (s *Service) Tokens() *Tokens {
	return s.tokens
}

// LoginUser verifies credentials and issues a session token.
// Account-not-found, no-password-set and wrong-password all collapse
// into ErrInvalidCredentials.
func (s *Service) LoginUser(email, password string) (*models.User, string, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, database.ErrUserNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !CheckPassword(password, user.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Create(user.ID, user.Email, user.Name)
	if err != nil {
		return nil, "", err
	}

	// Best effort; a failed timestamp write must not fail the login
	_ = s.userRepo.UpdateLastLogin(user.ID)

	return user, token, nil
}

// LoginAdmin checks credentials against the static allow-list. Only an
// exact email and password match succeeds; "no such admin" and "wrong
// password" are indistinguishable to the caller.
func (s *Service) LoginAdmin(email, password string) (*models.Admin, error) {
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	for i := range s.admins {
		a := &s.admins[i]
		if a.Email == email && a.Password == password {
			return a, nil
		}
	}

	return nil, ErrInvalidCredentials
}

// ResolveUser recovers the authenticated user from a request, or nil.
// The token's claims are only used to locate the account; the returned
// principal is assembled from the freshly loaded record, so a renamed
// or deleted account takes effect without waiting for token expiry.
// Read-only and safe to call more than once per request.
func (s *Service) ResolveUser(c echo.Context) *models.User {
	token := ReadCookie(c, UserCookieName)
	if token == "" {
		return nil
	}

	claims := s.tokens.Verify(token)
	if claims == nil {
		return nil
	}

	user, err := s.userRepo.GetByID(claims.UserID)
	if err != nil {
		return nil
	}

	return user
}

// ResolveAdmin recovers the authenticated admin from a request, or nil.
// The cookie payload is decoded and trusted as-is: it carries no
// signature and is not rechecked against the allow-list after issuance.
// Do not add a signature or a recheck here without changing the login
// handler to issue the matching payload.
func (s *Service) ResolveAdmin(c echo.Context) *models.AdminSession {
	value := ReadCookie(c, AdminCookieName)
	if value == "" {
		return nil
	}

	return DecodeAdminSession(value)
}
