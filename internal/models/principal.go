package models

// PrincipalKind discriminates the two identity classes a request can carry.
type PrincipalKind string

const (
	PrincipalUser  PrincipalKind = "user"
	PrincipalAdmin PrincipalKind = "admin"
)

// Principal is the tagged identity attached to an authenticated request.
// Exactly one of User or Admin is set, matching Kind.
type Principal struct {
	Kind  PrincipalKind
	User  *User
	Admin *AdminSession
}

// NewUserPrincipal wraps a freshly loaded user record.
func NewUserPrincipal(u *User) *Principal {
	return &Principal{Kind: PrincipalUser, User: u}
}

// NewAdminPrincipal wraps a decoded admin session.
func NewAdminPrincipal(a *AdminSession) *Principal {
	return &Principal{Kind: PrincipalAdmin, Admin: a}
}
