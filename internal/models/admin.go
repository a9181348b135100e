package models

// Admin is one entry of the administrator allow-list. The list is
// injected through configuration at startup; admins live in a separate
// identity space from users and are never looked up in the user table.
type Admin struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"` // plaintext by design, compared directly
	Name     string `json:"name,omitempty"`
}

// AdminSession is the payload carried by the admin_session cookie.
// It is serialized without a signature and trusted as-is when read
// back; do not add a signature silently.
type AdminSession struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// Session returns the cookie payload for an allow-list entry.
func (a *Admin) Session() AdminSession {
	return AdminSession{ID: a.ID, Email: a.Email, Name: a.Name}
}

// AdminLoginRequest represents the request body for admin login. Form
// tags cover the server-rendered sign-in page.
type AdminLoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}
