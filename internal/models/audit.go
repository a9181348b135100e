package models

import "time"

// AuditLog records an authentication or account event
type AuditLog struct {
	ID        int64     `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Principal string    `json:"principal"` // "user" or "admin"
	Subject   string    `json:"subject"`   // email of the acting identity
	Action    string    `json:"action"`
	IPAddress string    `json:"ip_address,omitempty"`
	Details   string    `json:"details,omitempty"` // JSON string
}

// Common audit actions
const (
	ActionLogin          = "auth.login"
	ActionLoginFailed    = "auth.login_failed"
	ActionLogout         = "auth.logout"
	ActionRegister       = "auth.register"
	ActionPasswordChange = "auth.password_change"
	ActionAdminLogin     = "admin.login"
	ActionAdminLogout    = "admin.logout"
)
