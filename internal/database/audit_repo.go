package database

import (
	"encoding/json"
	"time"

	"ecocollect-backend/internal/models"
)

// AuditRepo handles audit log database operations
type AuditRepo struct{}

// NewAuditRepo creates a new audit repository
func NewAuditRepo() *AuditRepo {
	return &AuditRepo{}
}

// Create creates a new audit log entry
func (r *AuditRepo) Create(log *models.AuditLog) error {
	result, err := DB.Exec(`
		INSERT INTO audit_logs (timestamp, principal, subject, action, ip_address, details)
		VALUES (?, ?, ?, ?, ?, ?)
	`, log.Timestamp, log.Principal, log.Subject, log.Action, log.IPAddress, log.Details)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	log.ID = id
	return nil
}

// Log is a convenience method to record an event with the current timestamp
func (r *AuditRepo) Log(principal models.PrincipalKind, subject, action, ipAddress string, details interface{}) error {
	var detailsJSON string
	if details != nil {
		b, err := json.Marshal(details)
		if err == nil {
			detailsJSON = string(b)
		}
	}

	return r.Create(&models.AuditLog{
		Timestamp: time.Now(),
		Principal: string(principal),
		Subject:   subject,
		Action:    action,
		IPAddress: ipAddress,
		Details:   detailsJSON,
	})
}

// List retrieves the most recent entries, newest first
func (r *AuditRepo) List(limit int) ([]*models.AuditLog, error) {
	if limit <= 0 {
		limit = 100
	}

	rows, err := DB.Query(`
		SELECT id, timestamp, principal, subject, action, ip_address, details
		FROM audit_logs ORDER BY timestamp DESC, id DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []*models.AuditLog
	for rows.Next() {
		log := &models.AuditLog{}
		if err := rows.Scan(&log.ID, &log.Timestamp, &log.Principal, &log.Subject, &log.Action, &log.IPAddress, &log.Details); err != nil {
			return nil, err
		}
		logs = append(logs, log)
	}

	return logs, rows.Err()
}
