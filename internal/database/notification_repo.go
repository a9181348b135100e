package database

import (
	"errors"

	"ecocollect-backend/internal/models"
)

var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepo handles notification database operations
type NotificationRepo struct{}

// NewNotificationRepo creates a new notification repository
func NewNotificationRepo() *NotificationRepo {
	return &NotificationRepo{}
}

// Create adds a notification for a user
func (r *NotificationRepo) Create(n *models.Notification) error {
	result, err := DB.Exec(`
		INSERT INTO notifications (user_id, message, read)
		VALUES (?, ?, 0)
	`, n.UserID, n.Message)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	n.ID = id

	return nil
}

// ListByUser retrieves a user's notifications, newest first
func (r *NotificationRepo) ListByUser(userID int64) ([]*models.Notification, error) {
	rows, err := DB.Query(`
		SELECT id, user_id, message, read, created_at
		FROM notifications WHERE user_id = ? ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []*models.Notification
	for rows.Next() {
		n := &models.Notification{}
		if err := rows.Scan(&n.ID, &n.UserID, &n.Message, &n.Read, &n.CreatedAt); err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}

	return notifications, rows.Err()
}

// MarkRead flags a notification as read. The user ID is part of the
// predicate so one user cannot mark another user's notification.
func (r *NotificationRepo) MarkRead(id, userID int64) error {
	result, err := DB.Exec(`
		UPDATE notifications SET read = 1 WHERE id = ? AND user_id = ?
	`, id, userID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotificationNotFound
	}

	return nil
}
