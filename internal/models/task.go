package models

import "time"

// TaskStatus tracks a report through its collection lifecycle
type TaskStatus string

const (
	TaskReported  TaskStatus = "reported"
	TaskScheduled TaskStatus = "scheduled"
	TaskCollected TaskStatus = "collected"
)

// ValidTaskStatus reports whether s is one of the known statuses.
func ValidTaskStatus(s TaskStatus) bool {
	switch s {
	case TaskReported, TaskScheduled, TaskCollected:
		return true
	}
	return false
}

// Task represents a waste-collection report filed by a user
type Task struct {
	ID        int64      `json:"id"`
	UserID    int64      `json:"user_id"`
	Title     string     `json:"title"`
	WasteType string     `json:"waste_type"`
	Location  string     `json:"location"`
	Status    TaskStatus `json:"status"`
	PhotoPath string     `json:"photo_path,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CreateTaskRequest represents the request body for filing a report
type CreateTaskRequest struct {
	Title     string `json:"title" validate:"required"`
	WasteType string `json:"waste_type" validate:"required"`
	Location  string `json:"location" validate:"required"`
	PhotoPath string `json:"photo_path,omitempty"`
}

// UpdateTaskStatusRequest represents the admin request to move a task
// through the collection lifecycle
type UpdateTaskStatusRequest struct {
	Status TaskStatus `json:"status" validate:"required,oneof=reported scheduled collected"`
}
