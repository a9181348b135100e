package database

import (
	"database/sql"
	"errors"
	"time"

	"ecocollect-backend/internal/models"
)

var ErrTaskNotFound = errors.New("task not found")

// TaskRepo handles waste-collection task database operations
type TaskRepo struct{}

// NewTaskRepo creates a new task repository
func NewTaskRepo() *TaskRepo {
	return &TaskRepo{}
}

// Create files a new report
func (r *TaskRepo) Create(task *models.Task) error {
	if task.Status == "" {
		task.Status = models.TaskReported
	}

	result, err := DB.Exec(`
		INSERT INTO tasks (user_id, title, waste_type, location, status, photo_path)
		VALUES (?, ?, ?, ?, ?, ?)
	`, task.UserID, task.Title, task.WasteType, task.Location, task.Status, task.PhotoPath)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	task.ID = id

	return nil
}

// GetByID retrieves a task by ID
func (r *TaskRepo) GetByID(id int64) (*models.Task, error) {
	task := &models.Task{}
	var photoPath sql.NullString

	err := DB.QueryRow(`
		SELECT id, user_id, title, waste_type, location, status, photo_path, created_at, updated_at
		FROM tasks WHERE id = ?
	`, id).Scan(
		&task.ID, &task.UserID, &task.Title, &task.WasteType, &task.Location,
		&task.Status, &photoPath, &task.CreatedAt, &task.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrTaskNotFound
	}
	if err != nil {
		return nil, err
	}

	if photoPath.Valid {
		task.PhotoPath = photoPath.String
	}

	return task, nil
}

// ListByUser retrieves all tasks filed by a user, newest first
func (r *TaskRepo) ListByUser(userID int64) ([]*models.Task, error) {
	return r.list("SELECT id, user_id, title, waste_type, location, status, photo_path, created_at, updated_at FROM tasks WHERE user_id = ? ORDER BY created_at DESC", userID)
}

// ListAll retrieves every task, newest first. Admin view.
func (r *TaskRepo) ListAll() ([]*models.Task, error) {
	return r.list("SELECT id, user_id, title, waste_type, location, status, photo_path, created_at, updated_at FROM tasks ORDER BY created_at DESC")
}

func (r *TaskRepo) list(query string, args ...interface{}) ([]*models.Task, error) {
	rows, err := DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []*models.Task
	for rows.Next() {
		task := &models.Task{}
		var photoPath sql.NullString

		err := rows.Scan(
			&task.ID, &task.UserID, &task.Title, &task.WasteType, &task.Location,
			&task.Status, &photoPath, &task.CreatedAt, &task.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		if photoPath.Valid {
			task.PhotoPath = photoPath.String
		}

		tasks = append(tasks, task)
	}

	return tasks, rows.Err()
}

// UpdateStatus moves a task through the collection lifecycle
func (r *TaskRepo) UpdateStatus(id int64, status models.TaskStatus) error {
	result, err := DB.Exec(`
		UPDATE tasks SET status = ?, updated_at = ? WHERE id = ?
	`, status, time.Now(), id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrTaskNotFound
	}

	return nil
}

// Delete removes a task
func (r *TaskRepo) Delete(id int64) error {
	result, err := DB.Exec("DELETE FROM tasks WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrTaskNotFound
	}

	return nil
}
