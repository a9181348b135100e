package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"ecocollect-backend/internal/auth"
	"ecocollect-backend/internal/database"
	"ecocollect-backend/internal/models"
)

// listTasksHandler handles GET /api/tasks
func listTasksHandler(c echo.Context) error {
	user := auth.GetUserFromContext(c)
	if user == nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{
			"error": "authentication required",
		})
	}

	tasks, err := taskRepo.ListByUser(user.ID)
	if err != nil {
		c.Logger().Error("list tasks error: ", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to list tasks",
		})
	}

	return c.JSON(http.StatusOK, tasks)
}

// createTaskHandler handles POST /api/tasks
func createTaskHandler(c echo.Context) error {
	user := auth.GetUserFromContext(c)
	if user == nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{
			"error": "authentication required",
		})
	}

	var req models.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{
			"error": "invalid request body",
		})
	}
	if req.Title == "" || req.WasteType == "" || req.Location == "" {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{
			"error": "title, waste_type and location are required",
		})
	}

	task := &models.Task{
		UserID:    user.ID,
		Title:     req.Title,
		WasteType: req.WasteType,
		Location:  req.Location,
		PhotoPath: req.PhotoPath,
	}
	if err := taskRepo.Create(task); err != nil {
		c.Logger().Error("create task error: ", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to create task",
		})
	}

	return c.JSON(http.StatusCreated, task)
}

// getTaskHandler handles GET /api/tasks/:id
func getTaskHandler(c echo.Context) error {
	user := auth.GetUserFromContext(c)
	if user == nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{
			"error": "authentication required",
		})
	}

	task, err := loadOwnTask(c, user.ID)
	if err != nil {
		return taskLoadError(c, err)
	}

	return c.JSON(http.StatusOK, task)
}

// deleteTaskHandler handles DELETE /api/tasks/:id
func deleteTaskHandler(c echo.Context) error {
	user := auth.GetUserFromContext(c)
	if user == nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{
			"error": "authentication required",
		})
	}

	task, err := loadOwnTask(c, user.ID)
	if err != nil {
		return taskLoadError(c, err)
	}

	if err := taskRepo.Delete(task.ID); err != nil {
		c.Logger().Error("delete task error: ", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to delete task",
		})
	}

	return c.JSON(http.StatusOK, map[string]bool{
		"success": true,
	})
}

var errInvalidTaskID = errors.New("invalid task ID")

// loadOwnTask fetches the task in :id and verifies it belongs to the
// calling user. Another user's task reads as not found, never as
// forbidden, so task IDs cannot be probed. Callers translate the error
// with taskLoadError and must not touch the task when err != nil.
func loadOwnTask(c echo.Context, userID int64) (*models.Task, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return nil, errInvalidTaskID
	}

	task, err := taskRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if task.UserID != userID {
		return nil, database.ErrTaskNotFound
	}

	return task, nil
}

// taskLoadError writes the response for a failed loadOwnTask
func taskLoadError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, errInvalidTaskID):
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid task ID",
		})
	case errors.Is(err, database.ErrTaskNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": "task not found",
		})
	}

	c.Logger().Error("get task error: ", err)
	return c.JSON(http.StatusInternalServerError, map[string]string{
		"error": "failed to load task",
	})
}
