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

// adminLoginHandler handles POST /api/admin/auth/login
func adminLoginHandler(c echo.Context) error {
	var req models.AdminLoginRequest
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

	admin, err := authService.LoginAdmin(req.Email, req.Password)
	if err != nil {
		audit(c, models.PrincipalAdmin, req.Email, models.ActionLoginFailed, nil)
		return c.JSON(http.StatusUnauthorized, map[string]string{
			"error": "invalid email or password",
		})
	}

	auth.LoginRateLimiter.RecordSuccess(c.RealIP())
	session := admin.Session()
	auth.WriteCookie(c, auth.AdminCookieName, auth.EncodeAdminSession(session),
		auth.AdminCookieMaxAge, authService.SecureCookies())
	audit(c, models.PrincipalAdmin, admin.Email, models.ActionAdminLogin, nil)

	return c.JSON(http.StatusOK, map[string]interface{}{
		"admin":   session,
		"message": "logged in successfully",
	})
}

// adminLogoutHandler handles POST /api/admin/auth/logout
func adminLogoutHandler(c echo.Context) error {
	if admin := authService.ResolveAdmin(c); admin != nil {
		audit(c, models.PrincipalAdmin, admin.Email, models.ActionAdminLogout, nil)
	}

	auth.ClearCookie(c, auth.AdminCookieName, authService.SecureCookies())

	return c.JSON(http.StatusOK, map[string]bool{
		"success": true,
	})
}

// adminCheckHandler handles GET /api/admin/auth/check
func adminCheckHandler(c echo.Context) error {
	admin := authService.ResolveAdmin(c)
	if admin == nil {
		return c.JSON(http.StatusUnauthorized, map[string]bool{
			"isAuthenticated": false,
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"isAuthenticated": true,
		"admin":           admin,
	})
}

// adminListTasksHandler handles GET /api/admin/tasks
func adminListTasksHandler(c echo.Context) error {
	tasks, err := taskRepo.ListAll()
	if err != nil {
		c.Logger().Error("list tasks error: ", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to list tasks",
		})
	}

	return c.JSON(http.StatusOK, tasks)
}

// adminUpdateTaskStatusHandler handles PATCH /api/admin/tasks/:id/status
func adminUpdateTaskStatusHandler(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid task ID",
		})
	}

	var req models.UpdateTaskStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{
			"error": "invalid request body",
		})
	}
	if !models.ValidTaskStatus(req.Status) {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{
			"error": "unknown task status",
		})
	}

	if err := taskRepo.UpdateStatus(id, req.Status); err != nil {
		if errors.Is(err, database.ErrTaskNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{
				"error": "task not found",
			})
		}
		c.Logger().Error("update task status error: ", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to update task",
		})
	}

	task, err := taskRepo.GetByID(id)
	if err != nil {
		c.Logger().Error("reload task error: ", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to update task",
		})
	}

	// Collected reports notify the reporter
	if task.Status == models.TaskCollected {
		notificationRepo.Create(&models.Notification{
			UserID:  task.UserID,
			Message: "Your report \"" + task.Title + "\" has been collected.",
		})
	}

	return c.JSON(http.StatusOK, task)
}

// adminGrantRewardHandler handles POST /api/admin/rewards
func adminGrantRewardHandler(c echo.Context) error {
	var req models.GrantRewardRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{
			"error": "invalid request body",
		})
	}
	if req.UserID == 0 || req.Points <= 0 {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{
			"error": "user_id and a positive points value are required",
		})
	}

	if _, err := userRepo.GetByID(req.UserID); err != nil {
		if errors.Is(err, database.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{
				"error": "user not found",
			})
		}
		c.Logger().Error("grant reward lookup error: ", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to grant reward",
		})
	}

	reward := &models.Reward{
		UserID: req.UserID,
		Points: req.Points,
		Reason: req.Reason,
	}
	if err := rewardRepo.Grant(reward); err != nil {
		c.Logger().Error("grant reward error: ", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to grant reward",
		})
	}

	notificationRepo.Create(&models.Notification{
		UserID:  req.UserID,
		Message: "You earned " + strconv.Itoa(req.Points) + " points.",
	})

	return c.JSON(http.StatusCreated, reward)
}

// adminListAuditHandler handles GET /api/admin/audit
func adminListAuditHandler(c echo.Context) error {
	limit := 100
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": "invalid limit",
			})
		}
		limit = n
	}

	logs, err := auditRepo.List(limit)
	if err != nil {
		c.Logger().Error("list audit logs error: ", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to list audit logs",
		})
	}

	return c.JSON(http.StatusOK, logs)
}
