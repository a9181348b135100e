package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"ecocollect-backend/internal/auth"
	"ecocollect-backend/internal/database"
)

// listNotificationsHandler handles GET /api/notifications
func listNotificationsHandler(c echo.Context) error {
	user := auth.GetUserFromContext(c)
	if user == nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{
			"error": "authentication required",
		})
	}

	notifications, err := notificationRepo.ListByUser(user.ID)
	if err != nil {
		c.Logger().Error("list notifications error: ", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to list notifications",
		})
	}

	return c.JSON(http.StatusOK, notifications)
}

// markNotificationReadHandler handles PATCH /api/notifications/:id/read.
// The acting user comes from the resolved principal in the request
// context, never from the request body.
func markNotificationReadHandler(c echo.Context) error {
	user := auth.GetUserFromContext(c)
	if user == nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{
			"error": "authentication required",
		})
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid notification ID",
		})
	}

	if err := notificationRepo.MarkRead(id, user.ID); err != nil {
		if errors.Is(err, database.ErrNotificationNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{
				"error": "notification not found",
			})
		}
		c.Logger().Error("mark notification read error: ", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to update notification",
		})
	}

	return c.JSON(http.StatusOK, map[string]bool{
		"success": true,
	})
}
