package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"ecocollect-backend/internal/auth"
)

// listRewardsHandler handles GET /api/rewards
func listRewardsHandler(c echo.Context) error {
	user := auth.GetUserFromContext(c)
	if user == nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{
			"error": "authentication required",
		})
	}

	rewards, err := rewardRepo.ListByUser(user.ID)
	if err != nil {
		c.Logger().Error("list rewards error: ", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to list rewards",
		})
	}

	total, err := rewardRepo.TotalPoints(user.ID)
	if err != nil {
		c.Logger().Error("total points error: ", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to list rewards",
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"total_points": total,
		"rewards":      rewards,
	})
}
