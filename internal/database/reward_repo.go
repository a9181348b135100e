package database

import (
	"ecocollect-backend/internal/models"
)

// RewardRepo handles reward ledger database operations
type RewardRepo struct{}

// NewRewardRepo creates a new reward repository
func NewRewardRepo() *RewardRepo {
	return &RewardRepo{}
}

// Grant appends a ledger entry for a user
func (r *RewardRepo) Grant(reward *models.Reward) error {
	result, err := DB.Exec(`
		INSERT INTO rewards (user_id, points, reason)
		VALUES (?, ?, ?)
	`, reward.UserID, reward.Points, reward.Reason)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	reward.ID = id

	return nil
}

// ListByUser retrieves a user's ledger entries, newest first
func (r *RewardRepo) ListByUser(userID int64) ([]*models.Reward, error) {
	rows, err := DB.Query(`
		SELECT id, user_id, points, reason, created_at
		FROM rewards WHERE user_id = ? ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rewards []*models.Reward
	for rows.Next() {
		reward := &models.Reward{}
		if err := rows.Scan(&reward.ID, &reward.UserID, &reward.Points, &reward.Reason, &reward.CreatedAt); err != nil {
			return nil, err
		}
		rewards = append(rewards, reward)
	}

	return rewards, rows.Err()
}

// TotalPoints returns the sum of a user's ledger
func (r *RewardRepo) TotalPoints(userID int64) (int, error) {
	var total int
	err := DB.QueryRow(`
		SELECT COALESCE(SUM(points), 0) FROM rewards WHERE user_id = ?
	`, userID).Scan(&total)
	return total, err
}
