package models

import "time"

// Reward is one entry in a user's points ledger
type Reward struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Points    int       `json:"points"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"created_at"`
}

// GrantRewardRequest represents the admin request to grant points
type GrantRewardRequest struct {
	UserID int64  `json:"user_id" validate:"required"`
	Points int    `json:"points" validate:"required,gt=0"`
	Reason string `json:"reason,omitempty"`
}
