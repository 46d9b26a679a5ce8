package entity

import "github.com/google/uuid"

// ShadowUser mirrors an external user identity in the sync context.
// It is not linked to Profile.
type ShadowUser struct {
	UserID     uuid.UUID `json:"user_id"`
	TotalScore int       `json:"total_score"`
}

func NewShadowUser(userID uuid.UUID) *ShadowUser {
	return &ShadowUser{UserID: userID, TotalScore: 0}
}
