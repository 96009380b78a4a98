package dto

import (
	"github.com/google/uuid"

	"github.com/feedline/backend/internal/models"
)

// PublicProfile is the client-facing projection of an account. The password
// hash is excluded by construction: this struct has no field for it.
type PublicProfile struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Avatar   string    `json:"avatar,omitempty"`
	About    string    `json:"about"`
}

// NewPublicProfile projects a user record onto its public shape.
func NewPublicProfile(user models.User) PublicProfile {
	return PublicProfile{
		ID:       user.ID,
		Username: user.Username,
		Avatar:   user.Avatar,
		About:    user.About,
	}
}

// NewPublicProfiles projects a slice of user records.
func NewPublicProfiles(users []models.User) []PublicProfile {
	out := make([]PublicProfile, 0, len(users))
	for _, user := range users {
		out = append(out, NewPublicProfile(user))
	}
	return out
}

// UpdateUserRequest is a partial patch: nil fields retain their prior
// values. A present-but-empty password is treated as not provided.
type UpdateUserRequest struct {
	Username *string `json:"username,omitempty"`
	Password *string `json:"password,omitempty"`
	Avatar   *string `json:"avatar,omitempty"`
	About    *string `json:"about,omitempty"`
}
