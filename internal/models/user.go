package models

import (
	"time"

	"github.com/google/uuid"
)

// User is the persisted account record. PasswordHash never crosses the API
// boundary; responses are built through dto.NewPublicProfile.
type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Avatar       string    `json:"avatar,omitempty"`
	About        string    `json:"about"`
	CreatedAt    time.Time `json:"created_at"`
}
