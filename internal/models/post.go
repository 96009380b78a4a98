package models

import (
	"time"

	"github.com/google/uuid"
)

// Post is a persisted post record owned by AuthorID.
type Post struct {
	ID        uuid.UUID `json:"id"`
	AuthorID  uuid.UUID `json:"author_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	Edited    bool      `json:"edited"`
}
