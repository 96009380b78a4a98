package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/feedline/backend/internal/models"
)

// PublicPost is the client-facing projection of a post.
type PublicPost struct {
	ID        uuid.UUID `json:"id"`
	AuthorID  uuid.UUID `json:"author_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	Edited    bool      `json:"edited"`
}

// NewPublicPost projects a post record onto its public shape.
func NewPublicPost(post models.Post) PublicPost {
	return PublicPost{
		ID:        post.ID,
		AuthorID:  post.AuthorID,
		Text:      post.Text,
		CreatedAt: post.CreatedAt,
		Edited:    post.Edited,
	}
}

// NewPublicPosts projects a slice of post records.
func NewPublicPosts(posts []models.Post) []PublicPost {
	out := make([]PublicPost, 0, len(posts))
	for _, post := range posts {
		out = append(out, NewPublicPost(post))
	}
	return out
}

type CreatePostRequest struct {
	Text string `json:"text"`
}

type UpdatePostRequest struct {
	Text *string `json:"text,omitempty"`
}
