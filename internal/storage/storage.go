package storage

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/feedline/backend/internal/models"
)

// ErrNotFound indicates a record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrAlreadyExists indicates a uniqueness conflict.
var ErrAlreadyExists = errors.New("record already exists")

// UserStore captures persistence operations needed by the account service.
// Username lookups are case-insensitive.
type UserStore interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByID(ctx context.Context, id uuid.UUID) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindAllUsers(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, user models.User) (models.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

// FollowingStore persists directed follow edges.
type FollowingStore interface {
	CreateFollowing(ctx context.Context, following models.Following) (models.Following, error)
	FindFollowingByPair(ctx context.Context, fromID, toID uuid.UUID) (models.Following, error)
	FindFollowingsBySource(ctx context.Context, fromID uuid.UUID) ([]models.Following, error)
	FindFollowingsByTarget(ctx context.Context, toID uuid.UUID) ([]models.Following, error)
	DeleteFollowing(ctx context.Context, id uuid.UUID) error
}

// PostStore persists posts.
type PostStore interface {
	CreatePost(ctx context.Context, post models.Post) (models.Post, error)
	FindPostByID(ctx context.Context, id uuid.UUID) (models.Post, error)
	FindPostsByAuthor(ctx context.Context, authorID uuid.UUID) ([]models.Post, error)
	UpdatePost(ctx context.Context, post models.Post) (models.Post, error)
	DeletePost(ctx context.Context, id uuid.UUID) error
}
