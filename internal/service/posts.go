package service

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/feedline/backend/internal/models"
	"github.com/feedline/backend/internal/models/dto"
	"github.com/feedline/backend/internal/storage"
)

// PostService manages posts. Mutations are guarded by ownership: only the
// author may edit or delete a post.
type PostService struct {
	store storage.PostStore
}

// NewPostService constructs the service.
func NewPostService(store storage.PostStore) *PostService {
	return &PostService{store: store}
}

// Create stores a new post for the given author.
func (s *PostService) Create(ctx context.Context, authorID uuid.UUID, req dto.CreatePostRequest) (dto.PublicPost, error) {
	if !validPostText(req.Text) {
		return dto.PublicPost{}, ErrTextTooLong
	}

	post := models.Post{
		ID:        uuid.New(),
		AuthorID:  authorID,
		Text:      req.Text,
		CreatedAt: time.Now().UTC(),
	}
	created, err := s.store.CreatePost(ctx, post)
	if err != nil {
		return dto.PublicPost{}, fmt.Errorf("create post: %w", err)
	}
	return dto.NewPublicPost(created), nil
}

// Get returns a post by id.
func (s *PostService) Get(ctx context.Context, id uuid.UUID) (dto.PublicPost, error) {
	post, err := s.store.FindPostByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return dto.PublicPost{}, &NotFoundError{Entity: "Post", ID: id.String()}
		}
		return dto.PublicPost{}, fmt.Errorf("find post: %w", err)
	}
	return dto.NewPublicPost(post), nil
}

// ListByAuthor returns every post by the given author.
func (s *PostService) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]dto.PublicPost, error) {
	posts, err := s.store.FindPostsByAuthor(ctx, authorID)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return dto.NewPublicPosts(posts), nil
}

// Update patches a post's text, marking it edited. actorID must own the post.
func (s *PostService) Update(ctx context.Context, id, actorID uuid.UUID, req dto.UpdatePostRequest) (dto.PublicPost, error) {
	post, err := s.store.FindPostByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return dto.PublicPost{}, &NotFoundError{Entity: "Post", ID: id.String()}
		}
		return dto.PublicPost{}, fmt.Errorf("find post: %w", err)
	}
	if err := Authorize(actorID, post.AuthorID); err != nil {
		return dto.PublicPost{}, err
	}

	if req.Text != nil {
		if !validPostText(*req.Text) {
			return dto.PublicPost{}, ErrTextTooLong
		}
		post.Text = *req.Text
		post.Edited = true
	}

	updated, err := s.store.UpdatePost(ctx, post)
	if err != nil {
		return dto.PublicPost{}, fmt.Errorf("update post: %w", err)
	}
	return dto.NewPublicPost(updated), nil
}

// Delete removes a post. actorID must own the post.
func (s *PostService) Delete(ctx context.Context, id, actorID uuid.UUID) error {
	post, err := s.store.FindPostByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return &NotFoundError{Entity: "Post", ID: id.String()}
		}
		return fmt.Errorf("find post: %w", err)
	}
	if err := Authorize(actorID, post.AuthorID); err != nil {
		return err
	}
	if err := s.store.DeletePost(ctx, post.ID); err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	return nil
}

func validPostText(text string) bool {
	n := utf8.RuneCountInString(text)
	return n >= 1 && n <= 256
}
