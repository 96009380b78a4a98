package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/feedline/backend/internal/models"
	"github.com/feedline/backend/internal/storage"
)

// FollowingService manages directed follow edges between accounts.
type FollowingService struct {
	store storage.FollowingStore
}

// NewFollowingService constructs the service.
func NewFollowingService(store storage.FollowingStore) *FollowingService {
	return &FollowingService{store: store}
}

// Follow creates an edge from fromID to toID. Self-follows and duplicate
// edges are rejected.
func (s *FollowingService) Follow(ctx context.Context, fromID, toID uuid.UUID) error {
	if fromID == toID {
		return ErrSelfFollow
	}

	if _, err := s.store.FindFollowingByPair(ctx, fromID, toID); err == nil {
		return ErrAlreadyFollowing
	} else if !errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("check following: %w", err)
	}

	following := models.Following{ID: uuid.New(), FromID: fromID, ToID: toID}
	if _, err := s.store.CreateFollowing(ctx, following); err != nil {
		// The unique pair index is authoritative under concurrent follows.
		if errors.Is(err, storage.ErrAlreadyExists) {
			return ErrAlreadyFollowing
		}
		return fmt.Errorf("create following: %w", err)
	}
	return nil
}

// Unfollow removes the edge from fromID to toID, failing if none exists.
func (s *FollowingService) Unfollow(ctx context.Context, fromID, toID uuid.UUID) error {
	following, err := s.store.FindFollowingByPair(ctx, fromID, toID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrNotFollowing
		}
		return fmt.Errorf("check following: %w", err)
	}
	if err := s.store.DeleteFollowing(ctx, following.ID); err != nil {
		return fmt.Errorf("delete following: %w", err)
	}
	return nil
}

// FollowingsCount returns how many accounts the given account follows.
func (s *FollowingService) FollowingsCount(ctx context.Context, id uuid.UUID) (int, error) {
	followings, err := s.store.FindFollowingsBySource(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("count followings: %w", err)
	}
	return len(followings), nil
}

// FollowersCount returns how many accounts follow the given account.
func (s *FollowingService) FollowersCount(ctx context.Context, id uuid.UUID) (int, error) {
	followers, err := s.store.FindFollowingsByTarget(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("count followers: %w", err)
	}
	return len(followers), nil
}

// IsFollowing reports whether an edge exists from fromID to toID.
func (s *FollowingService) IsFollowing(ctx context.Context, fromID, toID uuid.UUID) (bool, error) {
	_, err := s.store.FindFollowingByPair(ctx, fromID, toID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("check following: %w", err)
	}
	return true, nil
}
