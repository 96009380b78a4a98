// Package memory provides map-backed implementations of the storage
// interfaces. It mirrors the semantics of the Postgres store, including
// uniqueness conflicts and cascading deletes, and is used by tests that
// don't need a live database.
package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/feedline/backend/internal/models"
	"github.com/feedline/backend/internal/storage"
)

var (
	_ storage.UserStore      = (*Store)(nil)
	_ storage.FollowingStore = (*Store)(nil)
	_ storage.PostStore      = (*Store)(nil)
)

// Store keeps all records in memory, guarded by a single mutex.
type Store struct {
	mu         sync.RWMutex
	users      map[uuid.UUID]models.User
	followings map[uuid.UUID]models.Following
	posts      map[uuid.UUID]models.Post
}

// New returns an empty in-memory store.
func New() *Store {
	return &Store{
		users:      make(map[uuid.UUID]models.User),
		followings: make(map[uuid.UUID]models.Following),
		posts:      make(map[uuid.UUID]models.Post),
	}
}

// CreateUser inserts a user, enforcing case-insensitive username uniqueness.
func (s *Store) CreateUser(_ context.Context, user models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if strings.EqualFold(existing.Username, user.Username) {
			return models.User{}, storage.ErrAlreadyExists
		}
	}
	s.users[user.ID] = user
	return user, nil
}

// FindUserByID fetches a user by id.
func (s *Store) FindUserByID(_ context.Context, id uuid.UUID) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[id]
	if !ok {
		return models.User{}, storage.ErrNotFound
	}
	return user, nil
}

// FindUserByUsername fetches a user by username, case-insensitively.
func (s *Store) FindUserByUsername(_ context.Context, username string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, user := range s.users {
		if strings.EqualFold(user.Username, username) {
			return user, nil
		}
	}
	return models.User{}, storage.ErrNotFound
}

// FindAllUsers lists every user.
func (s *Store) FindAllUsers(_ context.Context) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	users := make([]models.User, 0, len(s.users))
	for _, user := range s.users {
		users = append(users, user)
	}
	return users, nil
}

// UpdateUser overwrites a user record, enforcing username uniqueness
// against other accounts.
func (s *Store) UpdateUser(_ context.Context, user models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[user.ID]; !ok {
		return models.User{}, storage.ErrNotFound
	}
	for id, existing := range s.users {
		if id != user.ID && strings.EqualFold(existing.Username, user.Username) {
			return models.User{}, storage.ErrAlreadyExists
		}
	}
	s.users[user.ID] = user
	return user, nil
}

// DeleteUser removes a user and cascades to their posts and followings.
func (s *Store) DeleteUser(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.users, id)
	for fid, following := range s.followings {
		if following.FromID == id || following.ToID == id {
			delete(s.followings, fid)
		}
	}
	for pid, post := range s.posts {
		if post.AuthorID == id {
			delete(s.posts, pid)
		}
	}
	return nil
}

// CreateFollowing inserts a follow edge, enforcing ordered-pair uniqueness.
func (s *Store) CreateFollowing(_ context.Context, following models.Following) (models.Following, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.followings {
		if existing.FromID == following.FromID && existing.ToID == following.ToID {
			return models.Following{}, storage.ErrAlreadyExists
		}
	}
	s.followings[following.ID] = following
	return following, nil
}

// FindFollowingByPair fetches the edge for an ordered (from, to) pair.
func (s *Store) FindFollowingByPair(_ context.Context, fromID, toID uuid.UUID) (models.Following, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, following := range s.followings {
		if following.FromID == fromID && following.ToID == toID {
			return following, nil
		}
	}
	return models.Following{}, storage.ErrNotFound
}

// FindFollowingsBySource lists edges originating from fromID.
func (s *Store) FindFollowingsBySource(_ context.Context, fromID uuid.UUID) ([]models.Following, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var followings []models.Following
	for _, following := range s.followings {
		if following.FromID == fromID {
			followings = append(followings, following)
		}
	}
	return followings, nil
}

// FindFollowingsByTarget lists edges pointing at toID.
func (s *Store) FindFollowingsByTarget(_ context.Context, toID uuid.UUID) ([]models.Following, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var followings []models.Following
	for _, following := range s.followings {
		if following.ToID == toID {
			followings = append(followings, following)
		}
	}
	return followings, nil
}

// DeleteFollowing removes a follow edge by id.
func (s *Store) DeleteFollowing(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.followings[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.followings, id)
	return nil
}

// CreatePost inserts a post.
func (s *Store) CreatePost(_ context.Context, post models.Post) (models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts[post.ID] = post
	return post, nil
}

// FindPostByID fetches a post by id.
func (s *Store) FindPostByID(_ context.Context, id uuid.UUID) (models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	post, ok := s.posts[id]
	if !ok {
		return models.Post{}, storage.ErrNotFound
	}
	return post, nil
}

// FindPostsByAuthor lists an author's posts.
func (s *Store) FindPostsByAuthor(_ context.Context, authorID uuid.UUID) ([]models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var posts []models.Post
	for _, post := range s.posts {
		if post.AuthorID == authorID {
			posts = append(posts, post)
		}
	}
	return posts, nil
}

// UpdatePost overwrites a post record.
func (s *Store) UpdatePost(_ context.Context, post models.Post) (models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.posts[post.ID]; !ok {
		return models.Post{}, storage.ErrNotFound
	}
	s.posts[post.ID] = post
	return post, nil
}

// DeletePost removes a post by id.
func (s *Store) DeletePost(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.posts[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.posts, id)
	return nil
}
