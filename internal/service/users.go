package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/feedline/backend/internal/auth"
	"github.com/feedline/backend/internal/models"
	"github.com/feedline/backend/internal/models/dto"
	"github.com/feedline/backend/internal/storage"
)

// AccountService handles registration, login, and account lifecycle.
type AccountService struct {
	store  storage.UserStore
	tokens *auth.TokenManager
}

// NewAccountService constructs the service.
func NewAccountService(store storage.UserStore, tokens *auth.TokenManager) *AccountService {
	return &AccountService{store: store, tokens: tokens}
}

// Register creates a new account with a hashed password. Usernames are
// unique case-insensitively; "alice" blocks a later "Alice".
func (s *AccountService) Register(ctx context.Context, req dto.RegisterRequest) (dto.PublicProfile, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return dto.PublicProfile{}, ErrMissingCredentials
	}
	if utf8.RuneCountInString(username) < 4 {
		return dto.PublicProfile{}, ErrUsernameTooShort
	}

	if _, err := s.store.FindUserByUsername(ctx, username); err == nil {
		return dto.PublicProfile{}, ErrUsernameTaken
	} else if !errors.Is(err, storage.ErrNotFound) {
		return dto.PublicProfile{}, fmt.Errorf("check username: %w", err)
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return dto.PublicProfile{}, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: passwordHash,
		Avatar:       strings.TrimSpace(req.Avatar),
		About:        req.About,
		CreatedAt:    time.Now().UTC(),
	}
	created, err := s.store.CreateUser(ctx, user)
	if err != nil {
		// The unique index is authoritative under concurrent registration.
		if errors.Is(err, storage.ErrAlreadyExists) {
			return dto.PublicProfile{}, ErrUsernameTaken
		}
		return dto.PublicProfile{}, fmt.Errorf("create user: %w", err)
	}
	return dto.NewPublicProfile(created), nil
}

// Authenticate verifies credentials and mints an access token. An unknown
// username and a wrong password return the identical error.
func (s *AccountService) Authenticate(ctx context.Context, username, password string) (string, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return "", ErrMissingCredentials
	}

	user, err := s.store.FindUserByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", ErrWrongCredentials
		}
		return "", fmt.Errorf("find user: %w", err)
	}
	if !auth.VerifyPassword(password, user.PasswordHash) {
		return "", ErrWrongCredentials
	}

	token, err := s.tokens.Issue(user.Username)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}

// Get returns the public profile for an account id.
func (s *AccountService) Get(ctx context.Context, id uuid.UUID) (dto.PublicProfile, error) {
	user, err := s.store.FindUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return dto.PublicProfile{}, &NotFoundError{Entity: "User", ID: id.String()}
		}
		return dto.PublicProfile{}, fmt.Errorf("find user: %w", err)
	}
	return dto.NewPublicProfile(user), nil
}

// GetByUsername returns the public profile for a username, case-insensitively.
func (s *AccountService) GetByUsername(ctx context.Context, username string) (dto.PublicProfile, error) {
	user, err := s.store.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return dto.PublicProfile{}, &NotFoundError{Entity: "User", ID: username}
		}
		return dto.PublicProfile{}, fmt.Errorf("find user: %w", err)
	}
	return dto.NewPublicProfile(user), nil
}

// List returns the public profiles of every account.
func (s *AccountService) List(ctx context.Context) ([]dto.PublicProfile, error) {
	users, err := s.store.FindAllUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return dto.NewPublicProfiles(users), nil
}

// Update applies a partial patch to an account. Absent fields keep their
// prior values; an empty password string means "not provided" and leaves
// the stored hash untouched.
func (s *AccountService) Update(ctx context.Context, id uuid.UUID, patch dto.UpdateUserRequest) (dto.PublicProfile, error) {
	user, err := s.store.FindUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return dto.PublicProfile{}, &NotFoundError{Entity: "User", ID: id.String()}
		}
		return dto.PublicProfile{}, fmt.Errorf("find user: %w", err)
	}

	if patch.Username != nil && strings.TrimSpace(*patch.Username) != "" {
		username := strings.TrimSpace(*patch.Username)
		if utf8.RuneCountInString(username) < 4 {
			return dto.PublicProfile{}, ErrUsernameTooShort
		}
		other, err := s.store.FindUserByUsername(ctx, username)
		switch {
		case err == nil && other.ID != user.ID:
			return dto.PublicProfile{}, ErrUsernameTaken
		case err != nil && !errors.Is(err, storage.ErrNotFound):
			return dto.PublicProfile{}, fmt.Errorf("check username: %w", err)
		}
		user.Username = username
	}
	if patch.Password != nil && *patch.Password != "" {
		passwordHash, err := auth.HashPassword(*patch.Password)
		if err != nil {
			return dto.PublicProfile{}, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = passwordHash
	}
	if patch.Avatar != nil {
		user.Avatar = strings.TrimSpace(*patch.Avatar)
	}
	if patch.About != nil {
		user.About = *patch.About
	}

	updated, err := s.store.UpdateUser(ctx, user)
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return dto.PublicProfile{}, ErrUsernameTaken
		}
		return dto.PublicProfile{}, fmt.Errorf("update user: %w", err)
	}
	return dto.NewPublicProfile(updated), nil
}

// Delete removes an account. The store cascades to owned posts and
// follow edges.
func (s *AccountService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.store.FindUserByID(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return &NotFoundError{Entity: "User", ID: id.String()}
		}
		return fmt.Errorf("find user: %w", err)
	}
	if err := s.store.DeleteUser(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
