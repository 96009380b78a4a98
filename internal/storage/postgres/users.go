package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/feedline/backend/internal/models"
	"github.com/feedline/backend/internal/storage"
)

// CreateUser inserts a new user row.
func (s *Store) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	const query = `
	INSERT INTO users (id, username, password_hash, avatar, about)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING id, username, password_hash, avatar, about, created_at;
	`
	row := s.pool.QueryRow(ctx, query, user.ID, user.Username, user.PasswordHash, user.Avatar, user.About)
	created, err := scanUser(row)
	if err != nil {
		if isUniqueViolation(err) {
			return models.User{}, storage.ErrAlreadyExists
		}
		return models.User{}, err
	}
	return created, nil
}

// FindUserByID fetches a user by primary key.
func (s *Store) FindUserByID(ctx context.Context, id uuid.UUID) (models.User, error) {
	const query = `
	SELECT id, username, password_hash, avatar, about, created_at
	FROM users WHERE id = $1;
	`
	return scanUser(s.pool.QueryRow(ctx, query, id))
}

// FindUserByUsername fetches a user by username, case-insensitively.
func (s *Store) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	const query = `
	SELECT id, username, password_hash, avatar, about, created_at
	FROM users WHERE LOWER(username) = LOWER($1);
	`
	return scanUser(s.pool.QueryRow(ctx, query, username))
}

// FindAllUsers lists every user, newest first.
func (s *Store) FindAllUsers(ctx context.Context) ([]models.User, error) {
	const query = `
	SELECT id, username, password_hash, avatar, about, created_at
	FROM users ORDER BY created_at DESC;
	`
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

// UpdateUser overwrites the mutable columns of a user row.
func (s *Store) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	const query = `
	UPDATE users SET username = $2, password_hash = $3, avatar = $4, about = $5
	WHERE id = $1
	RETURNING id, username, password_hash, avatar, about, created_at;
	`
	row := s.pool.QueryRow(ctx, query, user.ID, user.Username, user.PasswordHash, user.Avatar, user.About)
	updated, err := scanUser(row)
	if err != nil {
		if isUniqueViolation(err) {
			return models.User{}, storage.ErrAlreadyExists
		}
		return models.User{}, err
	}
	return updated, nil
}

// DeleteUser removes a user row; dependent posts and followings cascade.
func (s *Store) DeleteUser(ctx context.Context, id uuid.UUID) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM users WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func scanUser(row pgx.Row) (models.User, error) {
	var user models.User
	err := row.Scan(&user.ID, &user.Username, &user.PasswordHash, &user.Avatar, &user.About, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.User{}, storage.ErrNotFound
		}
		return models.User{}, err
	}
	return user, nil
}
