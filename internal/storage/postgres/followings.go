package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/feedline/backend/internal/models"
	"github.com/feedline/backend/internal/storage"
)

// CreateFollowing inserts a follow edge. A duplicate ordered pair surfaces
// as storage.ErrAlreadyExists via the unique (from_id, to_id) index.
func (s *Store) CreateFollowing(ctx context.Context, following models.Following) (models.Following, error) {
	const query = `
	INSERT INTO followings (id, from_id, to_id)
	VALUES ($1, $2, $3)
	RETURNING id, from_id, to_id;
	`
	row := s.pool.QueryRow(ctx, query, following.ID, following.FromID, following.ToID)
	created, err := scanFollowing(row)
	if err != nil {
		if isUniqueViolation(err) {
			return models.Following{}, storage.ErrAlreadyExists
		}
		return models.Following{}, err
	}
	return created, nil
}

// FindFollowingByPair fetches the edge for an ordered (from, to) pair.
func (s *Store) FindFollowingByPair(ctx context.Context, fromID, toID uuid.UUID) (models.Following, error) {
	const query = `
	SELECT id, from_id, to_id FROM followings
	WHERE from_id = $1 AND to_id = $2;
	`
	return scanFollowing(s.pool.QueryRow(ctx, query, fromID, toID))
}

// FindFollowingsBySource lists edges where fromID is the follower.
func (s *Store) FindFollowingsBySource(ctx context.Context, fromID uuid.UUID) ([]models.Following, error) {
	const query = `SELECT id, from_id, to_id FROM followings WHERE from_id = $1;`
	return s.queryFollowings(ctx, query, fromID)
}

// FindFollowingsByTarget lists edges where toID is the one being followed.
func (s *Store) FindFollowingsByTarget(ctx context.Context, toID uuid.UUID) ([]models.Following, error) {
	const query = `SELECT id, from_id, to_id FROM followings WHERE to_id = $1;`
	return s.queryFollowings(ctx, query, toID)
}

// DeleteFollowing removes a follow edge by id.
func (s *Store) DeleteFollowing(ctx context.Context, id uuid.UUID) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM followings WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (s *Store) queryFollowings(ctx context.Context, query string, arg any) ([]models.Following, error) {
	rows, err := s.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var followings []models.Following
	for rows.Next() {
		following, err := scanFollowing(rows)
		if err != nil {
			return nil, err
		}
		followings = append(followings, following)
	}
	return followings, rows.Err()
}

func scanFollowing(row pgx.Row) (models.Following, error) {
	var following models.Following
	if err := row.Scan(&following.ID, &following.FromID, &following.ToID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Following{}, storage.ErrNotFound
		}
		return models.Following{}, err
	}
	return following, nil
}
