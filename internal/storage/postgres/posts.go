package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/feedline/backend/internal/models"
	"github.com/feedline/backend/internal/storage"
)

// CreatePost inserts a new post row.
func (s *Store) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	const query = `
	INSERT INTO posts (id, author_id, text, created_at, edited)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING id, author_id, text, created_at, edited;
	`
	row := s.pool.QueryRow(ctx, query, post.ID, post.AuthorID, post.Text, post.CreatedAt, post.Edited)
	return scanPost(row)
}

// FindPostByID fetches a post by primary key.
func (s *Store) FindPostByID(ctx context.Context, id uuid.UUID) (models.Post, error) {
	const query = `
	SELECT id, author_id, text, created_at, edited FROM posts WHERE id = $1;
	`
	return scanPost(s.pool.QueryRow(ctx, query, id))
}

// FindPostsByAuthor lists an author's posts, newest first.
func (s *Store) FindPostsByAuthor(ctx context.Context, authorID uuid.UUID) ([]models.Post, error) {
	const query = `
	SELECT id, author_id, text, created_at, edited FROM posts
	WHERE author_id = $1 ORDER BY created_at DESC;
	`
	rows, err := s.pool.Query(ctx, query, authorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []models.Post
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}

// UpdatePost overwrites the mutable columns of a post row.
func (s *Store) UpdatePost(ctx context.Context, post models.Post) (models.Post, error) {
	const query = `
	UPDATE posts SET text = $2, edited = $3
	WHERE id = $1
	RETURNING id, author_id, text, created_at, edited;
	`
	return scanPost(s.pool.QueryRow(ctx, query, post.ID, post.Text, post.Edited))
}

// DeletePost removes a post row.
func (s *Store) DeletePost(ctx context.Context, id uuid.UUID) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func scanPost(row pgx.Row) (models.Post, error) {
	var post models.Post
	err := row.Scan(&post.ID, &post.AuthorID, &post.Text, &post.CreatedAt, &post.Edited)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Post{}, storage.ErrNotFound
		}
		return models.Post{}, err
	}
	return post, nil
}
