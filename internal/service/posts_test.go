package service

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feedline/backend/internal/models/dto"
	"github.com/feedline/backend/internal/storage/memory"
)

func TestCreatePost(t *testing.T) {
	t.Parallel()

	posts := NewPostService(memory.New())
	ctx := context.Background()
	author := uuid.New()

	post, err := posts.Create(ctx, author, dto.CreatePostRequest{Text: "hello"})
	require.NoError(t, err)
	assert.Equal(t, author, post.AuthorID)
	assert.Equal(t, "hello", post.Text)
	assert.False(t, post.Edited)
}

func TestCreatePostTextBounds(t *testing.T) {
	t.Parallel()

	posts := NewPostService(memory.New())
	ctx := context.Background()
	author := uuid.New()

	_, err := posts.Create(ctx, author, dto.CreatePostRequest{Text: ""})
	assert.ErrorIs(t, err, ErrTextTooLong)

	_, err = posts.Create(ctx, author, dto.CreatePostRequest{Text: strings.Repeat("a", 257)})
	assert.ErrorIs(t, err, ErrTextTooLong)

	_, err = posts.Create(ctx, author, dto.CreatePostRequest{Text: strings.Repeat("a", 256)})
	assert.NoError(t, err)
}

func TestUpdatePostOwnership(t *testing.T) {
	t.Parallel()

	posts := NewPostService(memory.New())
	ctx := context.Background()
	owner, stranger := uuid.New(), uuid.New()

	post, err := posts.Create(ctx, owner, dto.CreatePostRequest{Text: "original"})
	require.NoError(t, err)

	text := "edited"
	_, err = posts.Update(ctx, post.ID, stranger, dto.UpdatePostRequest{Text: &text})
	assert.ErrorIs(t, err, ErrCantDoThis)

	updated, err := posts.Update(ctx, post.ID, owner, dto.UpdatePostRequest{Text: &text})
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Text)
	assert.True(t, updated.Edited)
}

func TestDeletePostOwnership(t *testing.T) {
	t.Parallel()

	posts := NewPostService(memory.New())
	ctx := context.Background()
	owner, stranger := uuid.New(), uuid.New()

	post, err := posts.Create(ctx, owner, dto.CreatePostRequest{Text: "hello"})
	require.NoError(t, err)

	assert.ErrorIs(t, posts.Delete(ctx, post.ID, stranger), ErrCantDoThis)
	require.NoError(t, posts.Delete(ctx, post.ID, owner))

	var notFound *NotFoundError
	_, err = posts.Get(ctx, post.ID)
	assert.ErrorAs(t, err, &notFound)
}

func TestAuthorize(t *testing.T) {
	t.Parallel()

	a, b := uuid.New(), uuid.New()
	assert.NoError(t, Authorize(a, a))
	assert.ErrorIs(t, Authorize(a, b), ErrCantDoThis)
}
