package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feedline/backend/internal/storage/memory"
)

func TestFollowSelf(t *testing.T) {
	t.Parallel()

	followings := NewFollowingService(memory.New())
	a := uuid.New()

	assert.ErrorIs(t, followings.Follow(context.Background(), a, a), ErrSelfFollow)
}

func TestFollowDuplicate(t *testing.T) {
	t.Parallel()

	followings := NewFollowingService(memory.New())
	ctx := context.Background()
	a, b := uuid.New(), uuid.New()

	require.NoError(t, followings.Follow(ctx, a, b))
	assert.ErrorIs(t, followings.Follow(ctx, a, b), ErrAlreadyFollowing)

	count, err := followings.FollowingsCount(ctx, a)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestFollowCounts(t *testing.T) {
	t.Parallel()

	followings := NewFollowingService(memory.New())
	ctx := context.Background()
	a, b, c := uuid.New(), uuid.New(), uuid.New()

	require.NoError(t, followings.Follow(ctx, a, b))
	require.NoError(t, followings.Follow(ctx, c, b))

	followers, err := followings.FollowersCount(ctx, b)
	require.NoError(t, err)
	assert.Equal(t, 2, followers)

	count, err := followings.FollowingsCount(ctx, b)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestUnfollow(t *testing.T) {
	t.Parallel()

	followings := NewFollowingService(memory.New())
	ctx := context.Background()
	a, b := uuid.New(), uuid.New()

	assert.ErrorIs(t, followings.Unfollow(ctx, a, b), ErrNotFollowing)

	require.NoError(t, followings.Follow(ctx, a, b))
	following, err := followings.IsFollowing(ctx, a, b)
	require.NoError(t, err)
	assert.True(t, following)

	require.NoError(t, followings.Unfollow(ctx, a, b))
	following, err = followings.IsFollowing(ctx, a, b)
	require.NoError(t, err)
	assert.False(t, following)

	count, err := followings.FollowingsCount(ctx, a)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestFollowIsDirected(t *testing.T) {
	t.Parallel()

	followings := NewFollowingService(memory.New())
	ctx := context.Background()
	a, b := uuid.New(), uuid.New()

	require.NoError(t, followings.Follow(ctx, a, b))

	// The reverse edge does not exist and can still be created.
	following, err := followings.IsFollowing(ctx, b, a)
	require.NoError(t, err)
	assert.False(t, following)
	assert.NoError(t, followings.Follow(ctx, b, a))
}
