package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gopress/gopress/models"
)

func TestLikePostRepositoryLifecycle(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLikePostRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	category := createTestCategory(t, db, "tech")
	post := createTestPost(t, db, "liked", alice.ID, category.ID)

	require.NoError(t, repo.Create(ctx, &models.LikePost{PostID: post.ID, UserID: alice.ID}))
	require.NoError(t, repo.Create(ctx, &models.LikePost{PostID: post.ID, UserID: bob.ID}))

	like, err := repo.FindByPostAndUser(ctx, post.ID, alice.ID)
	require.NoError(t, err)
	require.NotNil(t, like)
	assert.Equal(t, alice.ID, like.UserID)

	count, err := repo.CountByPost(ctx, post.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	likes, err := repo.ListByPost(ctx, post.ID)
	require.NoError(t, err)
	assert.Len(t, likes, 2)

	require.NoError(t, repo.DeleteByPostAndUser(ctx, post.ID, alice.ID))

	like, err = repo.FindByPostAndUser(ctx, post.ID, alice.ID)
	require.NoError(t, err)
	assert.Nil(t, like)

	count, err = repo.CountByPost(ctx, post.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}
