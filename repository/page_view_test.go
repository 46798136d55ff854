package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageViewRepositoryIncrement(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPageViewRepository(db)
	ctx := context.Background()

	pv, err := repo.Increment(ctx, "about")
	require.NoError(t, err)
	require.NotNil(t, pv)
	assert.EqualValues(t, 1, pv.Count)

	pv, err = repo.Increment(ctx, "about")
	require.NoError(t, err)
	require.NotNil(t, pv)
	assert.EqualValues(t, 2, pv.Count)

	// A different page keeps its own counter.
	pv, err = repo.Increment(ctx, "contact")
	require.NoError(t, err)
	assert.EqualValues(t, 1, pv.Count)

	pv, err = repo.Find(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, pv)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
