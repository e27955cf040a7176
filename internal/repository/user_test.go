package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-arcade/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-arcade/testing/suite"
)

func TestUserRepository_AddResult(t *testing.T) {
	ctx, conn := suite.NewSQLite(t)

	userRepo := NewUserRepository(conn)

	// Given: two results for the same user
	require.NoError(t, userRepo.AddResult(ctx, "u1", "ada", 20))
	require.NoError(t, userRepo.AddResult(ctx, "u1", "Ada L.", 30))

	// When: reading the user back
	user, err := userRepo.Find(ctx, "u1")

	// Then: totals are accumulated and the latest name is kept
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, "Ada L.", user.DisplayName)
	assert.Equal(t, 2, user.TotalGamesPlayed)
	assert.Equal(t, 50, user.TotalScore)
	assert.False(t, user.CreatedAt.IsZero())
}

func TestUserRepository_Find(t *testing.T) {
	ctx, conn := suite.NewSQLite(t)

	userRepo := NewUserRepository(conn)

	// When: looking for a user who never scored
	user, err := userRepo.Find(ctx, "ghost")

	// Then: ErrNotFound is returned
	require.ErrorIs(t, err, apperror.ErrNotFound)
	assert.Nil(t, user)
}
