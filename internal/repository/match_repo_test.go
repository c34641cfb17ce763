package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/oggyb/matchcore/internal/db/dbtest"
	"github.com/oggyb/matchcore/internal/pairkey"
	"github.com/oggyb/matchcore/internal/repository"
)

func TestInsertMatchIfAbsent_SecondInsertIsConflict(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMatchRepository(dbtest.New(t))

	first, created, err := repo.InsertMatchIfAbsent(ctx, pairkey.Canonical(5, 3))
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotEmpty(t, first.ID)

	second, created, err := repo.InsertMatchIfAbsent(ctx, pairkey.Canonical(3, 5))
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)

	n, err := repo.CountForPair(ctx, 5, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestInsertMatchIfAbsent_RetriesWhenConflictingRowVanishes(t *testing.T) {
	ctx := context.Background()
	gdb := dbtest.New(t)
	repo := repository.NewMatchRepository(gdb)

	old, created, err := repo.InsertMatchIfAbsent(ctx, pairkey.Canonical(1, 2))
	require.NoError(t, err)
	require.True(t, created)

	// unmatch lands right after the next insert hits the conflict
	fired := false
	require.NoError(t, gdb.Callback().Create().After("gorm:create").Register("test:unmatch_race", func(tx *gorm.DB) {
		if fired || tx.Statement.Table != "matches" {
			return
		}
		fired = true
		require.NoError(t, gdb.Exec("DELETE FROM matches WHERE id = ?", old.ID).Error)
	}))

	m, created, err := repo.InsertMatchIfAbsent(ctx, pairkey.Canonical(2, 1))
	require.NoError(t, err)
	assert.True(t, fired)
	assert.True(t, created)
	assert.NotEmpty(t, m.ID)
	assert.NotEqual(t, old.ID, m.ID)

	n, err := repo.CountForPair(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestDeleteMatch_ThenReinsertGetsNewID(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMatchRepository(dbtest.New(t))

	m, _, err := repo.InsertMatchIfAbsent(ctx, pairkey.Canonical(1, 2))
	require.NoError(t, err)

	deleted, err := repo.DeleteMatch(ctx, m.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.DeleteMatch(ctx, m.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	again, created, err := repo.InsertMatchIfAbsent(ctx, pairkey.Canonical(2, 1))
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotEqual(t, m.ID, again.ID)
}

func TestFindMatch(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMatchRepository(dbtest.New(t))

	missing, err := repo.FindByParticipants(ctx, 1, 2)
	require.NoError(t, err)
	assert.Nil(t, missing)

	m, _, err := repo.InsertMatchIfAbsent(ctx, pairkey.Canonical(1, 2))
	require.NoError(t, err)

	byPair, err := repo.FindByParticipants(ctx, 2, 1)
	require.NoError(t, err)
	require.NotNil(t, byPair)
	assert.Equal(t, m.ID, byPair.ID)

	byID, err := repo.FindByID(ctx, m.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, uint64(1), byID.UserLowID)

	list, err := repo.ListForUser(ctx, 2, 10)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
