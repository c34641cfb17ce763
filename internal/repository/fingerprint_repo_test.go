package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oggyb/matchcore/internal/db/dbtest"
	svcErr "github.com/oggyb/matchcore/internal/errors"
	"github.com/oggyb/matchcore/internal/repository"
)

func TestRegisterIfAbsent_FirstWriterWins(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewFingerprintRepository(dbtest.New(t))
	now := time.Now()

	owner, created, err := repo.RegisterIfAbsent(ctx, "h1", 10, now)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, uint64(10), owner)

	owner, created, err = repo.RegisterIfAbsent(ctx, "h1", 20, now)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, uint64(10), owner)
}

func TestRegisterIfAbsent_StoreFailureIsInfrastructure(t *testing.T) {
	ctx := context.Background()
	gdb := dbtest.New(t)
	repo := repository.NewFingerprintRepository(gdb)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	_, _, err = repo.RegisterIfAbsent(ctx, "h1", 10, time.Now())
	require.Error(t, err)
	assert.True(t, svcErr.IsInfrastructure(err))
}

func TestRecordClaimConflict(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewFingerprintRepository(dbtest.New(t))

	require.NoError(t, repo.RecordClaimConflict(ctx, "h1", 10, 20))
	require.NoError(t, repo.RecordClaimConflict(ctx, "h2", 11, 20))

	n, err := repo.CountClaimConflicts(ctx, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}
