package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/oggyb/matchcore/internal/db"
	"github.com/oggyb/matchcore/internal/db/dbtest"
	"github.com/oggyb/matchcore/internal/repository"
)

func TestCreateOrUpdateDecision(t *testing.T) {
	ctx := context.Background()
	dbase := dbtest.New(t)
	repo := repository.NewDecisionRepository(dbase)

	// insert like
	require.NoError(t, repo.CreateOrUpdateDecision(ctx, 1, 2, true))

	// overwrite with pass
	require.NoError(t, repo.CreateOrUpdateDecision(ctx, 1, 2, false))

	var rows []db.Decision
	require.NoError(t, dbase.Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.False(t, rows[0].Liked)

	n, err := repo.CountDecisions(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestFindDecision(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewDecisionRepository(dbtest.New(t))

	d, err := repo.FindDecision(ctx, 1, 2)
	require.NoError(t, err)
	assert.Nil(t, d)

	require.NoError(t, repo.CreateOrUpdateDecision(ctx, 1, 2, true))
	d, err = repo.FindDecision(ctx, 1, 2)
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.True(t, d.Liked)

	// direction matters
	d, err = repo.FindDecision(ctx, 2, 1)
	require.NoError(t, err)
	assert.Nil(t, d)
}

func seedUsers(t *testing.T, gdb *gorm.DB, ids ...uint64) {
	t.Helper()
	for _, id := range ids {
		dbtest.SeedUser(t, gdb, db.User{ID: id})
	}
}

func TestGetLikersAndPagination(t *testing.T) {
	ctx := context.Background()
	gdb := dbtest.New(t)
	repo := repository.NewDecisionRepository(gdb)
	seedUsers(t, gdb, 1, 2, 99)

	// actors 1,2 liked recipient 99
	_ = repo.CreateOrUpdateDecision(ctx, 1, 99, true)
	_ = repo.CreateOrUpdateDecision(ctx, 2, 99, true)
	// recipient passed actor 2 → exclude
	_ = repo.CreateOrUpdateDecision(ctx, 99, 2, false)

	decisions, _, err := repo.GetLikers(ctx, 99, nil, 10)
	assert.NoError(t, err)
	assert.Len(t, decisions, 1)
	assert.Equal(t, uint64(1), decisions[0].ActorID)
}

func TestGetLikers_HidesSuspendedAndBlocked(t *testing.T) {
	ctx := context.Background()
	gdb := dbtest.New(t)
	repo := repository.NewDecisionRepository(gdb)
	blocks := repository.NewBlockRepository(gdb)

	seedUsers(t, gdb, 1, 2, 8, 9)
	dbtest.SeedUser(t, gdb, db.User{ID: 4, Suspended: true})

	for _, actor := range []uint64{2, 4, 8, 9} {
		require.NoError(t, repo.CreateOrUpdateDecision(ctx, actor, 1, true))
	}
	// 1 blocked 8, 9 blocked 1
	require.NoError(t, blocks.Create(ctx, 1, 8))
	require.NoError(t, blocks.Create(ctx, 9, 1))
	// a like from an account that no longer exists
	require.NoError(t, repo.CreateOrUpdateDecision(ctx, 77, 1, true))

	decisions, next, err := repo.GetLikers(ctx, 1, nil, 10)
	require.NoError(t, err)
	assert.Nil(t, next)
	require.Len(t, decisions, 1)
	assert.Equal(t, uint64(2), decisions[0].ActorID)

	fresh, _, err := repo.GetNewLikers(ctx, 1, nil, 10)
	require.NoError(t, err)
	require.Len(t, fresh, 1)
	assert.Equal(t, uint64(2), fresh[0].ActorID)

	n, err := repo.CountLikers(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestGetLikers_PagesWithCursor(t *testing.T) {
	ctx := context.Background()
	gdb := dbtest.New(t)
	repo := repository.NewDecisionRepository(gdb)
	seedUsers(t, gdb, 1, 2, 3, 50)

	for actor := uint64(1); actor <= 3; actor++ {
		require.NoError(t, repo.CreateOrUpdateDecision(ctx, actor, 50, true))
	}

	first, next, err := repo.GetLikers(ctx, 50, nil, 2)
	require.NoError(t, err)
	require.Len(t, first, 2)
	require.NotNil(t, next)

	second, next, err := repo.GetLikers(ctx, 50, next, 2)
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Nil(t, next)

	seen := map[uint64]bool{}
	for _, d := range append(first, second...) {
		seen[d.ActorID] = true
	}
	assert.Len(t, seen, 3)
}

func TestGetLikers_SameTimestampDoesNotSkipRows(t *testing.T) {
	ctx := context.Background()
	gdb := dbtest.New(t)
	repo := repository.NewDecisionRepository(gdb)
	seedUsers(t, gdb, 1, 2, 3, 4, 50)

	for actor := uint64(1); actor <= 4; actor++ {
		require.NoError(t, repo.CreateOrUpdateDecision(ctx, actor, 50, true))
	}
	stamp := db.NowFunc()
	require.NoError(t, gdb.Model(&db.Decision{}).Where("recipient_id = ?", 50).Update("updated_at", stamp).Error)

	var (
		token *string
		got   []uint64
	)
	for page := 0; page < 5; page++ {
		decisions, next, err := repo.GetLikers(ctx, 50, token, 1)
		require.NoError(t, err)
		for _, d := range decisions {
			got = append(got, d.ActorID)
		}
		if next == nil {
			break
		}
		token = next
	}
	assert.Equal(t, []uint64{4, 3, 2, 1}, got)
}

func TestGetNewLikers(t *testing.T) {
	ctx := context.Background()
	gdb := dbtest.New(t)
	repo := repository.NewDecisionRepository(gdb)
	seedUsers(t, gdb, 1, 2, 99)

	// actor 1 liked 99, and 99 liked back → mutual
	_ = repo.CreateOrUpdateDecision(ctx, 1, 99, true)
	_ = repo.CreateOrUpdateDecision(ctx, 99, 1, true)

	// actor 2 liked 99, but not mutual
	_ = repo.CreateOrUpdateDecision(ctx, 2, 99, true)

	decisions, _, err := repo.GetNewLikers(ctx, 99, nil, 10)
	assert.NoError(t, err)
	assert.Len(t, decisions, 1)
	assert.Equal(t, uint64(2), decisions[0].ActorID)
}

func TestLikedRecipients(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewDecisionRepository(dbtest.New(t))

	require.NoError(t, repo.CreateOrUpdateDecision(ctx, 1, 2, true))
	require.NoError(t, repo.CreateOrUpdateDecision(ctx, 1, 3, false))
	require.NoError(t, repo.CreateOrUpdateDecision(ctx, 1, 4, true))

	ids, err := repo.LikedRecipients(ctx, 1)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint64{2, 4}, ids)
}

func TestHasLiked(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewDecisionRepository(dbtest.New(t))

	_ = repo.CreateOrUpdateDecision(ctx, 1, 2, true)
	_ = repo.CreateOrUpdateDecision(ctx, 3, 2, false)

	liked, err := repo.HasLiked(ctx, 1, 2)
	require.NoError(t, err)
	assert.True(t, liked)

	liked, err = repo.HasLiked(ctx, 3, 2)
	require.NoError(t, err)
	assert.False(t, liked)
}
