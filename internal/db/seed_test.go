package db_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oggyb/matchcore/internal/db"
	"github.com/oggyb/matchcore/internal/db/dbtest"
	"github.com/oggyb/matchcore/internal/logger"
)

func TestSeedTestData(t *testing.T) {
	gdb := dbtest.New(t)

	// running twice must start from a clean slate each time
	require.NoError(t, db.SeedTestData(gdb, logger.Discard()))
	require.NoError(t, db.SeedTestData(gdb, logger.Discard()))

	var users, photos, fingerprints int64
	require.NoError(t, gdb.Model(&db.User{}).Count(&users).Error)
	require.NoError(t, gdb.Model(&db.Photo{}).Count(&photos).Error)
	require.NoError(t, gdb.Model(&db.ContentFingerprint{}).Count(&fingerprints).Error)
	assert.Equal(t, int64(24), users)
	assert.Equal(t, users, photos)
	assert.Equal(t, users, fingerprints)

	// every match is backed by two likes
	var matches []db.Match
	require.NoError(t, gdb.Find(&matches).Error)
	assert.NotEmpty(t, matches)
	for _, m := range matches {
		var likes int64
		require.NoError(t, gdb.Model(&db.Decision{}).
			Where("((actor_id = ? AND recipient_id = ?) OR (actor_id = ? AND recipient_id = ?)) AND liked = ?",
				m.UserLowID, m.UserHighID, m.UserHighID, m.UserLowID, true).
			Count(&likes).Error)
		assert.Equal(t, int64(2), likes, "match %s", m.ID)
	}
}
