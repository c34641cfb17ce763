// Package dbtest opens throwaway SQLite databases for package tests.
package dbtest

import (
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/oggyb/matchcore/internal/db"
)

// New spins up an in-memory SQLite DB named after the test and applies migrations.
// A single connection serializes access, so goroutines in a test interleave at
// statement granularity without "table is locked" errors.
func New(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		NowFunc:                db.NowFunc,
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := database.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.Migrate(database))
	return database
}

// SeedUser inserts a participant with sane defaults. Fields set on u win.
func SeedUser(t *testing.T, gdb *gorm.DB, u db.User) db.User {
	t.Helper()
	if u.Username == "" {
		u.Username = fmt.Sprintf("user%d", u.ID)
	}
	if u.PasswordHash == "" {
		u.PasswordHash = "x"
	}
	if u.Gender == "" {
		u.Gender = "male"
	}
	if u.Interests == nil {
		u.Interests = []string{"female", "male", "non_binary"}
	}
	if u.ClusterID == "" {
		u.ClusterID = "gta"
	}
	require.NoError(t, gdb.Create(&u).Error)
	return u
}

var photoSeq atomic.Uint64

// SeedPhoto gives a participant one photo so it passes the eligibility gate.
func SeedPhoto(t *testing.T, gdb *gorm.DB, ownerID uint64) {
	t.Helper()
	n := photoSeq.Add(1)
	p := db.Photo{
		ID:        fmt.Sprintf("photo-%d-%d", ownerID, n),
		OwnerID:   ownerID,
		Hash:      fmt.Sprintf("seed-%d-%d", ownerID, n),
		Type:      "primary",
		SizeBytes: 1,
	}
	require.NoError(t, gdb.Create(&p).Error)
}
