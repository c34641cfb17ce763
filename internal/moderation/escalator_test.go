package moderation_test

import (
	"context"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/oggyb/matchcore/internal/db"
	"github.com/oggyb/matchcore/internal/db/dbtest"
	"github.com/oggyb/matchcore/internal/domain"
	svcErr "github.com/oggyb/matchcore/internal/errors"
	"github.com/oggyb/matchcore/internal/logger"
	"github.com/oggyb/matchcore/internal/metrics"
	"github.com/oggyb/matchcore/internal/moderation"
	"github.com/oggyb/matchcore/internal/repository"
)

func setupEscalator(t *testing.T) (*moderation.Escalator, *gorm.DB, *metrics.Metrics) {
	t.Helper()
	gdb := dbtest.New(t)
	for id := uint64(1); id <= 5; id++ {
		dbtest.SeedUser(t, gdb, db.User{ID: id})
	}
	m := metrics.New()
	esc := moderation.NewEscalator(
		repository.NewReportRepository(gdb),
		repository.NewUserRepository(gdb),
		logger.Discard(),
		m,
	)
	return esc, gdb, m
}

func suspended(t *testing.T, gdb *gorm.DB, id uint64) bool {
	t.Helper()
	var u db.User
	require.NoError(t, gdb.First(&u, id).Error)
	return u.Suspended
}

func TestFileReport_ThresholdIsOneWayAndOnce(t *testing.T) {
	esc, gdb, m := setupEscalator(t)
	ctx := context.Background()
	const target = 5

	for reporter := uint64(1); reporter <= 2; reporter++ {
		out, err := esc.FileReport(ctx, reporter, target, domain.ReasonSpam, "")
		require.NoError(t, err)
		assert.True(t, out.Accepted)
		assert.False(t, out.SuspensionTriggered)
	}
	assert.False(t, suspended(t, gdb, target))

	out, err := esc.FileReport(ctx, 3, target, domain.ReasonHarassment, "rude messages")
	require.NoError(t, err)
	assert.True(t, out.SuspensionTriggered)
	assert.Equal(t, int64(3), out.ReportCount)
	assert.True(t, suspended(t, gdb, target))

	out, err = esc.FileReport(ctx, 4, target, domain.ReasonOther, "")
	require.NoError(t, err)
	assert.True(t, out.Accepted)
	assert.False(t, out.SuspensionTriggered)
	assert.True(t, suspended(t, gdb, target))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Suspensions))
}

func TestFileReport_RepeatReporterCountsEveryReport(t *testing.T) {
	esc, gdb, _ := setupEscalator(t)
	ctx := context.Background()

	for i := 1; i <= 2; i++ {
		out, err := esc.FileReport(ctx, 1, 5, domain.ReasonSpam, "")
		require.NoError(t, err)
		assert.Equal(t, int64(i), out.ReportCount)
		assert.False(t, out.SuspensionTriggered)
	}
	assert.False(t, suspended(t, gdb, 5))

	out, err := esc.FileReport(ctx, 1, 5, domain.ReasonSpam, "")
	require.NoError(t, err)
	assert.Equal(t, int64(3), out.ReportCount)
	assert.True(t, out.SuspensionTriggered)
	assert.True(t, suspended(t, gdb, 5))

	var u db.User
	require.NoError(t, gdb.First(&u, 5).Error)
	assert.Equal(t, int64(3), u.ReportCount)
}

func TestFileReport_Rejections(t *testing.T) {
	esc, gdb, _ := setupEscalator(t)
	ctx := context.Background()

	_, err := esc.FileReport(ctx, 1, 1, domain.ReasonSpam, "")
	assert.ErrorIs(t, err, svcErr.ErrInvalidTarget)

	_, err = esc.FileReport(ctx, 1, 2, domain.ReportReason("rude"), "")
	assert.ErrorIs(t, err, svcErr.ErrInvalidReason)

	_, err = esc.FileReport(ctx, 1, 99, domain.ReasonSpam, "")
	assert.ErrorIs(t, err, svcErr.ErrNotFound)

	// reporters must be real accounts too
	_, err = esc.FileReport(ctx, 98, 2, domain.ReasonSpam, "")
	assert.ErrorIs(t, err, svcErr.ErrNotFound)

	var n int64
	require.NoError(t, gdb.Model(&db.Report{}).Count(&n).Error)
	assert.Zero(t, n)

	_, err = esc.FileReport(ctx, 1, 2, domain.ReasonSpam, strings.Repeat("x", moderation.MaxDetailsLength+1))
	assert.ErrorIs(t, err, svcErr.ErrContentTooLarge)
}
