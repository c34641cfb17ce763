package safety_test

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/oggyb/matchcore/internal/app/apptest"
	"github.com/oggyb/matchcore/internal/db"
	"github.com/oggyb/matchcore/internal/db/dbtest"
	svcErr "github.com/oggyb/matchcore/internal/errors"
	pb "github.com/oggyb/matchcore/internal/proto/safety"
	"github.com/oggyb/matchcore/internal/service/safety"
)

func TestFileReport_SuspendsAtThreshold(t *testing.T) {
	appCtx, _ := apptest.New(t)
	svc := safety.NewSafetyService(appCtx)
	ctx := context.Background()
	for id := uint64(1); id <= 4; id++ {
		dbtest.SeedUser(t, appCtx.DB, db.User{ID: id})
	}

	for reporter := 1; reporter <= 3; reporter++ {
		resp, err := svc.FileReport(ctx, &pb.FileReportRequest{
			ReporterUserId: strconv.Itoa(reporter),
			TargetUserId:   "4",
			Reason:         "fake_profile",
		})
		require.NoError(t, err)
		assert.True(t, resp.Accepted)
		assert.NotEmpty(t, resp.ReportId)
	}

	var target db.User
	require.NoError(t, appCtx.DB.First(&target, 4).Error)
	assert.True(t, target.Suspended)
	assert.Equal(t, int64(3), target.ReportCount)
}

func TestFileReport_SuspensionDropsCachedLikerCounts(t *testing.T) {
	appCtx, _ := apptest.New(t)
	svc := safety.NewSafetyService(appCtx)
	ctx := context.Background()
	for id := uint64(1); id <= 3; id++ {
		dbtest.SeedUser(t, appCtx.DB, db.User{ID: id})
	}
	require.NoError(t, appCtx.DB.Create(&db.Decision{ActorID: 3, RecipientID: 1, Liked: true}).Error)
	require.NoError(t, appCtx.RedisCache.SetLikeCount(ctx, 1, 1))

	for i := 0; i < 2; i++ {
		_, err := svc.FileReport(ctx, &pb.FileReportRequest{ReporterUserId: "2", TargetUserId: "3", Reason: "spam"})
		require.NoError(t, err)
	}
	_, ok, err := appCtx.RedisCache.GetLikeCount(ctx, 1)
	require.NoError(t, err)
	assert.True(t, ok, "not suspended yet")

	_, err = svc.FileReport(ctx, &pb.FileReportRequest{ReporterUserId: "2", TargetUserId: "3", Reason: "spam"})
	require.NoError(t, err)

	_, ok, err = appCtx.RedisCache.GetLikeCount(ctx, 1)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileReport_Rejections(t *testing.T) {
	appCtx, _ := apptest.New(t)
	svc := safety.NewSafetyService(appCtx)
	ctx := context.Background()
	dbtest.SeedUser(t, appCtx.DB, db.User{ID: 1})

	_, err := svc.FileReport(ctx, &pb.FileReportRequest{ReporterUserId: "1", TargetUserId: "1", Reason: "spam"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	assert.Equal(t, "INVALID_TARGET", svcErr.ReasonOf(err))

	_, err = svc.FileReport(ctx, &pb.FileReportRequest{ReporterUserId: "2", TargetUserId: "1", Reason: "annoying"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	assert.Equal(t, "INVALID_REASON", svcErr.ReasonOf(err))

	_, err = svc.FileReport(ctx, &pb.FileReportRequest{ReporterUserId: "x", TargetUserId: "1", Reason: "spam"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}
