package explore_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"gorm.io/gorm"

	"github.com/oggyb/matchcore/internal/app/apptest"
	"github.com/oggyb/matchcore/internal/config"
	"github.com/oggyb/matchcore/internal/db"
	"github.com/oggyb/matchcore/internal/db/dbtest"
	svcErr "github.com/oggyb/matchcore/internal/errors"
	pb "github.com/oggyb/matchcore/internal/proto/explore"
	"github.com/oggyb/matchcore/internal/service/explore"
)

//
// Test helpers
//

// SeedMinimalTestData inserts a minimal, deterministic dataset for repeatable
// service tests.
//
// Dataset (everyone in gta with a photo unless noted):
//   - user1 male → women; user2, user3, user4, user8, user9 female → men
//   - user5 female → men, but in ottawa
//   - user6 female → women
//   - user7 female → men, no photo
//   - Decisions:
//   - user1 → user2 = like
//   - user2 → user1 = like (mutual with above, no match row yet)
//   - user3 → user1 = like (but excluded later because user1 → user3 = pass)
//   - user1 → user3 = pass
func SeedMinimalTestData(t *testing.T, gdb *gorm.DB) {
	t.Helper()

	dbtest.SeedUser(t, gdb, db.User{ID: 1, Gender: "male", Interests: []string{"female"}})
	for _, id := range []uint64{2, 3, 4, 8, 9} {
		dbtest.SeedUser(t, gdb, db.User{ID: id, Gender: "female", Interests: []string{"male"}})
	}
	dbtest.SeedUser(t, gdb, db.User{ID: 5, Gender: "female", Interests: []string{"male"}, ClusterID: "ottawa"})
	dbtest.SeedUser(t, gdb, db.User{ID: 6, Gender: "female", Interests: []string{"female"}})
	dbtest.SeedUser(t, gdb, db.User{ID: 7, Gender: "female", Interests: []string{"male"}})
	for _, id := range []uint64{1, 2, 3, 4, 5, 6, 8, 9} {
		dbtest.SeedPhoto(t, gdb, id)
	}

	decisions := []db.Decision{
		{ActorID: 1, RecipientID: 2, Liked: true},  // user1 → user2
		{ActorID: 2, RecipientID: 1, Liked: true},  // user2 → user1 (mutual with above)
		{ActorID: 3, RecipientID: 1, Liked: true},  // user3 → user1 (excluded later)
		{ActorID: 1, RecipientID: 3, Liked: false}, // user1 → user3 (pass)
	}
	require.NoError(t, gdb.Create(&decisions).Error)
}

// setupService wires in-memory SQLite and miniredis into an ExploreService and
// seeds the minimal dataset. Each test gets its own isolated DB + Redis.
func setupService(t *testing.T, tweak ...func(*config.Config)) *explore.Service {
	t.Helper()

	appCtx, _ := apptest.New(t, tweak...)
	SeedMinimalTestData(t, appCtx.DB)
	return explore.NewExploreService(appCtx)
}

func requireReason(t *testing.T, err error, code codes.Code, reason string) {
	t.Helper()
	require.Error(t, err)
	assert.Equal(t, code, status.Code(err))
	assert.Equal(t, reason, svcErr.ReasonOf(err))
}

//
// Tests
//

// TestPutDecisionAndMutualLike ensures that a mutual like creates a match
// when user2 likes back user1, who already liked user2 in the seed dataset.
func TestPutDecisionAndMutualLike(t *testing.T) {
	ctx := context.Background()
	svc := setupService(t)

	resp, err := svc.PutDecision(ctx, &pb.PutDecisionRequest{
		ActorUserId:     "2",
		RecipientUserId: "1",
		LikedRecipient:  true,
	})
	require.NoError(t, err)

	// mutual like confirmed (1 ↔ 2)
	assert.True(t, resp.MutualLikes)
	require.NotEmpty(t, resp.MatchId)

	// the retry reports the same match
	again, err := svc.PutDecision(ctx, &pb.PutDecisionRequest{
		ActorUserId:     "1",
		RecipientUserId: "2",
		LikedRecipient:  true,
	})
	require.NoError(t, err)
	assert.True(t, again.MutualLikes)
	assert.Equal(t, resp.MatchId, again.MatchId)

	for _, user := range []string{"1", "2"} {
		matches, err := svc.ListMatches(ctx, &pb.ListMatchesRequest{UserId: user})
		require.NoError(t, err)
		require.Len(t, matches.Matches, 1)
		assert.Equal(t, resp.MatchId, matches.Matches[0].MatchId)
	}
}

func TestPutDecision_Rejections(t *testing.T) {
	ctx := context.Background()
	svc := setupService(t)

	_, err := svc.PutDecision(ctx, &pb.PutDecisionRequest{ActorUserId: "1", RecipientUserId: "1", LikedRecipient: true})
	requireReason(t, err, codes.InvalidArgument, "INVALID_TARGET")

	_, err = svc.PutDecision(ctx, &pb.PutDecisionRequest{ActorUserId: "1", RecipientUserId: "5", LikedRecipient: true})
	requireReason(t, err, codes.FailedPrecondition, "INELIGIBLE")

	_, err = svc.PutDecision(ctx, &pb.PutDecisionRequest{ActorUserId: "abc", RecipientUserId: "2"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestPutDecision_SwipeBudget(t *testing.T) {
	ctx := context.Background()
	svc := setupService(t, func(c *config.Config) { c.RateLimit.SwipeMax = 2 })

	for _, liked := range []bool{true, false} {
		_, err := svc.PutDecision(ctx, &pb.PutDecisionRequest{ActorUserId: "1", RecipientUserId: "4", LikedRecipient: liked})
		require.NoError(t, err)
	}

	_, err := svc.PutDecision(ctx, &pb.PutDecisionRequest{ActorUserId: "1", RecipientUserId: "4", LikedRecipient: true})
	requireReason(t, err, codes.ResourceExhausted, "RATE_EXCEEDED")

	// another actor has its own window
	_, err = svc.PutDecision(ctx, &pb.PutDecisionRequest{ActorUserId: "4", RecipientUserId: "1", LikedRecipient: true})
	assert.NoError(t, err)
}

// TestListLikedYou checks that only valid likers are returned.
// Expects only user2 because user3 liked user1 but was passed by user1.
func TestListLikedYou(t *testing.T) {
	ctx := context.Background()
	svc := setupService(t)

	resp, err := svc.ListLikedYou(ctx, &pb.ListLikedYouRequest{RecipientUserId: "1"})
	require.NoError(t, err)

	require.Len(t, resp.Likers, 1)
	assert.Equal(t, "2", resp.Likers[0].ActorId)
}

// TestListNewLikedYou checks that new likes are correctly filtered.
// User3 liked user1, but since user1 already passed user3, it should not appear.
func TestListNewLikedYou(t *testing.T) {
	ctx := context.Background()
	svc := setupService(t)

	resp, err := svc.ListNewLikedYou(ctx, &pb.ListLikedYouRequest{RecipientUserId: "1"})
	require.NoError(t, err)

	require.Len(t, resp.Likers, 0)
}

// TestListLikedYou_HidesSuspendedAndBlockedLikers: user4 is suspended and
// user1 blocked user8, so only user2 remains visible to user1.
func TestListLikedYou_HidesSuspendedAndBlockedLikers(t *testing.T) {
	ctx := context.Background()
	appCtx, _ := apptest.New(t)
	SeedMinimalTestData(t, appCtx.DB)
	svc := explore.NewExploreService(appCtx)

	require.NoError(t, appCtx.DB.Create(&[]db.Decision{
		{ActorID: 4, RecipientID: 1, Liked: true},
		{ActorID: 8, RecipientID: 1, Liked: true},
	}).Error)
	require.NoError(t, appCtx.DB.Model(&db.User{}).Where("id = ?", 4).Update("suspended", true).Error)
	require.NoError(t, appCtx.DB.Create(&db.Block{BlockerID: 1, BlockedID: 8}).Error)

	resp, err := svc.ListLikedYou(ctx, &pb.ListLikedYouRequest{RecipientUserId: "1"})
	require.NoError(t, err)
	require.Len(t, resp.Likers, 1)
	assert.Equal(t, "2", resp.Likers[0].ActorId)

	count, err := svc.CountLikedYou(ctx, &pb.CountLikedYouRequest{RecipientUserId: "1"})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), count.Count)
}

// TestCountLikedYouCache verifies like counts with cache.
// Only user2 counts for user1. User3 is excluded due to a pass.
func TestCountLikedYouCache(t *testing.T) {
	ctx := context.Background()
	svc := setupService(t)

	// First call → DB
	resp1, err := svc.CountLikedYou(ctx, &pb.CountLikedYouRequest{RecipientUserId: "1"})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), resp1.Count)

	// Second call → cache
	resp2, err := svc.CountLikedYou(ctx, &pb.CountLikedYouRequest{RecipientUserId: "1"})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), resp2.Count)
}

// TestCountLikedYou_InvalidatedByDecision makes sure a cached count never
// outlives the decision that changed it.
func TestCountLikedYou_InvalidatedByDecision(t *testing.T) {
	ctx := context.Background()
	svc := setupService(t)

	resp, err := svc.CountLikedYou(ctx, &pb.CountLikedYouRequest{RecipientUserId: "4"})
	require.NoError(t, err)
	assert.Zero(t, resp.Count)

	_, err = svc.PutDecision(ctx, &pb.PutDecisionRequest{ActorUserId: "1", RecipientUserId: "4", LikedRecipient: true})
	require.NoError(t, err)

	resp, err = svc.CountLikedYou(ctx, &pb.CountLikedYouRequest{RecipientUserId: "4"})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), resp.Count)
}

// TestListCandidates expects users 4, 8 and 9 only: 2 and 3 were already
// decided, 5 is in another cluster, 6 is not interested in men and 7 has no photo.
func TestListCandidates(t *testing.T) {
	ctx := context.Background()
	svc := setupService(t)

	page1, err := svc.ListCandidates(ctx, &pb.ListCandidatesRequest{ActorUserId: "1", Limit: 2})
	require.NoError(t, err)
	require.Len(t, page1.Candidates, 2)
	assert.Equal(t, "4", page1.Candidates[0].UserId)
	assert.Equal(t, "8", page1.Candidates[1].UserId)
	require.NotNil(t, page1.NextPaginationToken)

	page2, err := svc.ListCandidates(ctx, &pb.ListCandidatesRequest{
		ActorUserId:     "1",
		Limit:           2,
		PaginationToken: page1.NextPaginationToken,
	})
	require.NoError(t, err)
	require.Len(t, page2.Candidates, 1)
	assert.Equal(t, "9", page2.Candidates[0].UserId)
	assert.Nil(t, page2.NextPaginationToken)

	bad := "%%%"
	_, err = svc.ListCandidates(ctx, &pb.ListCandidatesRequest{ActorUserId: "1", PaginationToken: &bad})
	requireReason(t, err, codes.InvalidArgument, "INVALID_PAGE_TOKEN")
}

func TestMessagingAndUnmatch(t *testing.T) {
	ctx := context.Background()
	svc := setupService(t)

	m, err := svc.PutDecision(ctx, &pb.PutDecisionRequest{ActorUserId: "2", RecipientUserId: "1", LikedRecipient: true})
	require.NoError(t, err)
	require.True(t, m.MutualLikes)

	sent, err := svc.SendMessage(ctx, &pb.SendMessageRequest{SenderUserId: "1", MatchId: m.MatchId, Body: " hi there "})
	require.NoError(t, err)
	assert.NotEmpty(t, sent.MessageId)

	_, err = svc.SendMessage(ctx, &pb.SendMessageRequest{SenderUserId: "1", MatchId: m.MatchId, Body: "   "})
	requireReason(t, err, codes.InvalidArgument, "EMPTY_CONTENT")

	_, err = svc.SendMessage(ctx, &pb.SendMessageRequest{SenderUserId: "3", MatchId: m.MatchId, Body: "hey"})
	requireReason(t, err, codes.PermissionDenied, "NOT_PARTICIPANT")

	_, err = svc.Unmatch(ctx, &pb.UnmatchRequest{RequesterUserId: "3", MatchId: m.MatchId})
	requireReason(t, err, codes.PermissionDenied, "NOT_PARTICIPANT")

	_, err = svc.Unmatch(ctx, &pb.UnmatchRequest{RequesterUserId: "2", MatchId: m.MatchId})
	require.NoError(t, err)

	_, err = svc.SendMessage(ctx, &pb.SendMessageRequest{SenderUserId: "1", MatchId: m.MatchId, Body: "still there?"})
	requireReason(t, err, codes.NotFound, "NOT_FOUND")

	_, err = svc.Unmatch(ctx, &pb.UnmatchRequest{RequesterUserId: "2", MatchId: m.MatchId})
	requireReason(t, err, codes.NotFound, "NOT_FOUND")

	// a fresh mutual like creates a new record
	again, err := svc.PutDecision(ctx, &pb.PutDecisionRequest{ActorUserId: "1", RecipientUserId: "2", LikedRecipient: true})
	require.NoError(t, err)
	assert.True(t, again.MutualLikes)
	assert.NotEqual(t, m.MatchId, again.MatchId)
}

func TestSendMessage_MessageBudget(t *testing.T) {
	ctx := context.Background()
	svc := setupService(t, func(c *config.Config) { c.RateLimit.MessageMax = 1 })

	m, err := svc.PutDecision(ctx, &pb.PutDecisionRequest{ActorUserId: "2", RecipientUserId: "1", LikedRecipient: true})
	require.NoError(t, err)

	_, err = svc.SendMessage(ctx, &pb.SendMessageRequest{SenderUserId: "1", MatchId: m.MatchId, Body: "one"})
	require.NoError(t, err)

	_, err = svc.SendMessage(ctx, &pb.SendMessageRequest{SenderUserId: "1", MatchId: m.MatchId, Body: "two"})
	requireReason(t, err, codes.ResourceExhausted, "RATE_EXCEEDED")

	// the swipe budget is untouched
	_, err = svc.PutDecision(ctx, &pb.PutDecisionRequest{ActorUserId: "1", RecipientUserId: "4", LikedRecipient: true})
	assert.NoError(t, err)
}
