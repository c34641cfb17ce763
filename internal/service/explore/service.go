package explore

import (
	"context"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/oggyb/matchcore/internal/app"
	"github.com/oggyb/matchcore/internal/db"
	"github.com/oggyb/matchcore/internal/domain"
	svcErr "github.com/oggyb/matchcore/internal/errors"
	"github.com/oggyb/matchcore/internal/match"
	"github.com/oggyb/matchcore/internal/pairkey"
	pb "github.com/oggyb/matchcore/internal/proto/explore"
	"github.com/oggyb/matchcore/internal/ratelimit"
	"github.com/oggyb/matchcore/internal/repository"
	"github.com/oggyb/matchcore/internal/utils/pagination"
)

const (
	likersPageSize        = 5
	defaultCandidatePage  = 10
	maxCandidatePage      = 50
	defaultMatchPage      = 20
	maxMatchPage          = 100
	maxMessageLength      = 2000
	candidateScanBatchMin = 20
)

// Service implements the Explore gRPC API.
// It contains the business logic on top of repository and cache layers.
type Service struct {
	appCtx       *app.AppContext
	decisionRepo *repository.DecisionRepository
	matchRepo    *repository.MatchRepository
	userRepo     *repository.UserRepository
	messageRepo  *repository.MessageRepository
	engine       *match.Engine

	pb.UnimplementedExploreServiceServer
}

// NewExploreService creates a new Explore service with dependencies from AppContext.
// Dependencies include:
//   - DB connection (via the repositories and the match engine)
//   - RedisCache for like counters and the rate governor from AppContext
func NewExploreService(appCtx *app.AppContext) *Service {
	decisions := repository.NewDecisionRepository(appCtx.DB)
	matches := repository.NewMatchRepository(appCtx.DB)
	users := repository.NewUserRepository(appCtx.DB)
	return &Service{
		appCtx:       appCtx,
		decisionRepo: decisions,
		matchRepo:    matches,
		userRepo:     users,
		messageRepo:  repository.NewMessageRepository(appCtx.DB),
		engine: match.NewEngine(match.Stores{
			Decisions: decisions,
			Matches:   matches,
			Users:     users,
			Blocks:    repository.NewBlockRepository(appCtx.DB),
			Photos:    repository.NewPhotoRepository(appCtx.DB),
		}, appCtx.Logger, appCtx.Metrics),
	}
}

// ListLikedYou returns all users who liked the given recipient.
//
// Behavior:
//   - Fetches likes for the given recipient via repository.GetLikers.
//   - Excludes users that the recipient explicitly passed.
//   - Supports cursor-based pagination with paginationToken.
//   - Returns actor_id + timestamp pairs.
//
// Example:
//
//	svc.ListLikedYou(ctx, &pb.ListLikedYouRequest{RecipientUserId: "42"})
func (s *Service) ListLikedYou(ctx context.Context, req *pb.ListLikedYouRequest) (*pb.ListLikedYouResponse, error) {

	s.appCtx.Logger.Debug("ListLikedYou called", "recipient", req.GetRecipientUserId(), "token", req.GetPaginationToken())

	recipientID, err := strconv.ParseUint(req.GetRecipientUserId(), 10, 64)
	if err != nil {
		s.appCtx.Logger.Error("Invalid recipient_user_id", "value", req.GetRecipientUserId(), "err", err)
		return nil, svcErr.InvalidArgument("recipient_user_id must be a valid uint64")
	}

	decisions, nextToken, err := s.decisionRepo.GetLikers(ctx, recipientID, req.PaginationToken, likersPageSize)
	if err != nil {
		s.appCtx.Logger.Error("GetLikers failed", "err", err)
		return nil, svcErr.Map(err)
	}

	resp := toLikers(decisions, nextToken)

	s.appCtx.Logger.Debug("ListLikedYou result", "liker_count", len(resp.Likers), "next_token", resp.GetNextPaginationToken())

	return resp, nil
}

// ListNewLikedYou returns all users who liked the recipient but have not been liked back.
//
// Behavior:
//   - Uses repository.GetNewLikers to exclude mutual likes.
//   - Excludes users the recipient explicitly passed.
//   - Supports cursor-based pagination.
func (s *Service) ListNewLikedYou(ctx context.Context, req *pb.ListLikedYouRequest) (*pb.ListLikedYouResponse, error) {
	s.appCtx.Logger.Debug("ListNewLikedYou called", "recipient", req.GetRecipientUserId())

	recipientID, err := strconv.ParseUint(req.GetRecipientUserId(), 10, 64)
	if err != nil {
		return nil, svcErr.InvalidArgument("recipient_user_id must be a valid uint64")
	}

	decisions, nextToken, err := s.decisionRepo.GetNewLikers(ctx, recipientID, req.PaginationToken, likersPageSize)
	if err != nil {
		return nil, svcErr.Map(err)
	}

	return toLikers(decisions, nextToken), nil
}

func toLikers(decisions []db.Decision, nextToken *string) *pb.ListLikedYouResponse {
	resp := &pb.ListLikedYouResponse{}
	for _, d := range decisions {
		resp.Likers = append(resp.Likers, &pb.ListLikedYouResponse_Liker{
			ActorId:       strconv.FormatUint(d.ActorID, 10),
			UnixTimestamp: uint64(d.UpdatedAt.UnixMilli()),
		})
	}
	if nextToken != nil {
		resp.NextPaginationToken = nextToken
	}
	return resp
}

// CountLikedYou returns how many users liked the recipient.
// Cache-first strategy:
//  1. Attempts to read from Redis (likes:count:userID).
//  2. On a miss or a Redis error, falls back to DB via repository.CountLikers.
//  3. On DB fetch, updates Redis with a 1h TTL.
func (s *Service) CountLikedYou(ctx context.Context, req *pb.CountLikedYouRequest) (*pb.CountLikedYouResponse, error) {
	s.appCtx.Logger.Debug("CountLikedYou called", "recipient", req.GetRecipientUserId())

	recipientID, err := strconv.ParseUint(req.GetRecipientUserId(), 10, 64)
	if err != nil {
		return nil, svcErr.InvalidArgument("recipient_user_id must be a valid uint64")
	}

	// try cache first
	if n, ok, err := s.appCtx.RedisCache.GetLikeCount(ctx, recipientID); err == nil && ok {
		return &pb.CountLikedYouResponse{Count: uint64(n)}, nil
	} else if err != nil {
		s.appCtx.Logger.Warn("like count cache read failed", "recipient", recipientID, "err", err)
	}

	// fallback: DB
	count, err := s.decisionRepo.CountLikers(ctx, recipientID)
	if err != nil {
		return nil, svcErr.Map(err)
	}

	_ = s.appCtx.RedisCache.SetLikeCount(ctx, recipientID, count)

	return &pb.CountLikedYouResponse{Count: uint64(count)}, nil
}

// PutDecision records a swipe and returns whether it resulted in a match.
//
// Behavior:
//   - The actor's swipe budget is charged first; over budget is ResourceExhausted.
//   - The match engine validates the pair, upserts the decision and creates the
//     match idempotently when the like is reciprocated.
//   - The recipient's cached like count is dropped so the next read recomputes it.
//   - mutual_likes is true whenever the pair is matched after this call.
//
// Example:
//
//	svc.PutDecision(ctx, &pb.PutDecisionRequest{ActorUserId: "1", RecipientUserId: "2", LikedRecipient: true})
func (s *Service) PutDecision(ctx context.Context, req *pb.PutDecisionRequest) (*pb.PutDecisionResponse, error) {
	s.appCtx.Logger.Debug(
		"PutDecision called",
		"actor", req.GetActorUserId(),
		"recipient", req.GetRecipientUserId(),
		"liked", req.GetLikedRecipient(),
	)
	actorID, err := strconv.ParseUint(req.GetActorUserId(), 10, 64)
	if err != nil {
		return nil, svcErr.InvalidArgument("actor_user_id must be a valid uint64")
	}
	recipientID, err := strconv.ParseUint(req.GetRecipientUserId(), 10, 64)
	if err != nil {
		return nil, svcErr.InvalidArgument("recipient_user_id must be a valid uint64")
	}

	if err := s.appCtx.Limiter.Check(ctx, ratelimit.ClassSwipe, ratelimit.IdentityScope(actorID)); err != nil {
		return nil, svcErr.Map(err)
	}

	res, err := s.engine.RecordSwipe(ctx, actorID, recipientID, domain.DirectionFromLiked(req.GetLikedRecipient()))
	if err != nil {
		return nil, svcErr.Map(err)
	}

	if err := s.appCtx.RedisCache.InvalidateLikeCount(ctx, recipientID); err != nil {
		s.appCtx.Logger.Warn("like count invalidation failed", "recipient", recipientID, "err", err)
	}

	return &pb.PutDecisionResponse{MutualLikes: res.Matched, MatchId: res.MatchID}, nil
}

// ListCandidates returns participants the actor may still swipe on: same
// cluster, mutually interested, not yet decided, not blocked, with photos and
// not suspended. Pages are ordered by user id.
func (s *Service) ListCandidates(ctx context.Context, req *pb.ListCandidatesRequest) (*pb.ListCandidatesResponse, error) {
	actorID, err := strconv.ParseUint(req.GetActorUserId(), 10, 64)
	if err != nil {
		return nil, svcErr.InvalidArgument("actor_user_id must be a valid uint64")
	}
	cursor, err := pagination.Decode(req.GetPaginationToken())
	if err != nil {
		return nil, svcErr.Map(err)
	}

	actor, err := s.userRepo.FindByID(ctx, actorID)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	if actor == nil {
		return nil, svcErr.Map(svcErr.ErrNotFound)
	}
	if actor.Suspended {
		return nil, svcErr.Map(svcErr.ErrSuspended)
	}

	limit := clampLimit(req.GetLimit(), defaultCandidatePage, maxCandidatePage)
	batch := max(limit+1, candidateScanBatchMin)
	actorGender := domain.Gender(actor.Gender)

	// the reverse interest check runs here, so keep scanning until a full page
	// (plus one, to know whether there is a next page) survives it
	var found []db.User
	after := cursor.ID
	for len(found) <= limit {
		users, err := s.userRepo.ListCandidates(ctx, actorID, actor.ClusterID, []string(actor.Interests), after, batch)
		if err != nil {
			return nil, svcErr.Map(err)
		}
		for _, u := range users {
			after = u.ID
			if domain.InterestedIn(u.Interests, actorGender) {
				found = append(found, u)
				if len(found) > limit {
					break
				}
			}
		}
		if len(users) < batch {
			break
		}
	}

	resp := &pb.ListCandidatesResponse{}
	if len(found) > limit {
		found = found[:limit]
		token, _ := pagination.Encode(pagination.Cursor{ID: found[limit-1].ID})
		resp.NextPaginationToken = &token
	}
	for _, u := range found {
		resp.Candidates = append(resp.Candidates, &pb.Candidate{
			UserId:   strconv.FormatUint(u.ID, 10),
			Username: u.Username,
			Gender:   u.Gender,
		})
	}

	s.appCtx.Logger.Debug("ListCandidates result", "actor", actorID, "count", len(resp.Candidates))
	return resp, nil
}

// ListMatches returns the user's current matches, newest first.
func (s *Service) ListMatches(ctx context.Context, req *pb.ListMatchesRequest) (*pb.ListMatchesResponse, error) {
	userID, err := strconv.ParseUint(req.GetUserId(), 10, 64)
	if err != nil {
		return nil, svcErr.InvalidArgument("user_id must be a valid uint64")
	}

	matches, err := s.matchRepo.ListForUser(ctx, userID, clampLimit(req.GetLimit(), defaultMatchPage, maxMatchPage))
	if err != nil {
		return nil, svcErr.Map(err)
	}

	resp := &pb.ListMatchesResponse{}
	for _, m := range matches {
		other, _ := pairkey.Canonical(m.UserLowID, m.UserHighID).Other(userID)
		resp.Matches = append(resp.Matches, &pb.MatchSummary{
			MatchId:       m.ID,
			OtherUserId:   strconv.FormatUint(other, 10),
			UnixTimestamp: uint64(m.CreatedAt.UnixMilli()),
		})
	}
	return resp, nil
}

// Unmatch deletes a match the requester is part of.
func (s *Service) Unmatch(ctx context.Context, req *pb.UnmatchRequest) (*pb.UnmatchResponse, error) {
	requesterID, err := strconv.ParseUint(req.GetRequesterUserId(), 10, 64)
	if err != nil {
		return nil, svcErr.InvalidArgument("requester_user_id must be a valid uint64")
	}
	if req.GetMatchId() == "" {
		return nil, svcErr.InvalidArgument("match_id is required")
	}

	if err := s.engine.Unmatch(ctx, requesterID, req.GetMatchId()); err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.UnmatchResponse{}, nil
}

// SendMessage stores a message from one match participant to the other.
//
// Behavior:
//   - The sender's message budget is charged first.
//   - Empty bodies and bodies over 2000 characters are rejected.
//   - Only participants of an existing match may write, and only while the
//     pair is still eligible (no block, nobody suspended).
func (s *Service) SendMessage(ctx context.Context, req *pb.SendMessageRequest) (*pb.SendMessageResponse, error) {
	senderID, err := strconv.ParseUint(req.GetSenderUserId(), 10, 64)
	if err != nil {
		return nil, svcErr.InvalidArgument("sender_user_id must be a valid uint64")
	}

	if err := s.appCtx.Limiter.Check(ctx, ratelimit.ClassMessage, ratelimit.IdentityScope(senderID)); err != nil {
		return nil, svcErr.Map(err)
	}

	body := strings.TrimSpace(req.GetBody())
	if body == "" {
		return nil, svcErr.Map(svcErr.ErrEmptyContent)
	}
	if utf8.RuneCountInString(body) > maxMessageLength {
		return nil, svcErr.Map(svcErr.ErrContentTooLarge)
	}

	m, err := s.matchRepo.FindByID(ctx, req.GetMatchId())
	if err != nil {
		return nil, svcErr.Map(err)
	}
	if m == nil {
		return nil, svcErr.Map(svcErr.ErrNotFound)
	}
	other, ok := pairkey.Canonical(m.UserLowID, m.UserHighID).Other(senderID)
	if !ok {
		return nil, svcErr.Map(svcErr.ErrNotParticipant)
	}
	if err := s.engine.Eligible(ctx, senderID, other); err != nil {
		return nil, svcErr.Map(err)
	}

	msg := &db.Message{ID: uuid.NewString(), MatchID: m.ID, SenderID: senderID, Body: body}
	if err := s.messageRepo.Create(ctx, msg); err != nil {
		return nil, svcErr.Map(err)
	}

	return &pb.SendMessageResponse{
		MessageId:     msg.ID,
		UnixTimestamp: uint64(msg.CreatedAt.UnixMilli()),
	}, nil
}

func clampLimit(requested uint32, def, maxLimit int) int {
	if requested == 0 {
		return def
	}
	return min(int(requested), maxLimit)
}
