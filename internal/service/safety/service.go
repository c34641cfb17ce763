package safety

import (
	"context"
	"strconv"

	"github.com/oggyb/matchcore/internal/app"
	"github.com/oggyb/matchcore/internal/domain"
	svcErr "github.com/oggyb/matchcore/internal/errors"
	"github.com/oggyb/matchcore/internal/moderation"
	pb "github.com/oggyb/matchcore/internal/proto/safety"
	"github.com/oggyb/matchcore/internal/repository"
)

// Service implements the Safety gRPC API.
type Service struct {
	appCtx       *app.AppContext
	escalator    *moderation.Escalator
	decisionRepo *repository.DecisionRepository

	pb.UnimplementedSafetyServiceServer
}

func NewSafetyService(appCtx *app.AppContext) *Service {
	return &Service{
		appCtx:       appCtx,
		decisionRepo: repository.NewDecisionRepository(appCtx.DB),
		escalator: moderation.NewEscalator(
			repository.NewReportRepository(appCtx.DB),
			repository.NewUserRepository(appCtx.DB),
			appCtx.Logger,
			appCtx.Metrics,
		),
	}
}

// FileReport accepts an abuse report. Whether it suspended the target is not
// revealed to the reporter.
func (s *Service) FileReport(ctx context.Context, req *pb.FileReportRequest) (*pb.FileReportResponse, error) {
	reporterID, err := strconv.ParseUint(req.GetReporterUserId(), 10, 64)
	if err != nil {
		return nil, svcErr.InvalidArgument("reporter_user_id must be a valid uint64")
	}
	targetID, err := strconv.ParseUint(req.GetTargetUserId(), 10, 64)
	if err != nil {
		return nil, svcErr.InvalidArgument("target_user_id must be a valid uint64")
	}
	reason, err := domain.ParseReportReason(req.GetReason())
	if err != nil {
		return nil, svcErr.Map(err)
	}

	out, err := s.escalator.FileReport(ctx, reporterID, targetID, reason, req.GetDetails())
	if err != nil {
		return nil, svcErr.Map(err)
	}

	if out.SuspensionTriggered {
		s.dropLikerCounts(ctx, targetID)
	}

	s.appCtx.Logger.Debug("report filed", "reporter", reporterID, "target", targetID, "reason", reason)
	return &pb.FileReportResponse{Accepted: out.Accepted, ReportId: out.ReportID}, nil
}

// dropLikerCounts invalidates the cached liker count of everyone target likes,
// since a suspended liker no longer counts.
func (s *Service) dropLikerCounts(ctx context.Context, targetID uint64) {
	recipients, err := s.decisionRepo.LikedRecipients(ctx, targetID)
	if err != nil {
		s.appCtx.Logger.Warn("list liked recipients failed", "target", targetID, "err", err)
		return
	}
	for _, id := range recipients {
		if err := s.appCtx.RedisCache.InvalidateLikeCount(ctx, id); err != nil {
			s.appCtx.Logger.Warn("like count invalidation failed", "recipient", id, "err", err)
		}
	}
}
