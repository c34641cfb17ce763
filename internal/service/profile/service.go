package profile

import (
	"context"
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/oggyb/matchcore/internal/app"
	"github.com/oggyb/matchcore/internal/db"
	"github.com/oggyb/matchcore/internal/domain"
	svcErr "github.com/oggyb/matchcore/internal/errors"
	"github.com/oggyb/matchcore/internal/fingerprint"
	pb "github.com/oggyb/matchcore/internal/proto/profile"
	"github.com/oggyb/matchcore/internal/ratelimit"
	"github.com/oggyb/matchcore/internal/repository"
)

var usernamePattern = regexp.MustCompile(`^[a-z0-9_.]{3,32}$`)

const (
	minPasswordLength = 8
	// bcrypt ignores everything past 72 bytes
	maxPasswordLength = 72
)

// Service implements the Profile gRPC API: registration, login, photos and blocks.
type Service struct {
	appCtx    *app.AppContext
	userRepo  *repository.UserRepository
	photoRepo *repository.PhotoRepository
	blockRepo *repository.BlockRepository
	matchRepo *repository.MatchRepository
	gate      *fingerprint.Gate

	pb.UnimplementedProfileServiceServer
}

func NewProfileService(appCtx *app.AppContext) *Service {
	return &Service{
		appCtx:    appCtx,
		userRepo:  repository.NewUserRepository(appCtx.DB),
		photoRepo: repository.NewPhotoRepository(appCtx.DB),
		blockRepo: repository.NewBlockRepository(appCtx.DB),
		matchRepo: repository.NewMatchRepository(appCtx.DB),
		gate:      fingerprint.NewGate(repository.NewFingerprintRepository(appCtx.DB), appCtx.Logger, appCtx.Metrics),
	}
}

// Register creates a participant.
//
// Behavior:
//   - Gender and interests are canonicalized ("men" → male, "everyone" → all).
//   - The locality must resolve to a served cluster; otherwise
//     OUTSIDE_SERVICE_AREA and nothing is stored.
//   - The password is stored as a bcrypt hash.
func (s *Service) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {
	username := strings.ToLower(strings.TrimSpace(req.GetUsername()))
	s.appCtx.Logger.Debug("Register called", "username", username, "locality", req.GetLocality())

	if !usernamePattern.MatchString(username) {
		return nil, svcErr.InvalidArgument("username must be 3-32 characters of a-z, 0-9, '_' or '.'")
	}
	if n := len(req.GetPassword()); n < minPasswordLength || n > maxPasswordLength {
		return nil, svcErr.InvalidArgument("password must be between 8 and 72 bytes")
	}

	gender, err := domain.ParseGender(req.GetGender())
	if err != nil {
		return nil, svcErr.Map(err)
	}
	interests, err := domain.ParseInterests(req.GetInterests())
	if err != nil {
		return nil, svcErr.Map(err)
	}
	clusterID, ok := s.appCtx.Clusters.Resolve(req.GetLocality())
	if !ok {
		s.appCtx.Logger.Info("registration outside service area", "locality", req.GetLocality())
		return nil, svcErr.Map(svcErr.ErrOutsideService)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.GetPassword()), bcrypt.DefaultCost)
	if err != nil {
		return nil, svcErr.Map(err)
	}

	interestNames := make([]string, len(interests))
	for i, g := range interests {
		interestNames[i] = string(g)
	}

	u := &db.User{
		Username:     username,
		PasswordHash: string(hash),
		Gender:       string(gender),
		Interests:    interestNames,
		ClusterID:    string(clusterID),
	}
	if err := s.userRepo.Create(ctx, u); err != nil {
		return nil, svcErr.Map(err)
	}

	s.appCtx.Logger.Info("participant registered", "user_id", u.ID, "cluster", clusterID)
	return &pb.RegisterResponse{
		UserId:    strconv.FormatUint(u.ID, 10),
		ClusterId: u.ClusterID,
		Gender:    u.Gender,
		Interests: interestNames,
	}, nil
}

// Login checks credentials.
//
// Behavior:
//   - The caller's IP reserves a slot in the auth budget before anything else,
//     so concurrent attempts cannot overrun it.
//   - The slot is handed back unless the credentials were wrong, so only failed
//     attempts stay charged.
//   - Suspended accounts are refused even with the right password.
func (s *Service) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {
	ip := ratelimit.ClientIP(ctx)
	if err := s.appCtx.Limiter.Check(ctx, ratelimit.ClassAuth, ip); err != nil {
		return nil, svcErr.Map(err)
	}

	failed := false
	defer func() {
		if failed {
			return
		}
		if err := s.appCtx.Limiter.Release(context.WithoutCancel(ctx), ratelimit.ClassAuth, ip); err != nil {
			s.appCtx.Logger.Error("release auth slot", "ip", ip, "err", err)
		}
	}()

	username := strings.ToLower(strings.TrimSpace(req.GetUsername()))
	u, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	if u == nil || bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.GetPassword())) != nil {
		failed = true
		return nil, svcErr.Map(svcErr.ErrInvalidLogin)
	}
	if u.Suspended {
		return nil, svcErr.Map(svcErr.ErrSuspended)
	}

	if err := s.userRepo.TouchLogin(ctx, u.ID, time.Now()); err != nil {
		s.appCtx.Logger.Warn("touch login failed", "user_id", u.ID, "err", err)
	}
	return &pb.LoginResponse{UserId: strconv.FormatUint(u.ID, 10), ClusterId: u.ClusterID}, nil
}

// UploadPhoto stores a photo after the content fingerprint gate accepts it.
//
// Behavior:
//   - Charged to the user's upload budget first.
//   - Empty or oversized content and unknown photo types are rejected.
//   - A user holds at most Photos.MaxPerUser photos, even under concurrent
//     uploads: the user row is locked while the limit is checked.
//   - Fingerprint registration and the photo row commit together. A rejected
//     cross-owner claim still commits its audit row.
//   - If the fingerprint store cannot answer, the upload is refused with
//     Unavailable.
func (s *Service) UploadPhoto(ctx context.Context, req *pb.UploadPhotoRequest) (*pb.UploadPhotoResponse, error) {
	userID, err := strconv.ParseUint(req.GetUserId(), 10, 64)
	if err != nil {
		return nil, svcErr.InvalidArgument("user_id must be a valid uint64")
	}
	s.appCtx.Logger.Debug("UploadPhoto called", "user_id", userID, "size", len(req.GetContent()))

	if err := s.appCtx.Limiter.Check(ctx, ratelimit.ClassUpload, ratelimit.IdentityScope(userID)); err != nil {
		return nil, svcErr.Map(err)
	}

	content := req.GetContent()
	if len(content) == 0 {
		return nil, svcErr.Map(svcErr.ErrEmptyContent)
	}
	if int64(len(content)) > s.appCtx.Config.Photos.MaxSizeBytes {
		return nil, svcErr.Map(svcErr.ErrContentTooLarge)
	}
	photoType, err := domain.ParsePhotoType(req.GetPhotoType())
	if err != nil {
		return nil, svcErr.Map(err)
	}

	u, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	if u == nil {
		return nil, svcErr.Map(svcErr.ErrNotFound)
	}
	if u.Suspended {
		return nil, svcErr.Map(svcErr.ErrSuspended)
	}

	hash := fingerprint.Digest(content)
	photo := &db.Photo{
		ID:        uuid.NewString(),
		OwnerID:   userID,
		Hash:      hash,
		Type:      string(photoType),
		SizeBytes: int64(len(content)),
	}

	var claimed bool
	err = s.appCtx.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		photos := repository.NewPhotoRepository(tx)

		// concurrent uploads by the same user wait here, so the count below is current
		if err := repository.NewUserRepository(tx).LockForUpdate(ctx, userID); err != nil {
			return err
		}
		n, err := photos.CountByOwner(ctx, userID)
		if err != nil {
			return err
		}
		if n >= int64(s.appCtx.Config.Photos.MaxPerUser) {
			return svcErr.ErrPhotoLimit
		}

		err = s.gate.WithStore(repository.NewFingerprintRepository(tx)).Register(ctx, hash, userID)
		if errors.Is(err, svcErr.ErrContentClaimed) {
			// commit the audit row; no photo is written
			claimed = true
			return nil
		}
		if err != nil {
			return err
		}
		return photos.Create(ctx, photo)
	})
	if err == nil && claimed {
		err = svcErr.ErrContentClaimed
	}
	if err != nil {
		if svcErr.IsInfrastructure(err) {
			s.appCtx.Logger.Error("UploadPhoto failed", "user_id", userID, "err", err)
			return nil, svcErr.Map(svcErr.ErrServiceUnavailable)
		}
		return nil, svcErr.Map(err)
	}

	return &pb.UploadPhotoResponse{
		FingerprintAccepted: true,
		PhotoId:             photo.ID,
		Fingerprint:         hash,
	}, nil
}

// BlockUser records blocker → blocked and dissolves any match between them.
// After a block the pair is ineligible in both directions.
func (s *Service) BlockUser(ctx context.Context, req *pb.BlockUserRequest) (*pb.BlockUserResponse, error) {
	blockerID, err := strconv.ParseUint(req.GetBlockerUserId(), 10, 64)
	if err != nil {
		return nil, svcErr.InvalidArgument("blocker_user_id must be a valid uint64")
	}
	blockedID, err := strconv.ParseUint(req.GetBlockedUserId(), 10, 64)
	if err != nil {
		return nil, svcErr.InvalidArgument("blocked_user_id must be a valid uint64")
	}
	if blockerID == blockedID {
		return nil, svcErr.Map(svcErr.ErrInvalidTarget)
	}

	target, err := s.userRepo.FindByID(ctx, blockedID)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	if target == nil {
		return nil, svcErr.Map(svcErr.ErrNotFound)
	}

	if err := s.blockRepo.Create(ctx, blockerID, blockedID); err != nil {
		return nil, svcErr.Map(err)
	}

	resp := &pb.BlockUserResponse{}
	m, err := s.matchRepo.FindByParticipants(ctx, blockerID, blockedID)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	if m != nil {
		removed, err := s.matchRepo.DeleteMatch(ctx, m.ID)
		if err != nil {
			return nil, svcErr.Map(err)
		}
		resp.MatchRemoved = removed
	}

	// either side may have a cached liker count that still includes the other
	for _, id := range []uint64{blockerID, blockedID} {
		if err := s.appCtx.RedisCache.InvalidateLikeCount(ctx, id); err != nil {
			s.appCtx.Logger.Warn("like count invalidation failed", "recipient", id, "err", err)
		}
	}

	s.appCtx.Logger.Info("user blocked", "blocker", blockerID, "blocked", blockedID, "match_removed", resp.MatchRemoved)
	return resp, nil
}
