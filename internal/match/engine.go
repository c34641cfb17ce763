// Package match turns swipe decisions into match records.
//
// Every invariant that must survive concurrent writers lives in the store:
// the decisions primary key makes a repeated swipe an overwrite, and the unique
// pair index on matches makes two reciprocal likes racing each other collapse
// into one record. The engine itself keeps no state and takes no locks.
package match

import (
	"context"
	"log/slog"
	"time"

	"github.com/oggyb/matchcore/internal/db"
	"github.com/oggyb/matchcore/internal/domain"
	svcErr "github.com/oggyb/matchcore/internal/errors"
	"github.com/oggyb/matchcore/internal/metrics"
	"github.com/oggyb/matchcore/internal/pairkey"
)

type DecisionStore interface {
	CreateOrUpdateDecision(ctx context.Context, actorID, recipientID uint64, liked bool) error
	HasLiked(ctx context.Context, actorID, recipientID uint64) (bool, error)
}

type MatchStore interface {
	InsertMatchIfAbsent(ctx context.Context, key pairkey.Key) (db.Match, bool, error)
	FindByID(ctx context.Context, id string) (*db.Match, error)
	DeleteMatch(ctx context.Context, id string) (bool, error)
}

type UserStore interface {
	FindMany(ctx context.Context, ids []uint64) (map[uint64]db.User, error)
}

type BlockStore interface {
	IsBlockedEitherWay(ctx context.Context, a, b uint64) (bool, error)
}

type PhotoStore interface {
	CountByOwner(ctx context.Context, ownerID uint64) (int64, error)
}

// Stores groups the collaborators the engine reads and writes.
type Stores struct {
	Decisions DecisionStore
	Matches   MatchStore
	Users     UserStore
	Blocks    BlockStore
	Photos    PhotoStore
}

type Engine struct {
	stores  Stores
	logger  *slog.Logger
	metrics *metrics.Metrics
}

func NewEngine(stores Stores, logger *slog.Logger, m *metrics.Metrics) *Engine {
	return &Engine{stores: stores, logger: logger, metrics: m}
}

// Result is what a swipe produced. Matched is true both when this swipe created
// the match and when the pair was already matched.
type Result struct {
	Matched bool
	Created bool
	MatchID string
	At      time.Time
}

// RecordSwipe stores actor's decision on target and creates the match when the
// like is reciprocated.
//
// Behavior:
//   - actor == target is rejected with ErrInvalidTarget before anything else.
//   - An unknown direction is rejected with ErrInvalidDirection.
//   - The pair must pass Eligible, otherwise ErrIneligible.
//   - The decision is upserted; repeating a swipe overwrites it.
//   - On a like, a reciprocal like from target yields a match. Losing an insert
//     race to the other side is a success, not an error.
//   - Matched is never reported without a match record to point at.
func (e *Engine) RecordSwipe(ctx context.Context, actor, target uint64, dir domain.Direction) (Result, error) {
	if actor == target {
		return Result{}, svcErr.ErrInvalidTarget
	}
	if dir != domain.DirectionLike && dir != domain.DirectionPass {
		return Result{}, svcErr.ErrInvalidDirection
	}

	if err := e.Eligible(ctx, actor, target); err != nil {
		return Result{}, err
	}

	liked := dir == domain.DirectionLike
	if err := e.stores.Decisions.CreateOrUpdateDecision(ctx, actor, target, liked); err != nil {
		return Result{}, err
	}
	e.metrics.Swipe(string(dir))

	if !liked {
		return Result{}, nil
	}

	reciprocal, err := e.stores.Decisions.HasLiked(ctx, target, actor)
	if err != nil {
		return Result{}, err
	}
	if !reciprocal {
		return Result{}, nil
	}

	m, created, err := e.stores.Matches.InsertMatchIfAbsent(ctx, pairkey.Canonical(actor, target))
	if err != nil {
		return Result{}, err
	}
	if m.ID == "" {
		// the pair was unmatched while this like was being recorded
		e.logger.Debug("match vanished during insert", "actor", actor, "target", target)
		return Result{}, nil
	}
	if created {
		e.metrics.MatchCreated()
		e.logger.Info("match created", "match_id", m.ID, "user_low", m.UserLowID, "user_high", m.UserHighID)
	} else {
		e.metrics.MatchConflict()
		e.logger.Debug("pair already matched", "actor", actor, "target", target, "match_id", m.ID)
	}
	return Result{Matched: true, Created: created, MatchID: m.ID, At: m.CreatedAt}, nil
}

// Unmatch removes a match the requester is part of. The decisions that led to
// it are kept; a fresh mutual like later creates a new record with a new id.
func (e *Engine) Unmatch(ctx context.Context, requester uint64, matchID string) error {
	m, err := e.stores.Matches.FindByID(ctx, matchID)
	if err != nil {
		return err
	}
	if m == nil {
		return svcErr.ErrNotFound
	}
	if !pairkey.Canonical(m.UserLowID, m.UserHighID).Contains(requester) {
		return svcErr.ErrNotParticipant
	}

	deleted, err := e.stores.Matches.DeleteMatch(ctx, matchID)
	if err != nil {
		return err
	}
	if !deleted {
		// the other participant got there first
		return svcErr.ErrNotFound
	}
	e.logger.Info("match removed", "match_id", matchID, "requester", requester)
	return nil
}

// Eligible checks that a and b may interact at all.
//
// Both must exist, share a cluster, want each other's gender, have at least one
// photo, not be suspended, and not have blocked one another.
func (e *Engine) Eligible(ctx context.Context, a, b uint64) error {
	users, err := e.stores.Users.FindMany(ctx, []uint64{a, b})
	if err != nil {
		return err
	}
	ua, okA := users[a]
	ub, okB := users[b]
	if !okA || !okB {
		return svcErr.ErrNotFound
	}

	switch {
	case ua.Suspended || ub.Suspended:
		return svcErr.ErrIneligible
	case ua.ClusterID != ub.ClusterID:
		return svcErr.ErrIneligible
	case !domain.InterestedIn(ua.Interests, domain.Gender(ub.Gender)),
		!domain.InterestedIn(ub.Interests, domain.Gender(ua.Gender)):
		return svcErr.ErrIneligible
	}

	blocked, err := e.stores.Blocks.IsBlockedEitherWay(ctx, a, b)
	if err != nil {
		return err
	}
	if blocked {
		return svcErr.ErrIneligible
	}

	for _, id := range []uint64{a, b} {
		n, err := e.stores.Photos.CountByOwner(ctx, id)
		if err != nil {
			return err
		}
		if n == 0 {
			return svcErr.ErrIneligible
		}
	}
	return nil
}
