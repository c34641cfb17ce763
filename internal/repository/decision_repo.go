package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/oggyb/matchcore/internal/db"
	svcErr "github.com/oggyb/matchcore/internal/errors"
	"github.com/oggyb/matchcore/internal/utils/pagination"
)

// DecisionRepository provides data access methods for the Decision model.
// It encapsulates all queries related to likes/passes between users.
type DecisionRepository struct {
	db *gorm.DB
}

// NewDecisionRepository creates a new repository bound to the given DB connection.
func NewDecisionRepository(database *gorm.DB) *DecisionRepository {
	return &DecisionRepository{db: database}
}

// CreateOrUpdateDecision inserts or updates a decision made by actor -> recipient.
//
// Behavior:
//   - If (actor_id, recipient_id) pair exists → the row is updated with the new "liked" value.
//   - If it doesn’t exist → a new row is inserted.
//   - Composite PK ensures overwrite guarantee, even for concurrent writers.
//
// Example:
//
//	repo.CreateOrUpdateDecision(ctx, 1, 2, true) // user 1 liked user 2
func (r *DecisionRepository) CreateOrUpdateDecision(
	ctx context.Context,
	actorID, recipientID uint64,
	liked bool,
) error {
	decision := db.Decision{
		ActorID:     actorID,
		RecipientID: recipientID,
		Liked:       liked,
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "actor_id"}, {Name: "recipient_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"liked", "updated_at"}),
		}).
		Create(&decision).Error
	return svcErr.Infra("upsert decision", err)
}

// FindDecision returns the actor's current decision on recipient, or nil when
// none was recorded.
func (r *DecisionRepository) FindDecision(
	ctx context.Context,
	actorID, recipientID uint64,
) (*db.Decision, error) {
	var d db.Decision
	err := r.db.WithContext(ctx).
		Where("actor_id = ? AND recipient_id = ?", actorID, recipientID).
		Take(&d).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, svcErr.Infra("find decision", err)
	}
	return &d, nil
}

// CountDecisions returns how many rows exist for the ordered pair. The PK makes
// this 0 or 1; tests use it to check the overwrite guarantee.
func (r *DecisionRepository) CountDecisions(ctx context.Context, actorID, recipientID uint64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&db.Decision{}).
		Where("actor_id = ? AND recipient_id = ?", actorID, recipientID).
		Count(&n).Error
	return n, svcErr.Infra("count decisions", err)
}

// visibleLikes selects the likes on recipient that recipient is allowed to see.
//
// Behavior:
//   - Only liked = true decisions with recipient_id = X.
//   - The liker must exist and not be suspended.
//   - A block in either direction hides the like.
//   - Likers the recipient explicitly passed are hidden.
func (r *DecisionRepository) visibleLikes(ctx context.Context, recipientID uint64) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("decisions d").
		Joins("JOIN users u ON u.id = d.actor_id AND u.suspended = ?", false).
		Where("d.recipient_id = ? AND d.liked = ?", recipientID, true).
		Where(`NOT EXISTS (
			SELECT 1 FROM decisions d2
			WHERE d2.actor_id = ? AND d2.recipient_id = d.actor_id AND d2.liked = ?
		)`, recipientID, false).
		Where(`NOT EXISTS (
			SELECT 1 FROM blocks b
			WHERE (b.blocker_id = ? AND b.blocked_id = d.actor_id)
			   OR (b.blocker_id = d.actor_id AND b.blocked_id = ?)
		)`, recipientID, recipientID)
}

// pageLikes orders query newest first and applies the (updated_at, actor_id)
// cursor. Timestamps are stored at millisecond precision (see db.NowFunc), so
// the millisecond cursor compares exactly.
func pageLikes(query *gorm.DB, paginationToken *string, limit int, op string) ([]db.Decision, *string, error) {
	cursor, err := pagination.Decode(getString(paginationToken))
	if err != nil {
		return nil, nil, err
	}

	query = query.Select("d.*").
		Order("d.updated_at DESC, d.actor_id DESC").
		Limit(limit + 1)
	if cursor.ActorID > 0 && cursor.UpdatedUnix > 0 {
		ts := time.UnixMilli(cursor.UpdatedUnix).UTC()
		query = query.Where(
			"(d.updated_at < ? OR (d.updated_at = ? AND d.actor_id < ?))",
			ts, ts, cursor.ActorID,
		)
	}

	var decisions []db.Decision
	if err := query.Find(&decisions).Error; err != nil {
		return nil, nil, svcErr.Infra(op, err)
	}

	var nextToken *string
	if len(decisions) > limit {
		last := decisions[limit-1]
		token, err := pagination.Encode(pagination.Cursor{
			ActorID:     last.ActorID,
			UpdatedUnix: last.UpdatedAt.UnixMilli(),
		})
		if err != nil {
			return nil, nil, err
		}
		nextToken = &token
		decisions = decisions[:limit]
	}
	return decisions, nextToken, nil
}

// GetLikers pages through everyone visibly liking recipient, newest first.
//
// Example:
//
//	repo.GetLikers(ctx, 42, nil, 20) // first 20 people who liked user 42
func (r *DecisionRepository) GetLikers(
	ctx context.Context,
	recipientID uint64,
	paginationToken *string,
	limit int,
) ([]db.Decision, *string, error) {
	return pageLikes(r.visibleLikes(ctx, recipientID), paginationToken, limit, "list likers")
}

// GetNewLikers is GetLikers minus the likes recipient already returned.
func (r *DecisionRepository) GetNewLikers(
	ctx context.Context,
	recipientID uint64,
	paginationToken *string,
	limit int,
) ([]db.Decision, *string, error) {
	query := r.visibleLikes(ctx, recipientID).
		Where(`NOT EXISTS (
			SELECT 1 FROM decisions d3
			WHERE d3.actor_id = d.recipient_id AND d3.recipient_id = d.actor_id AND d3.liked = ?
		)`, true)
	return pageLikes(query, paginationToken, limit, "list new likers")
}

// CountLikers counts the likes GetLikers would list. The Redis cache sits in
// front of it.
func (r *DecisionRepository) CountLikers(ctx context.Context, recipientID uint64) (int64, error) {
	var count int64
	if err := r.visibleLikes(ctx, recipientID).Count(&count).Error; err != nil {
		return 0, svcErr.Infra("count likers", err)
	}
	return count, nil
}

// LikedRecipients lists everyone actor currently likes. Their cached liker
// counts go stale when actor is suspended.
func (r *DecisionRepository) LikedRecipients(ctx context.Context, actorID uint64) ([]uint64, error) {
	var ids []uint64
	err := r.db.WithContext(ctx).Model(&db.Decision{}).
		Where("actor_id = ? AND liked = ?", actorID, true).
		Pluck("recipient_id", &ids).Error
	if err != nil {
		return nil, svcErr.Infra("liked recipients", err)
	}
	return ids, nil
}

// HasLiked checks whether an actor has liked a recipient.
//
// Behavior:
//   - Returns true if there exists a decision row where actor_id = X,
//     recipient_id = Y, and liked = true.
//   - Used by the match engine for the reciprocity check.
//
// Example:
//
//	repo.HasLiked(ctx, 1, 2) // -> true if user 1 liked user 2
func (r *DecisionRepository) HasLiked(
	ctx context.Context,
	actorID, recipientID uint64,
) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("decisions d").
		Where("d.actor_id = ? AND d.recipient_id = ? AND d.liked = true", actorID, recipientID).
		Count(&count).Error
	if err != nil {
		return false, svcErr.Infra("has liked", err)
	}
	return count > 0, nil
}

// getString safely dereferences a string pointer for pagination tokens.
func getString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
