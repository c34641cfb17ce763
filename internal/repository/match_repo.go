package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/oggyb/matchcore/internal/db"
	svcErr "github.com/oggyb/matchcore/internal/errors"
	"github.com/oggyb/matchcore/internal/pairkey"
)

// MatchRepository stores match records, one per unordered pair.
type MatchRepository struct {
	db *gorm.DB
}

func NewMatchRepository(database *gorm.DB) *MatchRepository {
	return &MatchRepository{db: database}
}

// InsertMatchIfAbsent creates the match for key unless one already exists.
//
// Behavior:
//   - The insert is conditional on the unique (user_low_id, user_high_id) index,
//     so two concurrent callers for the same pair produce exactly one row.
//   - created reports whether this call inserted the row. On conflict the
//     existing row is returned with created = false.
//   - If the conflicting row is gone before it can be read (a concurrent
//     unmatch), the insert is tried once more. Should that lose the same race
//     again, a zero Match is returned with created = false.
func (r *MatchRepository) InsertMatchIfAbsent(ctx context.Context, key pairkey.Key) (db.Match, bool, error) {
	for attempt := 0; attempt < 2; attempt++ {
		m, created, found, err := r.tryInsert(ctx, key)
		if err != nil || created || found {
			return m, created, err
		}
	}
	return db.Match{}, false, nil
}

// tryInsert makes one conditional insert. found reports that a row for key
// exists afterwards, inserted by this call or not.
func (r *MatchRepository) tryInsert(ctx context.Context, key pairkey.Key) (m db.Match, created, found bool, err error) {
	m = db.Match{
		ID:         uuid.NewString(),
		UserLowID:  key.Low,
		UserHighID: key.High,
	}
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_low_id"}, {Name: "user_high_id"}},
			DoNothing: true,
		}).
		Create(&m)
	if res.Error != nil && !errors.Is(res.Error, gorm.ErrDuplicatedKey) {
		return db.Match{}, false, false, svcErr.Infra("insert match", res.Error)
	}
	// dialects without ON CONFLICT support report the race as ErrDuplicatedKey
	if res.Error == nil && res.RowsAffected == 1 {
		return m, true, true, nil
	}

	existing, err := r.FindByParticipants(ctx, key.Low, key.High)
	if err != nil || existing == nil {
		return db.Match{}, false, false, err
	}
	return *existing, false, true, nil
}

// FindByParticipants returns the match between a and b in either order, or nil.
func (r *MatchRepository) FindByParticipants(ctx context.Context, a, b uint64) (*db.Match, error) {
	key := pairkey.Canonical(a, b)
	var m db.Match
	err := r.db.WithContext(ctx).
		Where("user_low_id = ? AND user_high_id = ?", key.Low, key.High).
		Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, svcErr.Infra("find match by participants", err)
	}
	return &m, nil
}

// FindByID returns the match with id, or nil.
func (r *MatchRepository) FindByID(ctx context.Context, id string) (*db.Match, error) {
	var m db.Match
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, svcErr.Infra("find match", err)
	}
	return &m, nil
}

// DeleteMatch hard-deletes the match. deleted is false when no row matched.
func (r *MatchRepository) DeleteMatch(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&db.Match{})
	if res.Error != nil {
		return false, svcErr.Infra("delete match", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// CountForPair is 0 or 1 by construction.
func (r *MatchRepository) CountForPair(ctx context.Context, a, b uint64) (int64, error) {
	key := pairkey.Canonical(a, b)
	var n int64
	err := r.db.WithContext(ctx).Model(&db.Match{}).
		Where("user_low_id = ? AND user_high_id = ?", key.Low, key.High).
		Count(&n).Error
	return n, svcErr.Infra("count matches", err)
}

// ListForUser returns the user's matches, newest first.
func (r *MatchRepository) ListForUser(ctx context.Context, userID uint64, limit int) ([]db.Match, error) {
	var out []db.Match
	err := r.db.WithContext(ctx).
		Where("user_low_id = ? OR user_high_id = ?", userID, userID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&out).Error
	if err != nil {
		return nil, svcErr.Infra("list matches", err)
	}
	return out, nil
}
