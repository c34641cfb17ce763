package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/oggyb/matchcore/internal/db"
	svcErr "github.com/oggyb/matchcore/internal/errors"
)

// FingerprintRepository is the write-once hash → owner table.
type FingerprintRepository struct {
	db *gorm.DB
}

func NewFingerprintRepository(database *gorm.DB) *FingerprintRepository {
	return &FingerprintRepository{db: database}
}

// RegisterIfAbsent claims hash for owner unless someone already holds it.
//
// Behavior:
//   - Conditional insert on the hash primary key; first writer wins.
//   - Returns (owner, true) when this call registered the hash.
//   - Returns (existingOwner, false) when the hash was already registered.
//   - Any store failure is returned as an infrastructure error; callers must not
//     treat it as "absent".
func (r *FingerprintRepository) RegisterIfAbsent(
	ctx context.Context,
	hash string,
	owner uint64,
	now time.Time,
) (uint64, bool, error) {
	fp := db.ContentFingerprint{Hash: hash, OwnerID: owner, FirstSeenAt: now.UTC()}
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "hash"}},
			DoNothing: true,
		}).
		Create(&fp)
	if res.Error != nil && !errors.Is(res.Error, gorm.ErrDuplicatedKey) {
		return 0, false, svcErr.Infra("register fingerprint", res.Error)
	}
	if res.Error == nil && res.RowsAffected == 1 {
		return owner, true, nil
	}

	var existing db.ContentFingerprint
	if err := r.db.WithContext(ctx).Where("hash = ?", hash).Take(&existing).Error; err != nil {
		// conflict without a readable row is inconclusive
		return 0, false, svcErr.Infra("read fingerprint owner", err)
	}
	return existing.OwnerID, false, nil
}

// RecordClaimConflict writes an audit row for a cross-owner upload attempt.
func (r *FingerprintRepository) RecordClaimConflict(ctx context.Context, hash string, owner, claimant uint64) error {
	ev := db.ContentClaimEvent{Hash: hash, OwnerID: owner, ClaimantID: claimant}
	return svcErr.Infra("record claim conflict", r.db.WithContext(ctx).Create(&ev).Error)
}

// CountClaimConflicts returns how many cross-owner attempts claimant made.
func (r *FingerprintRepository) CountClaimConflicts(ctx context.Context, claimant uint64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&db.ContentClaimEvent{}).
		Where("claimant_id = ?", claimant).
		Count(&n).Error
	return n, svcErr.Infra("count claim conflicts", err)
}
