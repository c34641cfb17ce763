package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/oggyb/matchcore/internal/db"
	svcErr "github.com/oggyb/matchcore/internal/errors"
)

type BlockRepository struct {
	db *gorm.DB
}

func NewBlockRepository(database *gorm.DB) *BlockRepository {
	return &BlockRepository{db: database}
}

// Create records blocker → blocked. A second block of the same pair is ErrAlreadyBlocked.
func (r *BlockRepository) Create(ctx context.Context, blockerID, blockedID uint64) error {
	err := r.db.WithContext(ctx).Create(&db.Block{BlockerID: blockerID, BlockedID: blockedID}).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return svcErr.ErrAlreadyBlocked
	}
	return svcErr.Infra("create block", err)
}

// IsBlockedEitherWay reports whether a blocked b or b blocked a.
func (r *BlockRepository) IsBlockedEitherWay(ctx context.Context, a, b uint64) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&db.Block{}).
		Where("(blocker_id = ? AND blocked_id = ?) OR (blocker_id = ? AND blocked_id = ?)", a, b, b, a).
		Count(&n).Error
	if err != nil {
		return false, svcErr.Infra("check block", err)
	}
	return n > 0, nil
}
