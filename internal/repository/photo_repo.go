package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/oggyb/matchcore/internal/db"
	svcErr "github.com/oggyb/matchcore/internal/errors"
)

type PhotoRepository struct {
	db *gorm.DB
}

func NewPhotoRepository(database *gorm.DB) *PhotoRepository {
	return &PhotoRepository{db: database}
}

func (r *PhotoRepository) Create(ctx context.Context, p *db.Photo) error {
	return svcErr.Infra("create photo", r.db.WithContext(ctx).Create(p).Error)
}

func (r *PhotoRepository) CountByOwner(ctx context.Context, ownerID uint64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&db.Photo{}).
		Where("owner_id = ?", ownerID).
		Count(&n).Error
	return n, svcErr.Infra("count photos", err)
}
