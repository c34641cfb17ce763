package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/oggyb/matchcore/internal/db"
	svcErr "github.com/oggyb/matchcore/internal/errors"
)

type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(database *gorm.DB) *ReportRepository {
	return &ReportRepository{db: database}
}

// Create appends a report. Reports are never updated.
func (r *ReportRepository) Create(ctx context.Context, rep *db.Report) error {
	if rep.ID == "" {
		rep.ID = uuid.NewString()
	}
	return svcErr.Infra("create report", r.db.WithContext(ctx).Create(rep).Error)
}

// CountForTarget counts every report filed against target.
func (r *ReportRepository) CountForTarget(ctx context.Context, targetID uint64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&db.Report{}).
		Where("target_id = ?", targetID).
		Count(&n).Error
	return n, svcErr.Infra("count reports", err)
}
