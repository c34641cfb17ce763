package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/oggyb/matchcore/internal/db"
	svcErr "github.com/oggyb/matchcore/internal/errors"
)

type MessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(database *gorm.DB) *MessageRepository {
	return &MessageRepository{db: database}
}

func (r *MessageRepository) Create(ctx context.Context, m *db.Message) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return svcErr.Infra("create message", r.db.WithContext(ctx).Create(m).Error)
}
