package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"visuddha-service/internal/model"
)

type NavigationLogRepository struct {
	db *gorm.DB
}

func NewNavigationLogRepository(db *gorm.DB) *NavigationLogRepository {
	return &NavigationLogRepository{db: db}
}

func (r *NavigationLogRepository) Create(ctx context.Context, entry *model.NavigationLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *NavigationLogRepository) ListByClient(ctx context.Context, clientID uuid.UUID, limit int) ([]model.NavigationLog, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	entries := []model.NavigationLog{}
	if err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("created_at DESC").
		Limit(limit).
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
