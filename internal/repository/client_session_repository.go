package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"visuddha-service/internal/model"
)

type ClientSessionRepository struct {
	db *gorm.DB
}

func NewClientSessionRepository(db *gorm.DB) *ClientSessionRepository {
	return &ClientSessionRepository{db: db}
}

func (r *ClientSessionRepository) Create(ctx context.Context, session *model.ClientSession) error {
	if session.ID == uuid.Nil {
		session.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *ClientSessionRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.ClientSession, error) {
	var session model.ClientSession
	if err := r.db.WithContext(ctx).First(&session, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *ClientSessionRepository) UpdateView(ctx context.Context, id uuid.UUID, view string, attempted *string) error {
	res := r.db.WithContext(ctx).
		Model(&model.ClientSession{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"active_view":    view,
			"attempted_view": attempted,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SetUser attaches userID to the session, or detaches the current user when
// userID is nil.
func (r *ClientSessionRepository) SetUser(ctx context.Context, id uuid.UUID, userID *uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Model(&model.ClientSession{}).
		Where("id = ?", id).
		Update("user_id", userID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
