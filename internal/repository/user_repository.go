package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"visuddha-service/internal/model"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByRole returns the demo user seeded for role.
func (r *UserRepository) FindByRole(ctx context.Context, role model.RoleType) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).
		Where("role_type = ?", role).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
