package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"visuddha-service/internal/model"
)

// SessionService attaches seeded demo users to client sessions.
type SessionService struct {
	users    UserStore
	sessions ClientSessionStore
}

func NewSessionService(users UserStore, sessions ClientSessionStore) *SessionService {
	return &SessionService{
		users:    users,
		sessions: sessions,
	}
}

func (s *SessionService) CurrentUser(ctx context.Context, clientID uuid.UUID) (*model.User, error) {
	session, err := s.sessions.GetByID(ctx, clientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if session.UserID == nil {
		return nil, nil
	}

	user, err := s.users.GetByID(ctx, *session.UserID)
	if err != nil {
		return nil, fmt.Errorf("load user %s: %w", session.UserID, err)
	}
	return user, nil
}

func (s *SessionService) Login(ctx context.Context, clientID uuid.UUID, roleType string) (*model.User, error) {
	role, err := model.ParseRoleType(roleType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	user, err := s.users.FindByRole(ctx, role)
	if err != nil {
		return nil, fmt.Errorf("%w: no demo user for role %s: %v", ErrLoginFailed, role, err)
	}

	if err := s.sessions.SetUser(ctx, clientID, &user.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrLoginFailed, err)
	}
	return user, nil
}

func (s *SessionService) Logout(ctx context.Context, clientID uuid.UUID) error {
	if err := s.sessions.SetUser(ctx, clientID, nil); err != nil {
		return fmt.Errorf("detach user: %w", err)
	}
	return nil
}
