package service

import (
	"context"

	"github.com/google/uuid"

	"visuddha-service/internal/access"
	"visuddha-service/internal/model"
)

type UserStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	FindByRole(ctx context.Context, role model.RoleType) (*model.User, error)
}

type ClientSessionStore interface {
	Create(ctx context.Context, session *model.ClientSession) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.ClientSession, error)
	UpdateView(ctx context.Context, id uuid.UUID, view string, attempted *string) error
	SetUser(ctx context.Context, id uuid.UUID, userID *uuid.UUID) error
}

type NavigationLogStore interface {
	Create(ctx context.Context, entry *model.NavigationLog) error
	ListByClient(ctx context.Context, clientID uuid.UUID, limit int) ([]model.NavigationLog, error)
}

// SessionProvider supplies the user attached to a client session.
type SessionProvider interface {
	CurrentUser(ctx context.Context, clientID uuid.UUID) (*model.User, error)
	Login(ctx context.Context, clientID uuid.UUID, roleType string) (*model.User, error)
	Logout(ctx context.Context, clientID uuid.UUID) error
}

// ContentRenderer produces the body of a view.
type ContentRenderer interface {
	Render(view model.View, user *model.User, denial *access.Denial) interface{}
}
