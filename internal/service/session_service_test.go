package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"visuddha-service/internal/model"
	"visuddha-service/internal/repository"
)

func TestSessionLoginAttachesDemoUser(t *testing.T) {
	store := repository.NewMemory()
	sessions := store.Sessions()
	svc := NewSessionService(store, sessions)
	ctx := context.Background()

	session := &model.ClientSession{ActiveView: "home"}
	require.NoError(t, sessions.Create(ctx, session))

	user, err := svc.CurrentUser(ctx, session.ID)
	require.NoError(t, err)
	assert.Nil(t, user)

	user, err = svc.Login(ctx, session.ID, " Processor ")
	require.NoError(t, err)
	assert.Equal(t, model.RoleProcessor, user.RoleType)
	assert.True(t, user.Has(model.PermQualityControl))

	current, err := svc.CurrentUser(ctx, session.ID)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, user.ID, current.ID)

	require.NoError(t, svc.Logout(ctx, session.ID))
	current, err = svc.CurrentUser(ctx, session.ID)
	require.NoError(t, err)
	assert.Nil(t, current)
}

func TestSessionLoginErrors(t *testing.T) {
	store := repository.NewMemory()
	svc := NewSessionService(store, store.Sessions())
	ctx := context.Background()

	_, err := svc.Login(ctx, uuid.New(), "")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Login(ctx, uuid.New(), "admin")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.CurrentUser(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}
