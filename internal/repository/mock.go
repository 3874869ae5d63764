package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"visuddha-service/internal/model"
)

// NewMemory creates an in-memory store seeded with the demo users. It
// satisfies the same contracts as the gorm repositories, including
// gorm.ErrRecordNotFound for missing rows.
func NewMemory(options ...MemoryOption) *Memory {
	m := &Memory{
		users:    make(map[uuid.UUID]model.User),
		sessions: make(map[uuid.UUID]model.ClientSession),
	}
	for _, u := range model.DemoUsers() {
		u.ID = uuid.New()
		m.users[u.ID] = u
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// MemoryOption configures a Memory instance.
type MemoryOption func(*Memory)

// WithLogError makes every navigation log write fail with err.
func WithLogError(err error) MemoryOption {
	return func(m *Memory) { m.logErr = err }
}

// WithSetUserError makes every SetUser call fail with err.
func WithSetUserError(err error) MemoryOption {
	return func(m *Memory) { m.setUserErr = err }
}

type Memory struct {
	mu         sync.Mutex
	users      map[uuid.UUID]model.User
	sessions   map[uuid.UUID]model.ClientSession
	logs       []model.NavigationLog
	logErr     error
	setUserErr error
}

func (m *Memory) GetByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &u, nil
}

func (m *Memory) FindByRole(_ context.Context, role model.RoleType) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.RoleType == role {
			found := u
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// Sessions exposes the client session store side of Memory.
func (m *Memory) Sessions() *MemorySessions {
	return &MemorySessions{m: m}
}

// NavigationLog exposes the navigation log side of Memory.
func (m *Memory) NavigationLog() *MemoryNavigationLog {
	return &MemoryNavigationLog{m: m}
}

type MemorySessions struct {
	m *Memory
}

func (s *MemorySessions) Create(_ context.Context, session *model.ClientSession) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if session.ID == uuid.Nil {
		session.ID = uuid.New()
	}
	now := time.Now()
	session.CreatedAt, session.UpdatedAt = now, now
	s.m.sessions[session.ID] = *session
	return nil
}

func (s *MemorySessions) GetByID(_ context.Context, id uuid.UUID) (*model.ClientSession, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	session, ok := s.m.sessions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &session, nil
}

func (s *MemorySessions) UpdateView(_ context.Context, id uuid.UUID, view string, attempted *string) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	session, ok := s.m.sessions[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	session.ActiveView = view
	session.AttemptedView = attempted
	session.UpdatedAt = time.Now()
	s.m.sessions[id] = session
	return nil
}

func (s *MemorySessions) SetUser(_ context.Context, id uuid.UUID, userID *uuid.UUID) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if s.m.setUserErr != nil {
		return s.m.setUserErr
	}
	session, ok := s.m.sessions[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	session.UserID = userID
	session.UpdatedAt = time.Now()
	s.m.sessions[id] = session
	return nil
}

type MemoryNavigationLog struct {
	m *Memory
}

func (l *MemoryNavigationLog) Create(_ context.Context, entry *model.NavigationLog) error {
	l.m.mu.Lock()
	defer l.m.mu.Unlock()
	if l.m.logErr != nil {
		return l.m.logErr
	}
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	entry.CreatedAt = time.Now()
	l.m.logs = append(l.m.logs, *entry)
	return nil
}

func (l *MemoryNavigationLog) ListByClient(_ context.Context, clientID uuid.UUID, limit int) ([]model.NavigationLog, error) {
	l.m.mu.Lock()
	defer l.m.mu.Unlock()
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	out := make([]model.NavigationLog, 0)
	for i := len(l.m.logs) - 1; i >= 0; i-- {
		if l.m.logs[i].ClientID == clientID {
			out = append(out, l.m.logs[i])
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
