package service

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"visuddha-service/internal/access"
	"visuddha-service/internal/model"
	"visuddha-service/internal/navigation"
)

// Screen is what a client renders after an action.
type Screen struct {
	View    model.View     `json:"view"`
	User    *model.User    `json:"user"`
	Denial  *access.Denial `json:"denial,omitempty"`
	Loading bool           `json:"loading"`
	Content interface{}    `json:"content,omitempty"`
}

type RouteEntry struct {
	View     model.View         `json:"view"`
	Required []model.Permission `json:"required_permissions"`
	Allowed  bool               `json:"allowed"`
}

// AppService owns the current user and active view of every client session.
// All changes go through Login, Logout, Navigate and Back.
type AppService struct {
	sessions ClientSessionStore
	navLog   NavigationLogStore
	provider SessionProvider
	guard    access.Guard
	router   *navigation.Router
	content  ContentRenderer
	log      zerolog.Logger

	pending  pendingSet
	detached clientSet
}

func NewAppService(
	sessions ClientSessionStore,
	navLog NavigationLogStore,
	provider SessionProvider,
	policy access.Policy,
	content ContentRenderer,
	log zerolog.Logger,
) *AppService {
	guard := access.NewGuard(policy)
	return &AppService{
		sessions: sessions,
		navLog:   navLog,
		provider: provider,
		guard:    guard,
		router:   navigation.NewRouter(guard),
		content:  content,
		log:      log,
		pending:  pendingSet{ids: make(map[uuid.UUID]int)},
		detached: clientSet{ids: make(map[uuid.UUID]struct{})},
	}
}

// OpenClient starts a new anonymous client session on the home view.
func (s *AppService) OpenClient(ctx context.Context) (*model.ClientSession, Screen, error) {
	session := &model.ClientSession{ActiveView: model.ViewHome.String()}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, Screen{}, err
	}
	return session, s.screen(navigation.Home(), nil), nil
}

// Screen runs a render pass for the client's active view.
func (s *AppService) Screen(ctx context.Context, clientID uuid.UUID) (Screen, error) {
	session, err := s.loadSession(ctx, clientID)
	if err != nil {
		return Screen{}, err
	}
	if !s.pending.tryBegin(clientID) {
		return Screen{View: parseStoredView(session.ActiveView), Loading: true}, nil
	}
	defer s.pending.end(clientID)

	user, err := s.currentUser(ctx, clientID)
	if err != nil {
		return Screen{}, err
	}

	state := s.decodeState(session, user)
	next, forced := s.router.Render(user, state)
	if forced {
		tr := navigation.Transition{From: state, To: next, Decision: access.Allow()}
		if err := s.commit(ctx, clientID, tr, user, model.NavigationCauseRender); err != nil {
			return Screen{}, err
		}
	}
	return s.screen(next, user), nil
}

func (s *AppService) Navigate(ctx context.Context, clientID uuid.UUID, target string) (Screen, error) {
	if !s.pending.tryBegin(clientID) {
		return Screen{}, ErrSessionPending
	}
	defer s.pending.end(clientID)

	session, err := s.loadSession(ctx, clientID)
	if err != nil {
		return Screen{}, err
	}
	user, err := s.currentUser(ctx, clientID)
	if err != nil {
		return Screen{}, err
	}

	tr := s.router.Navigate(user, s.decodeState(session, user), target)
	if err := s.commit(ctx, clientID, tr, user, model.NavigationCauseUser); err != nil {
		return Screen{}, err
	}
	if !tr.Decision.Allowed {
		s.log.Info().
			Str("client_id", clientID.String()).
			Str("view", target).
			Msg("navigation denied")
	}
	return s.screen(tr.To, user), nil
}

// Back returns the client to the home view.
func (s *AppService) Back(ctx context.Context, clientID uuid.UUID) (Screen, error) {
	return s.Navigate(ctx, clientID, model.ViewHome.String())
}

// Login attaches the demo user for roleType and resets the view to home. A
// request cancelled after the provider succeeded restores the previous user.
func (s *AppService) Login(ctx context.Context, clientID uuid.UUID, roleType string) (Screen, error) {
	if !s.pending.tryBegin(clientID) {
		return Screen{}, ErrSessionPending
	}
	defer s.pending.end(clientID)

	session, err := s.loadSession(ctx, clientID)
	if err != nil {
		return Screen{}, err
	}

	user, err := s.provider.Login(ctx, clientID, roleType)
	if err != nil {
		s.log.Warn().Err(err).Str("client_id", clientID.String()).Str("role_type", roleType).Msg("login failed")
		if errors.Is(err, ErrInvalidInput) || errors.Is(err, ErrNotFound) || errors.Is(err, ErrLoginFailed) {
			return Screen{}, err
		}
		return Screen{}, ErrLoginFailed
	}
	if err := ctx.Err(); err != nil {
		s.attach(ctx, clientID, session.UserID)
		return Screen{}, err
	}
	s.detached.remove(clientID)

	tr := navigation.Transition{
		From:     s.decodeState(session, user),
		To:       s.router.Reset(),
		Decision: access.Allow(),
	}
	if err := s.commit(ctx, clientID, tr, user, model.NavigationCauseLogin); err != nil {
		return Screen{}, err
	}
	s.log.Info().Str("client_id", clientID.String()).Str("role_type", string(user.RoleType)).Msg("user logged in")
	return s.screen(tr.To, user), nil
}

// Logout detaches the user and resets the view to home. When the provider
// fails the user is still detached locally.
func (s *AppService) Logout(ctx context.Context, clientID uuid.UUID) (Screen, error) {
	if !s.pending.tryBegin(clientID) {
		return Screen{}, ErrSessionPending
	}
	defer s.pending.end(clientID)

	session, err := s.loadSession(ctx, clientID)
	if err != nil {
		return Screen{}, err
	}

	if err := s.provider.Logout(ctx, clientID); err != nil {
		s.log.Error().Err(err).Str("client_id", clientID.String()).Msg("logout failed, detaching locally")
		s.attach(ctx, clientID, nil)
	}

	tr := navigation.Transition{
		From:     s.decodeState(session, nil),
		To:       s.router.Reset(),
		Decision: access.Allow(),
	}
	if err := s.commit(ctx, clientID, tr, nil, model.NavigationCauseLogout); err != nil {
		return Screen{}, err
	}
	return s.screen(tr.To, nil), nil
}

func (s *AppService) CurrentUser(ctx context.Context, clientID uuid.UUID) (*model.User, error) {
	if _, err := s.loadSession(ctx, clientID); err != nil {
		return nil, err
	}
	return s.currentUser(ctx, clientID)
}

// Routes lists every view with its requirement and whether the client's
// user may open it.
func (s *AppService) Routes(ctx context.Context, clientID uuid.UUID) ([]RouteEntry, error) {
	user, err := s.CurrentUser(ctx, clientID)
	if err != nil {
		return nil, err
	}

	entries := make([]RouteEntry, 0, model.ViewCount)
	for _, v := range model.Views() {
		if v == model.ViewUnauthorized {
			continue
		}
		required, _ := access.RequirementsFor(v)
		if required == nil {
			required = []model.Permission{}
		}
		entries = append(entries, RouteEntry{
			View:     v,
			Required: required,
			Allowed:  s.guard.Check(user, v).Allowed,
		})
	}
	return entries, nil
}

// Authorize runs the view guard for the client's user without navigating.
func (s *AppService) Authorize(ctx context.Context, clientID uuid.UUID, view model.View) (access.Decision, error) {
	user, err := s.CurrentUser(ctx, clientID)
	if err != nil {
		return access.Decision{}, err
	}
	return s.guard.Check(user, view), nil
}

func (s *AppService) History(ctx context.Context, clientID uuid.UUID, limit int) ([]model.NavigationLog, error) {
	if _, err := s.loadSession(ctx, clientID); err != nil {
		return nil, err
	}
	return s.navLog.ListByClient(ctx, clientID, limit)
}

func (s *AppService) loadSession(ctx context.Context, clientID uuid.UUID) (*model.ClientSession, error) {
	session, err := s.sessions.GetByID(ctx, clientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return session, nil
}

// currentUser asks the provider for the client's user. Failures degrade to
// an anonymous user; a cancelled request discards the result.
func (s *AppService) currentUser(ctx context.Context, clientID uuid.UUID) (*model.User, error) {
	if s.detached.has(clientID) {
		return nil, nil
	}

	s.pending.begin(clientID)
	user, err := s.provider.CurrentUser(ctx, clientID)
	s.pending.end(clientID)

	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}
	if err != nil {
		s.log.Warn().Err(err).Str("client_id", clientID.String()).Msg("session check failed, continuing anonymously")
		return nil, nil
	}
	return user, nil
}

// attach sets the client's user directly on the session store, outliving the
// request context. If the store refuses a detach, the client is marked
// detached until its next successful login.
func (s *AppService) attach(ctx context.Context, clientID uuid.UUID, userID *uuid.UUID) {
	if err := s.sessions.SetUser(context.WithoutCancel(ctx), clientID, userID); err != nil {
		s.log.Error().Err(err).Str("client_id", clientID.String()).Msg("session user update failed")
		if userID == nil {
			s.detached.add(clientID)
		}
	}
}

func (s *AppService) decodeState(session *model.ClientSession, user *model.User) navigation.State {
	view := parseStoredView(session.ActiveView)
	if view != model.ViewUnauthorized {
		return navigation.State{View: view}
	}

	state := navigation.State{View: model.ViewUnauthorized}
	if session.AttemptedView != nil {
		if attempted, ok := model.ParseView(*session.AttemptedView); ok {
			state.Denial = s.guard.Check(user, attempted).Denial
		}
	}
	return state
}

func (s *AppService) commit(ctx context.Context, clientID uuid.UUID, tr navigation.Transition, user *model.User, cause model.NavigationCause) error {
	var attempted *string
	if tr.To.Denial != nil {
		name := tr.To.Denial.View.String()
		attempted = &name
	}
	if err := s.sessions.UpdateView(ctx, clientID, tr.To.View.String(), attempted); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	entry := &model.NavigationLog{
		ClientID:  clientID,
		FromView:  tr.From.View.String(),
		ToView:    tr.To.View.String(),
		Requested: tr.Requested,
		Allowed:   tr.Decision.Allowed,
		Cause:     cause,
	}
	if user != nil {
		role := user.RoleType
		entry.RoleType = &role
	}
	if err := s.navLog.Create(ctx, entry); err != nil {
		s.log.Warn().Err(err).Str("client_id", clientID.String()).Msg("navigation log write failed")
	}
	return nil
}

func (s *AppService) screen(state navigation.State, user *model.User) Screen {
	return Screen{
		View:    state.View,
		User:    user,
		Denial:  state.Denial,
		Content: s.content.Render(state.View, user, state.Denial),
	}
}

func parseStoredView(raw string) model.View {
	view, ok := model.ParseView(raw)
	if !ok {
		return model.ViewHome
	}
	return view
}

// pendingSet tracks clients with a session call in flight.
type pendingSet struct {
	mu  sync.Mutex
	ids map[uuid.UUID]int
}

func (p *pendingSet) begin(id uuid.UUID) {
	p.mu.Lock()
	p.ids[id]++
	p.mu.Unlock()
}

// tryBegin marks id pending unless it already is.
func (p *pendingSet) tryBegin(id uuid.UUID) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ids[id] > 0 {
		return false
	}
	p.ids[id]++
	return true
}

func (p *pendingSet) end(id uuid.UUID) {
	p.mu.Lock()
	if p.ids[id] <= 1 {
		delete(p.ids, id)
	} else {
		p.ids[id]--
	}
	p.mu.Unlock()
}

// clientSet holds clients logged out locally while the store still lists a user.
type clientSet struct {
	mu  sync.Mutex
	ids map[uuid.UUID]struct{}
}

func (c *clientSet) add(id uuid.UUID) {
	c.mu.Lock()
	c.ids[id] = struct{}{}
	c.mu.Unlock()
}

func (c *clientSet) remove(id uuid.UUID) {
	c.mu.Lock()
	delete(c.ids, id)
	c.mu.Unlock()
}

func (c *clientSet) has(id uuid.UUID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.ids[id]
	return ok
}
