package navigation

import (
	"visuddha-service/internal/access"
	"visuddha-service/internal/model"
)

// State is the screen a client is on. Denial is set only when View is
// model.ViewUnauthorized.
type State struct {
	View   model.View     `json:"view"`
	Denial *access.Denial `json:"denial,omitempty"`
}

func Home() State {
	return State{View: model.ViewHome}
}

// Transition is the outcome of a navigation request.
type Transition struct {
	From      State
	To        State
	Requested string
	Decision  access.Decision
}

func (t Transition) Changed() bool {
	return t.From.View != t.To.View
}

type Router struct {
	guard access.Guard
}

func NewRouter(guard access.Guard) *Router {
	return &Router{guard: guard}
}

// Navigate resolves a navigation request for target. The guard runs before
// the transition is returned; the router never holds state itself.
func (r *Router) Navigate(user *model.User, from State, target string) Transition {
	t := Transition{From: from, Requested: target, Decision: access.Allow()}

	view, registered := model.ParseView(target)
	switch {
	case !registered:
		t.To = Home()
	case view == model.ViewHome || view == model.ViewLogin:
		t.To = State{View: view}
	case view == model.ViewUnauthorized:
		// Only reachable through a denial.
		t.To = Home()
	default:
		t.Decision = r.guard.Check(user, view)
		if t.Decision.Allowed {
			t.To = State{View: view}
		} else {
			t.To = State{View: model.ViewUnauthorized, Denial: t.Decision.Denial}
		}
	}
	return t
}

// Render re-validates the current view at the start of a render pass. When
// the user lost access to it, the state falls back to home and the second
// result is true.
func (r *Router) Render(user *model.User, current State) (State, bool) {
	if !current.View.Valid() {
		return Home(), true
	}
	if current.View == model.ViewUnauthorized && current.Denial == nil {
		return Home(), true
	}
	if !r.guard.Check(user, current.View).Allowed {
		return Home(), true
	}
	return current, false
}

// Reset is applied after login and logout.
func (r *Router) Reset() State {
	return Home()
}
