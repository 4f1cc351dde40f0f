// Package router maps the session state to exactly one top-level view.
package router

import (
	"github.com/scut1er/studentportal/core/portal"
	"github.com/scut1er/studentportal/core/session"
)

type State int

const (
	// StateLoading is transient while the session store rehydrates.
	StateLoading State = iota
	StateAnonymous
	StateAuthenticated
)

type View string

const (
	ViewLogin   View = "login"
	ViewStudent View = "student"
	ViewTeacher View = "teacher"
	ViewAdmin   View = "admin"
)

type Router struct {
	session *session.Service
	state   State
}

func New(sessionSvc *session.Service) *Router {
	return &Router{session: sessionSvc, state: StateLoading}
}

// Start rehydrates the session and leaves the loading state.
func (r *Router) Start() {
	r.session.Rehydrate()
	r.refresh()
}

func (r *Router) refresh() {
	if r.session.Current() == nil {
		r.state = StateAnonymous
	} else {
		r.state = StateAuthenticated
	}
}

func (r *Router) State() State {
	return r.state
}

// OnLogin transitions ANONYMOUS -> AUTHENTICATED.
func (r *Router) OnLogin(identity portal.Identity) error {
	if err := r.session.Login(identity); err != nil {
		return err
	}
	r.refresh()
	return nil
}

// OnLogout transitions AUTHENTICATED -> ANONYMOUS.
func (r *Router) OnLogout() error {
	if err := r.session.Logout(); err != nil {
		return err
	}
	r.refresh()
	return nil
}

// CurrentView is a pure function of the session state:
// anonymous sessions get the login view, authenticated ones the
// dashboard of their role.
func (r *Router) CurrentView() View {
	identity := r.session.Current()
	if r.state != StateAuthenticated || identity == nil {
		return ViewLogin
	}
	switch identity.Role {
	case portal.RoleStudent:
		return ViewStudent
	case portal.RoleAdmin:
		return ViewAdmin
	default:
		// any other authenticated role lands on the teacher dashboard;
		// the backend's role guards still deny what the token cannot do
		return ViewTeacher
	}
}

// Navigate redirects any request inconsistent with the session state
// instead of rendering it.
func (r *Router) Navigate(requested View) View {
	allowed := r.CurrentView()
	if requested == allowed {
		return requested
	}
	return allowed
}
