package router

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/scut1er/studentportal/core/portal"
	"github.com/scut1er/studentportal/core/session"
	"github.com/scut1er/studentportal/storage/localstore"
)

func newRouter() (*Router, *session.Service) {
	svc := session.NewService(localstore.NewInMemStore())
	return New(svc), svc
}

func identity(role string) portal.Identity {
	return portal.Identity{Token: "tok", Email: role + "@example.com", Role: role, UserID: 1}
}

func TestRouter_ViewPerRole(t *testing.T) {
	tests := []struct {
		name      string
		loggedIn  bool
		role      string
		wantView  View
		wantState State
	}{
		{name: "anonymous", wantView: ViewLogin, wantState: StateAnonymous},
		{name: "student", loggedIn: true, role: portal.RoleStudent, wantView: ViewStudent, wantState: StateAuthenticated},
		{name: "teacher", loggedIn: true, role: portal.RoleTeacher, wantView: ViewTeacher, wantState: StateAuthenticated},
		{name: "admin", loggedIn: true, role: portal.RoleAdmin, wantView: ViewAdmin, wantState: StateAuthenticated},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := newRouter()
			r.Start()
			if tt.loggedIn {
				assert.NoError(t, r.OnLogin(identity(tt.role)))
			}
			assert.Equal(t, tt.wantState, r.State())
			assert.Equal(t, tt.wantView, r.CurrentView())
		})
	}
}

func TestRouter_StartResolvesLoading(t *testing.T) {
	store := localstore.NewInMemStore()
	svc := session.NewService(store)
	assert.NoError(t, svc.Login(identity(portal.RoleTeacher)))

	// fresh router over a store that already holds a session
	r := New(session.NewService(store))
	assert.Equal(t, StateLoading, r.State())
	r.Start()
	assert.Equal(t, StateAuthenticated, r.State())
	assert.Equal(t, ViewTeacher, r.CurrentView())

	// and over an empty one
	r2, _ := newRouter()
	r2.Start()
	assert.Equal(t, StateAnonymous, r2.State())
}

func TestRouter_NavigateRedirectsInconsistentRequests(t *testing.T) {
	r, _ := newRouter()
	r.Start()

	// anonymous: everything redirects to login
	assert.Equal(t, ViewLogin, r.Navigate(ViewStudent))
	assert.Equal(t, ViewLogin, r.Navigate(ViewAdmin))

	assert.NoError(t, r.OnLogin(identity(portal.RoleStudent)))
	// authenticated sessions are redirected away from login
	assert.Equal(t, ViewStudent, r.Navigate(ViewLogin))
	// and away from other roles' dashboards
	assert.Equal(t, ViewStudent, r.Navigate(ViewTeacher))
	assert.Equal(t, ViewStudent, r.Navigate(ViewStudent))
}

func TestRouter_LogoutReturnsToAnonymous(t *testing.T) {
	r, _ := newRouter()
	r.Start()
	assert.NoError(t, r.OnLogin(identity(portal.RoleAdmin)))
	assert.NoError(t, r.OnLogout())

	assert.Equal(t, StateAnonymous, r.State())
	assert.Equal(t, ViewLogin, r.CurrentView())
}
