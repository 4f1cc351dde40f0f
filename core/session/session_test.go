package session

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/scut1er/studentportal/core/portal"
	"github.com/scut1er/studentportal/storage/localstore"
)

var studentIdentity = portal.Identity{
	Token:     "tok-123",
	Email:     "student@example.com",
	FirstName: "Ivan",
	LastName:  "Petrov",
	Role:      portal.RoleStudent,
	UserID:    7,
}

func TestService_LoginPersistsIdentityAndToken(t *testing.T) {
	store := localstore.NewInMemStore()
	svc := NewService(store)

	assert.Nil(t, svc.Current())
	assert.NoError(t, svc.Login(studentIdentity))

	current := svc.Current()
	if assert.NotNil(t, current) {
		assert.Equal(t, studentIdentity, *current)
	}
	assert.Equal(t, "tok-123", svc.Token())

	token, err := store.Get("token")
	assert.NoError(t, err)
	assert.Equal(t, "tok-123", token)
	_, err = store.Get("user")
	assert.NoError(t, err)
}

func TestService_RehydrateRestoresSession(t *testing.T) {
	store := localstore.NewInMemStore()
	assert.NoError(t, NewService(store).Login(studentIdentity))

	// a fresh service over the same store simulates an app restart
	svc := NewService(store)
	assert.Nil(t, svc.Current())
	svc.Rehydrate()

	current := svc.Current()
	if assert.NotNil(t, current) {
		assert.Equal(t, studentIdentity, *current)
	}
}

func TestService_RehydrateUnparsableStateIsAnonymous(t *testing.T) {
	store := localstore.NewInMemStore()
	assert.NoError(t, store.Set("user", "{broken"))

	svc := NewService(store)
	svc.Rehydrate()
	assert.Nil(t, svc.Current())
}

func TestService_LogoutClearsEverything(t *testing.T) {
	store := localstore.NewInMemStore()
	svc := NewService(store)
	assert.NoError(t, svc.Login(studentIdentity))

	assert.NoError(t, svc.Logout())
	assert.Nil(t, svc.Current())
	assert.Equal(t, "", svc.Token())

	_, err := store.Get("user")
	assert.Equal(t, localstore.ErrKeyNotFound, err)
	_, err = store.Get("token")
	assert.Equal(t, localstore.ErrKeyNotFound, err)

	// reload after logout yields the anonymous state
	reloaded := NewService(store)
	reloaded.Rehydrate()
	assert.Nil(t, reloaded.Current())
}
