// Package session holds the authenticated identity for the lifetime of the
// client and rehydrates it from durable storage on startup.
package session

import (
	"encoding/json"
	"sync"

	"github.com/pkg/errors"

	"github.com/scut1er/studentportal/core/portal"
	"github.com/scut1er/studentportal/storage/localstore"
)

// Durable storage keys. Both are written on login and cleared together on logout.
const (
	userKey  = "user"
	tokenKey = "token"
)

type Service struct {
	mu      sync.RWMutex
	store   localstore.Store
	current *portal.Identity
}

func NewService(store localstore.Store) *Service {
	return &Service{store: store}
}

// Rehydrate loads a stored identity before any view renders.
// Absent or unparsable state yields an anonymous session, never an error;
// a stale token surfaces later as a failed API call.
func (svc *Service) Rehydrate() {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	raw, err := svc.store.Get(userKey)
	if err != nil {
		return
	}
	var identity portal.Identity
	if err := json.Unmarshal([]byte(raw), &identity); err != nil {
		return
	}
	if token, err := svc.store.Get(tokenKey); err == nil {
		identity.Token = token
	}
	svc.current = &identity
}

// Login stores the identity and its bearer token, in memory and durably.
func (svc *Service) Login(identity portal.Identity) error {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	raw, err := json.Marshal(identity)
	if err != nil {
		return errors.Wrap(err, "session.Marshal")
	}
	if err := svc.store.Set(userKey, string(raw)); err != nil {
		return err
	}
	if err := svc.store.Set(tokenKey, identity.Token); err != nil {
		return err
	}
	svc.current = &identity
	return nil
}

// Logout clears both the in-memory identity and the durable state.
func (svc *Service) Logout() error {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	svc.current = nil
	return svc.store.Delete(userKey, tokenKey)
}

// Current returns the authenticated identity, or nil for an anonymous session.
func (svc *Service) Current() *portal.Identity {
	svc.mu.RLock()
	defer svc.mu.RUnlock()

	if svc.current == nil {
		return nil
	}
	identity := *svc.current
	return &identity
}

// Token returns the bearer token of the current session, if any.
func (svc *Service) Token() string {
	svc.mu.RLock()
	defer svc.mu.RUnlock()

	if svc.current == nil {
		return ""
	}
	return svc.current.Token
}
