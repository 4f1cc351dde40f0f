package localstore

import "sync"

type inMemStore struct {
	sync.RWMutex
	table map[string]string
}

var _ Store = (*inMemStore)(nil)

// NewInMemStore returns a volatile Store; it backs tests and ephemeral sessions.
func NewInMemStore() Store {
	return &inMemStore{table: make(map[string]string)}
}

func (s *inMemStore) Get(key string) (string, error) {
	s.RLock()
	defer s.RUnlock()

	if val, ok := s.table[key]; ok {
		return val, nil
	}
	return "", ErrKeyNotFound
}

func (s *inMemStore) Set(key, value string) error {
	s.Lock()
	defer s.Unlock()

	s.table[key] = value
	return nil
}

func (s *inMemStore) Delete(keys ...string) error {
	s.Lock()
	defer s.Unlock()

	for _, key := range keys {
		delete(s.table, key)
	}
	return nil
}
