package localstore

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
)

const stateFileName = "state.json"

// fileStore persists keys as a single JSON object on disk.
// An unreadable or unparsable file is treated as empty state, not an error:
// a torn write must never lock the user out of the app.
type fileStore struct {
	mu   sync.Mutex
	path string
}

var _ Store = (*fileStore)(nil)

func NewFileStore(dir string) (Store, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, errors.Wrapf(err, "localstore.MkdirAll(%s)", dir)
	}
	return &fileStore{path: filepath.Join(dir, stateFileName)}, nil
}

func (s *fileStore) load() map[string]string {
	state := make(map[string]string)
	data, err := ioutil.ReadFile(s.path)
	if err != nil {
		return state
	}
	_ = json.Unmarshal(data, &state)
	return state
}

func (s *fileStore) save(state map[string]string) error {
	data, err := json.Marshal(state)
	if err != nil {
		return errors.Wrap(err, "localstore.Marshal")
	}
	if err := ioutil.WriteFile(s.path, data, 0600); err != nil {
		return errors.Wrapf(err, "localstore.WriteFile(%s)", s.path)
	}
	return nil
}

func (s *fileStore) Get(key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if val, ok := s.load()[key]; ok {
		return val, nil
	}
	return "", ErrKeyNotFound
}

func (s *fileStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.load()
	state[key] = value
	return s.save(state)
}

func (s *fileStore) Delete(keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.load()
	for _, key := range keys {
		delete(state, key)
	}
	return s.save(state)
}
