package localstore

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func tempStore(t *testing.T) (Store, string) {
	dir, err := ioutil.TempDir("", "localstore")
	if err != nil {
		t.Fatalf("tempStore() failed: %v", err)
	}
	t.Cleanup(func() { _ = os.RemoveAll(dir) })

	store, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("tempStore() failed: %v", err)
	}
	return store, dir
}

func TestFileStore_SetGet(t *testing.T) {
	store, _ := tempStore(t)

	_, err := store.Get("token")
	assert.Equal(t, ErrKeyNotFound, err)

	assert.NoError(t, store.Set("token", "s3cr3t"))
	val, err := store.Get("token")
	assert.NoError(t, err)
	assert.Equal(t, "s3cr3t", val)
}

func TestFileStore_SurvivesReopen(t *testing.T) {
	store, dir := tempStore(t)
	assert.NoError(t, store.Set("user", `{"userId":1}`))

	reopened, err := NewFileStore(dir)
	assert.NoError(t, err)
	val, err := reopened.Get("user")
	assert.NoError(t, err)
	assert.Equal(t, `{"userId":1}`, val)
}

func TestFileStore_Delete(t *testing.T) {
	store, _ := tempStore(t)
	assert.NoError(t, store.Set("user", "u"))
	assert.NoError(t, store.Set("token", "t"))

	assert.NoError(t, store.Delete("user", "token", "missing"))

	_, err := store.Get("user")
	assert.Equal(t, ErrKeyNotFound, err)
	_, err = store.Get("token")
	assert.Equal(t, ErrKeyNotFound, err)
}

func TestFileStore_CorruptFileTreatedAsEmpty(t *testing.T) {
	store, dir := tempStore(t)
	assert.NoError(t, ioutil.WriteFile(filepath.Join(dir, stateFileName), []byte("{not json"), 0600))

	_, err := store.Get("user")
	assert.Equal(t, ErrKeyNotFound, err)

	// writable again after corruption
	assert.NoError(t, store.Set("user", "u"))
	val, err := store.Get("user")
	assert.NoError(t, err)
	assert.Equal(t, "u", val)
}
