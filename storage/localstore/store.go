// Package localstore provides the durable client-local key-value storage
// that survives restarts (the browser localStorage counterpart).
package localstore

import "errors"

var ErrKeyNotFound = errors.New("key not found")

type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
	// Delete removes the given keys; missing keys are not an error.
	Delete(keys ...string) error
}
