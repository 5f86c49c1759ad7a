// Package store provides the durable key-value string store that backs the
// preferences. Every key is written independently; there are no multi-key
// transactions.
package store

import (
	"errors"
	"fmt"
	"strings"
)

// Store is a string-keyed, string-valued durable store.
type Store interface {
	// Get returns the value of key and whether it was present.
	Get(key string) (string, bool, error)
	// Set creates or overwrites key.
	Set(key, value string) error
	// Remove deletes key. Removing an absent key is not an error.
	Remove(key string) error
	Close() error
}

// Back end names accepted by Open.
const (
	BackendFile    = "file"
	BackendSQLite  = "sqlite"
	BackendKeyring = "keyring"
	BackendMemory  = "memory"
)

// ErrUnknownBackend is returned by Open for an unsupported back end name.
var ErrUnknownBackend = errors.New("unknown store backend")

// ErrEmptyKey is returned when an operation is given an empty key.
var ErrEmptyKey = errors.New("key cannot be empty")

// Backends returns the supported back end names.
func Backends() []string {
	return []string{BackendFile, BackendSQLite, BackendKeyring, BackendMemory}
}

// Open returns the store for backend. path is the file location for the
// file and sqlite back ends and the keyring service name for keyring; an
// empty keyring service defaults to DefaultService.
func Open(backend, path string) (Store, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case BackendFile, "":
		return NewFileStore(path)
	case BackendSQLite:
		return NewSQLiteStore(path)
	case BackendKeyring:
		return NewKeyringStore(path)
	case BackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("%w %q (supported: %s)", ErrUnknownBackend, backend, strings.Join(Backends(), ", "))
	}
}

func checkKey(key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	return nil
}
