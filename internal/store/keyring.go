package store

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

// DefaultService namespaces tinct values in the system keyring.
const DefaultService = "tinct"

// KeyringStore keeps values in the system keyring under one service name.
type KeyringStore struct {
	service string
}

var _ Store = (*KeyringStore)(nil)

// NewKeyringStore returns a store for service, or DefaultService when empty.
func NewKeyringStore(service string) (*KeyringStore, error) {
	if service == "" {
		service = DefaultService
	}
	return &KeyringStore{service: service}, nil
}

func (k *KeyringStore) Get(key string) (string, bool, error) {
	if err := checkKey(key); err != nil {
		return "", false, err
	}
	value, err := keyring.Get(k.service, key)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("keyring get %q: %w", key, err)
	}
	return value, true, nil
}

func (k *KeyringStore) Set(key, value string) error {
	if err := checkKey(key); err != nil {
		return err
	}
	if err := keyring.Set(k.service, key, value); err != nil {
		return fmt.Errorf("keyring set %q: %w", key, err)
	}
	return nil
}

func (k *KeyringStore) Remove(key string) error {
	if err := checkKey(key); err != nil {
		return err
	}
	err := keyring.Delete(k.service, key)
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("keyring remove %q: %w", key, err)
	}
	return nil
}

func (k *KeyringStore) Close() error { return nil }
