package securestore

import (
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

// Ensure Keyring implements Store.
var _ Store = (*Keyring)(nil)

// Keyring persists values in the operating system credential store. The
// service name acts as the namespace, so distinct logical stores should use
// distinct service names. Values are base64-encoded because the underlying
// API transports strings.
type Keyring struct {
	service    string
	protection Protection
}

// NewKeyring creates a store scoped to the given service name. The
// protection tier is declared for callers that need to know the at-rest
// guarantee; the OS keychain applies its own closest equivalent.
func NewKeyring(service string, protection Protection) *Keyring {
	return &Keyring{service: service, protection: protection}
}

// Protection returns the tier declared at construction.
func (k *Keyring) Protection() Protection {
	return k.protection
}

func (k *Keyring) Get(key string) ([]byte, error) {
	encoded, err := keyring.Get(k.service, key)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("keyring get %q: %w", key, err)
	}
	value, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("keyring decode %q: %w", key, err)
	}
	return value, nil
}

func (k *Keyring) Set(key string, value []byte) error {
	if err := keyring.Set(k.service, key, base64.StdEncoding.EncodeToString(value)); err != nil {
		return fmt.Errorf("keyring set %q: %w", key, err)
	}
	return nil
}

func (k *Keyring) Delete(key string) error {
	if err := keyring.Delete(k.service, key); err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("keyring delete %q: %w", key, err)
	}
	return nil
}
