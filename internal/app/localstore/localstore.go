/*
Package localstore is the server-side stand-in for a browser's localStorage:
a string-keyed store of raw values, written and read wholesale.

Each client device gets its own namespace through Scope, so two devices never
see each other's items even when they share a backend.
*/
package localstore

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned by GetItem for a key that holds no value.
var ErrNotFound = errors.New("localstore: item not found")

// ErrInvalidKey is returned for keys the backends cannot represent safely.
var ErrInvalidKey = errors.New("localstore: invalid key")

// Storage is the localStorage contract.
type Storage interface {
	// GetItem returns the stored value, or ErrNotFound.
	GetItem(ctx context.Context, key string) ([]byte, error)

	// SetItem stores value under key, replacing the previous value.
	SetItem(ctx context.Context, key string, value []byte) error

	// RemoveItem deletes key. Removing a missing key succeeds.
	RemoveItem(ctx context.Context, key string) error
}

// ValidateKey rejects empty keys, relative path elements and control characters.
func ValidateKey(key string) error {
	if key == "" || key == "." || key == ".." {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}

	for _, segment := range strings.Split(key, "/") {
		if segment == "" || segment == "." || segment == ".." {
			return fmt.Errorf("%w: %q", ErrInvalidKey, key)
		}
	}

	for _, r := range key {
		if r < 0x20 || r == 0x7f {
			return fmt.Errorf("%w: %q", ErrInvalidKey, key)
		}
	}

	return nil
}

type scoped struct {
	base   Storage
	prefix string
}

// Scope returns a view of base whose keys are prefixed with namespace.
func Scope(base Storage, namespace string) Storage {
	return &scoped{base: base, prefix: namespace + "/"}
}

func (s *scoped) GetItem(ctx context.Context, key string) ([]byte, error) {
	return s.base.GetItem(ctx, s.prefix+key)
}

func (s *scoped) SetItem(ctx context.Context, key string, value []byte) error {
	return s.base.SetItem(ctx, s.prefix+key, value)
}

func (s *scoped) RemoveItem(ctx context.Context, key string) error {
	return s.base.RemoveItem(ctx, s.prefix+key)
}
