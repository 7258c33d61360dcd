package localstore

import (
	"context"
	"errors"

	"ufresher/internal/app/storage"
)

// Objects keeps each item as an object in a bucket, under a fixed prefix.
type Objects struct {
	store  storage.ObjectStore
	prefix string
}

// NewObjects returns a store writing through store with keys under prefix.
func NewObjects(store storage.ObjectStore, prefix string) *Objects {
	return &Objects{store: store, prefix: prefix}
}

func (o *Objects) GetItem(ctx context.Context, key string) ([]byte, error) {
	if err := ValidateKey(key); err != nil {
		return nil, err
	}

	value, err := o.store.Get(ctx, o.prefix+key)
	if errors.Is(err, storage.ErrObjectNotFound) {
		return nil, ErrNotFound
	}
	return value, err
}

func (o *Objects) SetItem(ctx context.Context, key string, value []byte) error {
	if err := ValidateKey(key); err != nil {
		return err
	}
	return o.store.Put(ctx, o.prefix+key, value, "application/json")
}

func (o *Objects) RemoveItem(ctx context.Context, key string) error {
	if err := ValidateKey(key); err != nil {
		return err
	}
	return o.store.Delete(ctx, o.prefix+key)
}
