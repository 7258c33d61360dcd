package localstore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
)

// File stores one file per item under a root directory.
// Keys are path-escaped into a single file name, so namespaces stay flat.
type File struct {
	root string
}

// NewFile creates root if needed and returns a store rooted there.
func NewFile(root string) (*File, error) {
	if err := os.MkdirAll(root, 0o700); err != nil {
		return nil, fmt.Errorf("create storage dir %s: %w", root, err)
	}
	return &File{root: root}, nil
}

func (f *File) path(key string) (string, error) {
	if err := ValidateKey(key); err != nil {
		return "", err
	}
	return filepath.Join(f.root, url.PathEscape(key)+".json"), nil
}

func (f *File) GetItem(ctx context.Context, key string) ([]byte, error) {
	p, err := f.path(key)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	value, err := os.ReadFile(p)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read item %q: %w", key, err)
	}
	return value, nil
}

// SetItem writes to a temporary file and renames it over the target, so a
// reader never observes a partially written value.
func (f *File) SetItem(ctx context.Context, key string, value []byte) error {
	p, err := f.path(key)
	if err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(f.root, ".item-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		return fmt.Errorf("write item %q: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close item %q: %w", key, err)
	}

	if err := os.Rename(tmp.Name(), p); err != nil {
		return fmt.Errorf("commit item %q: %w", key, err)
	}
	return nil
}

func (f *File) RemoveItem(ctx context.Context, key string) error {
	p, err := f.path(key)
	if err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove item %q: %w", key, err)
	}
	return nil
}
