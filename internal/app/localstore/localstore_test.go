package localstore

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ufresher/internal/app/storage"
	"ufresher/internal/configs"
)

// fakeObjects is an in-memory storage.ObjectStore.
type fakeObjects struct {
	mu      sync.Mutex
	objects map[string][]byte
	types   map[string]string
}

func newFakeObjects() *fakeObjects {
	return &fakeObjects{objects: map[string][]byte{}, types: map[string]string{}}
}

func (f *fakeObjects) Get(_ context.Context, key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.objects[key]
	if !ok {
		return nil, storage.ErrObjectNotFound
	}
	return v, nil
}

func (f *fakeObjects) Put(_ context.Context, key string, body []byte, contentType string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[key] = append([]byte(nil), body...)
	f.types[key] = contentType
	return nil
}

func (f *fakeObjects) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.objects, key)
	return nil
}

// fakeQuerier answers the three statements used by Postgres from a map.
type fakeQuerier struct {
	rows map[string][]byte
}

type fakeRow struct {
	value []byte
	err   error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*[]byte)) = r.value
	return nil
}

func (q *fakeQuerier) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	key := args[0].(string)
	switch sql {
	case setItemSQL:
		q.rows[key] = args[1].([]byte)
		return pgconn.NewCommandTag("INSERT 0 1"), nil
	case removeItemSQL:
		delete(q.rows, key)
		return pgconn.NewCommandTag("DELETE 1"), nil
	}
	panic("unexpected statement: " + sql)
}

func (q *fakeQuerier) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	if sql != getItemSQL {
		panic("unexpected query: " + sql)
	}
	v, ok := q.rows[args[0].(string)]
	if !ok {
		return fakeRow{err: pgx.ErrNoRows}
	}
	return fakeRow{value: v}
}

func backends(t *testing.T) map[string]Storage {
	t.Helper()

	f, err := NewFile(t.TempDir())
	require.NoError(t, err)

	return map[string]Storage{
		"memory":   NewMemory(),
		"file":     f,
		"objects":  NewObjects(newFakeObjects(), "localstore/"),
		"postgres": NewPostgres(&fakeQuerier{rows: map[string][]byte{}}),
	}
}

func TestBackendsContract(t *testing.T) {
	ctx := context.Background()

	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := s.GetItem(ctx, "ufresher_user")
			assert.ErrorIs(t, err, ErrNotFound)

			require.NoError(t, s.SetItem(ctx, "ufresher_user", []byte(`{"id":"fresher1"}`)))
			got, err := s.GetItem(ctx, "ufresher_user")
			require.NoError(t, err)
			assert.JSONEq(t, `{"id":"fresher1"}`, string(got))

			require.NoError(t, s.SetItem(ctx, "ufresher_user", []byte(`{"id":"mentor1"}`)))
			got, err = s.GetItem(ctx, "ufresher_user")
			require.NoError(t, err)
			assert.JSONEq(t, `{"id":"mentor1"}`, string(got))

			require.NoError(t, s.RemoveItem(ctx, "ufresher_user"))
			require.NoError(t, s.RemoveItem(ctx, "ufresher_user"), "removing twice succeeds")
			_, err = s.GetItem(ctx, "ufresher_user")
			assert.ErrorIs(t, err, ErrNotFound)

			assert.ErrorIs(t, s.SetItem(ctx, "../escape", []byte("x")), ErrInvalidKey)
		})
	}
}

func TestScopeIsolatesNamespaces(t *testing.T) {
	ctx := context.Background()

	for name, base := range backends(t) {
		t.Run(name, func(t *testing.T) {
			a := Scope(base, "device-a")
			b := Scope(base, "device-b")

			require.NoError(t, a.SetItem(ctx, "ufresher_user", []byte("a")))

			_, err := b.GetItem(ctx, "ufresher_user")
			assert.ErrorIs(t, err, ErrNotFound)

			got, err := a.GetItem(ctx, "ufresher_user")
			require.NoError(t, err)
			assert.Equal(t, "a", string(got))
		})
	}
}

func TestMemoryCopiesValues(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	value := []byte("abc")
	require.NoError(t, m.SetItem(ctx, "k", value))
	value[0] = 'x'

	got, err := m.GetItem(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))
	assert.Equal(t, 1, m.Len())
}

func TestFileLeavesNoTempFiles(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	f, err := NewFile(dir)
	require.NoError(t, err)

	require.NoError(t, f.SetItem(ctx, "dev/ufresher_user", []byte("{}")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "dev%2Fufresher_user.json", entries[0].Name())
	assert.FileExists(t, filepath.Join(dir, entries[0].Name()))
}

func TestValidateKey(t *testing.T) {
	for _, bad := range []string{"", ".", "..", "a/../b", "a//b", "line\nbreak"} {
		assert.ErrorIs(t, ValidateKey(bad), ErrInvalidKey, bad)
	}
	assert.NoError(t, ValidateKey("3f1c/ufresher_user"))
}

func TestObjectsSetsContentType(t *testing.T) {
	fake := newFakeObjects()
	o := NewObjects(fake, "ls/")

	require.NoError(t, o.SetItem(context.Background(), "dev/ufresher_user", []byte("{}")))
	assert.Equal(t, "application/json", fake.types["ls/dev/ufresher_user"])
}

func TestOpenMemoryAndFile(t *testing.T) {
	ctx := context.Background()

	s, closeFn, err := Open(ctx, &configs.AppConfig{StorageBackend: configs.BackendMemory})
	require.NoError(t, err)
	defer closeFn()
	assert.IsType(t, &Memory{}, s)

	s, closeFn2, err := Open(ctx, &configs.AppConfig{StorageBackend: configs.BackendFile, StorageDir: t.TempDir()})
	require.NoError(t, err)
	defer closeFn2()
	assert.IsType(t, &File{}, s)

	_, closeFn3, err := Open(ctx, &configs.AppConfig{StorageBackend: "tape"})
	assert.Error(t, err)
	closeFn3()
}
