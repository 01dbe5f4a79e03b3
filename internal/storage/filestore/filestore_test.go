package filestore

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"colDB/internal/storage"
	"colDB/internal/storage/memstore"
	"colDB/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleStore(t *testing.T) *memstore.Store {
	t.Helper()
	s := memstore.New()
	require.NoError(t, s.CreateTable("users", []string{"name", "IPv4"}))
	require.NoError(t, s.Insert("users", []string{"alice", "10.0.0.1"}))
	require.NoError(t, s.Insert("users", []string{"bob", "999.999.999.999"}))
	require.NoError(t, s.CreateTable("empty", []string{"a", "a", "b"}))
	require.NoError(t, s.CreateTable("notes", []string{"text"}))
	require.NoError(t, s.Insert("notes", []string{""}))
	require.NoError(t, s.Insert("notes", []string{"héllo wörld"}))
	return s
}

func assertSameStore(t *testing.T, want, got *memstore.Store) {
	t.Helper()
	require.Equal(t, want.Tables(), got.Tables())
	for _, name := range want.Tables() {
		wc, wr, err := want.Scan(name)
		require.NoError(t, err)
		gc, gr, err := got.Scan(name)
		require.NoError(t, err)
		assert.Equal(t, wc, gc, "columns of %q", name)
		assert.Equal(t, wr, gr, "rows of %q", name)
	}
}

// Save → Load yields the same tables, columns and cells.
func TestFilestore_SaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "database.db")
	fs := New(path, testutil.NewTestLogger(t))

	orig := sampleStore(t)
	n, err := fs.Save(orig)
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, info.Size(), n)

	loaded, err := fs.Load()
	require.NoError(t, err)
	assertSameStore(t, orig, loaded)
}

func TestFilestore_SaveEmptyDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "database.db")
	fs := New(path, nil)

	_, err := fs.Save(memstore.New())
	require.NoError(t, err)

	loaded, err := fs.Load()
	require.NoError(t, err)
	assert.Empty(t, loaded.Tables())
}

func TestFilestore_LoadMissingFile(t *testing.T) {
	fs := New(filepath.Join(t.TempDir(), "nope.db"), nil)

	_, err := fs.Load()
	require.Error(t, err)
	assert.True(t, errors.Is(err, storage.ErrIO))
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.Contains(t, err.Error(), "Could not open file for reading")
}

func TestFilestore_SaveToMissingDirectory(t *testing.T) {
	fs := New(filepath.Join(t.TempDir(), "no", "such", "dir", "database.db"), nil)

	_, err := fs.Save(sampleStore(t))
	require.Error(t, err)
	assert.True(t, errors.Is(err, storage.ErrIO))
}

func TestFilestore_LoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "database.db")
	require.NoError(t, os.WriteFile(path, []byte("definitely not a database file"), 0o644))

	_, err := New(path, nil).Load()
	require.Error(t, err)
	assert.True(t, errors.Is(err, storage.ErrCorruptFormat))
	assert.False(t, errors.Is(err, storage.ErrIO))
	assert.Contains(t, err.Error(), "is not a valid database")
}

// A second save replaces the file and leaves no temp files behind.
func TestFilestore_SaveReplacesAtomically(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "database.db")
	fs := New(path, nil)

	_, err := fs.Save(sampleStore(t))
	require.NoError(t, err)

	smaller := memstore.New()
	require.NoError(t, smaller.CreateTable("only", []string{"x"}))
	_, err = fs.Save(smaller)
	require.NoError(t, err)

	loaded, err := fs.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"only"}, loaded.Tables())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "database.db", entries[0].Name())
}
