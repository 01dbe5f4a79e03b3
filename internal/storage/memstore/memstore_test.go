package memstore

import (
	"errors"
	"testing"

	"colDB/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMemstoreCreateInsertScan verifies that we can create a table,
// insert rows, and read them back with Scan.
func TestMemstoreCreateInsertScan(t *testing.T) {
	store := New()

	// 1. Create table "users"
	require.NoError(t, store.CreateTable("users", []string{"id", "name", "active"}))

	// 2. Insert two rows
	require.NoError(t, store.Insert("users", []string{"1", "Alice", "true"}))
	require.NoError(t, store.Insert("users", []string{"2", "Bob", "false"}))

	// 3. Scan the table
	cols, rows, err := store.Scan("users")
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "name", "active"}, cols)
	assert.Equal(t, [][]string{
		{"1", "Alice", "true"},
		{"2", "Bob", "false"},
	}, rows)
}

func TestMemstoreNewTableIsEmpty(t *testing.T) {
	store := New()
	require.NoError(t, store.CreateTable("t", []string{"a", "b", "c"}))

	cols, rows, err := store.Scan("t")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, cols)
	assert.Empty(t, rows)

	n, err := store.RowCount("t")
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	_, err = store.RowCount("T")
	assert.True(t, errors.Is(err, storage.ErrNoSuchTable), "lookup is case-sensitive")
}

func TestMemstoreDuplicateTable(t *testing.T) {
	store := New()
	require.NoError(t, store.CreateTable("users", []string{"name"}))
	require.NoError(t, store.Insert("users", []string{"alice"}))

	err := store.CreateTable("users", []string{"x", "y"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, storage.ErrDuplicateTable))
	assert.Equal(t, "Table 'users' already exists.", err.Error())

	// Catalog unchanged.
	assert.Equal(t, []string{"users"}, store.Tables())
	cols, rows, err := store.Scan("users")
	require.NoError(t, err)
	assert.Equal(t, []string{"name"}, cols)
	assert.Len(t, rows, 1)
}

func TestMemstoreEmptySchema(t *testing.T) {
	store := New()
	err := store.CreateTable("empty", nil)
	assert.True(t, errors.Is(err, storage.ErrEmptySchema))
	assert.Empty(t, store.Tables())
}

func TestMemstoreDuplicateColumnNamesAllowed(t *testing.T) {
	store := New()
	require.NoError(t, store.CreateTable("t", []string{"a", "a"}))
	require.NoError(t, store.Insert("t", []string{"1", "2"}))

	cols, rows, err := store.Scan("t")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "a"}, cols)
	assert.Equal(t, [][]string{{"1", "2"}}, rows)
}

func TestMemstoreInsertErrors(t *testing.T) {
	store := New()
	require.NoError(t, store.CreateTable("hosts", []string{"name", "IPv4"}))
	require.NoError(t, store.Insert("hosts", []string{"gw", "10.0.0.1"}))

	tests := []struct {
		name   string
		table  string
		values []string
		want   error
	}{
		{name: "missing table", table: "nope", values: []string{"a", "1.1.1.1"}, want: storage.ErrNoSuchTable},
		{name: "too few values", table: "hosts", values: []string{"a"}, want: storage.ErrArityMismatch},
		{name: "too many values", table: "hosts", values: []string{"a", "1.1.1.1", "c"}, want: storage.ErrArityMismatch},
		{name: "bad address", table: "hosts", values: []string{"a", "not-an-ip"}, want: storage.ErrInvalidConstraint},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := store.Insert(tt.table, tt.values)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)

			n, err := store.RowCount("hosts")
			require.NoError(t, err)
			assert.Equal(t, 1, n, "failed insert must not change row count")
		})
	}
}

// A constraint failure on a later column must not leave cells behind in
// earlier columns.
func TestMemstoreInsertIsAtomicAcrossColumns(t *testing.T) {
	store := New()
	require.NoError(t, store.CreateTable("t", []string{"a", "b", "IPv4"}))

	err := store.Insert("t", []string{"x", "y", "1.2.3"})
	require.Error(t, err)

	tbl := store.find("t")
	require.NotNil(t, tbl)
	assert.Equal(t, 0, tbl.rows)
	for _, c := range tbl.cols {
		assert.Empty(t, c.Cells, "column %q", c.Name)
	}
}

func TestMemstoreScanReturnsCopies(t *testing.T) {
	store := New()
	require.NoError(t, store.CreateTable("t", []string{"a"}))
	require.NoError(t, store.Insert("t", []string{"orig"}))

	_, rows, err := store.Scan("t")
	require.NoError(t, err)
	rows[0][0] = "changed"

	cols, _, err := store.Scan("t")
	require.NoError(t, err)
	cols[0] = "renamed"

	cols, rows, err = store.Scan("t")
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, cols)
	assert.Equal(t, "orig", rows[0][0])
}

func TestMemstoreRender(t *testing.T) {
	store := New()
	require.NoError(t, store.CreateTable("users", []string{"name", "IPv4"}))
	require.NoError(t, store.Insert("users", []string{"alice", "10.0.0.1"}))

	out, err := store.Render("users")
	require.NoError(t, err)
	assert.Equal(t, "name\tIPv4\nalice\t10.0.0.1\n", out)

	_, err = store.Render("missing")
	assert.True(t, errors.Is(err, storage.ErrNoSuchTable))
}

func TestMemstoreAttach(t *testing.T) {
	store := New()

	require.NoError(t, store.Attach("t", []Column{
		{Name: "a", Cells: []string{"1", "2"}},
		{Name: "b", Cells: []string{"x", "y"}},
	}))
	n, err := store.RowCount("t")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	err = store.Attach("ragged", []Column{
		{Name: "a", Cells: []string{"1"}},
		{Name: "b", Cells: nil},
	})
	assert.True(t, errors.Is(err, storage.ErrArityMismatch))

	err = store.Attach("t", []Column{{Name: "a"}})
	assert.True(t, errors.Is(err, storage.ErrDuplicateTable))

	err = store.Attach("none", nil)
	assert.True(t, errors.Is(err, storage.ErrEmptySchema))

	assert.Equal(t, []string{"t"}, store.Tables())
}
