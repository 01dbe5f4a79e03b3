package memstore

import (
	"fmt"
	"sync"

	"colDB/internal/constraint"
	"colDB/internal/storage"
)

// Column is a named sequence of cells. Cell i of every column of a table
// forms row i.
type Column struct {
	Name  string
	Cells []string
}

// table is a named, ordered set of columns sharing one row count.
type table struct {
	name string
	cols []Column
	rows int
}

func (t *table) columnNames() []string {
	names := make([]string, len(t.cols))
	for i, c := range t.cols {
		names[i] = c.Name
	}
	return names
}

// Store is the in-memory database: an ordered table catalog with
// column-oriented row storage.
type Store struct {
	mu     sync.RWMutex
	tables []*table
}

var _ storage.Catalog = (*Store)(nil)

// New creates an empty store.
func New() *Store {
	return &Store{}
}

// find does an exact, case-sensitive scan. Callers hold mu.
func (s *Store) find(name string) *table {
	for _, t := range s.tables {
		if t.name == name {
			return t
		}
	}
	return nil
}

// CreateTable adds an empty table. Column names may repeat.
func (s *Store) CreateTable(name string, cols []string) error {
	if len(cols) == 0 {
		return &storage.TableError{Table: name, Err: storage.ErrEmptySchema}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.find(name) != nil {
		return &storage.TableError{Table: name, Err: storage.ErrDuplicateTable}
	}

	t := &table{name: name, cols: make([]Column, len(cols))}
	for i, c := range cols {
		t.cols[i] = Column{Name: c, Cells: make([]string, 0)}
	}
	s.tables = append(s.tables, t)
	return nil
}

// Insert appends one cell to every column of the table.
// Arity and constraints are checked for the whole row before anything is
// written, so a failed insert leaves the table unchanged.
func (s *Store) Insert(tableName string, values []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.find(tableName)
	if t == nil {
		return &storage.TableError{Table: tableName, Err: storage.ErrNoSuchTable}
	}

	if len(values) != len(t.cols) {
		return &storage.TableError{Table: tableName, Err: storage.ErrArityMismatch}
	}

	for i, col := range t.cols {
		if err := constraint.Check(col.Name, values[i]); err != nil {
			return err
		}
	}

	for i := range t.cols {
		t.cols[i].Cells = append(t.cols[i].Cells, values[i])
	}
	t.rows++
	return nil
}

// Scan returns column names and a row-major copy of the table.
func (s *Store) Scan(tableName string) (cols []string, rows [][]string, err error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t := s.find(tableName)
	if t == nil {
		return nil, nil, &storage.TableError{Table: tableName, Err: storage.ErrNoSuchTable}
	}

	rows = make([][]string, t.rows)
	for r := 0; r < t.rows; r++ {
		row := make([]string, len(t.cols))
		for c := range t.cols {
			row[c] = t.cols[c].Cells[r]
		}
		rows[r] = row
	}

	return t.columnNames(), rows, nil
}

// Render formats the table as tab-separated text: a header of column names
// followed by one line per row.
func (s *Store) Render(tableName string) (string, error) {
	cols, rows, err := s.Scan(tableName)
	if err != nil {
		return "", err
	}
	return storage.RenderTSV(cols, rows), nil
}

// Tables returns table names in creation order.
func (s *Store) Tables() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, len(s.tables))
	for i, t := range s.tables {
		names[i] = t.name
	}
	return names
}

// RowCount returns the row count of the named table.
func (s *Store) RowCount(tableName string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t := s.find(tableName)
	if t == nil {
		return 0, &storage.TableError{Table: tableName, Err: storage.ErrNoSuchTable}
	}
	return t.rows, nil
}

// Attach adds a fully populated table, as decoded from a database file.
// Constraints are not re-checked; the cells were validated when inserted.
func (s *Store) Attach(name string, cols []Column) error {
	if len(cols) == 0 {
		return &storage.TableError{Table: name, Err: storage.ErrEmptySchema}
	}
	rows := len(cols[0].Cells)
	for _, c := range cols[1:] {
		if len(c.Cells) != rows {
			return fmt.Errorf("memstore: attach %q: column %q has %d cells, want %d: %w",
				name, c.Name, len(c.Cells), rows, storage.ErrArityMismatch)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.find(name) != nil {
		return &storage.TableError{Table: name, Err: storage.ErrDuplicateTable}
	}

	s.tables = append(s.tables, &table{name: name, cols: cols, rows: rows})
	return nil
}
