package storage

import "errors"

// Errors returned by catalog and persistence implementations.
// Callers classify failures with errors.Is.
var (
	ErrDuplicateTable    = errors.New("table already exists")
	ErrNoSuchTable       = errors.New("table does not exist")
	ErrEmptySchema       = errors.New("no columns defined")
	ErrArityMismatch     = errors.New("column count mismatch")
	ErrInvalidConstraint = errors.New("constraint violation")
	ErrIO                = errors.New("i/o failure")
	ErrCorruptFormat     = errors.New("corrupt database file")
)

// Catalog is the table catalog of a database. Tables are looked up by
// exact, case-sensitive name.
//
// Implementations:
//   - memstore: in-memory, column-oriented (the live database)
//   - filestore encodes any Catalog and decodes into a memstore
type Catalog interface {
	// CreateTable creates an empty table with the given column names.
	// Duplicate column names are allowed.
	CreateTable(name string, cols []string) error

	// Insert appends one row. Either every column gets a cell or none does.
	Insert(tableName string, values []string) error

	// Scan returns the column names and a row-major copy of the table.
	Scan(tableName string) (cols []string, rows [][]string, err error)

	// Render formats the table as a header line and one line per row,
	// cells separated by tabs.
	Render(tableName string) (string, error)

	// RowCount returns the number of rows in the table.
	RowCount(tableName string) (int, error)

	// Tables returns table names in creation order.
	Tables() []string
}
