package storage

import (
	"fmt"
	"strings"
)

// TableError is a catalog failure tied to one table.
// Err is one of the package sentinels.
type TableError struct {
	Table string
	Err   error
}

func (e *TableError) Error() string {
	switch e.Err {
	case ErrDuplicateTable:
		return fmt.Sprintf("Table '%s' already exists.", e.Table)
	case ErrNoSuchTable:
		return fmt.Sprintf("Table '%s' does not exist.", e.Table)
	case ErrEmptySchema:
		return fmt.Sprintf("No columns defined for table '%s'.", e.Table)
	case ErrArityMismatch:
		return fmt.Sprintf("Column count mismatch for table '%s'.", e.Table)
	default:
		return fmt.Sprintf("table '%s': %v", e.Table, e.Err)
	}
}

func (e *TableError) Unwrap() error { return e.Err }

// FileError is a persistence failure. Kind is ErrIO or ErrCorruptFormat;
// Err is the underlying cause.
type FileError struct {
	Path string
	Op   string
	Kind error
	Err  error
}

func (e *FileError) Error() string {
	if e.Kind == ErrCorruptFormat {
		return fmt.Sprintf("File '%s' is not a valid database: %v.", e.Path, e.Err)
	}
	return fmt.Sprintf("Could not %s '%s': %v.", e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() []error { return []error{e.Kind, e.Err} }

// RenderTSV formats a header line and one line per row, cells separated by
// tabs. Every line ends with a newline.
func RenderTSV(cols []string, rows [][]string) string {
	var b strings.Builder
	b.WriteString(strings.Join(cols, "\t"))
	b.WriteByte('\n')
	for _, r := range rows {
		b.WriteString(strings.Join(r, "\t"))
		b.WriteByte('\n')
	}
	return b.String()
}
