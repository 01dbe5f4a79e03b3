package engine

import (
	"colDB/internal/sql"
)

// executeSelect returns all rows of the table, both as a row set and as
// the catalog's tab-separated rendering.
func (e *DBEngine) executeSelect(stmt *sql.SelectStmt) (*Result, error) {
	cols, rows, err := e.store.Scan(stmt.TableName)
	if err != nil {
		return nil, err
	}
	text, err := e.store.Render(stmt.TableName)
	if err != nil {
		return nil, err
	}
	return &Result{Table: stmt.TableName, Columns: cols, Rows: rows, Text: text}, nil
}
