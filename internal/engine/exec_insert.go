package engine

import (
	"fmt"

	"colDB/internal/sql"
)

// executeInsert appends one row. The store checks arity and constraints
// before it writes anything.
func (e *DBEngine) executeInsert(stmt *sql.InsertStmt) (*Result, error) {
	if err := e.store.Insert(stmt.TableName, stmt.Values); err != nil {
		return nil, err
	}
	if n, err := e.store.RowCount(stmt.TableName); err == nil {
		e.logger.Debug("row inserted", "table", stmt.TableName, "rows", n)
	}
	return &Result{Message: fmt.Sprintf("Row inserted into table '%s'.", stmt.TableName)}, nil
}
