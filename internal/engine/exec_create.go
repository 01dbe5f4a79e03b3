package engine

import (
	"fmt"

	"colDB/internal/sql"
)

func (e *DBEngine) executeCreate(stmt *sql.CreateTableStmt) (*Result, error) {
	if err := e.store.CreateTable(stmt.TableName, stmt.Columns); err != nil {
		return nil, err
	}
	return &Result{
		Message: fmt.Sprintf("Table '%s' with %d columns created successfully.", stmt.TableName, len(stmt.Columns)),
	}, nil
}
