package engine

import (
	"fmt"
)

func (e *DBEngine) executeSave() (*Result, error) {
	if _, err := e.files.Save(e.store); err != nil {
		return nil, err
	}
	return &Result{Message: fmt.Sprintf("Database saved to '%s'.", e.files.Path())}, nil
}

// executeLoad replaces the live database with the file contents. The file
// is decoded into a new store first; on any error the live one is kept.
func (e *DBEngine) executeLoad() (*Result, error) {
	loaded, err := e.files.Load()
	if err != nil {
		return nil, err
	}
	e.store = loaded
	return &Result{Message: fmt.Sprintf("Database loaded from '%s'.", e.files.Path())}, nil
}
