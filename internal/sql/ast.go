package sql

// Statement is the common interface for all parsed query lines.
type Statement interface {
	stmtNode()
}

// CreateTableStmt represents a parsed CREATE TABLE statement.
type CreateTableStmt struct {
	TableName string
	Columns   []string
}

// InsertStmt represents a parsed INSERT INTO statement.
// Values are raw, trimmed cell texts in column order.
type InsertStmt struct {
	TableName string
	Values    []string
}

// SelectStmt represents SELECT * FROM <table>.
type SelectStmt struct {
	TableName string
}

// SaveStmt writes the database to the configured file.
type SaveStmt struct{}

// LoadStmt replaces the database with the contents of the configured file.
type LoadStmt struct{}

// ExitStmt ends the session.
type ExitStmt struct{}

func (*CreateTableStmt) stmtNode() {}
func (*InsertStmt) stmtNode()      {}
func (*SelectStmt) stmtNode()      {}
func (*SaveStmt) stmtNode()        {}
func (*LoadStmt) stmtNode()        {}
func (*ExitStmt) stmtNode()        {}
