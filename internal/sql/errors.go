package sql

import (
	"errors"
	"fmt"
)

// ErrSyntax is wrapped by every *ParseError.
var ErrSyntax = errors.New("syntax error")

// Reason identifies why a line failed to parse.
type Reason int

const (
	ReasonUnsupported Reason = iota
	ReasonEmptyQuery
	ReasonQueryTooLong
	ReasonInvalidCreate
	ReasonMissingTableName
	ReasonMissingColumns
	ReasonMissingColumnsParen
	ReasonEmptySchema
	ReasonInvalidInsert
	ReasonMissingValues
	ReasonMissingValuesParen
	ReasonEmptyValues
	ReasonInvalidSelect
	ReasonMissingSelectTable
)

// ParseError reports a malformed query line.
// Table is set when the table name was read before the failure;
// Limit is set for ReasonQueryTooLong.
type ParseError struct {
	Reason Reason
	Table  string
	Limit  int
}

func (e *ParseError) Error() string {
	switch e.Reason {
	case ReasonEmptyQuery:
		return "Empty query."
	case ReasonQueryTooLong:
		return fmt.Sprintf("Query exceeds the maximum length of %d bytes.", e.Limit)
	case ReasonInvalidCreate:
		return "Invalid CREATE TABLE syntax."
	case ReasonMissingTableName:
		return "Table name is missing."
	case ReasonMissingColumns:
		return "Missing column definitions."
	case ReasonMissingColumnsParen:
		return "Missing closing parenthesis in column definitions."
	case ReasonEmptySchema:
		return fmt.Sprintf("No columns defined for table '%s'.", e.Table)
	case ReasonInvalidInsert:
		return "Invalid INSERT INTO syntax."
	case ReasonMissingValues:
		return "Missing values."
	case ReasonMissingValuesParen:
		return "Missing closing parenthesis in values."
	case ReasonEmptyValues:
		return fmt.Sprintf("No values provided for table '%s'.", e.Table)
	case ReasonInvalidSelect:
		return "Invalid SELECT syntax, expected SELECT * FROM <table>."
	case ReasonMissingSelectTable:
		return "Table name is missing in SELECT query."
	default:
		return "Unsupported query."
	}
}

func (e *ParseError) Unwrap() error { return ErrSyntax }

func fail(r Reason, table string) error {
	return &ParseError{Reason: r, Table: table}
}
