package sql

import (
	"strings"
)

// DefaultMaxQueryLength bounds a query line, in bytes.
const DefaultMaxQueryLength = 256

// Parse parses one query line using DefaultMaxQueryLength.
func Parse(query string) (Statement, error) {
	return ParseWithLimit(query, DefaultMaxQueryLength)
}

// ParseWithLimit parses one query line into a Statement. Lines longer than
// maxLen bytes are rejected, never truncated; maxLen <= 0 disables the check.
//
// Keywords are case-sensitive. Leading tokens are separated by spaces, and
// the list of a CREATE TABLE or INSERT INTO runs from the first '(' after
// the keywords to the next ')'. The input string is never modified.
//
// Only syntax is checked here; table existence and arity are checked when
// the statement runs.
func ParseWithLimit(query string, maxLen int) (Statement, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return nil, fail(ReasonEmptyQuery, "")
	}
	if maxLen > 0 && len(q) > maxLen {
		return nil, &ParseError{Reason: ReasonQueryTooLong, Limit: maxLen}
	}

	tokens := splitTokens(q)

	switch tokens[0] {
	case "CREATE":
		return parseCreateTable(q, tokens)
	case "INSERT":
		return parseInsert(q, tokens)
	case "SELECT":
		return parseSelect(tokens)
	case "SAVE":
		if len(tokens) == 1 {
			return &SaveStmt{}, nil
		}
	case "LOAD":
		if len(tokens) == 1 {
			return &LoadStmt{}, nil
		}
	case "EXIT":
		if len(tokens) == 1 {
			return &ExitStmt{}, nil
		}
	}

	return nil, fail(ReasonUnsupported, "")
}
