package sql

// parseCreateTable parses:
//
//	CREATE TABLE users (name, IPv4)
func parseCreateTable(query string, tokens []string) (Statement, error) {
	if len(tokens) < 2 || tokens[1] != "TABLE" {
		return nil, fail(ReasonInvalidCreate, "")
	}
	if len(tokens) < 3 {
		return nil, fail(ReasonMissingTableName, "")
	}

	tableName := tableNameToken(tokens[2])
	if tableName == "" {
		return nil, fail(ReasonMissingTableName, "")
	}

	body, open, closed := parenList(query, offsetAfterTokens(query, 2))
	if !open {
		return nil, fail(ReasonMissingColumns, tableName)
	}
	if !closed {
		return nil, fail(ReasonMissingColumnsParen, tableName)
	}

	cols := splitCommaSeparated(body)
	if len(cols) == 0 {
		return nil, fail(ReasonEmptySchema, tableName)
	}

	return &CreateTableStmt{
		TableName: tableName,
		Columns:   cols,
	}, nil
}
