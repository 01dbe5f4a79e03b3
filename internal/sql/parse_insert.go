package sql

// parseInsert parses an INSERT INTO statement.
// Example supported syntax:
//
//	INSERT INTO users (alice, 10.0.0.1)
//
// Values are taken verbatim after trimming; there are no quotes or escapes.
func parseInsert(query string, tokens []string) (Statement, error) {
	if len(tokens) < 2 || tokens[1] != "INTO" {
		return nil, fail(ReasonInvalidInsert, "")
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
		return nil, fail(ReasonMissingValues, tableName)
	}
	if !closed {
		return nil, fail(ReasonMissingValuesParen, tableName)
	}

	vals := splitCommaSeparated(body)
	if len(vals) == 0 {
		return nil, fail(ReasonEmptyValues, tableName)
	}

	return &InsertStmt{
		TableName: tableName,
		Values:    vals,
	}, nil
}
