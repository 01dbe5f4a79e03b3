package sql

// parseSelect parses the only supported form:
//
//	SELECT * FROM users
func parseSelect(tokens []string) (Statement, error) {
	if len(tokens) < 2 || tokens[1] != "*" {
		return nil, fail(ReasonInvalidSelect, "")
	}
	if len(tokens) < 3 || tokens[2] != "FROM" {
		return nil, fail(ReasonInvalidSelect, "")
	}
	if len(tokens) < 4 {
		return nil, fail(ReasonMissingSelectTable, "")
	}
	if len(tokens) > 4 {
		return nil, fail(ReasonInvalidSelect, "")
	}

	return &SelectStmt{TableName: tokens[3]}, nil
}
