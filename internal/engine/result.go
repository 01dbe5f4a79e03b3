package engine

// Result is the outcome of one statement.
//
// SELECT fills Table, Columns, Rows and Text, the tab-separated rendering
// of the same rows. Other statements set Message.
// EXIT sets Exit and nothing else.
type Result struct {
	Message string

	Table   string
	Columns []string
	Rows    [][]string
	Text    string

	Exit bool
}

// HasRows reports whether the result is a row set.
func (r *Result) HasRows() bool { return r.Columns != nil }
