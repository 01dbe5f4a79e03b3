package sql

import (
	"strings"
)

// splitTokens splits on spaces, skipping runs of them.
func splitTokens(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool { return r == ' ' })
}

// offsetAfterTokens returns the byte offset just past the first n
// space-separated tokens of s.
func offsetAfterTokens(s string, n int) int {
	i := 0
	for ; n > 0; n-- {
		for i < len(s) && s[i] == ' ' {
			i++
		}
		for i < len(s) && s[i] != ' ' {
			i++
		}
	}
	return i
}

// tableNameToken extracts a table name from the token following the
// keywords. A name written flush against its list, as in "users(a, b)",
// ends at the '('.
func tableNameToken(tok string) string {
	if i := strings.IndexByte(tok, '('); i >= 0 {
		tok = tok[:i]
	}
	return tok
}

// parenList returns the text between the first '(' at or after from and the
// next ')'. open and closed report which delimiters were found.
func parenList(s string, from int) (body string, open, closed bool) {
	o := strings.IndexByte(s[from:], '(')
	if o < 0 {
		return "", false, false
	}
	start := from + o + 1
	c := strings.IndexByte(s[start:], ')')
	if c < 0 {
		return "", true, false
	}
	return s[start : start+c], true, true
}

// splitCommaSeparated splits a string by commas, trims every item and drops
// empty ones. There is no quoting, so an item can never contain a comma.
func splitCommaSeparated(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
