package app

import (
	"strings"
	"unicode/utf8"
)

// tracedQueryLimit caps the db.statement attribute in bytes.
const tracedQueryLimit = 512

// compactQuery folds a SQL statement onto one line for span attributes and
// truncates it on a rune boundary.
func compactQuery(query string) string {
	compact := strings.Join(strings.Fields(query), " ")
	if len(compact) <= tracedQueryLimit {
		return compact
	}

	cut := tracedQueryLimit
	for cut > 0 && !utf8.RuneStart(compact[cut]) {
		cut--
	}
	return compact[:cut] + "..."
}
