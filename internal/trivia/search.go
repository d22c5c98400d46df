package trivia

import "strings"

// Matches reports whether term is a case-insensitive substring of the
// question text. The repository runs the same predicate as SQL ILIKE; this
// helper backs in-memory filtering and keeps both paths honest in tests.
func Matches(q Question, term string) bool {
	return strings.Contains(strings.ToLower(q.Question), strings.ToLower(term))
}
