package database

import "strings"

// LikeEscape is the escape character ContainsPattern uses. Queries must
// declare it with `LIKE ? ESCAPE '!'`.
const LikeEscape = "!"

var likeReplacer = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// ContainsPattern returns a LIKE pattern matching any value that contains s
// literally, ignoring case.
func ContainsPattern(s string) string {
	return "%" + likeReplacer.Replace(strings.ToLower(s)) + "%"
}
