// Package util holds small shared helpers with no domain knowledge.
package util

// TruncateLimit is the longest free-form excerpt embedded in a push body.
const TruncateLimit = 100

// Truncate cuts s to limit characters and appends an ellipsis, but only when
// the original actually exceeded the limit. Counts runes, not bytes.
func Truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}

	return string(runes[:limit]) + "..."
}
