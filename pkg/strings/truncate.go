package strings

import (
	"strings"
)

// DefaultMessageMaxLen is the default maximum length for failure messages
// in compact output. Shared between the live feed and the listing tables
// so both truncate the same way.
const DefaultMessageMaxLen = 100

// MinTruncateLen is the minimum maxLen value for TruncateMessage.
// Values smaller than this would not leave room for meaningful content plus "...".
const MinTruncateLen = 4

// TruncateMessage flattens a message to a single line and truncates it to
// maxLen characters, adding "..." if content was cut. Assertion messages and
// panic values may span lines; one result must stay one line in the feed.
//
// The function operates on runes rather than bytes so a multi-byte character
// is never cut in the middle.
//
// If maxLen is less than MinTruncateLen (4), it is clamped to MinTruncateLen
// to ensure there is room for at least one character plus "...".
func TruncateMessage(s string, maxLen int) string {
	// Clamp maxLen to minimum value to prevent panic from negative slice index
	if maxLen < MinTruncateLen {
		maxLen = MinTruncateLen
	}

	// strings.Fields splits on any whitespace run (\n, \r, \t, repeated
	// spaces); rejoining with single spaces flattens and normalizes at once.
	s = strings.Join(strings.Fields(s), " ")

	runes := []rune(s)
	if len(runes) > maxLen {
		return string(runes[:maxLen-3]) + "..."
	}
	return s
}
