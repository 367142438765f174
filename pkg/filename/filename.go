package filename

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// MaxLength bounds sanitized names; longer titles are cut back to the
// nearest word boundary, never mid-word.
const MaxLength = 100

// Characters disallowed on common filesystems.
var illegalChars = regexp.MustCompile(`[<>:"/\\|?*]`)

// Sanitize converts an arbitrary title into a filesystem-safe name.
// Distinct titles may sanitize to the same name; collisions are the
// caller's problem.
func Sanitize(title string) string {
	safe := illegalChars.ReplaceAllString(title, "")

	// Collapse whitespace runs and trim
	safe = strings.Join(strings.Fields(safe), " ")

	if utf8.RuneCountInString(safe) > MaxLength {
		runes := []rune(safe)
		cut := string(runes[:MaxLength])
		if i := strings.LastIndex(cut, " "); i > 0 {
			cut = cut[:i]
		}
		safe = strings.TrimSpace(cut)
	}

	return safe
}
