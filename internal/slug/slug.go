// Package slug derives identifiers for user-created task lists.
package slug

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Make lowercases name, folds accented Latin letters to their ASCII base
// (é -> e, ç -> c, ñ -> n), collapses every run of characters outside
// [a-z0-9] into a single hyphen and trims hyphens at both ends.
func Make(name string) string {
	s := strings.ToLower(name)

	// transform chains keep state, so build one per call.
	fold := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if folded, _, err := transform.String(fold, s); err == nil {
		s = folded
	}

	var b strings.Builder
	b.Grow(len(s))
	hyphen := false
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			hyphen = false
			continue
		}
		if !hyphen {
			b.WriteByte('-')
			hyphen = true
		}
	}
	return strings.Trim(b.String(), "-")
}

// ListID appends "_<suffix>" to the slug of name.
func ListID(name string, suffix int64) string {
	return Make(name) + "_" + strconv.FormatInt(suffix, 10)
}

// Suffix parses the numeric part after the last "_" of a list id.
func Suffix(id string) (int64, bool) {
	i := strings.LastIndexByte(id, '_')
	if i < 0 {
		return 0, false
	}
	n, err := strconv.ParseInt(id[i+1:], 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
