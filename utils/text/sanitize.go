// Package text cleans model output before it is returned to a caller or
// kept in the conversation window.
package text

import (
	"regexp"
	"strings"
)

// AllowedPunctuation lists the punctuation that survives Sanitize in
// addition to ASCII letters, digits and the space character.
const AllowedPunctuation = `.,?!'"-`

var (
	hashtagRe    = regexp.MustCompile(`#[\p{L}\p{N}_]+`)
	lineBreakRe  = regexp.MustCompile(`[\n\t]+`)
	disallowedRe = regexp.MustCompile(`[^A-Za-z0-9 ` + escapeClass(AllowedPunctuation) + `]`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// escapeClass escapes every rune so it is literal inside a character class.
func escapeClass(chars string) string {
	var b strings.Builder
	for _, r := range chars {
		b.WriteByte('\\')
		b.WriteRune(r)
	}
	return b.String()
}

// Sanitize strips hashtags, line breaks, emoji and any other rune outside the
// allow-list, then collapses whitespace. Sanitize(Sanitize(s)) == Sanitize(s).
func Sanitize(s string) string {
	s = hashtagRe.ReplaceAllString(s, "")
	s = lineBreakRe.ReplaceAllString(s, " ")
	s = disallowedRe.ReplaceAllString(s, "")
	s = whitespaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
