package interview

import (
	"regexp"
	"strings"
)

var (
	tagPattern        = regexp.MustCompile(`<.*?>`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// Sanitize strips markup tags, collapses whitespace runs and trims the result.
func Sanitize(text string) string {
	text = tagPattern.ReplaceAllString(text, "")
	text = whitespacePattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
