package matcher

import (
	"regexp"
	"strings"
)

// The two normalization levels feed different consumers: Clean keeps enough
// punctuation for section-detection heuristics and stats, Strict reduces the
// text to the lowercase alphanumeric form the feature extractors match on.

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	htmlTagRe    = regexp.MustCompile(`<[^>]+>`)
	urlRe        = regexp.MustCompile(`http\S+|www\S+`)
	emailRe      = regexp.MustCompile(`\S+@\S+`)
	phoneRe      = regexp.MustCompile(`[\+]?[(]?[0-9]{3}[)]?[-\s\.]?[0-9]{3}[-\s\.]?[0-9]{4,6}`)
	disallowedRe = regexp.MustCompile(`[^a-zA-Z0-9\s.,\-()]`)
	nonStrictRe  = regexp.MustCompile(`[^a-z0-9 ]`)
)

// Clean normalizes text while preserving basic sentence structure. It never
// fails; empty input yields an empty string.
func Clean(text string) string {
	if text == "" {
		return ""
	}

	text = whitespaceRe.ReplaceAllString(text, " ")
	text = htmlTagRe.ReplaceAllString(text, "")
	text = urlRe.ReplaceAllString(text, "")
	text = emailRe.ReplaceAllString(text, "")
	text = phoneRe.ReplaceAllString(text, "")
	text = disallowedRe.ReplaceAllString(text, " ")
	text = whitespaceRe.ReplaceAllString(text, " ")

	return strings.TrimSpace(text)
}

// Strict lowercases and strips everything except letters, digits and single
// spaces. This is the form all feature extractors operate on.
func Strict(text string) string {
	text = strings.ToLower(text)
	text = nonStrictRe.ReplaceAllString(text, " ")
	text = whitespaceRe.ReplaceAllString(text, " ")

	return strings.TrimSpace(text)
}
