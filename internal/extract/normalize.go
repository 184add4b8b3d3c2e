// Package extract implements skill extraction from free-form resume text:
// normalization, catalog matching with a fuzzy fallback, current-role
// detection, and experience-years parsing. Everything here is pure; callers
// handle persistence and transport.
package extract

import (
	"regexp"
	"strings"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	tokenSplitRe = regexp.MustCompile(`[^a-z0-9+.#]+`)
)

// Normalize collapses whitespace runs to single spaces, trims, and
// lowercases. All matching runs on normalized text.
func Normalize(text string) string {
	return whitespaceRe.ReplaceAllString(strings.ToLower(strings.TrimSpace(text)), " ")
}

// Tokenize splits normalized text into tokens. Any run of characters
// outside [a-z0-9+.#] is a separator, so "node.js", "c++" and "c#" survive
// as single tokens.
func Tokenize(text string) []string {
	parts := tokenSplitRe.Split(text, -1)
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			tokens = append(tokens, p)
		}
	}
	return tokens
}
