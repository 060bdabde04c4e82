package packing

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DedupeName normalizes a customer name: every token is lower-cased with its first
// letter capitalized, and tokens repeating an earlier one (ignoring case) are dropped.
//
//	DedupeName("jasmine jasmine Perry") == "Jasmine Perry"
func DedupeName(text string) string {
	lower := cases.Lower(language.Und)
	upper := cases.Upper(language.Und)
	seen := make(map[string]bool)
	var parts []string
	for _, token := range strings.Fields(text) {
		key := lower.String(token)
		if seen[key] {
			continue
		}
		seen[key] = true
		parts = append(parts, capitalize(upper, key))
	}
	return strings.Join(parts, " ")
}

// capitalize upper-cases the first rune of an already lower-cased token
func capitalize(upper cases.Caser, token string) string {
	r, size := utf8.DecodeRuneInString(token)
	if r == utf8.RuneError {
		return token
	}
	return upper.String(token[:size]) + token[size:]
}
