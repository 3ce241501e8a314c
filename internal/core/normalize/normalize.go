// Package normalize canonicalizes free text search queries so that
// equivalent queries map to identical cache and SQL inputs
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// fold decomposes, strips combining marks, then recomposes.
// "Çınar" and "cinar" normalize to the same token stream
var fold = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Query lowercases, folds diacritics, and collapses whitespace
func Query(q string) string {
	out, _, err := transform.String(fold, q)
	if err != nil {
		// fold failure is not worth surfacing for a search hint, keep the raw text
		out = q
	}
	return strings.Join(strings.Fields(strings.ToLower(out)), " ")
}

// Tokens splits a normalized query into search tokens.
// Punctuation separates tokens, digits and letters are kept
func Tokens(q string) []string {
	normed := Query(q)
	return strings.FieldsFunc(normed, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
