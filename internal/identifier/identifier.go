// =============================================================================
// NZFCC Generator - Identifier Derivation
// =============================================================================
//
// This module turns human-readable display names into the identifiers used
// as Go constant names in the generated package.
//
// RULES:
//   Group names:    keep letters and digits only, casing untouched.
//                   "Professional Services" -> "ProfessionalServices"
//
//   Category names: split on whitespace, upper-case the first ASCII letter of
//                   each word, keep letters and digits only, concatenate.
//                   "Cafes and restaurants" -> "CafesAndRestaurants"
//
// Both functions are pure. An empty result is possible (a name with no
// letters or digits) and must be rejected by the caller.
//
// =============================================================================

package identifier

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ForGroup derives the identifier for a category group name.
func ForGroup(name string) string {
	return keepAlphanumeric(name)
}

// ForCode derives the identifier for an NZFCC category name.
func ForCode(name string) string {
	var b strings.Builder
	b.Grow(len(name))

	for _, word := range strings.Fields(name) {
		first, size := utf8.DecodeRuneInString(word)
		if first >= 'a' && first <= 'z' {
			first -= 'a' - 'A'
		}
		if isAlphanumeric(first) {
			b.WriteRune(first)
		}
		b.WriteString(keepAlphanumeric(word[size:]))
	}

	return b.String()
}

func keepAlphanumeric(s string) string {
	return strings.Map(func(r rune) rune {
		if isAlphanumeric(r) {
			return r
		}
		return -1
	}, s)
}

func isAlphanumeric(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r)
}
