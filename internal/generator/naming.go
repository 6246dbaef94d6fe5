package generator

import (
	"unicode"
	"unicode/utf8"
)

// Capitalize upper-cases the first rune of s and leaves the rest untouched.
func Capitalize(s string) string {
	return mapFirstRune(s, unicode.ToUpper)
}

// Camelize lower-cases the first rune of s and leaves the rest untouched.
func Camelize(s string) string {
	return mapFirstRune(s, unicode.ToLower)
}

func mapFirstRune(s string, fn func(rune) rune) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	mapped := fn(r)
	if mapped == r {
		return s
	}
	return string(mapped) + s[size:]
}
