package model

import (
	"strings"
	"unicode"
)

// SanitizeTaxID keeps only the digits of a tax id, so "123.456.789-00"
// and "12345678900" name the same customer.
func SanitizeTaxID(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, s)
}
