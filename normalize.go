// normalize.go
// Package classicalcrypto implements classical pen-and-paper cryptography:
// the Vigenere cipher (standard and autokey), the columnar transposition
// cipher, and letter/digram frequency analysis. None of these offer any
// confidentiality by modern standards; they are implemented for study.
//
// Every operation works on normalized text: ASCII letters only, uppercased,
// with all other characters discarded. This package offers a simple API with
// functional options; the packages under pkg/ expose the same engines with
// pluggable normalizers and warmup.
package classicalcrypto

import "strings"

// Normalize uppercases ASCII letters and silently drops every other
// character. The result contains only the bytes 'A' through 'Z', in input
// order, and may be empty. Normalizing already-normalized text is a no-op.
func Normalize(text string) string {
	var sb strings.Builder
	for i := 0; i < len(text); i++ {
		b := text[i]
		switch {
		case b >= 'A' && b <= 'Z':
			sb.WriteByte(b)
		case b >= 'a' && b <= 'z':
			sb.WriteByte(b - ('a' - 'A'))
		}
	}
	return sb.String()
}
