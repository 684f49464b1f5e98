package ciphers

import "strings"

const AlphabetSize = 26

// Normalize maps any shift amount into [0, AlphabetSize).
func Normalize(shift int) int {
	n := shift % AlphabetSize
	if n < 0 {
		n += AlphabetSize
	}
	return n
}

// Encode rotates the letters of text forward by shift.
// Text is upper-cased first. Spaces are kept and any other character that is
// not a latin letter is dropped.
func Encode(text string, shift int) string {
	return rotate(text, Normalize(shift))
}

// Decode reverses Encode for the same shift.
func Decode(text string, shift int) string {
	return rotate(text, Normalize(AlphabetSize-Normalize(shift)))
}

func rotate(text string, by int) string {
	var sb strings.Builder
	sb.Grow(len(text))
	for _, r := range strings.ToUpper(text) {
		switch {
		case r == ' ':
			sb.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			sb.WriteRune('A' + (r-'A'+rune(by))%AlphabetSize)
		}
	}
	return sb.String()
}
