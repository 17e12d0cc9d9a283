// Package cipher implements the classical cipher transforms taught in the club.
//
// Every transform uppercases its input and passes characters outside the
// alphabet through unchanged, in place.
package cipher

import (
	"strings"

	"github.com/verte-zerg/codeclub/internal/alphabet"
)

// substitute rewrites each alphabet character at position i to fn(i).
func substitute(text string, a alphabet.Alphabet, fn func(i int) rune) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToUpper(text) {
		i, ok := a.Lookup(r)
		if !ok {
			b.WriteRune(r)
			continue
		}
		b.WriteRune(fn(i))
	}
	return b.String()
}

// CipherAlphabet derives the substitution alphabet for keyword: its unique
// letters that belong to a, then the rest of a in order.
func CipherAlphabet(keyword string, a alphabet.Alphabet) []rune {
	out := make([]rune, 0, a.Len())
	seen := make(map[rune]struct{}, a.Len())
	for _, r := range strings.ToUpper(keyword) {
		if !a.Contains(r) {
			continue
		}
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	for _, r := range a.Runes() {
		if _, ok := seen[r]; ok {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Keyword applies the keyword substitution cipher. Encryption maps a[i] to
// CipherAlphabet[i]; decryption inverts it.
func Keyword(text, keyword string, decrypt bool, a alphabet.Alphabet) string {
	cipherRunes := CipherAlphabet(keyword, a)
	if !decrypt {
		return substitute(text, a, func(i int) rune { return cipherRunes[i] })
	}
	plain := a.Runes()
	inverse := make(map[rune]rune, len(cipherRunes))
	for i, r := range cipherRunes {
		inverse[r] = plain[i]
	}
	return substitute(text, a, func(i int) rune { return inverse[plain[i]] })
}

// Caesar shifts each character by shift positions, modulo the alphabet size.
func Caesar(text string, shift int, decrypt bool, a alphabet.Alphabet) string {
	if decrypt {
		shift = -shift
	}
	return substitute(text, a, func(i int) rune { return a.At(i + shift) })
}

// Atbash mirrors the alphabet. It is its own inverse.
func Atbash(text string, a alphabet.Alphabet) string {
	n := a.Len()
	return substitute(text, a, func(i int) rune { return a.At(n - 1 - i) })
}
