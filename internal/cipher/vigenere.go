package cipher

import (
	"strings"

	"github.com/verte-zerg/codeclub/internal/alphabet"
)

// KeyShifts converts key into alphabet offsets, skipping characters outside a.
func KeyShifts(key string, a alphabet.Alphabet) []int {
	shifts := make([]int, 0, len(key))
	for _, r := range strings.ToUpper(key) {
		if i, ok := a.Lookup(r); ok {
			shifts = append(shifts, i)
		}
	}
	return shifts
}

// Vigenere applies the Vigenère cipher. The key advances only on characters
// that belong to the alphabet; an empty effective key leaves text unchanged.
func Vigenere(text, key string, decrypt bool, a alphabet.Alphabet) string {
	shifts := KeyShifts(key, a)
	if len(shifts) == 0 {
		return strings.ToUpper(text)
	}
	pos := 0
	return substitute(text, a, func(i int) rune {
		s := shifts[pos%len(shifts)]
		pos++
		if decrypt {
			s = -s
		}
		return a.At(i + s)
	})
}
