// Package alphabet maps characters to positions in an ordered cipher alphabet.
package alphabet

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultLetters is the 26-letter Latin alphabet used when none is configured.
const DefaultLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

var (
	// ErrNotInAlphabet is returned when a character has no position in the alphabet.
	ErrNotInAlphabet = errors.New("character not in alphabet")
	// ErrIndexOutOfBounds is returned for positions outside [0, Len()).
	ErrIndexOutOfBounds = errors.New("index out of bounds")
	// ErrDuplicateChar is returned when an alphabet lists a character twice.
	ErrDuplicateChar = errors.New("duplicate character in alphabet")
	// ErrEmptyAlphabet is returned for an alphabet without characters.
	ErrEmptyAlphabet = errors.New("alphabet is empty")
)

// Alphabet is an ordered set of unique runes.
type Alphabet struct {
	runes []rune
	index map[rune]int
}

// New builds an alphabet from s. Letters are uppercased before the uniqueness check.
func New(s string) (Alphabet, error) {
	runes := []rune(strings.ToUpper(s))
	if len(runes) == 0 {
		return Alphabet{}, ErrEmptyAlphabet
	}
	index := make(map[rune]int, len(runes))
	for i, r := range runes {
		if _, ok := index[r]; ok {
			return Alphabet{}, fmt.Errorf("%w: %q", ErrDuplicateChar, r)
		}
		index[r] = i
	}
	return Alphabet{runes: runes, index: index}, nil
}

// MustNew is like New but panics on invalid input.
func MustNew(s string) Alphabet {
	a, err := New(s)
	if err != nil {
		panic(err)
	}
	return a
}

// Default returns the A-Z alphabet.
func Default() Alphabet {
	return MustNew(DefaultLetters)
}

// Len returns the number of characters.
func (a Alphabet) Len() int {
	return len(a.runes)
}

// String returns the characters in order.
func (a Alphabet) String() string {
	return string(a.runes)
}

// Runes returns a copy of the characters in order.
func (a Alphabet) Runes() []rune {
	out := make([]rune, len(a.runes))
	copy(out, a.runes)
	return out
}

// Lookup reports the position of r and whether it is present.
func (a Alphabet) Lookup(r rune) (int, bool) {
	i, ok := a.index[r]
	return i, ok
}

// Contains reports whether r is in the alphabet.
func (a Alphabet) Contains(r rune) bool {
	_, ok := a.index[r]
	return ok
}

// IndexOf returns the position of r or ErrNotInAlphabet.
func (a Alphabet) IndexOf(r rune) (int, error) {
	i, ok := a.index[r]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrNotInAlphabet, r)
	}
	return i, nil
}

// CharAt returns the character at position i or ErrIndexOutOfBounds.
func (a Alphabet) CharAt(i int) (rune, error) {
	if i < 0 || i >= len(a.runes) {
		return 0, fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfBounds, i, len(a.runes))
	}
	return a.runes[i], nil
}

// At returns the character at position i wrapped modulo Len. Negative i wraps too.
func (a Alphabet) At(i int) rune {
	n := len(a.runes)
	i %= n
	if i < 0 {
		i += n
	}
	return a.runes[i]
}
