package wordlist

import (
	"strings"

	"github.com/verte-zerg/codeclub/internal/alphabet"
)

// IsKeyword reports whether word is usable as a keyword: uppercase ASCII
// letters, optionally separated by single spaces.
func IsKeyword(word string) bool {
	if word == "" {
		return false
	}
	prevSpace := true
	for i := 0; i < len(word); i++ {
		ch := word[i]
		switch {
		case ch >= 'A' && ch <= 'Z':
			prevSpace = false
		case ch == ' ' && !prevSpace:
			prevSpace = true
		default:
			return false
		}
	}
	return !prevSpace
}

// NormalizeWord trims, uppercases and collapses inner whitespace.
func NormalizeWord(word string) string {
	return strings.Join(strings.Fields(strings.ToUpper(word)), " ")
}

// Normalize returns the A-Z keywords from words, uppercased and deduplicated.
// The first occurrence wins.
func Normalize(words []string) []string {
	return filter(words, IsKeyword)
}

// Dedupe uppercases words, collapses whitespace and drops blanks and
// duplicates. Unlike Normalize it accepts any script.
func Dedupe(words []string) []string {
	return filter(words, func(w string) bool { return w != "" })
}

// NormalizeFor keeps the words with at least one character of a, uppercased
// and deduplicated.
func NormalizeFor(words []string, a alphabet.Alphabet) []string {
	return filter(words, func(w string) bool {
		for _, r := range w {
			if a.Contains(r) {
				return true
			}
		}
		return false
	})
}

func filter(words []string, keep func(string) bool) []string {
	out := make([]string, 0, len(words))
	seen := make(map[string]struct{}, len(words))
	for _, w := range words {
		w = NormalizeWord(w)
		if !keep(w) {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}
