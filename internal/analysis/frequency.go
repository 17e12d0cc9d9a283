// Package analysis provides letter statistics used to break classical ciphers:
// frequency counts, the index of coincidence and Kasiski examination.
package analysis

import (
	"strings"

	"github.com/verte-zerg/codeclub/internal/alphabet"
)

// EnglishIoC is the index of coincidence of ordinary English text.
const EnglishIoC = 0.067

// englishPercent holds the expected share of each letter A-Z in English text.
var englishPercent = [26]float64{
	8.167, 1.492, 2.782, 4.253, 12.702, 2.228, 2.015, 6.094, 6.966, 0.153,
	0.772, 4.025, 2.406, 6.749, 7.507, 1.929, 0.095, 5.987, 6.327, 9.056,
	2.758, 0.978, 2.360, 0.150, 1.974, 0.074,
}

// EnglishPercent returns the expected percentage of letter r in English text.
func EnglishPercent(r rune) (float64, bool) {
	if r < 'A' || r > 'Z' {
		return 0, false
	}
	return englishPercent[r-'A'], true
}

// Counts records how often each alphabet character occurs in a text.
type Counts struct {
	Alphabet alphabet.Alphabet
	Counts   []int
	Total    int
}

// LetterCounts counts the alphabet characters of the uppercased text.
func LetterCounts(text string, a alphabet.Alphabet) Counts {
	c := Counts{Alphabet: a, Counts: make([]int, a.Len())}
	for _, r := range strings.ToUpper(text) {
		if i, ok := a.Lookup(r); ok {
			c.Counts[i]++
			c.Total++
		}
	}
	return c
}

// Percent returns the share of the character at position i, 0-100.
func (c Counts) Percent(i int) float64 {
	if c.Total == 0 || i < 0 || i >= len(c.Counts) {
		return 0
	}
	return float64(c.Counts[i]) / float64(c.Total) * 100
}

// Frequency pairs a character with its observed and expected share.
type Frequency struct {
	Char     rune
	Count    int
	Percent  float64
	Expected float64
}

// Frequencies lists every alphabet character with its observed percentage and
// the English expectation where one exists.
func Frequencies(text string, a alphabet.Alphabet) []Frequency {
	c := LetterCounts(text, a)
	out := make([]Frequency, 0, a.Len())
	for i, r := range a.Runes() {
		expected, _ := EnglishPercent(r)
		out = append(out, Frequency{
			Char:     r,
			Count:    c.Counts[i],
			Percent:  c.Percent(i),
			Expected: expected,
		})
	}
	return out
}

// ChiSquared measures how far the counts are from English letter frequencies.
// Characters without an English expectation are ignored. Lower is closer.
func ChiSquared(c Counts) float64 {
	if c.Total == 0 {
		return 0
	}
	var sum float64
	for i, r := range c.Alphabet.Runes() {
		pct, ok := EnglishPercent(r)
		if !ok {
			continue
		}
		expected := float64(c.Total) * pct / 100
		diff := float64(c.Counts[i]) - expected
		sum += diff * diff / expected
	}
	return sum
}
