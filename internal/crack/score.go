// Package crack breaks classical ciphers by trying candidate keys and ranking
// the decryptions by how much they look like English.
package crack

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/verte-zerg/codeclub/internal/analysis"
)

// Scoring weights. Higher totals mean more English-like text; the values are
// tuning constants, not derived quantities.
const (
	CommonWordBonus  = 15
	WordLengthBonus  = 3
	BigramBonus      = 4
	TrigramBonus     = 6
	VowelBonusTight  = 10
	VowelBonusLoose  = 5
	LetterFitCeiling = 5.0

	minWordLen = 3
	maxWordLen = 8
)

var commonWords = toSet(
	"A", "I", "AN", "AS", "AT", "BE", "BY", "DO", "GO", "HE", "IF", "IN", "IS", "IT",
	"ME", "MY", "NO", "OF", "ON", "OR", "SO", "TO", "UP", "US", "WE",
	"THE", "AND", "FOR", "ARE", "BUT", "NOT", "YOU", "ALL", "ANY", "CAN", "HAD",
	"HER", "WAS", "ONE", "OUR", "OUT", "DAY", "GET", "HAS", "HIM", "HIS", "HOW",
	"NEW", "NOW", "SEE", "TWO", "WAY", "WHO", "DID", "LET", "SHE", "TOO", "USE",
	"THIS", "THAT", "WITH", "HAVE", "FROM", "THEY", "WILL", "WHAT", "YOUR", "WHEN",
	"HELLO", "WORLD", "SECRET", "CODE", "MEET", "FRIEND", "FRIENDS", "SCHOOL",
	"TODAY", "PARK", "HOME", "CLUB", "MESSAGE",
)

var commonBigrams = toSet(
	"TH", "HE", "IN", "ER", "AN", "RE", "ND", "ON", "EN", "AT",
	"OU", "ED", "HA", "TO", "OR", "IT", "IS", "HI", "ES", "NG",
)

var commonTrigrams = toSet(
	"THE", "AND", "ING", "HER", "HAT", "HIS", "THA", "ERE", "FOR", "ENT",
	"ION", "TER", "WAS", "YOU", "ITH", "VER", "ALL", "WIT", "THI", "TIO",
)

func toSet(items ...string) map[string]struct{} {
	out := make(map[string]struct{}, len(items))
	for _, item := range items {
		out[item] = struct{}{}
	}
	return out
}

// Breakdown shows how each heuristic contributed to a score.
type Breakdown struct {
	Words     float64
	LetterFit float64
	Bigrams   float64
	Trigrams  float64
	Vowels    float64
}

// Total sums the components and rounds to the nearest integer.
func (b Breakdown) Total() int {
	return int(math.Round(b.Words + b.LetterFit + b.Bigrams + b.Trigrams + b.Vowels))
}

// Explain scores text and returns the per-heuristic breakdown.
func Explain(text string) Breakdown {
	upper := strings.ToUpper(text)
	stripped := strings.Join(strings.Fields(upper), "")
	return Breakdown{
		Words:     wordScore(upper),
		LetterFit: letterFitScore(upper),
		Bigrams:   ngramScore(stripped, 2, commonBigrams, BigramBonus),
		Trigrams:  ngramScore(stripped, 3, commonTrigrams, TrigramBonus),
		Vowels:    vowelScore(upper),
	}
}

// ScoreText rates how English-like text is. The score is unbounded and not
// normalized by length, so short texts with one common word can score high.
func ScoreText(text string) int {
	return Explain(text).Total()
}

func wordScore(text string) float64 {
	var score float64
	for _, tok := range strings.Fields(text) {
		if _, ok := commonWords[tok]; ok {
			score += CommonWordBonus
		}
		if n := utf8.RuneCountInString(tok); n >= minWordLen && n <= maxWordLen {
			score += WordLengthBonus
		}
	}
	return score
}

func letterFitScore(text string) float64 {
	var counts [26]int
	total := 0
	for _, r := range text {
		if r >= 'A' && r <= 'Z' {
			counts[r-'A']++
			total++
		}
	}
	if total == 0 {
		return 0
	}
	var score float64
	for i, n := range counts {
		expected, _ := analysis.EnglishPercent(rune('A' + i))
		observed := float64(n) / float64(total) * 100
		score += math.Max(0, LetterFitCeiling-math.Abs(observed-expected))
	}
	return score
}

func ngramScore(text string, size int, set map[string]struct{}, bonus float64) float64 {
	runes := []rune(text)
	var score float64
	for i := 0; i+size <= len(runes); i++ {
		if _, ok := set[string(runes[i:i+size])]; ok {
			score += bonus
		}
	}
	return score
}

func vowelScore(text string) float64 {
	vowels, letters := 0, 0
	for _, r := range text {
		if !unicode.IsLetter(r) {
			continue
		}
		letters++
		switch r {
		case 'A', 'E', 'I', 'O', 'U':
			vowels++
		}
	}
	if letters == 0 {
		return 0
	}
	ratio := float64(vowels) / float64(letters)
	switch {
	case ratio >= 0.35 && ratio <= 0.45:
		return VowelBonusTight
	case ratio >= 0.25 && ratio <= 0.55:
		return VowelBonusLoose
	default:
		return 0
	}
}
