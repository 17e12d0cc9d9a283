package analysis

import (
	"math"
	"sort"
	"unicode"

	"github.com/verte-zerg/codeclub/internal/alphabet"
)

// IndexOfCoincidence returns the probability that two characters drawn from
// text without replacement are equal. Texts with fewer than two alphabet
// characters yield 0.
func IndexOfCoincidence(text string, a alphabet.Alphabet) float64 {
	return iocOfCounts(LetterCounts(text, a))
}

func iocOfCounts(c Counts) float64 {
	if c.Total < 2 {
		return 0
	}
	var num float64
	for _, n := range c.Counts {
		num += float64(n * (n - 1))
	}
	return num / float64(c.Total*(c.Total-1))
}

// KeyLengthIoC is the mean column index of coincidence for one key length.
type KeyLengthIoC struct {
	Length int
	IoC    float64
}

// IoCByKeyLength splits the alphabet characters of text into columns for each
// key length in [1, maxLen] and averages the column IoC. Results are sorted by
// closeness to EnglishIoC, shorter lengths first on ties.
func IoCByKeyLength(text string, a alphabet.Alphabet, maxLen int) []KeyLengthIoC {
	letters := Letters(text, a)
	if len(letters) < 2 || maxLen < 1 {
		return nil
	}
	if maxLen > len(letters)/2 {
		maxLen = max(1, len(letters)/2)
	}
	out := make([]KeyLengthIoC, 0, maxLen)
	for length := 1; length <= maxLen; length++ {
		var sum float64
		for col := 0; col < length; col++ {
			sum += iocOfCounts(LetterCounts(string(Column(letters, length, col)), a))
		}
		out = append(out, KeyLengthIoC{Length: length, IoC: sum / float64(length)})
	}
	sort.SliceStable(out, func(i, j int) bool {
		di := math.Abs(out[i].IoC - EnglishIoC)
		dj := math.Abs(out[j].IoC - EnglishIoC)
		if di == dj {
			return out[i].Length < out[j].Length
		}
		return di < dj
	})
	return out
}

// Column returns every length-th rune of letters starting at offset col.
func Column(letters []rune, length, col int) []rune {
	out := make([]rune, 0, len(letters)/max(length, 1)+1)
	for i := col; i < len(letters); i += length {
		out = append(out, letters[i])
	}
	return out
}

// Letters returns the uppercased alphabet characters of text in order.
func Letters(text string, a alphabet.Alphabet) []rune {
	out := make([]rune, 0, len(text))
	for _, r := range text {
		if u := unicode.ToUpper(r); a.Contains(u) {
			out = append(out, u)
		}
	}
	return out
}
