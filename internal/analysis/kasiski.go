package analysis

import (
	"math"
	"sort"

	"github.com/verte-zerg/codeclub/internal/alphabet"
)

const (
	minFactor = 2
	maxFactor = 20
)

// FactorVote counts how many repeat distances a candidate key length divides.
type FactorVote struct {
	Factor int
	Votes  int
}

// RepeatDistances finds substrings of minLen..minLen+2 alphabet characters that
// occur more than once and returns the distances between every pair of
// occurrences.
func RepeatDistances(text string, a alphabet.Alphabet, minLen int) []int {
	if minLen < 2 {
		minLen = 3
	}
	letters := Letters(text, a)
	var distances []int
	for size := minLen; size <= minLen+2; size++ {
		positions := map[string][]int{}
		var order []string
		for i := 0; i+size <= len(letters); i++ {
			key := string(letters[i : i+size])
			if _, ok := positions[key]; !ok {
				order = append(order, key)
			}
			positions[key] = append(positions[key], i)
		}
		for _, key := range order {
			pos := positions[key]
			for i := 0; i < len(pos); i++ {
				for j := i + 1; j < len(pos); j++ {
					distances = append(distances, pos[j]-pos[i])
				}
			}
		}
	}
	return distances
}

// Kasiski votes each factor in [2, 20] once per repeat distance it divides.
// Results are sorted by votes, then by smaller factor.
func Kasiski(text string, a alphabet.Alphabet, minLen int) []FactorVote {
	votes := map[int]int{}
	for _, d := range RepeatDistances(text, a, minLen) {
		for f := minFactor; f <= maxFactor && f <= d; f++ {
			if d%f == 0 {
				votes[f]++
			}
		}
	}
	out := make([]FactorVote, 0, len(votes))
	for f, v := range votes {
		out = append(out, FactorVote{Factor: f, Votes: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Votes == out[j].Votes {
			return out[i].Factor < out[j].Factor
		}
		return out[i].Votes > out[j].Votes
	})
	return out
}

// EstimateKeyLengths ranks key lengths in [1, maxLen] by combining Kasiski
// votes with column IoC closeness to English.
func EstimateKeyLengths(text string, a alphabet.Alphabet, maxLen int) []int {
	iocs := IoCByKeyLength(text, a, maxLen)
	if len(iocs) == 0 {
		return nil
	}
	votes := map[int]int{}
	maxVotes := 0
	for _, fv := range Kasiski(text, a, 3) {
		votes[fv.Factor] = fv.Votes
		if fv.Votes > maxVotes {
			maxVotes = fv.Votes
		}
	}

	type ranked struct {
		length int
		points float64
	}
	items := make([]ranked, 0, len(iocs))
	for _, k := range iocs {
		closeness := 1 - math.Min(math.Abs(k.IoC-EnglishIoC)/EnglishIoC, 1)
		points := closeness
		if maxVotes > 0 {
			points += float64(votes[k.Length]) / float64(maxVotes)
		}
		items = append(items, ranked{length: k.Length, points: points})
	}
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].points == items[j].points {
			return items[i].length < items[j].length
		}
		return items[i].points > items[j].points
	})
	out := make([]int, len(items))
	for i, it := range items {
		out[i] = it.length
	}
	return out
}
