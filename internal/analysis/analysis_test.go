package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/codeclub/internal/alphabet"
	"github.com/verte-zerg/codeclub/internal/cipher"
)

const dickens = "IT WAS THE BEST OF TIMES IT WAS THE WORST OF TIMES IT WAS THE AGE OF WISDOM " +
	"IT WAS THE AGE OF FOOLISHNESS IT WAS THE EPOCH OF BELIEF IT WAS THE EPOCH OF INCREDULITY " +
	"IT WAS THE SEASON OF LIGHT IT WAS THE SEASON OF DARKNESS IT WAS THE SPRING OF HOPE " +
	"IT WAS THE WINTER OF DESPAIR"

func TestLetterCountsAndFrequencies(t *testing.T) {
	a := alphabet.Default()
	c := LetterCounts("Hello, World", a)
	assert.Equal(t, 10, c.Total)
	assert.Equal(t, 3, c.Counts[11])
	assert.InDelta(t, 30.0, c.Percent(11), 1e-9)

	freqs := Frequencies("aab", a)
	require.Len(t, freqs, 26)
	assert.Equal(t, 'A', freqs[0].Char)
	assert.InDelta(t, 66.666, freqs[0].Percent, 0.01)
	assert.InDelta(t, 8.167, freqs[0].Expected, 1e-9)
}

func TestEmptyTextStatistics(t *testing.T) {
	a := alphabet.Default()
	assert.Zero(t, LetterCounts("", a).Percent(0))
	assert.Zero(t, IndexOfCoincidence("!", a))
	assert.Zero(t, ChiSquared(LetterCounts("", a)))
	assert.Empty(t, IoCByKeyLength("A", a, 5))
	assert.Empty(t, EstimateKeyLengths("", a, 5))
}

func TestIndexOfCoincidence(t *testing.T) {
	a := alphabet.Default()
	assert.InDelta(t, 4.0/12.0, IndexOfCoincidence("AABB", a), 1e-9)
	assert.InDelta(t, 1.0, IndexOfCoincidence("zzzz", a), 1e-9)
	assert.Greater(t, IndexOfCoincidence(dickens, a), 0.055)
}

func TestChiSquaredPrefersEnglish(t *testing.T) {
	a := alphabet.Default()
	english := ChiSquared(LetterCounts(dickens, a))
	shifted := ChiSquared(LetterCounts(cipher.Caesar(dickens, 7, false, a), a))
	assert.Less(t, english, shifted)
}

func TestKasiskiVotesRepeatDistance(t *testing.T) {
	a := alphabet.Default()
	require.Equal(t, []int{5, 10, 5}, RepeatDistances("ABCXX ABCYY ABC", a, 3))

	votes := Kasiski("ABCXXABCYYABC", a, 3)
	require.NotEmpty(t, votes)
	assert.Equal(t, FactorVote{Factor: 5, Votes: 3}, votes[0])
}

func TestEstimateKeyLengthsFindsVigenereKey(t *testing.T) {
	a := alphabet.Default()
	ciphertext := cipher.Vigenere(dickens, "LEMON", false, a)
	lengths := EstimateKeyLengths(ciphertext, a, 8)
	require.GreaterOrEqual(t, len(lengths), 3)
	assert.Contains(t, lengths[:3], 5)
}
