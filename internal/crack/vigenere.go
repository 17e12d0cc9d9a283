package crack

import (
	"context"
	"math"
	"strings"

	"github.com/verte-zerg/codeclub/internal/alphabet"
	"github.com/verte-zerg/codeclub/internal/analysis"
	"github.com/verte-zerg/codeclub/internal/cipher"
	"github.com/verte-zerg/codeclub/internal/wordlist"
)

// DefaultMaxKeyLength bounds the Vigenère key lengths considered.
const DefaultMaxKeyLength = 12

// keyLengthsTried is how many of the best estimated key lengths get solved.
const keyLengthsTried = 4

// CrackVigenere recovers likely Vigenère keys. For the best estimated key
// lengths each column is solved as a Caesar shift closest to English letter
// frequencies; every dictionary keyword is tried as a key as well. Attempts
// are sorted best first.
func CrackVigenere(ctx context.Context, ciphertext string, a alphabet.Alphabet, maxKeyLen int, keywords []string) ([]Attempt, error) {
	if strings.TrimSpace(ciphertext) == "" {
		return nil, nil
	}
	if maxKeyLen <= 0 {
		maxKeyLen = DefaultMaxKeyLength
	}

	var keys []string
	lengths := analysis.EstimateKeyLengths(ciphertext, a, maxKeyLen)
	if len(lengths) > keyLengthsTried {
		lengths = lengths[:keyLengthsTried]
	}
	letters := analysis.Letters(ciphertext, a)
	for _, length := range lengths {
		keys = append(keys, solveColumns(letters, length, a))
	}
	keys = append(keys, wordlist.NormalizeFor(keywords, a)...)

	seen := map[string]struct{}{}
	attempts := make([]Attempt, 0, len(keys))
	for _, key := range keys {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		result := cipher.Vigenere(ciphertext, key, true, a)
		attempts = append(attempts, Attempt{Keyword: key, Result: result, Score: ScoreText(result)})
	}
	rank(attempts)
	return attempts, nil
}

func solveColumns(letters []rune, length int, a alphabet.Alphabet) string {
	key := make([]rune, length)
	for col := 0; col < length; col++ {
		column := string(analysis.Column(letters, length, col))
		bestShift, bestChi := 0, math.Inf(1)
		for shift := 0; shift < a.Len(); shift++ {
			decoded := cipher.Caesar(column, shift, true, a)
			chi := analysis.ChiSquared(analysis.LetterCounts(decoded, a))
			if chi < bestChi {
				bestShift, bestChi = shift, chi
			}
		}
		key[col] = a.At(bestShift)
	}
	return string(key)
}
