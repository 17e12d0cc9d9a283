package crack

import (
	"strconv"
	"strings"

	"github.com/verte-zerg/codeclub/internal/alphabet"
	"github.com/verte-zerg/codeclub/internal/cipher"
)

// CrackCaesar tries every shift of the alphabet. Attempt.Keyword holds the
// shift in decimal.
func CrackCaesar(ciphertext string, a alphabet.Alphabet) []Attempt {
	if strings.TrimSpace(ciphertext) == "" {
		return nil
	}
	attempts := make([]Attempt, 0, a.Len())
	for shift := 0; shift < a.Len(); shift++ {
		result := cipher.Caesar(ciphertext, shift, true, a)
		attempts = append(attempts, Attempt{
			Keyword: strconv.Itoa(shift),
			Result:  result,
			Score:   ScoreText(result),
		})
	}
	rank(attempts)
	return attempts
}
