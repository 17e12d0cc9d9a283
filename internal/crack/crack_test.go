package crack

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/codeclub/internal/alphabet"
	"github.com/verte-zerg/codeclub/internal/cipher"
	"github.com/verte-zerg/codeclub/internal/wordlist"
)

const dickens = "IT WAS THE BEST OF TIMES IT WAS THE WORST OF TIMES IT WAS THE AGE OF WISDOM " +
	"IT WAS THE AGE OF FOOLISHNESS IT WAS THE EPOCH OF BELIEF IT WAS THE EPOCH OF INCREDULITY " +
	"IT WAS THE SEASON OF LIGHT IT WAS THE SEASON OF DARKNESS IT WAS THE SPRING OF HOPE " +
	"IT WAS THE WINTER OF DESPAIR"

func TestCrackKeywordFindsSecret(t *testing.T) {
	attempts, err := CrackKeyword(context.Background(), "DTIIL WLOIR", wordlist.Builtin(), alphabet.Default(), 1)
	require.NoError(t, err)
	require.NotEmpty(t, attempts)

	best := attempts[0]
	assert.Equal(t, "SECRET", best.Keyword)
	assert.Equal(t, "HELLO WORLD", best.Result)
	assert.Greater(t, best.Score, ConfidentScore)
	assert.Equal(t, Confident, Classify(attempts))
}

func TestCrackKeywordRanksTrueKeywordInTopThree(t *testing.T) {
	a := alphabet.Default()
	plaintexts := map[string]string{
		"DRAGON":      "THE CAT AND THE DOG ARE FRIENDS",
		"OPEN SESAME": "MEET ME AT THE PARK AFTER SCHOOL TODAY",
		"ZEBRA":       "THIS IS OUR SECRET CLUB MESSAGE",
	}
	for keyword, plaintext := range plaintexts {
		t.Run(keyword, func(t *testing.T) {
			ciphertext := cipher.Keyword(plaintext, keyword, false, a)
			attempts, err := CrackKeyword(context.Background(), ciphertext, wordlist.Builtin(), a, 1)
			require.NoError(t, err)

			var top []string
			for _, at := range Top(attempts, 3) {
				top = append(top, at.Keyword)
			}
			assert.Contains(t, top, keyword)
		})
	}
}

func TestCrackKeywordParallelMatchesSequential(t *testing.T) {
	a := alphabet.Default()
	ciphertext := cipher.Keyword("THE TREASURE IS HIDDEN UNDER THE OLD OAK TREE", "PIRATE", false, a)
	candidates := append(wordlist.Builtin(), wordlist.Offline()...)

	seq, err := CrackKeyword(context.Background(), ciphertext, candidates, a, 1)
	require.NoError(t, err)
	par, err := CrackKeyword(context.Background(), ciphertext, candidates, a, 4)
	require.NoError(t, err)

	if diff := cmp.Diff(seq, par); diff != "" {
		t.Fatalf("parallel ranking differs (-seq +par):\n%s", diff)
	}
	assert.Len(t, seq, len(candidates))
}

func TestCrackKeywordTieKeepsCandidateOrder(t *testing.T) {
	// SECRETS and SECRET produce the same cipher alphabet.
	attempts, err := CrackKeyword(context.Background(), "DTIIL WLOIR", []string{"secrets", "SECRET", "secret"}, alphabet.Default(), 1)
	require.NoError(t, err)
	require.Len(t, attempts, 2)
	assert.Equal(t, attempts[0].Score, attempts[1].Score)
	assert.Equal(t, "SECRETS", attempts[0].Keyword)
	assert.Equal(t, "SECRET", attempts[1].Keyword)
}

func TestCrackKeywordCustomAlphabet(t *testing.T) {
	ctx := context.Background()

	digits := alphabet.MustNew("0123456789")
	ct := cipher.Keyword("31415 92653", "271", false, digits)
	require.Equal(t, "07374 91540", ct)
	attempts, err := CrackKeyword(ctx, ct, []string{"271", "kite"}, digits, 1)
	require.NoError(t, err)
	require.Len(t, attempts, 1)
	assert.Equal(t, "271", attempts[0].Keyword)
	assert.Equal(t, "31415 92653", attempts[0].Result)

	nordic := alphabet.MustNew("ABCDEFGHIJKLMNOPQRSTUVWXYZÅÄÖ")
	plain := "HEJ PÅ DIG DU GAMLA ÖRN"
	ct = cipher.Keyword(plain, "SKÅL", false, nordic)
	attempts, err = CrackKeyword(ctx, ct, []string{"dragon", "skål"}, nordic, 1)
	require.NoError(t, err)
	require.Len(t, attempts, 2)
	var found bool
	for _, at := range attempts {
		if at.Keyword == "SKÅL" {
			found = true
			assert.Equal(t, plain, at.Result)
		}
	}
	assert.True(t, found, "SKÅL attempt missing")
}

func TestCrackKeywordEmptyCiphertext(t *testing.T) {
	for _, text := range []string{"", "   "} {
		attempts, err := CrackKeyword(context.Background(), text, wordlist.Builtin(), alphabet.Default(), 4)
		require.NoError(t, err)
		assert.Empty(t, attempts)
		assert.Equal(t, NoSolution, Classify(attempts))
	}
}

func TestCrackKeywordHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for _, workers := range []int{1, 4} {
		_, err := CrackKeyword(ctx, "DTIIL WLOIR", wordlist.Builtin(), alphabet.Default(), workers)
		assert.ErrorIs(t, err, context.Canceled)
	}
}

func TestClassifyThresholds(t *testing.T) {
	tests := []struct {
		score int
		want  Verdict
	}{
		{51, Confident},
		{50, Tentative},
		{31, Tentative},
		{30, NoSolution},
		{0, NoSolution},
	}
	for _, tt := range tests {
		got := Classify([]Attempt{{Score: tt.score}})
		assert.Equal(t, tt.want, got, "score %d", tt.score)
	}
	assert.Equal(t, "confident crack", Confident.String())
	assert.Equal(t, "tentative crack", Tentative.String())
	assert.Equal(t, "no solution found", NoSolution.String())
}

func TestCrackCaesar(t *testing.T) {
	a := alphabet.Default()
	ciphertext := cipher.Caesar("MEET ME AT THE PARK AFTER SCHOOL", 11, false, a)
	attempts := CrackCaesar(ciphertext, a)
	require.Len(t, attempts, 26)
	assert.Equal(t, "11", attempts[0].Keyword)
	assert.Equal(t, "MEET ME AT THE PARK AFTER SCHOOL", attempts[0].Result)
	assert.Empty(t, CrackCaesar("", a))
}

func TestCrackVigenere(t *testing.T) {
	a := alphabet.Default()
	ciphertext := cipher.Vigenere(dickens, "LEMON", false, a)
	attempts, err := CrackVigenere(context.Background(), ciphertext, a, 8, []string{"kite", "lantern"})
	require.NoError(t, err)
	require.NotEmpty(t, attempts)
	assert.Equal(t, dickens, attempts[0].Result)
	assert.True(t, strings.HasPrefix(attempts[0].Keyword, "LEMON"), "best key %q", attempts[0].Keyword)
}

func TestCrackerUsesSource(t *testing.T) {
	c := &Cracker{Source: wordlist.Static{"kite", "secret"}, Workers: 2}
	res, err := c.Crack(context.Background(), "DTIIL WLOIR")
	require.NoError(t, err)
	assert.Equal(t, 2, res.Candidates)
	best, ok := res.Best()
	require.True(t, ok)
	assert.Equal(t, "SECRET", best.Keyword)
	assert.Equal(t, Confident, res.Verdict)

	def := &Cracker{}
	res, err = def.Crack(context.Background(), "DTIIL WLOIR")
	require.NoError(t, err)
	assert.Equal(t, len(wordlist.Builtin()), res.Candidates)

	caesar := c.CrackCaesar(context.Background(), "KHOOR ZRUOG")
	best, ok = caesar.Best()
	require.True(t, ok)
	assert.Equal(t, "HELLO WORLD", best.Result)
}
