package crack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreTextIsDeterministic(t *testing.T) {
	text := "MEET ME AT THE TREEHOUSE AFTER SCHOOL"
	first := ScoreText(text)
	assert.Equal(t, first, ScoreText(text))
	assert.Equal(t, first, Explain(text).Total())
}

func TestScoreTextRewardsEnglish(t *testing.T) {
	english := ScoreText("HELLO WORLD")
	assert.Greater(t, english, ConfidentScore)
	assert.Greater(t, english, ScoreText("DTIIL WLOIR"))
	assert.Greater(t, ScoreText("the dog and the cat"), ScoreText("xqz vkj wpf xqz bmy"))
}

func TestScoreComponents(t *testing.T) {
	b := Explain("HELLO WORLD")
	assert.InDelta(t, 2*(CommonWordBonus+WordLengthBonus), b.Words, 1e-9)
	// HE and OR are the only common bigrams in HELLOWORLD; no trigram matches.
	assert.InDelta(t, 2*BigramBonus, b.Bigrams, 1e-9)
	assert.Zero(t, b.Trigrams)
	// 3 vowels out of 10 letters.
	assert.InDelta(t, VowelBonusLoose, b.Vowels, 1e-9)
	assert.Greater(t, b.LetterFit, 0.0)

	assert.InDelta(t, 2*TrigramBonus, Explain("THE THE").Trigrams, 1e-9)
	assert.InDelta(t, VowelBonusTight, Explain("AEBCD").Vowels, 1e-9)
	assert.Zero(t, Explain("BCDFG").Vowels)
}

func TestScoreTextEmpty(t *testing.T) {
	assert.Zero(t, ScoreText(""))
	assert.Zero(t, ScoreText("   "))
	assert.Zero(t, ScoreText("12 !?"))
}
