// Package generator builds practice puzzles.
package generator

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/verte-zerg/codeclub/internal/alphabet"
	"github.com/verte-zerg/codeclub/internal/cipher"
	"github.com/verte-zerg/codeclub/internal/model"
	"github.com/verte-zerg/codeclub/internal/wordlist"
)

// DefaultCiphers are used when no cipher set is configured.
var DefaultCiphers = []string{"caesar", "atbash", "keyword"}

var phrases = []string{
	"MEET ME AT THE TREEHOUSE AFTER SCHOOL",
	"THE TREASURE IS UNDER THE BIG OAK TREE",
	"BRING YOUR BIKE TO THE PARK ON SATURDAY",
	"THE SECRET PASSWORD IS PURPLE DRAGON",
	"DO NOT TELL ANYONE ABOUT OUR CLUB",
	"LOOK FOR THE NEXT CLUE IN THE LIBRARY",
	"WE WILL HAVE PIZZA AT THE MEETING",
	"THE CAT AND THE DOG ARE FRIENDS",
	"HIDE THE MAP BEHIND THE BOOKSHELF",
	"OUR CODE CLUB MEETS EVERY FRIDAY",
	"THE ROCKET LAUNCHES AT NOON TODAY",
	"FIND THE KEY IN THE BLUE FLOWER POT",
}

// Phrases returns a copy of the built-in puzzle phrases.
func Phrases() []string {
	out := make([]string, len(phrases))
	copy(out, phrases)
	return out
}

// Generator produces randomized puzzles.
type Generator struct {
	rnd      *rand.Rand
	alphabet alphabet.Alphabet
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewWithSeed(time.Now().UnixNano())
}

// NewWithSeed returns a deterministic Generator.
func NewWithSeed(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed)), alphabet: alphabet.Default()}
}

// WithAlphabet sets the alphabet puzzles are enciphered over.
func (g *Generator) WithAlphabet(a alphabet.Alphabet) *Generator {
	if a.Len() > 0 {
		g.alphabet = a
	}
	return g
}

// Puzzle picks a phrase, one of the allowed ciphers and key material.
// Keyword and Vigenère keys are drawn from keywords, falling back to the
// built-in list when it is empty.
func (g *Generator) Puzzle(keywords, ciphers []string) (model.Puzzle, error) {
	if len(ciphers) == 0 {
		ciphers = DefaultCiphers
	}
	var usable []cipher.Operation
	for _, name := range ciphers {
		op, err := cipher.Get(strings.ToLower(strings.TrimSpace(name)))
		if err != nil {
			return model.Puzzle{}, fmt.Errorf("failed to select puzzle cipher: %w", err)
		}
		usable = append(usable, op)
	}
	keys := wordlist.Normalize(keywords)
	if len(keys) == 0 {
		keys = wordlist.Builtin()
	}

	op := usable[g.rnd.Intn(len(usable))]
	plaintext := phrases[g.rnd.Intn(len(phrases))]
	params, key := g.params(op.Name(), keys)
	ciphertext, err := op.Encrypt(plaintext, params)
	if err != nil {
		return model.Puzzle{}, fmt.Errorf("failed to encrypt puzzle: %w", err)
	}
	return model.Puzzle{
		Cipher:     op.Name(),
		Key:        key,
		Plaintext:  plaintext,
		Ciphertext: ciphertext,
	}, nil
}

func (g *Generator) params(name string, keys []string) (cipher.Params, string) {
	p := cipher.Params{Alphabet: g.alphabet}
	switch name {
	case "caesar":
		p.Shift = 1 + g.rnd.Intn(g.alphabet.Len()-1)
		return p, strconv.Itoa(p.Shift)
	case "keyword", "vigenere":
		p.Key = keys[g.rnd.Intn(len(keys))]
		return p, p.Key
	case "railfence":
		p.Rails = 2 + g.rnd.Intn(3)
		return p, strconv.Itoa(p.Rails)
	default:
		return p, ""
	}
}
