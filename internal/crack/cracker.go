package crack

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/verte-zerg/codeclub/internal/alphabet"
	"github.com/verte-zerg/codeclub/internal/wordlist"
)

// Result is the outcome of one crack run.
type Result struct {
	Attempts   []Attempt
	Verdict    Verdict
	Candidates int
}

// Best returns the highest scoring attempt, if any.
func (r Result) Best() (Attempt, bool) {
	if len(r.Attempts) == 0 {
		return Attempt{}, false
	}
	return r.Attempts[0], true
}

// Cracker runs dictionary attacks with keywords from Source.
type Cracker struct {
	Source   wordlist.Source
	Alphabet alphabet.Alphabet
	Workers  int
	Logger   *zap.Logger
}

func (c *Cracker) alphabet() alphabet.Alphabet {
	if c.Alphabet.Len() == 0 {
		return alphabet.Default()
	}
	return c.Alphabet
}

func (c *Cracker) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}

func (c *Cracker) candidates(ctx context.Context) []string {
	if c.Source == nil {
		return wordlist.DefaultSource().Keywords(ctx)
	}
	return c.Source.Keywords(ctx)
}

// Crack attacks a keyword-substitution ciphertext.
func (c *Cracker) Crack(ctx context.Context, ciphertext string) (Result, error) {
	candidates := c.candidates(ctx)
	started := time.Now()
	attempts, err := CrackKeyword(ctx, ciphertext, candidates, c.alphabet(), c.Workers)
	if err != nil {
		return Result{}, err
	}
	res := Result{Attempts: attempts, Verdict: Classify(attempts), Candidates: len(candidates)}
	c.logDone("keyword", res, started)
	return res, nil
}

// CrackVigenere attacks a Vigenère ciphertext with estimated and dictionary keys.
func (c *Cracker) CrackVigenere(ctx context.Context, ciphertext string, maxKeyLen int) (Result, error) {
	candidates := c.candidates(ctx)
	started := time.Now()
	attempts, err := CrackVigenere(ctx, ciphertext, c.alphabet(), maxKeyLen, candidates)
	if err != nil {
		return Result{}, err
	}
	res := Result{Attempts: attempts, Verdict: Classify(attempts), Candidates: len(attempts)}
	c.logDone("vigenere", res, started)
	return res, nil
}

// CrackCaesar tries every shift.
func (c *Cracker) CrackCaesar(_ context.Context, ciphertext string) Result {
	started := time.Now()
	attempts := CrackCaesar(ciphertext, c.alphabet())
	res := Result{Attempts: attempts, Verdict: Classify(attempts), Candidates: c.alphabet().Len()}
	c.logDone("caesar", res, started)
	return res
}

func (c *Cracker) logDone(kind string, res Result, started time.Time) {
	fields := []zap.Field{
		zap.String("cipher", kind),
		zap.Int("candidates", res.Candidates),
		zap.Stringer("verdict", res.Verdict),
		zap.Duration("elapsed", time.Since(started)),
	}
	if best, ok := res.Best(); ok {
		fields = append(fields, zap.String("best", best.Keyword), zap.Int("score", best.Score))
	}
	c.logger().Debug("crack finished", fields...)
}
