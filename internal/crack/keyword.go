package crack

import (
	"context"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/verte-zerg/codeclub/internal/alphabet"
	"github.com/verte-zerg/codeclub/internal/cipher"
	"github.com/verte-zerg/codeclub/internal/wordlist"
)

// Verdict thresholds on the best score. Tunable, not fundamental.
const (
	ConfidentScore = 50
	TentativeScore = 30
)

// minParallelCandidates is the list size below which fan-out is not worth it.
const minParallelCandidates = 64

// Attempt is one candidate key with its decryption and score.
type Attempt struct {
	Keyword string
	Result  string
	Score   int
}

// Verdict classifies the best attempt of a crack run.
type Verdict int

const (
	// NoSolution means no attempt looked like English.
	NoSolution Verdict = iota
	// Tentative means the best attempt might be right.
	Tentative
	// Confident means the best attempt is very likely right.
	Confident
)

func (v Verdict) String() string {
	switch v {
	case Confident:
		return "confident crack"
	case Tentative:
		return "tentative crack"
	default:
		return "no solution found"
	}
}

// Classify derives the verdict from attempts sorted best first.
func Classify(attempts []Attempt) Verdict {
	if len(attempts) == 0 {
		return NoSolution
	}
	best := attempts[0].Score
	switch {
	case best > ConfidentScore:
		return Confident
	case best > TentativeScore:
		return Tentative
	default:
		return NoSolution
	}
}

// CrackKeyword decrypts ciphertext with every candidate keyword and returns
// the attempts sorted by score, best first. Equal scores keep candidate order.
// Candidates are uppercased and deduplicated first; those sharing no character
// with a are skipped. workers > 1 spreads the
// work over goroutines; only ctx cancellation makes it fail.
func CrackKeyword(ctx context.Context, ciphertext string, candidates []string, a alphabet.Alphabet, workers int) ([]Attempt, error) {
	if strings.TrimSpace(ciphertext) == "" {
		return nil, nil
	}
	keywords := wordlist.NormalizeFor(candidates, a)
	attempts := make([]Attempt, len(keywords))

	try := func(i int) {
		result := cipher.Keyword(ciphertext, keywords[i], true, a)
		attempts[i] = Attempt{Keyword: keywords[i], Result: result, Score: ScoreText(result)}
	}

	if workers <= 1 || len(keywords) < minParallelCandidates {
		for i := range keywords {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			try(i)
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		chunk := (len(keywords) + workers - 1) / workers
		for start := 0; start < len(keywords); start += chunk {
			end := min(start+chunk, len(keywords))
			g.Go(func() error {
				for i := start; i < end; i++ {
					if err := gctx.Err(); err != nil {
						return err
					}
					try(i)
				}
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	rank(attempts)
	return attempts, nil
}

func rank(attempts []Attempt) {
	sort.SliceStable(attempts, func(i, j int) bool {
		return attempts[i].Score > attempts[j].Score
	})
}

// Top returns at most n attempts from the front of attempts.
func Top(attempts []Attempt, n int) []Attempt {
	if n <= 0 || n >= len(attempts) {
		return attempts
	}
	return attempts[:n]
}
