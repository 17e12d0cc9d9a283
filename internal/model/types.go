// Package model defines shared data structures.
package model

import "time"

// CrackConfig defines crack settings after merging config file and flags.
type CrackConfig struct {
	Alphabet      string
	Top           int
	Workers       int
	Remote        bool
	RemoteURL     string
	RemoteTimeout time.Duration
	KeywordsFile  string
	WaitRemote    bool
}

// PuzzleConfig defines puzzle practice settings.
type PuzzleConfig struct {
	Alphabet string
	Ciphers  []string
	Hints    bool
}

// HistoryFilter defines filters for puzzle history output.
type HistoryFilter struct {
	Cipher string
	Since  *time.Time
	Last   int
}

// Puzzle is one generated message to decode.
type Puzzle struct {
	Cipher     string
	Key        string
	Plaintext  string
	Ciphertext string
}

// PuzzleSession captures a completed puzzle attempt.
type PuzzleSession struct {
	ID         int64
	StartedAt  time.Time
	EndedAt    time.Time
	Cipher     string
	Key        string
	Plaintext  string
	Correct    int
	Incorrect  int
	HintUsed   bool
	DurationMs int64
}

// Accuracy returns the share of correctly typed letters in [0,1].
func (s PuzzleSession) Accuracy() float64 {
	total := s.Correct + s.Incorrect
	if total == 0 {
		return 0
	}
	return float64(s.Correct) / float64(total)
}

// CrackRun summarizes one stored crack invocation.
type CrackRun struct {
	ID         string
	CreatedAt  time.Time
	Cipher     string
	Ciphertext string
	Candidates int
	Verdict    string
	BestKey    string
	BestScore  int
	DurationMs int64
}

// CrackAttempt is one ranked attempt stored with a crack run.
type CrackAttempt struct {
	Rank    int
	Keyword string
	Result  string
	Score   int
}
