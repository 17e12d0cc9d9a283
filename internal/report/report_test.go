package report

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/verte-zerg/codeclub/internal/alphabet"
	"github.com/verte-zerg/codeclub/internal/analysis"
	"github.com/verte-zerg/codeclub/internal/crack"
	"github.com/verte-zerg/codeclub/internal/model"
	"github.com/verte-zerg/codeclub/internal/wordlist"
)

func TestRenderAttemptsAndVerdict(t *testing.T) {
	c := &crack.Cracker{Source: wordlist.Static(wordlist.Builtin())}
	res, err := c.Crack(context.Background(), "DTIIL WLOIR")
	if err != nil {
		t.Fatalf("crack: %v", err)
	}

	var buf bytes.Buffer
	if err := RenderAttempts(&buf, res.Attempts, 3); err != nil {
		t.Fatalf("render attempts: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected title, header and 3 rows, got %d lines:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[2], "1 SECRET") {
		t.Fatalf("unexpected first row: %q", lines[2])
	}

	buf.Reset()
	if err := RenderVerdict(&buf, res); err != nil {
		t.Fatalf("render verdict: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "confident crack") || !strings.Contains(out, "Plaintext: HELLO WORLD") {
		t.Fatalf("unexpected verdict output: %q", out)
	}
}

func TestRenderAttemptsEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderAttempts(&buf, nil, 5); err != nil {
		t.Fatalf("render: %v", err)
	}
	if buf.String() != "No attempts.\n" {
		t.Fatalf("unexpected output: %q", buf.String())
	}
	buf.Reset()
	if err := RenderVerdict(&buf, crack.Result{}); err != nil {
		t.Fatalf("render verdict: %v", err)
	}
	if !strings.Contains(buf.String(), "no solution found") {
		t.Fatalf("unexpected verdict: %q", buf.String())
	}
}

func TestRenderFrequencies(t *testing.T) {
	freqs := analysis.Frequencies("EEEE TTA", alphabet.Default())
	var buf bytes.Buffer
	if err := RenderFrequencies(&buf, freqs, 60); err != nil {
		t.Fatalf("render: %v", err)
	}
	lines := strings.Split(buf.String(), "\n")
	if lines[0] != "Letter Frequencies (7 letters)" {
		t.Fatalf("unexpected title: %q", lines[0])
	}
	var eLine string
	for _, line := range lines {
		if strings.HasPrefix(line, "E ") {
			eLine = line
		}
	}
	if !strings.Contains(eLine, "57.14%") || !strings.Contains(eLine, string(barChar)) {
		t.Fatalf("unexpected E line: %q", eLine)
	}
	for _, line := range lines {
		if displayWidth(line) > 60 {
			t.Fatalf("line wider than 60 cells: %q", line)
		}
	}

	buf.Reset()
	if err := RenderFrequencies(&buf, analysis.Frequencies("123", alphabet.Default()), 60); err != nil {
		t.Fatalf("render empty: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "No alphabet characters") {
		t.Fatalf("unexpected empty output: %q", buf.String())
	}
}

func TestRenderKeyLengths(t *testing.T) {
	iocs := []analysis.KeyLengthIoC{{Length: 5, IoC: 0.0671}, {Length: 3, IoC: 0.041}}
	votes := []analysis.FactorVote{{Factor: 5, Votes: 4}}
	var buf bytes.Buffer
	if err := RenderKeyLengths(&buf, iocs, votes, []int{5, 3}); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "0.0671       4") {
		t.Fatalf("missing length 5 row: %q", out)
	}
	if !strings.Contains(out, "Likely key lengths: 5, 3") {
		t.Fatalf("missing estimate: %q", out)
	}
}

func TestRenderPuzzleSummary(t *testing.T) {
	sessions := []model.PuzzleSession{
		{Cipher: "caesar", Correct: 30, Incorrect: 0, DurationMs: 60000},
		{Cipher: "keyword", Correct: 15, Incorrect: 5, DurationMs: 30000, HintUsed: true},
		{Cipher: "caesar", Correct: 20, Incorrect: 0, DurationMs: 60000},
	}
	var buf bytes.Buffer
	if err := RenderPuzzleSummary(&buf, sessions, 2); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"Puzzles: 3",
		"Best letters/min: 30.00",
		"caesar       2  100.00%",
		"keyword      1   75.00%",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
}

func TestRenderCrackRuns(t *testing.T) {
	runs := []model.CrackRun{{
		ID:        "0f8fad5b-d9cb-469f-a165-70867728950e",
		CreatedAt: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
		Cipher:    "keyword",
		BestKey:   "SECRET",
		BestScore: 104,
		Verdict:   "confident crack",
	}}
	var buf bytes.Buffer
	if err := RenderCrackRuns(&buf, runs); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "0f8fad5b") || strings.Contains(out, "d9cb") {
		t.Fatalf("run id not shortened: %q", out)
	}
	if !strings.Contains(out, "SECRET") {
		t.Fatalf("missing key: %q", out)
	}
}

func TestSparklineAndMovingAverage(t *testing.T) {
	if got := Sparkline([]float64{0, 50, 100}); got != " +@" {
		t.Fatalf("unexpected sparkline %q", got)
	}
	if got := Sparkline([]float64{3, 3}); got != "++" {
		t.Fatalf("flat sparkline %q", got)
	}
	avg := MovingAverage([]float64{2, 4, 6}, 2)
	if avg[0] != 2 || avg[1] != 3 || avg[2] != 5 {
		t.Fatalf("unexpected moving average %v", avg)
	}
}
