package report

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/verte-zerg/codeclub/internal/model"
)

const sparkChars = " .:-=+*#%@"

// PuzzleMetrics computes letters per minute and accuracy for a session.
func PuzzleMetrics(s model.PuzzleSession) (lpm, accuracy float64) {
	accuracy = s.Accuracy()
	if s.DurationMs <= 0 {
		return 0, accuracy
	}
	minutes := float64(s.DurationMs) / 60000.0
	return float64(s.Correct) / minutes, accuracy
}

// MovingAverage computes a rolling mean over the provided window size.
func MovingAverage(values []float64, window int) []float64 {
	out := make([]float64, len(values))
	if window <= 1 {
		copy(out, values)
		return out
	}
	var sum float64
	for i, v := range values {
		sum += v
		if i >= window {
			sum -= values[i-window]
		}
		out[i] = sum / float64(min(i+1, window))
	}
	return out
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if hi-lo < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		idx := int(math.Round((v - lo) / (hi - lo) * float64(len(sparkChars)-1)))
		idx = min(max(idx, 0), len(sparkChars)-1)
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// RenderPuzzleSummary prints overall puzzle progress, an accuracy trend and a
// per-cipher breakdown.
func RenderPuzzleSummary(w io.Writer, sessions []model.PuzzleSession, window int) error {
	if len(sessions) == 0 {
		_, err := fmt.Fprintln(w, "No puzzle sessions found.")
		return err
	}

	type cipherRow struct {
		solved  int
		hints   int
		lpm     float64
		correct int
		total   int
	}
	byCipher := map[string]*cipherRow{}
	accs := make([]float64, len(sessions))
	var totalLPM, totalAcc float64
	bestLPM := 0.0
	for i, s := range sessions {
		lpm, acc := PuzzleMetrics(s)
		accs[i] = acc * 100
		totalLPM += lpm
		totalAcc += acc
		bestLPM = math.Max(bestLPM, lpm)

		row, ok := byCipher[s.Cipher]
		if !ok {
			row = &cipherRow{}
			byCipher[s.Cipher] = row
		}
		row.solved++
		row.lpm += lpm
		row.correct += s.Correct
		row.total += s.Correct + s.Incorrect
		if s.HintUsed {
			row.hints++
		}
	}

	count := float64(len(sessions))
	lines := []string{
		"Summary",
		fmt.Sprintf("Puzzles: %d", len(sessions)),
		fmt.Sprintf("Avg letters/min: %.2f", totalLPM/count),
		fmt.Sprintf("Best letters/min: %.2f", bestLPM),
		fmt.Sprintf("Avg Accuracy: %.2f%%", totalAcc/count*100),
		fmt.Sprintf("Accuracy trend: [%s]", Sparkline(MovingAverage(accs, window))),
		"",
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	names := make([]string, 0, len(byCipher))
	for name := range byCipher {
		names = append(names, name)
	}
	sort.Strings(names)
	rows := make([][]string, 0, len(names))
	for _, name := range names {
		r := byCipher[name]
		acc := 0.0
		if r.total > 0 {
			acc = float64(r.correct) / float64(r.total)
		}
		rows = append(rows, []string{
			name,
			strconv.Itoa(r.solved),
			fmt.Sprintf("%.2f%%", acc*100),
			fmt.Sprintf("%.1f", r.lpm/float64(r.solved)),
			strconv.Itoa(r.hints),
		})
	}
	return writeTable(w, "Per-Cipher", []string{"Cipher", "Solved", "Accuracy", "Letters/min", "Hints"}, rows,
		map[int]bool{1: true, 2: true, 3: true, 4: true})
}
