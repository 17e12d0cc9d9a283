package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/verte-zerg/codeclub/internal/crack"
	"github.com/verte-zerg/codeclub/internal/model"
)

const maxResultWidth = 60

// RenderAttempts prints the best top attempts as a ranked table. top <= 0
// prints all of them.
func RenderAttempts(w io.Writer, attempts []crack.Attempt, top int) error {
	if len(attempts) == 0 {
		_, err := fmt.Fprintln(w, "No attempts.")
		return err
	}
	shown := crack.Top(attempts, top)
	rows := make([][]string, 0, len(shown))
	for i, at := range shown {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			at.Keyword,
			strconv.Itoa(at.Score),
			truncate(at.Result, maxResultWidth),
		})
	}
	title := fmt.Sprintf("Top %d of %d", len(shown), len(attempts))
	return writeTable(w, title, []string{"#", "Key", "Score", "Plaintext"}, rows, map[int]bool{0: true, 2: true})
}

// RenderVerdict prints the verdict line and the best plaintext.
func RenderVerdict(w io.Writer, res crack.Result) error {
	best, ok := res.Best()
	if !ok {
		_, err := fmt.Fprintf(w, "Verdict: %s (nothing to crack)\n", res.Verdict)
		return err
	}
	if _, err := fmt.Fprintf(w, "Verdict: %s (key %s, score %d, %d candidates)\n",
		res.Verdict, best.Keyword, best.Score, res.Candidates); err != nil {
		return err
	}
	if res.Verdict == crack.NoSolution {
		return nil
	}
	_, err := fmt.Fprintf(w, "Plaintext: %s\n", best.Result)
	return err
}

// RenderCrackRuns prints stored crack runs, newest first.
func RenderCrackRuns(w io.Writer, runs []model.CrackRun) error {
	if len(runs) == 0 {
		_, err := fmt.Fprintln(w, "No crack runs found.")
		return err
	}
	rows := make([][]string, 0, len(runs))
	for _, run := range runs {
		rows = append(rows, []string{
			shortID(run.ID),
			run.CreatedAt.Local().Format("2006-01-02 15:04"),
			run.Cipher,
			run.BestKey,
			strconv.Itoa(run.BestScore),
			run.Verdict,
		})
	}
	return writeTable(w, "Crack Runs", []string{"Run", "When", "Cipher", "Key", "Score", "Verdict"}, rows, map[int]bool{4: true})
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
