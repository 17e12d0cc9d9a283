package report

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/verte-zerg/codeclub/internal/analysis"
)

const (
	barChar      = '█'
	expectedMark = '|'
	minBarWidth  = 10
	// label, count and percent columns before the bar.
	frequencyPrefixWidth = 18
)

// RenderFrequencies prints one bar per character scaled to the available
// width. A marker shows the English expectation where one exists.
func RenderFrequencies(w io.Writer, freqs []analysis.Frequency, width int) error {
	total := 0
	maxPct := 0.0
	for _, f := range freqs {
		total += f.Count
		maxPct = math.Max(maxPct, math.Max(f.Percent, f.Expected))
	}
	if total == 0 {
		_, err := fmt.Fprintln(w, "No alphabet characters found.")
		return err
	}
	if width <= 0 {
		width = TerminalWidth()
	}
	barWidth := max(width-frequencyPrefixWidth, minBarWidth)

	if _, err := fmt.Fprintf(w, "Letter Frequencies (%d letters)\n", total); err != nil {
		return err
	}
	for _, f := range freqs {
		bar := frequencyBar(f, maxPct, barWidth)
		if _, err := fmt.Fprintf(w, "%s %5d %6.2f%% %s\n", string(f.Char), f.Count, f.Percent, strings.TrimRight(bar, " ")); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

func frequencyBar(f analysis.Frequency, maxPct float64, width int) string {
	if maxPct <= 0 {
		return ""
	}
	cells := []rune(strings.Repeat(" ", width))
	filled := int(math.Round(f.Percent / maxPct * float64(width)))
	for i := 0; i < filled && i < width; i++ {
		cells[i] = barChar
	}
	if f.Expected > 0 {
		pos := int(math.Round(f.Expected/maxPct*float64(width))) - 1
		pos = min(max(pos, 0), width-1)
		cells[pos] = expectedMark
	}
	return string(cells)
}

// RenderKeyLengths prints the IoC per key length next to the Kasiski votes.
func RenderKeyLengths(w io.Writer, iocs []analysis.KeyLengthIoC, votes []analysis.FactorVote, estimate []int) error {
	if len(iocs) == 0 {
		_, err := fmt.Fprintln(w, "Not enough text to estimate a key length.")
		return err
	}
	byFactor := make(map[int]int, len(votes))
	for _, v := range votes {
		byFactor[v.Factor] = v.Votes
	}
	rows := make([][]string, 0, len(iocs))
	for _, k := range iocs {
		rows = append(rows, []string{
			strconv.Itoa(k.Length),
			fmt.Sprintf("%.4f", k.IoC),
			strconv.Itoa(byFactor[k.Length]),
		})
	}
	title := fmt.Sprintf("Key Lengths (English IoC %.3f)", analysis.EnglishIoC)
	if err := writeTable(w, title, []string{"Length", "IoC", "Kasiski"}, rows, map[int]bool{0: true, 1: true, 2: true}); err != nil {
		return err
	}
	if len(estimate) == 0 {
		return nil
	}
	parts := make([]string, len(estimate))
	for i, n := range estimate {
		parts[i] = strconv.Itoa(n)
	}
	_, err := fmt.Fprintf(w, "Likely key lengths: %s\n", strings.Join(parts, ", "))
	return err
}
