package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/codeclub/internal/config"
	"github.com/verte-zerg/codeclub/internal/crack"
	"github.com/verte-zerg/codeclub/internal/generator"
	"github.com/verte-zerg/codeclub/internal/historyui"
	"github.com/verte-zerg/codeclub/internal/model"
	"github.com/verte-zerg/codeclub/internal/report"
	"github.com/verte-zerg/codeclub/internal/store"
	"github.com/verte-zerg/codeclub/internal/tui"
	"github.com/verte-zerg/codeclub/internal/wordlist"
)

const (
	defaultHistoryWindow = 5
	defaultRunsShown     = 10
)

var (
	puzzleCiphers []string
	puzzleHints   bool

	historyCipher string
	historySince  string
	historyLast   int
	historyWindow int
	historyPlain  bool
	historyRun    string

	wordlistOut   string
	wordlistForce bool
)

func newPuzzleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "puzzle",
		Short: "Practice decoding secret messages",
		Args:  cobra.NoArgs,
		RunE:  runPuzzleCmd,
	}
	cmd.Flags().StringSliceVar(&puzzleCiphers, "ciphers", generator.DefaultCiphers, "ciphers to draw puzzles from")
	cmd.Flags().BoolVar(&puzzleHints, "hints", true, "allow revealing the key with ctrl+h")
	return cmd
}

func runPuzzleCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	applyStringsConfig(cmd, "ciphers", &puzzleCiphers, fileCfg.Puzzle.Ciphers)
	applyBoolConfig(cmd, "hints", &puzzleHints, fileCfg.Puzzle.Hints)
	a, err := resolveAlphabet()
	if err != nil {
		return err
	}
	cfg := model.PuzzleConfig{Alphabet: a.String(), Ciphers: puzzleCiphers, Hints: puzzleHints}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	keywords := wordlist.DefaultSource().Keywords(cmd.Context())
	gen := generator.New().WithAlphabet(a)
	m, err := tui.NewModel(cfg, st, gen, keywords, logger)
	if err != nil {
		return fmt.Errorf("failed to start puzzle: %w", err)
	}
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show puzzle progress and past crack runs",
		Args:  cobra.NoArgs,
		RunE:  runHistoryCmd,
	}
	cmd.Flags().StringVar(&historyCipher, "cipher", "", "cipher filter")
	cmd.Flags().StringVar(&historySince, "since", "", "start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&historyLast, "last", 0, "limit to last N puzzles")
	cmd.Flags().IntVar(&historyWindow, "window", defaultHistoryWindow, "moving average window for the accuracy trend")
	cmd.Flags().BoolVar(&historyPlain, "plain", false, "print text instead of the interactive view")
	cmd.Flags().StringVar(&historyRun, "run", "", "print the stored attempts of one crack run")
	return cmd
}

func historyFilterFromFlags() (model.HistoryFilter, error) {
	filter := model.HistoryFilter{Cipher: strings.ToLower(strings.TrimSpace(historyCipher)), Last: historyLast}
	if historyLast < 0 {
		return filter, fmt.Errorf("--last must be >= 0")
	}
	if historySince != "" {
		parsed, err := time.ParseInLocation("2006-01-02", historySince, time.Local)
		if err != nil {
			return filter, fmt.Errorf("invalid --since value: %w", err)
		}
		filter.Since = &parsed
	}
	return filter, nil
}

func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	filter, err := historyFilterFromFlags()
	if err != nil {
		return err
	}
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	ctx := cmd.Context()
	if historyRun != "" {
		return printCrackRun(cmd, st, historyRun)
	}
	if historyPlain || !term.IsTerminal(int(os.Stdout.Fd())) {
		return printHistory(ctx, cmd, st, filter)
	}

	program := tea.NewProgram(historyui.NewModel(st, filter, historyWindow), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run history TUI: %w", err)
	}
	return nil
}

func printHistory(ctx context.Context, cmd *cobra.Command, st *store.Store, filter model.HistoryFilter) error {
	out := cmd.OutOrStdout()
	sessions, err := st.ListPuzzleSessions(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to load puzzle history: %w", err)
	}
	if err := report.RenderPuzzleSummary(out, sessions, historyWindow); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	runs, err := st.ListCrackRuns(ctx, defaultRunsShown)
	if err != nil {
		return fmt.Errorf("failed to load crack runs: %w", err)
	}
	if err := report.RenderCrackRuns(out, runs); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func printCrackRun(cmd *cobra.Command, st *store.Store, prefix string) error {
	ctx := cmd.Context()
	runs, err := st.ListCrackRuns(ctx, 0)
	if err != nil {
		return fmt.Errorf("failed to load crack runs: %w", err)
	}
	var match *model.CrackRun
	for i := range runs {
		if strings.HasPrefix(runs[i].ID, prefix) {
			if match != nil {
				return fmt.Errorf("run id prefix %q is ambiguous", prefix)
			}
			match = &runs[i]
		}
	}
	if match == nil {
		return fmt.Errorf("%w: %s", store.ErrRunNotFound, prefix)
	}
	stored, err := st.ListCrackAttempts(ctx, match.ID)
	if err != nil {
		return fmt.Errorf("failed to load attempts: %w", err)
	}
	out := cmd.OutOrStdout()
	if _, err := fmt.Fprintf(out, "Run %s (%s, %s)\nCiphertext: %s\n\n", match.ID, match.Cipher, match.Verdict, match.Ciphertext); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	attempts := make([]crack.Attempt, len(stored))
	for i, at := range stored {
		attempts[i] = crack.Attempt{Keyword: at.Keyword, Result: at.Result, Score: at.Score}
	}
	if err := report.RenderAttempts(out, attempts, 0); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newWordlistCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wordlist",
		Short: "Download extra crack keywords",
		Args:  cobra.NoArgs,
		RunE:  runWordlistCmd,
	}
	cmd.Flags().StringVar(&crackRemoteURL, "remote-url", wordlist.DefaultRemoteURL, "remote keyword list URL")
	cmd.Flags().IntVar(&crackRemoteTimeoutMs, "remote-timeout-ms", int(wordlist.DefaultRemoteTimeout/time.Millisecond), "fetch timeout in milliseconds")
	cmd.Flags().StringVarP(&wordlistOut, "out", "o", "", "output file (default: saved keyword list)")
	cmd.Flags().BoolVar(&wordlistForce, "force", false, "overwrite an existing file")
	return cmd
}

func runWordlistCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	applyStringConfig(cmd, "remote-url", &crackRemoteURL, fileCfg.Crack.RemoteURL)
	applyIntConfig(cmd, "remote-timeout-ms", &crackRemoteTimeoutMs, fileCfg.Crack.RemoteTimeoutMs)
	if crackRemoteTimeoutMs <= 0 {
		return fmt.Errorf("--remote-timeout-ms must be > 0")
	}
	outPath := wordlistOut
	if outPath == "" {
		outPath = config.DefaultKeywordListPath()
	}
	if !wordlistForce {
		if _, err := os.Stat(outPath); err == nil {
			return fmt.Errorf("keyword list already exists: %s (use --force to overwrite)", outPath)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat keyword list: %w", err)
		}
	}

	logErrf("Fetching keywords from %s...\n", crackRemoteURL)
	fetcher := &wordlist.Fetcher{
		URL:     crackRemoteURL,
		Timeout: time.Duration(crackRemoteTimeoutMs) * time.Millisecond,
		Logger:  logger,
	}
	res := fetcher.Fetch(cmd.Context())
	if !res.OK() {
		return fmt.Errorf("failed to fetch keywords: %w", res.Err)
	}
	if len(res.Words) == 0 {
		return fmt.Errorf("remote returned no usable keywords")
	}
	if err := wordlist.WriteWords(outPath, res.Words); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}
	logErrf("Wrote %d keywords to %s\n", len(res.Words), outPath)
	return nil
}
