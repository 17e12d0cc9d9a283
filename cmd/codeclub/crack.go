package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/verte-zerg/codeclub/internal/alphabet"
	"github.com/verte-zerg/codeclub/internal/analysis"
	"github.com/verte-zerg/codeclub/internal/config"
	"github.com/verte-zerg/codeclub/internal/crack"
	"github.com/verte-zerg/codeclub/internal/model"
	"github.com/verte-zerg/codeclub/internal/report"
	"github.com/verte-zerg/codeclub/internal/store"
	"github.com/verte-zerg/codeclub/internal/wordlist"
)

const (
	defaultTop       = 10
	defaultMinRepeat = 3
)

var (
	crackCipher          string
	crackTop             int
	crackWorkers         int
	crackRemote          bool
	crackRemoteURL       string
	crackRemoteTimeoutMs int
	crackKeywordsFile    string
	crackWaitRemote      bool
	crackMaxKeyLen       int
	crackNoSave          bool

	analyzeMaxKeyLen int
	analyzeMinRepeat int
)

func newCrackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "crack [ciphertext...]",
		Short: "Break a message without knowing the key",
		RunE:  runCrackCmd,
	}
	cmd.Flags().StringVarP(&crackCipher, "cipher", "c", "keyword", "cipher to attack: keyword, caesar or vigenere")
	cmd.Flags().IntVarP(&crackTop, "top", "n", defaultTop, "number of ranked attempts to show (0 = all)")
	cmd.Flags().IntVar(&crackWorkers, "workers", runtime.NumCPU(), "parallel workers for the dictionary attack")
	cmd.Flags().BoolVar(&crackRemote, "remote", true, "prefetch extra keywords from the network")
	cmd.Flags().StringVar(&crackRemoteURL, "remote-url", wordlist.DefaultRemoteURL, "remote keyword list URL")
	cmd.Flags().IntVar(&crackRemoteTimeoutMs, "remote-timeout-ms", int(wordlist.DefaultRemoteTimeout/time.Millisecond), "remote fetch timeout in milliseconds")
	cmd.Flags().StringVar(&crackKeywordsFile, "keywords", "", "extra keyword file, one per line (default: saved wordlist)")
	cmd.Flags().BoolVar(&crackWaitRemote, "wait-remote", false, "wait for the remote list before cracking")
	cmd.Flags().IntVar(&crackMaxKeyLen, "max-key-len", crack.DefaultMaxKeyLength, "longest vigenere key to consider")
	cmd.Flags().BoolVar(&crackNoSave, "no-save", false, "do not record the run in history")
	return cmd
}

func crackConfigFromFlags(cmd *cobra.Command, fileCfg config.FileConfig) (model.CrackConfig, error) {
	applyIntConfig(cmd, "top", &crackTop, fileCfg.Crack.Top)
	applyIntConfig(cmd, "workers", &crackWorkers, fileCfg.Crack.Workers)
	applyBoolConfig(cmd, "remote", &crackRemote, fileCfg.Crack.Remote)
	applyStringConfig(cmd, "remote-url", &crackRemoteURL, fileCfg.Crack.RemoteURL)
	applyIntConfig(cmd, "remote-timeout-ms", &crackRemoteTimeoutMs, fileCfg.Crack.RemoteTimeoutMs)
	applyStringConfig(cmd, "keywords", &crackKeywordsFile, fileCfg.Crack.KeywordsFile)
	applyBoolConfig(cmd, "wait-remote", &crackWaitRemote, fileCfg.Crack.WaitRemote)

	cfg := model.CrackConfig{
		Alphabet:      cipherAlphabet,
		Top:           crackTop,
		Workers:       crackWorkers,
		Remote:        crackRemote,
		RemoteURL:     crackRemoteURL,
		RemoteTimeout: time.Duration(crackRemoteTimeoutMs) * time.Millisecond,
		KeywordsFile:  crackKeywordsFile,
		WaitRemote:    crackWaitRemote,
	}
	if cfg.KeywordsFile == "" {
		cfg.KeywordsFile = config.DefaultKeywordListPath()
	}
	return cfg, validateCrackConfig(cfg)
}

func validateCrackConfig(cfg model.CrackConfig) error {
	if cfg.Top < 0 {
		return fmt.Errorf("--top must be >= 0")
	}
	if cfg.Workers < 1 {
		return fmt.Errorf("--workers must be >= 1")
	}
	if cfg.RemoteTimeout <= 0 {
		return fmt.Errorf("--remote-timeout-ms must be > 0")
	}
	return nil
}

// keywordSource builds builtin + keyword file + optional remote prefetch.
// The remote list is fetched in the background and only awaited when
// WaitRemote is set.
func keywordSource(ctx context.Context, cfg model.CrackConfig) wordlist.Source {
	extra := []wordlist.Source{wordlist.File{Path: cfg.KeywordsFile, Logger: logger}}
	if !cfg.Remote {
		return wordlist.DefaultSource(extra...)
	}
	remote := wordlist.Prefetch(ctx, &wordlist.Fetcher{
		URL:     cfg.RemoteURL,
		Timeout: cfg.RemoteTimeout,
		Logger:  logger,
	})
	if cfg.WaitRemote {
		if res := remote.Wait(ctx); !res.OK() {
			logErrf("Remote keywords unavailable, using offline list: %v\n", res.Err)
		}
	}
	return wordlist.DefaultSource(append(extra, remote)...)
}

func runCrackCmd(cmd *cobra.Command, args []string) error {
	fileCfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	cfg, err := crackConfigFromFlags(cmd, fileCfg)
	if err != nil {
		return err
	}
	a, err := resolveAlphabet()
	if err != nil {
		return err
	}
	ciphertext, err := readText(cmd, args)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	cracker := &crack.Cracker{Alphabet: a, Workers: cfg.Workers, Logger: logger}
	kind := strings.ToLower(crackCipher)
	started := time.Now()
	var res crack.Result
	switch kind {
	case "keyword":
		cracker.Source = keywordSource(ctx, cfg)
		res, err = cracker.Crack(ctx, ciphertext)
	case "vigenere":
		cracker.Source = keywordSource(ctx, cfg)
		res, err = cracker.CrackVigenere(ctx, ciphertext, crackMaxKeyLen)
	case "caesar":
		res = cracker.CrackCaesar(ctx, ciphertext)
	default:
		return fmt.Errorf("cannot crack %q (supported: keyword, caesar, vigenere)", crackCipher)
	}
	if err != nil {
		return fmt.Errorf("crack failed: %w", err)
	}
	elapsed := time.Since(started)

	out := cmd.OutOrStdout()
	if err := report.RenderVerdict(out, res); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if len(res.Attempts) > 0 {
		if _, err := fmt.Fprintln(out, ""); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		if err := report.RenderAttempts(out, res.Attempts, cfg.Top); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}

	if res.Verdict == crack.NoSolution && kind == "keyword" {
		logErrln("Tip: add likely keywords with --keywords, or try --cipher caesar or --cipher vigenere.")
	}
	if crackNoSave || len(res.Attempts) == 0 {
		return nil
	}
	if err := saveCrackRun(ctx, kind, ciphertext, res, cfg.Top, elapsed); err != nil {
		logErrf("failed to save crack run: %v\n", err)
	}
	return nil
}

func saveCrackRun(ctx context.Context, kind, ciphertext string, res crack.Result, top int, elapsed time.Duration) error {
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	best, _ := res.Best()
	shown := crack.Top(res.Attempts, top)
	attempts := make([]model.CrackAttempt, len(shown))
	for i, at := range shown {
		attempts[i] = model.CrackAttempt{Rank: i + 1, Keyword: at.Keyword, Result: at.Result, Score: at.Score}
	}
	id, err := st.InsertCrackRun(ctx, model.CrackRun{
		CreatedAt:  time.Now(),
		Cipher:     kind,
		Ciphertext: ciphertext,
		Candidates: res.Candidates,
		Verdict:    res.Verdict.String(),
		BestKey:    best.Keyword,
		BestScore:  best.Score,
		DurationMs: elapsed.Milliseconds(),
	}, attempts)
	if err != nil {
		return err
	}
	logger.Debug("saved crack run", zap.String("id", id))
	return nil
}

func newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [ciphertext...]",
		Short: "Show letter frequencies and likely vigenere key lengths",
		RunE:  runAnalyzeCmd,
	}
	cmd.Flags().IntVar(&analyzeMaxKeyLen, "max-key-len", crack.DefaultMaxKeyLength, "longest key length to test")
	cmd.Flags().IntVar(&analyzeMinRepeat, "min-repeat", defaultMinRepeat, "shortest repeated sequence for the Kasiski test")
	return cmd
}

func runAnalyzeCmd(cmd *cobra.Command, args []string) error {
	if _, err := loadConfig(cmd); err != nil {
		return err
	}
	a, err := resolveAlphabet()
	if err != nil {
		return err
	}
	text, err := readText(cmd, args)
	if err != nil {
		return err
	}
	if analyzeMinRepeat < 2 {
		return fmt.Errorf("--min-repeat must be >= 2")
	}
	return renderAnalysis(cmd, text, a)
}

func renderAnalysis(cmd *cobra.Command, text string, a alphabet.Alphabet) error {
	out := cmd.OutOrStdout()
	if err := report.RenderFrequencies(out, analysis.Frequencies(text, a), report.TerminalWidth()); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	counts := analysis.LetterCounts(text, a)
	if counts.Total == 0 {
		return nil
	}
	if _, err := fmt.Fprintf(out, "Index of coincidence: %.4f (English %.3f)\nChi-squared vs English: %.1f\n\n",
		analysis.IndexOfCoincidence(text, a), analysis.EnglishIoC, analysis.ChiSquared(counts)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	iocs := analysis.IoCByKeyLength(text, a, analyzeMaxKeyLen)
	votes := analysis.Kasiski(text, a, analyzeMinRepeat)
	estimate := analysis.EstimateKeyLengths(text, a, analyzeMaxKeyLen)
	if err := report.RenderKeyLengths(out, iocs, votes, estimate); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
