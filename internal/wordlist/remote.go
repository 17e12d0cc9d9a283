package wordlist

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const (
	// DefaultRemoteURL serves related words as a JSON array of {"word": ...}.
	DefaultRemoteURL = "https://api.datamuse.com/words?ml=secret+code&max=50"
	// DefaultRemoteLimit caps how many remote words are kept.
	DefaultRemoteLimit = 50
	// DefaultRemoteTimeout bounds the single fetch attempt.
	DefaultRemoteTimeout = 3 * time.Second
)

// FetchResult is either a list of words or the reason the fetch failed.
type FetchResult struct {
	Words []string
	Err   error
}

// OK reports whether the fetch succeeded.
func (r FetchResult) OK() bool {
	return r.Err == nil
}

// WordsOr returns the fetched words, or fallback when the fetch failed.
func (r FetchResult) WordsOr(fallback []string) []string {
	if !r.OK() {
		return append([]string(nil), fallback...)
	}
	return append([]string(nil), r.Words...)
}

type remoteWord struct {
	Word string `json:"word"`
}

// Fetcher downloads a keyword list once. It never retries.
type Fetcher struct {
	Client  *http.Client
	URL     string
	Limit   int
	Timeout time.Duration
	Logger  *zap.Logger
}

func (f *Fetcher) logger() *zap.Logger {
	if f.Logger == nil {
		return zap.NewNop()
	}
	return f.Logger
}

// Fetch performs the GET and decodes the response.
func (f *Fetcher) Fetch(ctx context.Context) FetchResult {
	url := f.URL
	if url == "" {
		url = DefaultRemoteURL
	}
	limit := f.Limit
	if limit <= 0 {
		limit = DefaultRemoteLimit
	}
	timeout := f.Timeout
	if timeout <= 0 {
		timeout = DefaultRemoteTimeout
	}
	client := f.Client
	if client == nil {
		client = &http.Client{}
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	started := time.Now()
	words, err := f.fetch(ctx, client, url, limit)
	if err != nil {
		f.logger().Warn("remote keyword list unavailable",
			zap.String("url", url),
			zap.Duration("elapsed", time.Since(started)),
			zap.Error(err))
		return FetchResult{Err: err}
	}
	f.logger().Debug("remote keyword list fetched",
		zap.String("url", url),
		zap.Int("words", len(words)),
		zap.Duration("elapsed", time.Since(started)))
	return FetchResult{Words: words}
}

func (f *Fetcher) fetch(ctx context.Context, client *http.Client, url string, limit int) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected word list status: %s", resp.Status)
	}

	var payload []remoteWord
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode word list: %w", err)
	}
	raw := make([]string, 0, len(payload))
	for _, item := range payload {
		raw = append(raw, item.Word)
	}
	words := Normalize(raw)
	if len(words) > limit {
		words = words[:limit]
	}
	return words, nil
}

// Remote is a Source backed by a background fetch. Until the fetch succeeds
// it serves the offline list, so callers never wait on the network.
type Remote struct {
	done     chan struct{}
	result   FetchResult
	fallback []string
}

// Prefetch starts fetching in the background and returns immediately.
func Prefetch(ctx context.Context, f *Fetcher) *Remote {
	r := &Remote{
		done:     make(chan struct{}),
		fallback: Offline(),
	}
	go func() {
		r.result = f.Fetch(ctx)
		close(r.done)
	}()
	return r
}

// Keywords implements Source without blocking.
func (r *Remote) Keywords(context.Context) []string {
	select {
	case <-r.done:
		return Normalize(r.result.WordsOr(r.fallback))
	default:
		return Normalize(r.fallback)
	}
}

// Wait blocks until the fetch finishes or ctx is done.
func (r *Remote) Wait(ctx context.Context) FetchResult {
	select {
	case <-r.done:
		return r.result
	case <-ctx.Done():
		return FetchResult{Err: ctx.Err()}
	}
}

// Done is closed once the fetch has finished.
func (r *Remote) Done() <-chan struct{} {
	return r.done
}
