package wordlist

import (
	"context"

	"go.uber.org/zap"
)

// Source supplies candidate keywords for a dictionary attack.
type Source interface {
	Keywords(ctx context.Context) []string
}

// Static is a fixed in-memory keyword list.
type Static []string

// Keywords implements Source.
func (s Static) Keywords(context.Context) []string {
	return Dedupe(s)
}

type combined []Source

// Combine concatenates sources in order and removes duplicates.
func Combine(sources ...Source) Source {
	return combined(sources)
}

func (c combined) Keywords(ctx context.Context) []string {
	var all []string
	for _, src := range c {
		if src == nil {
			continue
		}
		all = append(all, src.Keywords(ctx)...)
	}
	return Dedupe(all)
}

// File reads keywords from a one-per-line file. A missing or unreadable file
// yields no keywords.
type File struct {
	Path   string
	Logger *zap.Logger
}

// Keywords implements Source.
func (f File) Keywords(context.Context) []string {
	if f.Path == "" {
		return nil
	}
	words, err := LoadWords(f.Path)
	if err != nil {
		logger := f.Logger
		if logger == nil {
			logger = zap.NewNop()
		}
		logger.Debug("keyword file unavailable", zap.String("path", f.Path), zap.Error(err))
		return nil
	}
	return Dedupe(words)
}

// DefaultSource combines the built-in list with extra, which is usually a
// prefetched remote list.
func DefaultSource(extra ...Source) Source {
	sources := append([]Source{Static(Builtin())}, extra...)
	return Combine(sources...)
}
