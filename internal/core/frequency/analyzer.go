// Package frequency implements single-letter and digram frequency
// analysis, the classical first step of breaking substitution ciphers.
package frequency

import (
	"context"
	"fmt"

	"github.com/baditaflorin/go_classical_crypto/internal/core/domain"
	"github.com/baditaflorin/go_classical_crypto/internal/ports"
)

// Analyzer counts letter and digram frequencies in normalized text.
type Analyzer struct {
	logger     ports.Logger
	normalizer ports.Normalizer
}

// NewAnalyzer creates a new frequency analyzer.
func NewAnalyzer(logger ports.Logger, normalizer ports.Normalizer) (*Analyzer, error) {
	if logger == nil {
		return nil, fmt.Errorf("frequency: logger is required")
	}
	if normalizer == nil {
		return nil, fmt.Errorf("frequency: normalizer is required")
	}

	return &Analyzer{
		logger:     logger,
		normalizer: normalizer,
	}, nil
}

// Letters counts how often each of the 26 letters occurs in the text. The
// result always carries all 26 letters; unseen ones stay zero.
func (a *Analyzer) Letters(ctx context.Context, text string) domain.LetterFrequency {
	var counts domain.LetterFrequency

	select {
	case <-ctx.Done():
		a.logger.Error("Letter frequency computation cancelled", "error", ctx.Err())
		return counts
	default:
	}

	t := a.normalizer.Normalize(text)
	for i := 0; i < len(t); i++ {
		counts[t[i]-'A']++
	}

	a.logger.Debug("Computed letter frequencies",
		"text_length", len(t),
		"total", counts.Total(),
	)

	return counts
}

// Digrams counts overlapping adjacent letter pairs: position i contributes
// the pair (text[i], text[i+1]), so "AAA" yields AA twice. Texts shorter
// than two letters produce an empty table.
func (a *Analyzer) Digrams(ctx context.Context, text string) domain.DigramFrequency {
	counts := make(domain.DigramFrequency)

	select {
	case <-ctx.Done():
		a.logger.Error("Digram frequency computation cancelled", "error", ctx.Err())
		return counts
	default:
	}

	t := a.normalizer.Normalize(text)
	for i := 0; i+1 < len(t); i++ {
		counts[domain.Digram{t[i], t[i+1]}]++
	}

	a.logger.Debug("Computed digram frequencies",
		"text_length", len(t),
		"distinct_pairs", len(counts),
		"total", counts.Total(),
	)

	return counts
}
