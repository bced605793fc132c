package ports

import (
	"context"

	"github.com/baditaflorin/go_classical_crypto/internal/core/domain"
)

// FrequencyAnalyzer defines the interface for letter and digram frequency counting.
type FrequencyAnalyzer interface {
	// Letters counts single-letter occurrences in the normalized text.
	Letters(ctx context.Context, text string) domain.LetterFrequency

	// Digrams counts overlapping adjacent letter pairs in the normalized text.
	Digrams(ctx context.Context, text string) domain.DigramFrequency
}
