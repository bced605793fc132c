package normalizer

import (
	"strings"

	"github.com/baditaflorin/go_classical_crypto/internal/ports"
)

// DefaultNormalizer implements the default text normalization strategy.
type DefaultNormalizer struct{}

// NewDefaultNormalizer creates a new default normalizer.
func NewDefaultNormalizer() ports.Normalizer {
	return &DefaultNormalizer{}
}

// Normalize keeps ASCII letters only, uppercased. Everything else is
// discarded silently. The result contains only the bytes 'A' through 'Z',
// in input order.
func (n *DefaultNormalizer) Normalize(text string) string {
	var sb strings.Builder
	for i := 0; i < len(text); i++ {
		b := text[i]
		switch {
		case b >= 'A' && b <= 'Z':
			sb.WriteByte(b)
		case b >= 'a' && b <= 'z':
			sb.WriteByte(b - ('a' - 'A'))
		}
	}
	return sb.String()
}
