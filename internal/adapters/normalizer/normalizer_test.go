package normalizer

import (
	"strings"
	"testing"

	"github.com/baditaflorin/go_classical_crypto/internal/ports"
)

func normalizers() map[string]ports.Normalizer {
	return map[string]ports.Normalizer{
		"default":   NewDefaultNormalizer(),
		"optimized": NewOptimizedNormalizer(),
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Mixed case with spaces",
			input:    "In an obscure corner",
			expected: "INANOBSCURECORNER",
		},
		{
			name:     "Punctuation and digits",
			input:    "No justice, no peace! 1968",
			expected: "NOJUSTICENOPEACE",
		},
		{
			name:     "Already normalized",
			input:    "ATTACKATDAWN",
			expected: "ATTACKATDAWN",
		},
		{
			name:     "No letters at all",
			input:    "123 456 !?",
			expected: "",
		},
		{
			name:     "Empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "Non-ASCII runes dropped",
			input:    "café über",
			expected: "CAFBER",
		},
	}

	for name, n := range normalizers() {
		for _, tc := range tests {
			t.Run(name+"/"+tc.name, func(t *testing.T) {
				got := n.Normalize(tc.input)
				if got != tc.expected {
					t.Errorf("Normalize(%q) = %q, want %q", tc.input, got, tc.expected)
				}
			})
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"In an obscure corner...",
		"WE ARE DISCOVERED. FLEE AT ONCE",
		strings.Repeat("The quick brown fox. ", 50),
	}

	for name, n := range normalizers() {
		for _, input := range inputs {
			t.Run(name, func(t *testing.T) {
				once := n.Normalize(input)
				twice := n.Normalize(once)
				if once != twice {
					t.Errorf("normalization not idempotent: %q -> %q", once, twice)
				}
			})
		}
	}
}

func TestNormalizersAgree(t *testing.T) {
	def := NewDefaultNormalizer()
	opt := NewOptimizedNormalizer()

	inputs := []string{
		"",
		"a",
		"Hello, World!",
		"MiXeD CaSe 123",
		strings.Repeat("Lorem ipsum dolor sit amet. ", 500),
	}

	for _, input := range inputs {
		if d, o := def.Normalize(input), opt.Normalize(input); d != o {
			t.Errorf("normalizers disagree for %q: default=%q optimized=%q", input, d, o)
		}
	}
}
