package frequency

import (
	"context"
	"testing"

	"github.com/baditaflorin/go_classical_crypto/internal/adapters/normalizer"
	"github.com/baditaflorin/go_classical_crypto/internal/core/domain"
)

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Close() error                 { return nil }

func newAnalyzer(t *testing.T) *Analyzer {
	t.Helper()
	a, err := NewAnalyzer(nopLogger{}, normalizer.NewDefaultNormalizer())
	if err != nil {
		t.Fatalf("NewAnalyzer failed: %v", err)
	}
	return a
}

func TestLetters(t *testing.T) {
	a := newAnalyzer(t)
	ctx := context.Background()

	counts := a.Letters(ctx, "AAABBC")
	if got := counts.Count('A'); got != 3 {
		t.Errorf("Count('A') = %d, want 3", got)
	}
	if got := counts.Count('B'); got != 2 {
		t.Errorf("Count('B') = %d, want 2", got)
	}
	if got := counts.Count('C'); got != 1 {
		t.Errorf("Count('C') = %d, want 1", got)
	}
	for letter := byte('D'); letter <= 'Z'; letter++ {
		if got := counts.Count(letter); got != 0 {
			t.Errorf("Count(%c) = %d, want 0", letter, got)
		}
	}
}

func TestLettersNormalizesInput(t *testing.T) {
	a := newAnalyzer(t)

	counts := a.Letters(context.Background(), "Over the horizon\nShe's smooth sailing")
	if got := counts.Count('O'); got != 5 {
		t.Errorf("Count('O') = %d, want 5", got)
	}
	if got := counts.Count('Z'); got != 1 {
		t.Errorf("Count('Z') = %d, want 1", got)
	}
}

func TestLettersTotalInvariant(t *testing.T) {
	a := newAnalyzer(t)
	n := normalizer.NewDefaultNormalizer()

	texts := []string{
		"",
		"A",
		"But there wasn't any water in the wishing well",
		"WEAREDISCOVEREDFLEEATONCE",
	}
	for _, text := range texts {
		counts := a.Letters(context.Background(), text)
		if got, want := counts.Total(), len(n.Normalize(text)); got != want {
			t.Errorf("Total() = %d, want %d for %q", got, want, text)
		}
	}
}

func TestDigrams(t *testing.T) {
	a := newAnalyzer(t)
	ctx := context.Background()

	t.Run("Overlapping pairs", func(t *testing.T) {
		counts := a.Digrams(ctx, "AAA")
		if got := counts.Count('A', 'A'); got != 2 {
			t.Errorf("Count(A, A) = %d, want 2", got)
		}
		if got := counts.Total(); got != 2 {
			t.Errorf("Total() = %d, want 2", got)
		}
	})

	t.Run("Counts across the whole text", func(t *testing.T) {
		counts := a.Digrams(ctx, "But there wasn't any water in the wishing well")
		if got := counts.Count('I', 'N'); got != 2 {
			t.Errorf("Count(I, N) = %d, want 2", got)
		}
	})

	t.Run("Short texts", func(t *testing.T) {
		for _, text := range []string{"", "A"} {
			counts := a.Digrams(ctx, text)
			if len(counts) != 0 {
				t.Errorf("Digrams(%q) = %v, want empty", text, counts)
			}
		}
	})
}

func TestDigramsTotalInvariant(t *testing.T) {
	a := newAnalyzer(t)
	n := normalizer.NewDefaultNormalizer()

	texts := []string{"", "X", "HELLO WORLD", "AAAABBBB"}
	for _, text := range texts {
		counts := a.Digrams(context.Background(), text)
		want := len(n.Normalize(text)) - 1
		if want < 0 {
			want = 0
		}
		if got := counts.Total(); got != want {
			t.Errorf("Total() = %d, want %d for %q", got, want, text)
		}
	}
}

func TestDigramString(t *testing.T) {
	d := domain.Digram{'T', 'H'}
	if d.String() != "TH" {
		t.Errorf("String() = %q, want %q", d.String(), "TH")
	}
}
