package transposition

import (
	"context"
	"errors"
	"reflect"
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

func newCipher(t *testing.T) *Cipher {
	t.Helper()
	c, err := NewCipher(nopLogger{}, normalizer.NewDefaultNormalizer())
	if err != nil {
		t.Fatalf("NewCipher failed: %v", err)
	}
	return c
}

func TestRanks(t *testing.T) {
	tests := []struct {
		keyphrase string
		expected  []int
	}{
		{"BACD", []int{1, 0, 2, 3}},
		{"BAACDDZZXY", []int{2, 0, 1, 3, 4, 5, 8, 9, 6, 7}},
		{"CAB", []int{2, 0, 1}},
		{"ZEBRAS", []int{5, 2, 1, 3, 0, 4}},
		{"A", []int{0}},
	}

	for _, tc := range tests {
		if got := Ranks(tc.keyphrase); !reflect.DeepEqual(got, tc.expected) {
			t.Errorf("Ranks(%q) = %v, want %v", tc.keyphrase, got, tc.expected)
		}
	}
}

func TestRanksArePermutation(t *testing.T) {
	for _, keyphrase := range []string{"KEY", "BAACDDZZXY", "MMMM", "QWERTYUIOP"} {
		ranks := Ranks(keyphrase)
		seen := make([]bool, len(ranks))
		for _, r := range ranks {
			if r < 0 || r >= len(ranks) || seen[r] {
				t.Fatalf("Ranks(%q) = %v is not a permutation", keyphrase, ranks)
			}
			seen[r] = true
		}
	}
}

func TestEncipher(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		text     string
		expected string
	}{
		{
			name:     "ZEBRAS vector",
			key:      "ZEBRAS",
			text:     "WE ARE DISCOVERED. FLEE AT ONCE",
			expected: "EVLNACDTESEAROFODEECWIREE",
		},
		{
			name:     "CAB vector",
			key:      "CAB",
			text:     "ATTACK AT DAWN",
			expected: "TCTWTKDNAAAA",
		},
		{
			name:     "Single column",
			key:      "A",
			text:     "HELLO",
			expected: "HELLO",
		},
		{
			name:     "Empty text",
			key:      "KEY",
			text:     "",
			expected: "",
		},
	}

	c := newCipher(t)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := c.Encipher(context.Background(), tc.key, tc.text)
			if err != nil {
				t.Fatalf("Encipher failed: %v", err)
			}
			if result.Output != tc.expected {
				t.Errorf("Encipher(%q, %q) = %q, want %q", tc.key, tc.text, result.Output, tc.expected)
			}
		})
	}
}

func TestDecipher(t *testing.T) {
	c := newCipher(t)
	ctx := context.Background()

	tests := []struct {
		key      string
		cipher   string
		expected string
	}{
		{"ZEBRAS", "EVLNA CDTES EAROF ODEEC WIREE", "WEAREDISCOVEREDFLEEATONCE"},
		{"CAB", "TCTWT KDNAA AA", "ATTACKATDAWN"},
	}

	for _, tc := range tests {
		result, err := c.Decipher(ctx, tc.key, tc.cipher)
		if err != nil {
			t.Fatalf("Decipher(%q, %q) failed: %v", tc.key, tc.cipher, err)
		}
		if result.Output != tc.expected {
			t.Errorf("Decipher(%q, %q) = %q, want %q", tc.key, tc.cipher, result.Output, tc.expected)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	c := newCipher(t)
	ctx := context.Background()

	// ZEBRA over a 12-letter text leaves 12 mod 5 = 2 extra cells in the
	// leftmost two columns.
	tests := []struct {
		key  string
		text string
	}{
		{"ZEBRA", "ATTACKATDAWN"},
		{"ZEBRAS", "WEAREDISCOVEREDFLEEATONCE"},
		{"MMMM", "REPEATEDKEYLETTERS"},
		{"KEY", "AB"},
		{"LONGKEYPHRASE", "X"},
	}

	for _, tc := range tests {
		enc, err := c.Encipher(ctx, tc.key, tc.text)
		if err != nil {
			t.Fatalf("Encipher(%q, %q) failed: %v", tc.key, tc.text, err)
		}
		dec, err := c.Decipher(ctx, tc.key, enc.Output)
		if err != nil {
			t.Fatalf("Decipher(%q, %q) failed: %v", tc.key, enc.Output, err)
		}
		if dec.Output != tc.text {
			t.Errorf("round trip with key %q: got %q, want %q", tc.key, dec.Output, tc.text)
		}
	}
}

func TestInvalidKey(t *testing.T) {
	c := newCipher(t)

	for _, key := range []string{"", "42", "..."} {
		if _, err := c.Encipher(context.Background(), key, "SOMETEXT"); !errors.Is(err, domain.ErrInvalidKey) {
			t.Errorf("Encipher with key %q: got %v, want ErrInvalidKey", key, err)
		}
		if _, err := c.Decipher(context.Background(), key, "SOMETEXT"); !errors.Is(err, domain.ErrInvalidKey) {
			t.Errorf("Decipher with key %q: got %v, want ErrInvalidKey", key, err)
		}
	}
}

func TestOutputIsPermutationOfInput(t *testing.T) {
	c := newCipher(t)

	enc, err := c.Encipher(context.Background(), "QUEENLY", "THEQUICKBROWNFOXJUMPSOVERTHELAZYDOG")
	if err != nil {
		t.Fatalf("Encipher failed: %v", err)
	}

	var in, out [26]int
	for _, b := range []byte("THEQUICKBROWNFOXJUMPSOVERTHELAZYDOG") {
		in[b-'A']++
	}
	for _, b := range []byte(enc.Output) {
		out[b-'A']++
	}
	if in != out {
		t.Errorf("output is not a permutation of the input: %v vs %v", in, out)
	}
}
