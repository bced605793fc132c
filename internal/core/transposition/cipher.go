// Package transposition implements the columnar transposition cipher.
//
// The plain text is written row by row into a grid as wide as the key, and
// read out column by column in the order given by ranking the key letters.
// The last row may be short; deciphering reconstructs the uneven column
// heights from the text length and the key width.
package transposition

import (
	"context"
	"fmt"

	"github.com/baditaflorin/go_classical_crypto/internal/core/domain"
	"github.com/baditaflorin/go_classical_crypto/internal/ports"
)

// Cipher implements the columnar transposition cipher.
type Cipher struct {
	logger     ports.Logger
	normalizer ports.Normalizer
}

// NewCipher creates a new columnar transposition cipher.
func NewCipher(logger ports.Logger, normalizer ports.Normalizer) (*Cipher, error) {
	if logger == nil {
		return nil, fmt.Errorf("transposition: logger is required")
	}
	if normalizer == nil {
		return nil, fmt.Errorf("transposition: normalizer is required")
	}

	return &Cipher{
		logger:     logger,
		normalizer: normalizer,
	}, nil
}

// Ranks converts a normalized keyphrase into a zero-indexed numeric key by
// counting the letters off in alphabetical order. Duplicate letters are
// ranked left to right, so "BAACDD" becomes [2 0 1 3 4 5].
func Ranks(keyphrase string) []int {
	ranks := make([]int, len(keyphrase))
	for i := 0; i < len(keyphrase); i++ {
		r := 0
		for j := 0; j < len(keyphrase); j++ {
			if keyphrase[j] < keyphrase[i] {
				r++
			} else if keyphrase[j] == keyphrase[i] && j < i {
				r++
			}
		}
		ranks[i] = r
	}
	return ranks
}

// readOrder returns column indices in the order they are read out:
// readOrder(key)[r] is the original position of the column ranked r.
func readOrder(key string) []int {
	ranks := Ranks(key)
	order := make([]int, len(ranks))
	for column, rank := range ranks {
		order[rank] = column
	}
	return order
}

// Encipher writes the normalized plain text into a grid key-width columns
// wide and reads it out column by column in key order. The final row may
// be incomplete; missing cells are skipped, never padded.
func (c *Cipher) Encipher(ctx context.Context, key, text string) (domain.Result, error) {
	k, plain, err := c.prepare(ctx, key, text)
	if err != nil {
		return domain.Result{}, err
	}

	w := len(k)
	out := make([]byte, 0, len(plain))
	for _, column := range readOrder(k) {
		for pos := column; pos < len(plain); pos += w {
			out = append(out, plain[pos])
		}
	}

	return c.result(string(out), len(plain), w), nil
}

// Decipher reconstructs the grid from the cipher text. Every column is at
// least len/w high; the leftmost len%w original columns carry one extra
// row. The cipher text is split into columns in key order, then read back
// row by row.
func (c *Cipher) Decipher(ctx context.Context, key, text string) (domain.Result, error) {
	k, cipher, err := c.prepare(ctx, key, text)
	if err != nil {
		return domain.Result{}, err
	}

	w := len(k)
	base := len(cipher) / w
	remainder := len(cipher) % w

	columns := make([][]byte, w)
	cursor := 0
	for _, column := range readOrder(k) {
		height := base
		if column < remainder {
			height++
		}
		columns[column] = []byte(cipher[cursor : cursor+height])
		cursor += height
	}

	out := make([]byte, 0, len(cipher))
	for row := 0; row <= base; row++ {
		for column := 0; column < w; column++ {
			if row < len(columns[column]) {
				out = append(out, columns[column][row])
			}
		}
	}

	return c.result(string(out), len(cipher), w), nil
}

// prepare normalizes the key and text and validates the key.
func (c *Cipher) prepare(ctx context.Context, key, text string) (string, string, error) {
	k := c.normalizer.Normalize(key)
	if len(k) == 0 {
		c.logger.Error("Key normalized to an empty sequence", "key", key)
		return "", "", fmt.Errorf("transposition: %w", domain.ErrInvalidKey)
	}

	select {
	case <-ctx.Done():
		return "", "", ctx.Err()
	default:
	}

	t := c.normalizer.Normalize(text)

	c.logger.Debug("Prepared cipher input",
		"cipher", "transposition",
		"key_length", len(k),
		"text_length", len(t),
	)

	return k, t, nil
}

func (c *Cipher) result(output string, inputLen, keyLen int) domain.Result {
	details := make(map[string]interface{})
	details["columns"] = keyLen

	return domain.Result{
		Name:        "transposition",
		Output:      output,
		InputLength: inputLen,
		KeyLength:   keyLen,
		Details:     details,
	}
}
