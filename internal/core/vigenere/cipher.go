// Package vigenere implements the Vigenere polyalphabetic substitution
// cipher in its standard and autokey forms.
//
// With P the plain text, C the cipher text and K the key, enciphering is
// C = P + K (mod 26) and deciphering is P = C - K (mod 26), letter by
// letter with A=0..Z=25. In standard mode the key repeats to cover the
// text. In autokey mode the keystream is the priming key extended by the
// plain text itself, so the key never repeats.
package vigenere

import (
	"context"
	"fmt"

	"github.com/baditaflorin/go_classical_crypto/internal/core/domain"
	"github.com/baditaflorin/go_classical_crypto/internal/ports"
)

// Config holds configuration for the Vigenere cipher.
type Config struct {
	// Autokey extends the keystream with the plain text instead of
	// repeating the priming key.
	Autokey bool
}

// DefaultConfig returns a default configuration.
func DefaultConfig() Config {
	return Config{Autokey: false}
}

// Cipher implements the Vigenere cipher over the 26-letter alphabet.
type Cipher struct {
	config     Config
	logger     ports.Logger
	normalizer ports.Normalizer
}

// NewCipher creates a new Vigenere cipher.
func NewCipher(config Config, logger ports.Logger, normalizer ports.Normalizer) (*Cipher, error) {
	if logger == nil {
		return nil, fmt.Errorf("vigenere: logger is required")
	}
	if normalizer == nil {
		return nil, fmt.Errorf("vigenere: normalizer is required")
	}

	return &Cipher{
		config:     config,
		logger:     logger,
		normalizer: normalizer,
	}, nil
}

func (c *Cipher) name() string {
	if c.config.Autokey {
		return "vigenere_autokey"
	}
	return "vigenere"
}

// Encipher enciphers text under key. The key and text are normalized
// first; a key without letters is rejected, an empty text enciphers to an
// empty result.
func (c *Cipher) Encipher(ctx context.Context, key, text string) (domain.Result, error) {
	k, p, err := c.prepare(ctx, key, text)
	if err != nil {
		return domain.Result{}, err
	}

	out := make([]byte, len(p))
	for i := 0; i < len(p); i++ {
		shift := c.keystreamAt(k, p, i)
		out[i] = 'A' + (p[i]-'A'+shift)%26
	}

	return c.result(string(out), len(p), len(k)), nil
}

// Decipher deciphers text under key. In autokey mode the keystream beyond
// the priming key is rebuilt from the recovered plain text, so positions
// are processed strictly left to right.
func (c *Cipher) Decipher(ctx context.Context, key, text string) (domain.Result, error) {
	k, ct, err := c.prepare(ctx, key, text)
	if err != nil {
		return domain.Result{}, err
	}

	out := make([]byte, len(ct))
	for i := 0; i < len(ct); i++ {
		var shift byte
		if c.config.Autokey {
			if i < len(k) {
				shift = k[i] - 'A'
			} else {
				// Recovered plain text letters feed the keystream.
				shift = out[i-len(k)] - 'A'
			}
		} else {
			shift = k[i%len(k)] - 'A'
		}
		// 26-shift keeps the arithmetic unsigned.
		out[i] = 'A' + (ct[i]-'A'+26-shift)%26
	}

	return c.result(string(out), len(ct), len(k)), nil
}

// prepare normalizes the key and text and validates the key.
func (c *Cipher) prepare(ctx context.Context, key, text string) (string, string, error) {
	k := c.normalizer.Normalize(key)
	if len(k) == 0 {
		c.logger.Error("Key normalized to an empty sequence", "key", key)
		return "", "", fmt.Errorf("%s: %w", c.name(), domain.ErrInvalidKey)
	}

	select {
	case <-ctx.Done():
		return "", "", ctx.Err()
	default:
	}

	t := c.normalizer.Normalize(text)

	c.logger.Debug("Prepared cipher input",
		"cipher", c.name(),
		"key_length", len(k),
		"text_length", len(t),
	)

	return k, t, nil
}

// keystreamAt returns the shift for position i during encipherment.
func (c *Cipher) keystreamAt(key, plain string, i int) byte {
	if c.config.Autokey {
		if i < len(key) {
			return key[i] - 'A'
		}
		return plain[i-len(key)] - 'A'
	}
	return key[i%len(key)] - 'A'
}

func (c *Cipher) result(output string, inputLen, keyLen int) domain.Result {
	details := make(map[string]interface{})
	details["autokey"] = c.config.Autokey

	return domain.Result{
		Name:        c.name(),
		Output:      output,
		InputLength: inputLen,
		KeyLength:   keyLen,
		Details:     details,
	}
}
