// vigenere.go
// The Vigenere cipher shifts each plain text letter by the corresponding
// key letter, A=0..Z=25, modulo 26. With P the plain text, C the cipher
// text and K the key:
//
//	C = P + K    (encipher)
//	P = C - K    (decipher)
//
// In standard mode the key repeats to cover the text. In autokey mode the
// keystream is the priming key followed by the plain text itself, so the
// keystream never repeats and deciphering must recover it letter by letter.
package classicalcrypto

import (
	"errors"
	"fmt"

	"github.com/baditaflorin/l"
)

// Errors reported by the cipher constructors and operations.
var (
	// ErrInvalidKey is returned when a key normalizes to an empty letter
	// sequence.
	ErrInvalidKey = errors.New("key contains no letters")

	// ErrLengthMismatch is returned when a cipher text cannot fill any grid
	// for the key width. Kept for completeness: the remainder scheme accepts
	// every non-negative length.
	ErrLengthMismatch = errors.New("cipher text length does not fit the key width")
)

// Result holds the outcome of a cipher operation.
type Result struct {
	// Name of the cipher that produced the result.
	Name string
	// Output is the raw letter sequence, A-Z only.
	Output string
	// Grouped is Output split into five-letter groups for display.
	Grouped string
	// InputLength is the letter count of the normalized input.
	InputLength int
	// KeyLength is the letter count of the normalized key.
	KeyLength int
	// Details holds additional diagnostic information.
	Details map[string]interface{}
}

// Config holds configuration options shared by the ciphers in this package.
type Config struct {
	// Autokey switches the Vigenere cipher to autokey mode.
	Autokey bool
	// Logger for tracing cipher operations.
	Logger l.Logger
	// Normalizer overrides the default Normalize function.
	Normalizer func(string) string
}

// Option defines a functional option for configuring a cipher.
type Option func(*Config)

// WithAutokey enables autokey mode, where the plain text extends the
// keystream instead of repeating the key.
func WithAutokey(enable bool) Option {
	return func(cfg *Config) {
		cfg.Autokey = enable
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger l.Logger) Option {
	return func(cfg *Config) {
		cfg.Logger = logger
	}
}

// WithNormalizer sets a custom normalization function.
func WithNormalizer(normalize func(string) string) Option {
	return func(cfg *Config) {
		cfg.Normalizer = normalize
	}
}

// Vigenere provides methods to encipher and decipher text with the
// Vigenere cipher using configurable parameters.
type Vigenere struct {
	config Config
}

// NewVigenere creates a new Vigenere cipher with the provided functional
// options. If no logger is provided, a default logger is created.
func NewVigenere(opts ...Option) (*Vigenere, error) {
	cfg := Config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Logger == nil {
		logger, err := createDefaultLogger()
		if err != nil {
			return nil, err
		}
		cfg.Logger = logger
	}
	if cfg.Normalizer == nil {
		cfg.Normalizer = Normalize
	}
	return &Vigenere{config: cfg}, nil
}

func (v *Vigenere) name() string {
	if v.config.Autokey {
		return "vigenere_autokey"
	}
	return "vigenere"
}

// Encipher enciphers text under key. The key must contain at least one
// letter after normalization; an empty text produces an empty result.
func (v *Vigenere) Encipher(key, text string) (Result, error) {
	k := v.config.Normalizer(key)
	if len(k) == 0 {
		v.config.Logger.Error("Key normalized to an empty sequence", "key", key)
		return Result{}, fmt.Errorf("%s: %w", v.name(), ErrInvalidKey)
	}
	p := v.config.Normalizer(text)

	v.config.Logger.Info("Starting encipherment",
		"cipher", v.name(),
		"key_length", len(k),
		"text_length", len(p),
	)

	out := make([]byte, len(p))
	for i := 0; i < len(p); i++ {
		var shift byte
		if v.config.Autokey && i >= len(k) {
			shift = p[i-len(k)] - 'A'
		} else {
			shift = k[i%len(k)] - 'A'
		}
		out[i] = 'A' + (p[i]-'A'+shift)%26
	}

	return v.result(string(out), len(p), len(k)), nil
}

// Decipher deciphers text under key. In autokey mode each recovered letter
// beyond the priming key feeds the keystream, so the text is processed
// strictly left to right.
func (v *Vigenere) Decipher(key, text string) (Result, error) {
	k := v.config.Normalizer(key)
	if len(k) == 0 {
		v.config.Logger.Error("Key normalized to an empty sequence", "key", key)
		return Result{}, fmt.Errorf("%s: %w", v.name(), ErrInvalidKey)
	}
	ct := v.config.Normalizer(text)

	v.config.Logger.Info("Starting decipherment",
		"cipher", v.name(),
		"key_length", len(k),
		"text_length", len(ct),
	)

	out := make([]byte, len(ct))
	for i := 0; i < len(ct); i++ {
		var shift byte
		if v.config.Autokey && i >= len(k) {
			shift = out[i-len(k)] - 'A'
		} else {
			shift = k[i%len(k)] - 'A'
		}
		// Adding 26-shift avoids signed arithmetic.
		out[i] = 'A' + (ct[i]-'A'+26-shift)%26
	}

	return v.result(string(out), len(ct), len(k)), nil
}

func (v *Vigenere) result(output string, inputLen, keyLen int) Result {
	details := make(map[string]interface{})
	details["autokey"] = v.config.Autokey

	return Result{
		Name:        v.name(),
		Output:      output,
		Grouped:     FormatGroups(output),
		InputLength: inputLen,
		KeyLength:   keyLen,
		Details:     details,
	}
}
