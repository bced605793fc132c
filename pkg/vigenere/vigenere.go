// Package vigenere exposes the Vigenere cipher (standard and autokey)
// with configurable logging, normalization and warmup.
package vigenere

import (
	"context"

	"github.com/baditaflorin/go_classical_crypto/internal/adapters/logger"
	"github.com/baditaflorin/go_classical_crypto/internal/adapters/normalizer"
	"github.com/baditaflorin/go_classical_crypto/internal/core/domain"
	"github.com/baditaflorin/go_classical_crypto/internal/core/vigenere"
	"github.com/baditaflorin/go_classical_crypto/internal/ports"
	"github.com/baditaflorin/go_classical_crypto/internal/warmup"
	"github.com/baditaflorin/l"
)

// Vigenere provides methods to encipher and decipher text with the
// Vigenere cipher.
type Vigenere struct {
	cipher     ports.Cipher
	logger     ports.Logger
	normalizer ports.Normalizer
	warmed     bool
}

// Option defines a functional option for configuring Vigenere.
type Option func(*config)

type config struct {
	Autokey      bool
	Logger       ports.Logger
	Normalizer   ports.Normalizer
	WarmUp       bool
	WarmUpConfig warmup.WarmupConfig
}

// WithAutokey switches between the standard repeating-key mode and the
// autokey mode, where the plain text extends the keystream.
func WithAutokey(enable bool) Option {
	return func(cfg *config) {
		cfg.Autokey = enable
	}
}

// WithLogger sets a custom logger.
func WithLogger(log l.Logger) Option {
	return func(cfg *config) {
		cfg.Logger = logger.FromExisting(log)
	}
}

// WithNormalizer sets a custom normalizer.
func WithNormalizer(n ports.Normalizer) Option {
	return func(cfg *config) {
		cfg.Normalizer = n
	}
}

// WithOptimizedNormalizer sets the optimized normalizer.
func WithOptimizedNormalizer() Option {
	return func(cfg *config) {
		normFactory := normalizer.NewNormalizerFactory()
		cfg.Normalizer = normFactory.CreateNormalizer(normalizer.OptimizedNormalizerType)
	}
}

// WithWarmUp enables system warm-up on initialization.
func WithWarmUp(enable bool) Option {
	return func(cfg *config) {
		cfg.WarmUp = enable
	}
}

// WithWarmUpConfig sets a custom warm-up configuration.
func WithWarmUpConfig(wc warmup.WarmupConfig) Option {
	return func(cfg *config) {
		cfg.WarmUpConfig = wc
		cfg.WarmUp = true
	}
}

// New creates a new Vigenere instance.
func New(opts ...Option) (*Vigenere, error) {
	cfg := &config{
		Autokey:      vigenere.DefaultConfig().Autokey,
		WarmUp:       false,
		WarmUpConfig: warmup.DefaultWarmupConfig(),
	}

	for _, opt := range opts {
		opt(cfg)
	}

	// Set up logger if not provided
	if cfg.Logger == nil {
		var err error
		cfg.Logger, err = logger.NewStdLogger()
		if err != nil {
			return nil, err
		}
	}

	// Set up normalizer if not provided
	if cfg.Normalizer == nil {
		cfg.Normalizer = normalizer.NewDefaultNormalizer()
	}

	cipher, err := vigenere.NewCipher(vigenere.Config{Autokey: cfg.Autokey}, cfg.Logger, cfg.Normalizer)
	if err != nil {
		return nil, err
	}

	v := &Vigenere{
		cipher:     cipher,
		logger:     cfg.Logger,
		normalizer: cfg.Normalizer,
		warmed:     false,
	}

	if cfg.WarmUp {
		v.WarmUp(context.Background(), cfg.WarmUpConfig)
	}

	return v, nil
}

// Encipher enciphers text under key.
func (v *Vigenere) Encipher(ctx context.Context, key, text string) (domain.Result, error) {
	return v.cipher.Encipher(ctx, key, text)
}

// Decipher deciphers text under key.
func (v *Vigenere) Decipher(ctx context.Context, key, text string) (domain.Result, error) {
	return v.cipher.Decipher(ctx, key, text)
}

// WarmUp performs system warm-up to optimize performance.
func (v *Vigenere) WarmUp(ctx context.Context, cfg warmup.WarmupConfig) {
	if v.warmed {
		v.logger.Debug("System already warmed up, skipping")
		return
	}

	warmupMgr := warmup.NewManager(v.logger, cfg)
	warmupMgr.RegisterCipher(v.cipher)
	warmupMgr.RegisterNormalizer(v.normalizer)

	warmupMgr.WarmUp(ctx)
	v.warmed = true
}
