// Package transposition exposes the columnar transposition cipher with
// configurable logging, normalization and warmup.
package transposition

import (
	"context"

	"github.com/baditaflorin/go_classical_crypto/internal/adapters/logger"
	"github.com/baditaflorin/go_classical_crypto/internal/adapters/normalizer"
	"github.com/baditaflorin/go_classical_crypto/internal/core/domain"
	"github.com/baditaflorin/go_classical_crypto/internal/core/transposition"
	"github.com/baditaflorin/go_classical_crypto/internal/ports"
	"github.com/baditaflorin/go_classical_crypto/internal/warmup"
	"github.com/baditaflorin/l"
)

// Transposition provides methods to encipher and decipher text with the
// columnar transposition cipher.
type Transposition struct {
	cipher     ports.Cipher
	logger     ports.Logger
	normalizer ports.Normalizer
	warmed     bool
}

// Option defines a functional option for configuring Transposition.
type Option func(*config)

type config struct {
	Logger       ports.Logger
	Normalizer   ports.Normalizer
	WarmUp       bool
	WarmUpConfig warmup.WarmupConfig
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

// New creates a new Transposition instance.
func New(opts ...Option) (*Transposition, error) {
	cfg := &config{
		WarmUp:       false,
		WarmUpConfig: warmup.DefaultWarmupConfig(),
	}

	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.Logger == nil {
		var err error
		cfg.Logger, err = logger.NewStdLogger()
		if err != nil {
			return nil, err
		}
	}

	if cfg.Normalizer == nil {
		cfg.Normalizer = normalizer.NewDefaultNormalizer()
	}

	cipher, err := transposition.NewCipher(cfg.Logger, cfg.Normalizer)
	if err != nil {
		return nil, err
	}

	tr := &Transposition{
		cipher:     cipher,
		logger:     cfg.Logger,
		normalizer: cfg.Normalizer,
		warmed:     false,
	}

	if cfg.WarmUp {
		tr.WarmUp(context.Background(), cfg.WarmUpConfig)
	}

	return tr, nil
}

// Encipher enciphers text under key.
func (tr *Transposition) Encipher(ctx context.Context, key, text string) (domain.Result, error) {
	return tr.cipher.Encipher(ctx, key, text)
}

// Decipher deciphers text under key.
func (tr *Transposition) Decipher(ctx context.Context, key, text string) (domain.Result, error) {
	return tr.cipher.Decipher(ctx, key, text)
}

// WarmUp performs system warm-up to optimize performance.
func (tr *Transposition) WarmUp(ctx context.Context, cfg warmup.WarmupConfig) {
	if tr.warmed {
		tr.logger.Debug("System already warmed up, skipping")
		return
	}

	warmupMgr := warmup.NewManager(tr.logger, cfg)
	warmupMgr.RegisterCipher(tr.cipher)
	warmupMgr.RegisterNormalizer(tr.normalizer)

	warmupMgr.WarmUp(ctx)
	tr.warmed = true
}
