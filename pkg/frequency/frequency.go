// Package frequency exposes single-letter and digram frequency analysis
// with configurable logging, normalization and warmup.
package frequency

import (
	"context"

	"github.com/baditaflorin/go_classical_crypto/internal/adapters/logger"
	"github.com/baditaflorin/go_classical_crypto/internal/adapters/normalizer"
	"github.com/baditaflorin/go_classical_crypto/internal/core/domain"
	"github.com/baditaflorin/go_classical_crypto/internal/core/frequency"
	"github.com/baditaflorin/go_classical_crypto/internal/ports"
	"github.com/baditaflorin/go_classical_crypto/internal/warmup"
	"github.com/baditaflorin/l"
)

// Frequency provides methods to count letter and digram frequencies.
type Frequency struct {
	analyzer   ports.FrequencyAnalyzer
	logger     ports.Logger
	normalizer ports.Normalizer
	warmed     bool
}

// Option defines a functional option for configuring Frequency.
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

// New creates a new Frequency instance.
func New(opts ...Option) (*Frequency, error) {
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

	analyzer, err := frequency.NewAnalyzer(cfg.Logger, cfg.Normalizer)
	if err != nil {
		return nil, err
	}

	f := &Frequency{
		analyzer:   analyzer,
		logger:     cfg.Logger,
		normalizer: cfg.Normalizer,
		warmed:     false,
	}

	if cfg.WarmUp {
		f.WarmUp(context.Background(), cfg.WarmUpConfig)
	}

	return f, nil
}

// Letters counts single-letter frequencies in the text.
func (f *Frequency) Letters(ctx context.Context, text string) domain.LetterFrequency {
	return f.analyzer.Letters(ctx, text)
}

// Digrams counts overlapping adjacent letter pairs in the text.
func (f *Frequency) Digrams(ctx context.Context, text string) domain.DigramFrequency {
	return f.analyzer.Digrams(ctx, text)
}

// WarmUp performs system warm-up to optimize performance.
func (f *Frequency) WarmUp(ctx context.Context, cfg warmup.WarmupConfig) {
	if f.warmed {
		f.logger.Debug("System already warmed up, skipping")
		return
	}

	warmupMgr := warmup.NewManager(f.logger, cfg)
	warmupMgr.RegisterAnalyzer(f.analyzer)
	warmupMgr.RegisterNormalizer(f.normalizer)

	warmupMgr.WarmUp(ctx)
	f.warmed = true
}
