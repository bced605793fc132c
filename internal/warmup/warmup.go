package warmup

import (
	"context"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/baditaflorin/go_classical_crypto/internal/ports"
)

// WarmupConfig defines configuration for warming up the system
type WarmupConfig struct {
	// Number of concurrent warmup routines to run
	Concurrency int
	// Number of iterations per routine
	Iterations int
	// Sample text size for warmup
	SampleTextSize int
	// Warmup duration (0 means no time limit)
	Duration time.Duration
	// Whether to perform GC after warmup
	ForceGC bool
}

// DefaultWarmupConfig returns the default warmup configuration
func DefaultWarmupConfig() WarmupConfig {
	return WarmupConfig{
		Concurrency:    runtime.NumCPU(),
		Iterations:     1000,
		SampleTextSize: 1000,
		Duration:       5 * time.Second,
		ForceGC:        true,
	}
}

// Manager handles system warmup operations
type Manager struct {
	logger      ports.Logger
	ciphers     []ports.Cipher
	analyzers   []ports.FrequencyAnalyzer
	normalizers []ports.Normalizer
	config      WarmupConfig
}

// NewManager creates a new warmup manager
func NewManager(logger ports.Logger, config WarmupConfig) *Manager {
	return &Manager{
		logger: logger,
		config: config,
	}
}

// RegisterCipher adds a cipher to be warmed up
func (wm *Manager) RegisterCipher(cipher ports.Cipher) {
	wm.ciphers = append(wm.ciphers, cipher)
}

// RegisterAnalyzer adds a frequency analyzer to be warmed up
func (wm *Manager) RegisterAnalyzer(analyzer ports.FrequencyAnalyzer) {
	wm.analyzers = append(wm.analyzers, analyzer)
}

// RegisterNormalizer adds a normalizer to be warmed up
func (wm *Manager) RegisterNormalizer(norm ports.Normalizer) {
	wm.normalizers = append(wm.normalizers, norm)
}

// WarmUp runs the warmup process for all registered components
func (wm *Manager) WarmUp(ctx context.Context) {
	startTime := time.Now()
	wm.logger.Info("Starting system warmup",
		"components", len(wm.ciphers)+len(wm.analyzers)+len(wm.normalizers),
		"concurrency", wm.config.Concurrency,
		"iterations", wm.config.Iterations,
	)

	// Create a context with timeout if duration is specified
	var warmupCtx context.Context
	var cancel context.CancelFunc
	if wm.config.Duration > 0 {
		warmupCtx, cancel = context.WithTimeout(ctx, wm.config.Duration)
		defer cancel()
	} else {
		warmupCtx = ctx
	}

	wm.warmUpNormalizers(warmupCtx)
	wm.warmUpCiphers(warmupCtx)
	wm.warmUpAnalyzers(warmupCtx)

	// Force garbage collection if configured
	if wm.config.ForceGC {
		wm.logger.Debug("Forcing garbage collection after warmup")
		runtime.GC()
	}

	wm.logger.Info("System warmup completed",
		"duration", time.Since(startTime),
	)
}

// warmUpNormalizers runs warmup for all registered normalizers
func (wm *Manager) warmUpNormalizers(ctx context.Context) {
	if len(wm.normalizers) == 0 {
		return
	}

	wm.logger.Debug("Warming up normalizers", "count", len(wm.normalizers))

	sampleText := generateSampleText(wm.config.SampleTextSize)

	var wg sync.WaitGroup
	for i := 0; i < wm.config.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for j := 0; j < wm.config.Iterations; j++ {
				select {
				case <-ctx.Done():
					return
				default:
				}

				for _, normalizer := range wm.normalizers {
					_ = normalizer.Normalize(sampleText)
				}
			}
		}()
	}

	wg.Wait()
}

// warmUpCiphers runs encipher/decipher round trips for all registered ciphers
func (wm *Manager) warmUpCiphers(ctx context.Context) {
	if len(wm.ciphers) == 0 {
		return
	}

	wm.logger.Debug("Warming up ciphers", "count", len(wm.ciphers))

	sampleText := generateSampleText(wm.config.SampleTextSize)
	sampleKey := "CODEBREAKERS"

	var wg sync.WaitGroup
	for i := 0; i < wm.config.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for j := 0; j < wm.config.Iterations; j++ {
				select {
				case <-ctx.Done():
					return
				default:
				}

				for _, cipher := range wm.ciphers {
					result, err := cipher.Encipher(ctx, sampleKey, sampleText)
					if err != nil {
						continue
					}
					_, _ = cipher.Decipher(ctx, sampleKey, result.Output)
				}
			}
		}()
	}

	wg.Wait()
}

// warmUpAnalyzers runs warmup for all registered frequency analyzers
func (wm *Manager) warmUpAnalyzers(ctx context.Context) {
	if len(wm.analyzers) == 0 {
		return
	}

	wm.logger.Debug("Warming up analyzers", "count", len(wm.analyzers))

	sampleText := generateSampleText(wm.config.SampleTextSize)

	var wg sync.WaitGroup
	for i := 0; i < wm.config.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for j := 0; j < wm.config.Iterations; j++ {
				select {
				case <-ctx.Done():
					return
				default:
				}

				for _, analyzer := range wm.analyzers {
					_ = analyzer.Letters(ctx, sampleText)
					_ = analyzer.Digrams(ctx, sampleText)
				}
			}
		}()
	}

	wg.Wait()
}

// generateSampleText creates sample text of the specified size
func generateSampleText(size int) string {
	words := []string{
		"the", "quick", "brown", "fox", "jumps", "over", "lazy", "dog",
		"attack", "at", "dawn", "we", "are", "discovered", "flee", "once",
		"now", "is", "time", "for", "all", "good", "men",
	}

	var sb strings.Builder
	for i := 0; sb.Len() < size; i++ {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(words[i%len(words)])
	}

	result := sb.String()
	if len(result) > size {
		return result[:size]
	}
	return result
}
