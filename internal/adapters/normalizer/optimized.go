package normalizer

import (
	"github.com/baditaflorin/go_classical_crypto/internal/pool"
	"github.com/baditaflorin/go_classical_crypto/internal/ports"
)

// OptimizedNormalizer implements an optimized text normalization strategy
// with a precomputed decision table and buffer pooling.
type OptimizedNormalizer struct {
	// Pre-computed decision table for ASCII characters (0-127)
	asciiTable [128]byte

	// Reusable buffer pool
	bytePool *pool.BufferPool
}

// Decision values for the ASCII lookup table.
const (
	dropChar  = 0 // discard the character
	keepChar  = 1 // already an uppercase letter
	upperChar = 2 // lowercase letter, fold to uppercase
)

// NewOptimizedNormalizer creates a new optimized normalizer.
func NewOptimizedNormalizer() ports.Normalizer {
	n := &OptimizedNormalizer{
		bytePool: pool.NewBufferPool(8192), // 8K bytes initial capacity
	}

	for i := 0; i < 128; i++ {
		switch {
		case i >= 'A' && i <= 'Z':
			n.asciiTable[i] = keepChar
		case i >= 'a' && i <= 'z':
			n.asciiTable[i] = upperChar
		default:
			n.asciiTable[i] = dropChar
		}
	}

	return n
}

// Normalize keeps ASCII letters only, uppercased, using a lookup table and
// a pooled buffer. Bytes outside the ASCII range are dropped, which also
// discards multi-byte runes.
func (n *OptimizedNormalizer) Normalize(text string) string {
	// Fast path for empty strings
	if len(text) == 0 {
		return ""
	}

	// Get a reusable buffer from the pool
	buffer := n.bytePool.Get()
	defer n.bytePool.Put(buffer)

	// Ensure the buffer has adequate capacity
	if cap(*buffer) < len(text) {
		*buffer = make([]byte, 0, len(text))
	}
	*buffer = (*buffer)[:0] // Reset length while keeping capacity

	for i := 0; i < len(text); i++ {
		b := text[i]
		if b >= 128 {
			continue
		}
		switch n.asciiTable[b] {
		case keepChar:
			*buffer = append(*buffer, b)
		case upperChar:
			*buffer = append(*buffer, b-('a'-'A'))
		}
	}

	return string(*buffer)
}

// NormalizerFactory creates the appropriate normalizer based on performance
// requirements.
type NormalizerFactory struct{}

// NewNormalizerFactory creates a new normalizer factory.
func NewNormalizerFactory() *NormalizerFactory {
	return &NormalizerFactory{}
}

// NormalizerType defines the type of normalizer to create.
type NormalizerType int

const (
	// DefaultNormalizerType is the original normalizer
	DefaultNormalizerType NormalizerType = iota
	// OptimizedNormalizerType uses buffer pooling and a lookup table
	OptimizedNormalizerType
)

// CreateNormalizer creates a normalizer of the specified type.
func (f *NormalizerFactory) CreateNormalizer(normalizerType NormalizerType) ports.Normalizer {
	switch normalizerType {
	case OptimizedNormalizerType:
		return NewOptimizedNormalizer()
	default:
		return NewDefaultNormalizer()
	}
}
