package ports

import (
	"context"

	"github.com/baditaflorin/go_classical_crypto/internal/core/domain"
)

// Cipher defines the interface for enciphering and deciphering text under a key.
type Cipher interface {
	Encipher(ctx context.Context, key, text string) (domain.Result, error)
	Decipher(ctx context.Context, key, text string) (domain.Result, error)
}
