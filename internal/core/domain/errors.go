package domain

import "errors"

var (
	// ErrInvalidKey is returned when a key normalizes to an empty letter
	// sequence. It is detected before any transformation is attempted.
	ErrInvalidKey = errors.New("key contains no letters")

	// ErrLengthMismatch is returned when a cipher text cannot be laid out
	// in a grid consistent with the key width. The remainder scheme accepts
	// any non-negative length, so this is reserved for degenerate inputs.
	ErrLengthMismatch = errors.New("cipher text length does not fit the key width")
)
