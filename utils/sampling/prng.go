// Package sampling provides the sources of randomness used by the polynomial
// samplers and the key generation.
package sampling

import (
	"crypto/rand"
	"io"

	"golang.org/x/crypto/blake2b"
)

// PRNG is an interface for the generation of random bytes.
type PRNG interface {
	io.Reader
}

// SystemPRNG reads from the operating system entropy source (crypto/rand).
// It is safe for concurrent use.
type SystemPRNG struct{}

// NewPRNG returns a PRNG backed by crypto/rand.
func NewPRNG() (*SystemPRNG, error) {
	return &SystemPRNG{}, nil
}

func (prng *SystemPRNG) Read(p []byte) (n int, err error) {
	return rand.Read(p)
}

// KeyedPRNG deterministically expands a key into an unbounded stream of
// random bytes using the blake2b XOF. Two KeyedPRNG instances seeded with the
// same key produce the same stream, which makes sampling reproducible.
//
// A KeyedPRNG must not be shared between goroutines: interleaved reads make
// the per-reader sequence non-deterministic, which defeats its purpose.
type KeyedPRNG struct {
	key []byte
	xof blake2b.XOF
}

// NewKeyedPRNG creates a new KeyedPRNG seeded with the provided key.
// A nil key is accepted and treated as an empty key, but the resulting
// stream is then predictable by anyone.
func NewKeyedPRNG(key []byte) (*KeyedPRNG, error) {
	xof, err := blake2b.NewXOF(blake2b.OutputLengthUnknown, key)
	if err != nil {
		return nil, err
	}
	k := make([]byte, len(key))
	copy(k, key)
	return &KeyedPRNG{key: k, xof: xof}, nil
}

// Key returns a copy of the seed key, which can be passed to NewKeyedPRNG to
// replay the same stream.
func (prng *KeyedPRNG) Key() (key []byte) {
	key = make([]byte, len(prng.key))
	copy(key, prng.key)
	return
}

func (prng *KeyedPRNG) Read(p []byte) (n int, err error) {
	return prng.xof.Read(p)
}

// Reset rewinds the stream to its initial state.
func (prng *KeyedPRNG) Reset() {
	prng.xof.Reset()
}
