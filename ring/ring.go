// Package ring implements arithmetic in the cyclotomic quotient ring
// Z_q[X]/(X^N + 1), for N a power of two and q a prime fitting in 61 bits.
//
// Polynomials are kept in canonical form: the highest stored coefficient is
// always non-zero, and the zero polynomial stores no coefficient at all.
// Every operation that can create or remove a leading zero restores canonical
// form before returning.
package ring

import (
	"fmt"
	"math/big"
	"math/bits"
	"sync"
)

// MaxModulusBitSize is the largest supported bit-size for the coefficient
// modulus. The bound leaves enough headroom for the 128-bit intermediate
// products used by the Barrett reduction and the decryption rounding.
const MaxModulusBitSize = 61

// Ring is the context for operations in Z_q[X]/(X^N + 1). It stores the
// degree bound, the coefficient modulus and its precomputed Barrett
// constants. A Ring is read-only after creation and safe for concurrent use.
type Ring struct {
	// N is the degree of the cyclotomic polynomial X^N + 1. Reduced ring
	// elements have degree at most N-1.
	N int

	// Modulus is the prime coefficient modulus q.
	Modulus uint64

	// BRedParams are the precomputed constants for Barrett reduction
	// modulo Modulus.
	BRedParams []uint64

	cycloOnce    sync.Once
	cycloModulus Poly
}

// NewRing creates a new Ring with degree bound N (a power of two not smaller
// than 2) and the given prime modulus of at most MaxModulusBitSize bits.
// Rings with different N or Modulus are incompatible: polynomials must only
// be combined through the Ring they were created for.
func NewRing(N int, modulus uint64) (*Ring, error) {

	if N < 2 || N&(N-1) != 0 {
		return nil, fmt.Errorf("invalid ring degree (must be a power of 2 >= 2 but is %d)", N)
	}

	if bits.Len64(modulus) > MaxModulusBitSize {
		return nil, fmt.Errorf("invalid modulus (must be at most %d bits but is %d bits)", MaxModulusBitSize, bits.Len64(modulus))
	}

	if !new(big.Int).SetUint64(modulus).ProbablyPrime(20) {
		return nil, fmt.Errorf("invalid modulus (must be prime but %d is composite)", modulus)
	}

	return &Ring{
		N:          N,
		Modulus:    modulus,
		BRedParams: BRedParams(modulus),
	}, nil
}

// CyclotomicModulus returns the un-reduced polynomial modulus X^N + 1.
// The value is computed once on first access and shared afterwards; it must
// be treated as read-only.
func (r *Ring) CyclotomicModulus() Poly {
	r.cycloOnce.Do(func() {
		coeffs := make([]uint64, r.N+1)
		coeffs[0] = 1
		coeffs[r.N] = 1
		r.cycloModulus = Poly{Coeffs: coeffs}
	})
	return r.cycloModulus
}

// addMod, subMod and mulMod are the scalar field operations of the
// coefficient field Z_q.

func (r *Ring) addMod(a, b uint64) uint64 {
	return CRed(a+b, r.Modulus)
}

func (r *Ring) subMod(a, b uint64) uint64 {
	return CRed(a+r.Modulus-b, r.Modulus)
}

func (r *Ring) negMod(a uint64) uint64 {
	if a == 0 {
		return 0
	}
	return r.Modulus - a
}

func (r *Ring) mulMod(a, b uint64) uint64 {
	return BRed(a, b, r.Modulus, r.BRedParams)
}
