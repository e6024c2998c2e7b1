// Package yashe implements the YASHE somewhat-homomorphic encryption scheme
// over the cyclotomic ring Z_q[X]/(X^N + 1), supporting homomorphic addition
// and a single level of homomorphic multiplication.
package yashe

import (
	"fmt"
	"math/big"

	"github.com/google/go-cmp/cmp"

	"github.com/inversed-tech/eyelid-go/ring"
	"github.com/inversed-tech/eyelid-go/utils/bignum"
)

// ParametersLiteral is a literal representation of YASHE parameters, suitable
// for constructing a Parameters struct via NewParametersFromLiteral.
type ParametersLiteral struct {
	LogN  int     // log2 of the ring degree
	Q     uint64  // ciphertext modulus, an NTT-unfriendly prime is fine
	T     uint64  // plaintext modulus
	Sigma float64 // standard deviation of the error distribution
}

// Parameters holds the validated, precomputed parameter set of a YASHE
// instance. Parameters are read-only once constructed and can be shared
// across goroutines.
type Parameters struct {
	logN  int
	ringQ *ring.Ring
	t     uint64
	sigma float64

	qDivT uint64 // floor(q/t), the plaintext scaling factor
	qHalf uint64 // floor(q/2), rounding offset for decryption
}

// NewParametersFromLiteral constructs and validates a parameter set.
func NewParametersFromLiteral(pl ParametersLiteral) (Parameters, error) {

	if pl.LogN < 1 || pl.LogN > 16 {
		return Parameters{}, fmt.Errorf("invalid LogN (must be in [1, 16] but is %d)", pl.LogN)
	}

	ringQ, err := ring.NewRing(1<<pl.LogN, pl.Q)
	if err != nil {
		return Parameters{}, err
	}

	if pl.T < 2 || pl.T >= pl.Q {
		return Parameters{}, fmt.Errorf("invalid T (must be in [2, Q) but is %d)", pl.T)
	}

	if pl.Sigma <= 0 {
		return Parameters{}, fmt.Errorf("invalid Sigma (must be positive but is %f)", pl.Sigma)
	}

	return Parameters{
		logN:  pl.LogN,
		ringQ: ringQ,
		t:     pl.T,
		sigma: pl.Sigma,
		qDivT: pl.Q / pl.T,
		qHalf: pl.Q >> 1,
	}, nil
}

// LogN returns log2 of the ring degree.
func (p Parameters) LogN() int {
	return p.logN
}

// N returns the ring degree.
func (p Parameters) N() int {
	return p.ringQ.N
}

// Q returns the ciphertext modulus.
func (p Parameters) Q() uint64 {
	return p.ringQ.Modulus
}

// T returns the plaintext modulus.
func (p Parameters) T() uint64 {
	return p.t
}

// Sigma returns the standard deviation of the error distribution.
func (p Parameters) Sigma() float64 {
	return p.sigma
}

// RingQ returns the underlying polynomial ring.
func (p Parameters) RingQ() *ring.Ring {
	return p.ringQ
}

// QDivT returns floor(Q/T), the scaling factor applied to plaintexts at
// encryption time.
func (p Parameters) QDivT() uint64 {
	return p.qDivT
}

// QHalf returns floor(Q/2).
func (p Parameters) QHalf() uint64 {
	return p.qHalf
}

// NoiseBudget returns log2(q/(2t)), the number of bits of noise a fresh
// ciphertext can absorb before decryption fails.
func (p Parameters) NoiseBudget() float64 {
	ratio := new(big.Float).Quo(
		bignum.NewFloat(p.Q(), 128),
		bignum.NewFloat(2*p.t, 128),
	)
	f, _ := bignum.Log2(ratio).Float64()
	return f
}

// Literal returns the literal representation of the parameters.
func (p Parameters) Literal() ParametersLiteral {
	return ParametersLiteral{
		LogN:  p.logN,
		Q:     p.Q(),
		T:     p.t,
		Sigma: p.sigma,
	}
}

// Equal reports whether two parameter sets are identical.
func (p Parameters) Equal(other Parameters) bool {
	return cmp.Equal(p.Literal(), other.Literal())
}
