package ring

import (
	"math/big"
	"math/bits"
)

// CRed returns a mod q, where a is required to be in the range [0, 2q-1].
func CRed(a, q uint64) uint64 {
	if a >= q {
		return a - q
	}
	return a
}

// BRedParams computes the constants required for Barrett reduction with a
// radix of 2^128: the two 64-bit limbs of floor(2^128 / q).
func BRedParams(q uint64) (params []uint64) {
	bigR := new(big.Int).Lsh(big.NewInt(1), 128)
	bigR.Quo(bigR, new(big.Int).SetUint64(q))

	mhi := new(big.Int).Rsh(bigR, 64).Uint64()
	mlo := bigR.Uint64()

	return []uint64{mhi, mlo}
}

// BRedAdd reduces a 64-bit integer by q using Barrett reduction.
func BRedAdd(x, q uint64, u []uint64) (r uint64) {
	s0, _ := bits.Mul64(x, u[0])
	r = x - s0*q
	if r >= q {
		r -= q
	}
	return
}

// BRed computes x*y mod q with a 64x64-bit multiplication followed by a
// Barrett reduction.
func BRed(x, y, q uint64, u []uint64) (r uint64) {

	var lhi, mhi, mlo, s0, s1, carry uint64

	ahi, alo := bits.Mul64(x, y)

	// (alo*ulo)>>64

	lhi, _ = bits.Mul64(alo, u[1])

	// ((ahi*ulo + alo*uhi) + (alo*ulo))>>64

	mhi, mlo = bits.Mul64(alo, u[0])

	s0, carry = bits.Add64(mlo, lhi, 0)

	s1 = mhi + carry

	mhi, mlo = bits.Mul64(ahi, u[1])

	_, carry = bits.Add64(mlo, s0, 0)

	lhi = mhi + carry

	// (ahi*uhi) + (((ahi*ulo + alo*uhi) + (alo*ulo))>>64)

	s0 = ahi*u[0] + s1 + lhi

	r = alo - s0*q

	if r >= q {
		r -= q
	}

	return
}

// ModExp computes x^e mod q by square and multiply.
func ModExp(x, e, q uint64) (r uint64) {
	u := BRedParams(q)
	r = 1
	x = BRedAdd(x, q, u)
	for e > 0 {
		if e&1 == 1 {
			r = BRed(r, x, q, u)
		}
		x = BRed(x, x, q, u)
		e >>= 1
	}
	return
}

// ModInverse returns x^-1 mod q for a prime q, computed as x^(q-2) by
// Fermat's little theorem. It panics if x reduces to zero, which indicates a
// caller bug: zero has no inverse.
func ModInverse(x, q uint64) uint64 {
	if x%q == 0 {
		panic("cannot ModInverse: x is zero mod q")
	}
	return ModExp(x, q-2, q)
}
