package ring

import (
	"errors"
)

// Inversion failure taxonomy. Key generation retries on these internally;
// they only surface to callers inverting externally supplied elements.
var (
	// ErrZeroPolynomial is returned when attempting to invert the zero
	// polynomial.
	ErrZeroPolynomial = errors.New("ring: cannot invert the zero polynomial")

	// ErrNonInvertible is returned when the element shares a non-trivial
	// factor with X^N + 1 and therefore has no inverse in the ring.
	ErrNonInvertible = errors.New("ring: polynomial is not invertible")
)

// Inverse returns the multiplicative inverse of a modulo (X^N + 1, q), if it
// exists.
//
// It runs the polynomial extended Euclidean algorithm between the un-reduced
// cyclotomic modulus and a, producing Bezout coefficients (x, y) and a last
// non-zero remainder d with modulus*x + a*y = d. When d is a non-zero
// constant, y scaled by d^-1 is the inverse; a zero d means a was zero, and a
// d of positive degree means a shares a factor with the modulus.
//
// Based on Algorithm 3.3.1 (page 118) of "A Course in Computational
// Algebraic Number Theory", Henri Cohen. The content division happens once at
// the end rather than at every step.
func (r *Ring) Inverse(a Poly) (Poly, error) {

	if a.IsZero() {
		return Poly{}, ErrZeroPolynomial
	}

	_, y, d := r.ExtendedGCD(r.CyclotomicModulus(), a)

	switch {
	case d.IsZero():
		return Poly{}, ErrZeroPolynomial
	case d.Degree() > 0:
		return Poly{}, ErrNonInvertible
	default:
		// d is a non-zero constant: divide y by the content.
		contentInv := ModInverse(d.Coeffs[0], r.Modulus)
		return r.ScalarMul(y, contentInv), nil
	}
}

// ExtendedGCD returns polynomials (x, y, d) with a*x + b*y = d, where d is
// the last non-zero remainder of the Euclidean division chain (a GCD of a and
// b up to a constant factor). The arithmetic happens in Z_q[X], without
// cyclotomic reduction.
func (r *Ring) ExtendedGCD(a, b Poly) (x, y, d Poly) {

	// Invariant at every step: a*xi + b*yi = ri.
	xPrev, yPrev, rPrev := One(), Zero(), a.CopyNew()
	xCur, yCur, rCur := Zero(), One(), b.CopyNew()

	for !rCur.IsZero() {
		quo, rem := r.DivRem(rPrev, rCur)
		rPrev, rCur = rCur, rem

		// new = prev - quo*cur, then shift the window.
		xPrev, xCur = xCur, r.Sub(xPrev, r.naiveMulUnreduced(quo, xCur))
		yPrev, yCur = yCur, r.Sub(yPrev, r.naiveMulUnreduced(quo, yCur))
	}

	return xPrev, yPrev, rPrev
}

// DivRem computes the Euclidean division a = quo*b + rem in Z_q[X], with
// deg(rem) < deg(b). It panics if b is the zero polynomial, which indicates a
// caller bug: the Euclidean loop checks its divisor before dividing.
func (r *Ring) DivRem(a, b Poly) (quo, rem Poly) {

	if b.IsZero() {
		panic("cannot DivRem: division by the zero polynomial")
	}

	rem = a.CopyNew()

	if a.Degree() < b.Degree() {
		return Zero(), rem
	}

	quo.Coeffs = make([]uint64, a.Degree()-b.Degree()+1)
	leadInv := ModInverse(b.Coeffs[len(b.Coeffs)-1], r.Modulus)

	for !rem.IsZero() && rem.Degree() >= b.Degree() {
		shift := rem.Degree() - b.Degree()
		factor := r.mulMod(rem.Coeffs[len(rem.Coeffs)-1], leadInv)
		quo.Coeffs[shift] = factor
		for i, bi := range b.Coeffs {
			rem.Coeffs[i+shift] = r.subMod(rem.Coeffs[i+shift], r.mulMod(factor, bi))
		}
		// The leading term cancels by construction; lower terms can
		// cancel too.
		rem.trim()
	}

	quo.trim()
	return
}
