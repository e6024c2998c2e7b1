package ring

import (
	"github.com/inversed-tech/eyelid-go/utils"
)

// Add returns a + b coefficient-wise, in canonical form. The sum can cancel
// the leading coefficient, so the result is re-trimmed.
func (r *Ring) Add(a, b Poly) (out Poly) {
	n := utils.Max(len(a.Coeffs), len(b.Coeffs))
	out.Coeffs = make([]uint64, n)
	for i := range out.Coeffs {
		out.Coeffs[i] = r.addMod(a.Coeff(i), b.Coeff(i))
	}
	out.trim()
	return
}

// Sub returns a - b coefficient-wise, in canonical form.
func (r *Ring) Sub(a, b Poly) (out Poly) {
	n := utils.Max(len(a.Coeffs), len(b.Coeffs))
	out.Coeffs = make([]uint64, n)
	for i := range out.Coeffs {
		out.Coeffs[i] = r.subMod(a.Coeff(i), b.Coeff(i))
	}
	out.trim()
	return
}

// Neg returns -a. Negation cannot create a leading zero, so the degree is
// preserved.
func (r *Ring) Neg(a Poly) (out Poly) {
	out.Coeffs = make([]uint64, len(a.Coeffs))
	for i, c := range a.Coeffs {
		out.Coeffs[i] = r.negMod(c)
	}
	return
}

// ScalarMul returns c * a for a field element c. The result can legitimately
// be the zero polynomial when c is zero.
func (r *Ring) ScalarMul(a Poly, c uint64) (out Poly) {
	out.Coeffs = make([]uint64, len(a.Coeffs))
	for i, v := range a.Coeffs {
		out.Coeffs[i] = r.mulMod(v, c)
	}
	out.trim()
	return
}

// ReduceModCyclotomic reduces p modulo X^N + 1 in place. Every coefficient at
// index i >= N folds into index i mod N, negated whenever i/N is odd, since
// X^N = -1 in the ring. The operation is a no-op besides trimming once the
// degree is already below N.
func (r *Ring) ReduceModCyclotomic(p *Poly) {
	q := r.Modulus
	for i := r.N; i < len(p.Coeffs); i++ {
		j := i % r.N
		if (i/r.N)&1 == 1 {
			p.Coeffs[j] = CRed(p.Coeffs[j]+q-p.Coeffs[i], q)
		} else {
			p.Coeffs[j] = CRed(p.Coeffs[j]+p.Coeffs[i], q)
		}
	}
	if len(p.Coeffs) > r.N {
		p.Coeffs = p.Coeffs[:r.N]
	}
	// Folding can zero the leading coefficient.
	p.trim()
}

// ShiftXn returns a * X^n reduced modulo X^N + 1. The shifted terms that pass
// degree N wrap around with a sign flip.
func (r *Ring) ShiftXn(a Poly, n int) (out Poly) {
	out = shiftUnreduced(a, n)
	r.ReduceModCyclotomic(&out)
	return
}

// shiftUnreduced returns a * X^n without cyclotomic reduction.
func shiftUnreduced(a Poly, n int) (out Poly) {
	if a.IsZero() {
		return Zero()
	}
	out.Coeffs = make([]uint64, n+len(a.Coeffs))
	copy(out.Coeffs[n:], a.Coeffs)
	return
}

// SplitHalf splits a polynomial of degree bound chunk (a power of two) into
// its low and high halves: low holds the coefficients [0, chunk/2) and high
// holds the remaining coefficients shifted down by chunk/2. Either half can
// be the zero polynomial.
func SplitHalf(a Poly, chunk int) (low, high Poly) {
	half := utils.Min(chunk/2, len(a.Coeffs))
	return NewPoly(a.Coeffs[:half]), NewPoly(a.Coeffs[half:])
}

// Split splits a into N/k chunks of degree bound k each, in order from the
// constant term upwards, padding with zero polynomials. k must be a power of
// two dividing N.
func (r *Ring) Split(a Poly, k int) []Poly {
	out := make([]Poly, r.N/k)
	for i := range out {
		lo := utils.Min(i*k, len(a.Coeffs))
		hi := utils.Min((i+1)*k, len(a.Coeffs))
		out[i] = NewPoly(a.Coeffs[lo:hi])
	}
	return out
}
