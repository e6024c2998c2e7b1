package ring

import (
	"math/bits"
)

// MulStrategy selects one of the interchangeable multiplication algorithms.
// All strategies compute the identical canonical ring product; they differ
// only in performance characteristics.
type MulStrategy uint8

const (
	// MulNaive is the schoolbook O(N^2) product followed by a single
	// cyclotomic reduction. It is the reference the other strategies are
	// checked against.
	MulNaive MulStrategy = iota
	// MulKaratsuba is the recursive Karatsuba algorithm with a naive
	// fallback below a fixed minimum degree.
	MulKaratsuba
	// MulFlatKaratsuba is the Karatsuba recursion reorganized as an
	// explicit bottom-up loop over layers of independent chunk pairs.
	MulFlatKaratsuba
)

// karatsubaMinDegree is the operand degree below which the recursive
// Karatsuba strategy falls back to the schoolbook product. Must be a power
// of two.
const karatsubaMinDegree = 8

// flatKaratsubaInitialLayer selects the starting layer of the flat Karatsuba
// loop: the initial chunks hold 2^(flatKaratsubaInitialLayer-1) coefficients.
const flatKaratsubaInitialLayer = 3

// MulNew returns the ring product a * b mod (X^N + 1) using the default
// strategy (recursive Karatsuba, the fastest of the three).
func (r *Ring) MulNew(a, b Poly) Poly {
	return r.KaratsubaMul(a, b)
}

// MulWithStrategy returns the ring product a * b mod (X^N + 1) computed with
// the given strategy.
func (r *Ring) MulWithStrategy(a, b Poly, strategy MulStrategy) Poly {
	switch strategy {
	case MulNaive:
		return r.NaiveMul(a, b)
	case MulKaratsuba:
		return r.KaratsubaMul(a, b)
	case MulFlatKaratsuba:
		return r.FlatKaratsubaMul(a, b)
	default:
		panic("invalid multiplication strategy")
	}
}

// NaiveMul returns a * b mod (X^N + 1) using the schoolbook product.
func (r *Ring) NaiveMul(a, b Poly) (out Poly) {
	out = r.naiveMulUnreduced(a, b)
	r.ReduceModCyclotomic(&out)
	return
}

// naiveMulUnreduced returns the full product a * b in Z_q[X], of degree up to
// deg(a) + deg(b), without cyclotomic reduction. This is also the plain
// polynomial product used by the extended Euclidean algorithm, which works in
// Z_q[X] rather than in the quotient ring.
func (r *Ring) naiveMulUnreduced(a, b Poly) (out Poly) {
	if a.IsZero() || b.IsZero() {
		return Zero()
	}
	out.Coeffs = make([]uint64, len(a.Coeffs)+len(b.Coeffs)-1)
	for i, ai := range a.Coeffs {
		if ai == 0 {
			continue
		}
		for j, bj := range b.Coeffs {
			out.Coeffs[i+j] = r.addMod(out.Coeffs[i+j], r.mulMod(ai, bj))
		}
	}
	// The product of two canonical polynomials has a non-zero leading
	// coefficient, since q is prime.
	return
}

// KaratsubaMul returns a * b mod (X^N + 1) using the recursive Karatsuba
// algorithm. Operands are split in half, the three sub-products
// a_low*b_low, a_high*b_high and (a_low+a_high)*(b_low+b_high) are computed
// recursively, and the results are recombined with shifted additions. The
// shift by the full chunk size at the top level is where the cyclotomic
// wraparound (sign flip past degree N) is applied; at inner levels the
// degree bounds make the reduction a no-op.
//
// The two half-sized sub-products are independent and could be evaluated in
// parallel above the minimum-degree threshold.
func (r *Ring) KaratsubaMul(a, b Poly) Poly {
	return r.karatsubaMulInner(a, b, r.N)
}

// karatsubaMulInner computes one recursion level. Both operands have degree
// at most chunk, a power of two, and so does the result.
func (r *Ring) karatsubaMulInner(a, b Poly, chunk int) (out Poly) {

	if a.Degree() <= karatsubaMinDegree || b.Degree() <= karatsubaMinDegree {
		out = r.naiveMulUnreduced(a, b)
		r.ReduceModCyclotomic(&out)
		return
	}

	al, ah := SplitHalf(a, chunk)
	bl, bh := SplitHalf(b, chunk)

	albl := r.karatsubaMulInner(al, bl, chunk/2)
	ahbh := r.karatsubaMulInner(ah, bh, chunk/2)

	// y = (al + ah)*(bl + bh) = al*bl + al*bh + ah*bl + ah*bh
	y := r.karatsubaMulInner(r.Add(al, ah), r.Add(bl, bh), chunk/2)

	// out = al*bl + (y - al*bl - ah*bh)*X^(chunk/2) + ah*bh*X^chunk
	y = r.Sub(y, albl)
	y = r.Sub(y, ahbh)

	out = r.ShiftXn(ahbh, chunk)
	out = r.Add(out, r.ShiftXn(y, chunk/2))
	out = r.Add(out, albl)

	r.ReduceModCyclotomic(&out)
	return
}

// FlatKaratsubaMul returns a * b mod (X^N + 1) using the Karatsuba recursion
// unrolled into a bottom-up loop. Both operands are pre-split into chunks at
// the initial layer; each adjacent chunk pair is combined with one Karatsuba
// step, halving the number of partial results, and the loop repeats with
// doubled chunk size until a single result remains. A single cyclotomic
// reduction is applied at the end.
//
// All chunk-pair combinations within one layer are mutually independent, so a
// layer can be distributed over a worker pool without synchronization.
func (r *Ring) FlatKaratsubaMul(a, b Poly) (out Poly) {

	height := bits.Len(uint(r.N)) - 1

	if height < flatKaratsubaInitialLayer {
		return r.NaiveMul(a, b)
	}

	layer := flatKaratsubaInitialLayer
	chunk := 1 << (flatKaratsubaInitialLayer - 1)

	aChunks := r.Split(a, chunk)
	bChunks := r.Split(b, chunk)

	current := make([]Poly, 0, len(aChunks)/2)
	for i := 0; i < len(aChunks)/2; i++ {
		al, ah := aChunks[2*i], aChunks[2*i+1]
		bl, bh := bChunks[2*i], bChunks[2*i+1]
		albl := r.naiveMulUnreduced(al, bl)
		ahbh := r.naiveMulUnreduced(ah, bh)
		current = append(current, r.flatCombine(al, ah, bl, bh, albl, ahbh, chunk))
	}

	for layer < height {
		chunk <<= 1
		aChunks = r.Split(a, chunk)
		bChunks = r.Split(b, chunk)

		next := make([]Poly, 0, len(current)/2)
		for j := 0; j < len(current)/2; j++ {
			al, ah := aChunks[2*j], aChunks[2*j+1]
			bl, bh := bChunks[2*j], bChunks[2*j+1]
			// The two sub-products were already combined in the
			// previous layer; only the cross term is new.
			next = append(next, r.flatCombine(al, ah, bl, bh, current[2*j], current[2*j+1], chunk))
		}
		current = next
		layer++
	}

	out = current[0]
	// One final reduction beats reducing along the way: intermediate
	// degrees stay below 2N-1.
	r.ReduceModCyclotomic(&out)
	return
}

// flatCombine performs one Karatsuba combine step on a chunk pair, given the
// low and high sub-products: albl + ((al+ah)(bl+bh) - albl - ahbh)*X^chunk +
// ahbh*X^(2*chunk). The shifts stay unreduced; the caller reduces once at the
// top.
func (r *Ring) flatCombine(al, ah, bl, bh, albl, ahbh Poly, chunk int) (out Poly) {
	y := r.naiveMulUnreduced(r.Add(al, ah), r.Add(bl, bh))
	y = r.Sub(y, albl)
	y = r.Sub(y, ahbh)
	out = r.Add(albl, shiftUnreduced(y, chunk))
	out = r.Add(out, shiftUnreduced(ahbh, 2*chunk))
	return
}
