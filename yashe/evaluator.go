package yashe

import (
	"math/big"

	"github.com/inversed-tech/eyelid-go/ring"
	"github.com/inversed-tech/eyelid-go/utils/bignum"
)

// Evaluator performs homomorphic operations on ciphertexts.
type Evaluator struct {
	params Parameters
}

// NewEvaluator creates an Evaluator for the given parameters.
func NewEvaluator(params Parameters) *Evaluator {
	return &Evaluator{params: params}
}

// AddNew returns ct0 + ct1, encrypting the sum of the underlying messages.
func (eval *Evaluator) AddNew(ct0, ct1 *Ciphertext) *Ciphertext {
	return &Ciphertext{Value: eval.params.RingQ().Add(ct0.Value, ct1.Value)}
}

// SubNew returns ct0 - ct1, encrypting the difference of the underlying
// messages.
func (eval *Evaluator) SubNew(ct0, ct1 *Ciphertext) *Ciphertext {
	return &Ciphertext{Value: eval.params.RingQ().Sub(ct0.Value, ct1.Value)}
}

// MulNew returns the homomorphic product of ct0 and ct1:
//
//	c = round(t * c0 * c1 / q) mod q
//
// where the product c0*c1 is taken over the integers, on centered
// representatives, before scaling. The result decrypts with
// Decryptor.DecryptMulNew.
func (eval *Evaluator) MulNew(ct0, ct1 *Ciphertext) *Ciphertext {

	q := bignum.NewInt(eval.params.Q())
	t := bignum.NewInt(eval.params.T())
	n := eval.params.N()

	a := eval.centeredLift(ct0.Value)
	b := eval.centeredLift(ct1.Value)

	if len(a) == 0 || len(b) == 0 {
		return &Ciphertext{Value: ring.Zero()}
	}

	// Schoolbook product over the integers, then the X^N = -1 fold. The
	// scaling step is not ring-linear, so the product cannot be reduced
	// mod q before it is rescaled.
	prod := make([]*big.Int, len(a)+len(b)-1)
	for i := range prod {
		prod[i] = new(big.Int)
	}
	tmp := new(big.Int)
	for i, ai := range a {
		if ai.Sign() == 0 {
			continue
		}
		for j, bj := range b {
			prod[i+j].Add(prod[i+j], tmp.Mul(ai, bj))
		}
	}

	folded := make([]*big.Int, n)
	for i := range folded {
		folded[i] = new(big.Int)
	}
	for i, v := range prod {
		if (i/n)&1 == 1 {
			folded[i%n].Sub(folded[i%n], v)
		} else {
			folded[i%n].Add(folded[i%n], v)
		}
	}

	coeffs := make([]uint64, n)
	scaled := new(big.Int)
	for i, v := range folded {
		scaled.Mul(v, t)
		bignum.DivRound(scaled, q, scaled)
		coeffs[i] = scaled.Mod(scaled, q).Uint64()
	}

	return &Ciphertext{Value: ring.NewPoly(coeffs)}
}

// centeredLift maps coefficients from [0, q) to their centered signed
// representatives in (-q/2, q/2].
func (eval *Evaluator) centeredLift(p ring.Poly) []*big.Int {
	q := eval.params.Q()
	qHalf := eval.params.QHalf()
	out := make([]*big.Int, len(p.Coeffs))
	for i, c := range p.Coeffs {
		if c > qHalf {
			out[i] = bignum.NewInt(-int64(q - c))
		} else {
			out[i] = bignum.NewInt(c)
		}
	}
	return out
}
