package yashe

import (
	"fmt"

	"github.com/inversed-tech/eyelid-go/ring"
	"github.com/inversed-tech/eyelid-go/utils/sampling"
)

// HammingEncoding encodes a bit vector for Hamming-weight inner products.
// M holds the bits as polynomial coefficients; MRev holds the same bits in
// reversed coefficient order, so that the product M1 * M2Rev carries the
// inner product <m1, m2> in its degree N-1 coefficient.
type HammingEncoding struct {
	M    *Message
	MRev *Message
}

// NewHammingEncoding encodes bits (each 0 or 1, at most N of them) into the
// forward and reversed plaintext polynomials.
func NewHammingEncoding(params Parameters, bits []uint64) (*HammingEncoding, error) {

	n := params.N()
	if len(bits) > n {
		return nil, fmt.Errorf("invalid bit vector (must have at most %d entries but has %d)", n, len(bits))
	}
	for i, b := range bits {
		if b > 1 {
			return nil, fmt.Errorf("invalid bit at index %d (must be 0 or 1 but is %d)", i, b)
		}
	}

	fwd := make([]uint64, n)
	rev := make([]uint64, n)
	copy(fwd, bits)
	for i := range fwd {
		rev[i] = fwd[n-1-i]
	}

	return &HammingEncoding{
		M:    &Message{Value: ring.NewPoly(fwd)},
		MRev: &Message{Value: ring.NewPoly(rev)},
	}, nil
}

// SampleHammingEncoding encodes a uniformly random bit vector of length N.
func SampleHammingEncoding(params Parameters, prng sampling.PRNG) *HammingEncoding {
	b := ring.NewBinarySampler(prng, params.RingQ()).ReadNew()
	coeffs := make([]uint64, params.N())
	copy(coeffs, b.Coeffs)
	he, err := NewHammingEncoding(params, coeffs)
	if err != nil {
		panic(err)
	}
	return he
}

// Distance returns the Hamming distance between the two encoded bit vectors,
// computed in the clear as |m1| + |m2| - 2*<m1, m2>.
func Distance(params Parameters, a, b *HammingEncoding) uint64 {
	w1 := weight(a.M.Value)
	w2 := weight(b.M.Value)
	inner := PlaintextMul(params, a.M, b.MRev).Value.Coeff(params.N() - 1)
	return w1 + w2 - 2*inner
}

func weight(p ring.Poly) (w uint64) {
	for _, c := range p.Coeffs {
		w += c
	}
	return
}

// EncryptedHammingEncoding is the ciphertext pair of a HammingEncoding.
type EncryptedHammingEncoding struct {
	M    *Ciphertext
	MRev *Ciphertext
}

// Encrypt encrypts both halves of the encoding.
func (he *HammingEncoding) Encrypt(enc *Encryptor) *EncryptedHammingEncoding {
	return &EncryptedHammingEncoding{
		M:    enc.EncryptNew(he.M),
		MRev: enc.EncryptNew(he.MRev),
	}
}

// HomomorphicDistance homomorphically computes the inner product <m1, m2>
// of two encrypted encodings. The result decrypts with DecryptMulNew; the
// inner product sits in the degree N-1 coefficient of the decrypted message.
func HomomorphicDistance(eval *Evaluator, a, b *EncryptedHammingEncoding) *Ciphertext {
	return eval.MulNew(a.M, b.MRev)
}

// DecodeDistance extracts the inner product from a decrypted
// HomomorphicDistance result.
func DecodeDistance(params Parameters, m *Message) uint64 {
	return m.Value.Coeff(params.N() - 1)
}
