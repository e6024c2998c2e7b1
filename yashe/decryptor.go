package yashe

import (
	"math/bits"

	"github.com/inversed-tech/eyelid-go/ring"
)

// Decryptor decrypts ciphertexts with a secret key.
type Decryptor struct {
	params Parameters
	sk     *SecretKey
}

// NewDecryptor creates a Decryptor for the given secret key.
func NewDecryptor(params Parameters, sk *SecretKey) *Decryptor {
	return &Decryptor{params: params, sk: sk}
}

// DecryptNew decrypts a fresh ciphertext or a homomorphic sum:
//
//	m = round(t * (key*c mod q) / q) mod t
//
// applied coefficient-wise. Decryption of a ciphertext whose accumulated
// noise exceeds q/(2t) silently yields a wrong message; see
// Parameters.NoiseBudget.
func (dec *Decryptor) DecryptNew(ct *Ciphertext) *Message {
	r := dec.params.RingQ()
	return dec.roundDecode(r.MulNew(dec.sk.Key, ct.Value))
}

// DecryptMulNew decrypts the product of two ciphertexts. Ciphertext products
// carry the secret key squared, so the key is applied twice before rounding.
func (dec *Decryptor) DecryptMulNew(ct *Ciphertext) *Message {
	r := dec.params.RingQ()
	return dec.roundDecode(r.MulNew(dec.sk.Key, r.MulNew(dec.sk.Key, ct.Value)))
}

// roundDecode maps each coefficient c to round(t*c/q) mod t. The 128-bit
// intermediate t*c + floor(q/2) never overflows and its high word stays below
// q because both t and c are below q <= 2^61, so Div64 is safe.
func (dec *Decryptor) roundDecode(p ring.Poly) *Message {

	q := dec.params.Q()
	t := dec.params.T()
	qHalf := dec.params.QHalf()

	coeffs := make([]uint64, len(p.Coeffs))
	for i, c := range p.Coeffs {
		hi, lo := bits.Mul64(c, t)
		lo, carry := bits.Add64(lo, qHalf, 0)
		hi += carry
		quo, _ := bits.Div64(hi, lo, q)
		coeffs[i] = quo % t
	}

	return &Message{Value: ring.NewPoly(coeffs)}
}
