package yashe

import (
	"github.com/inversed-tech/eyelid-go/ring"
	"github.com/inversed-tech/eyelid-go/utils/sampling"
)

// Encryptor encrypts messages under a public key.
type Encryptor struct {
	params   Parameters
	pk       *PublicKey
	gaussian *ring.GaussianSampler
}

// NewEncryptor creates an Encryptor drawing randomness from prng.
func NewEncryptor(params Parameters, pk *PublicKey, prng sampling.PRNG) *Encryptor {
	return &Encryptor{
		params:   params,
		pk:       pk,
		gaussian: ring.NewGaussianSampler(prng, params.RingQ(), params.Sigma()),
	}
}

// EncryptNew encrypts m and returns the fresh ciphertext
//
//	c = h*s + e + floor(q/t)*m
//
// with s and e sampled from the error distribution. The message coefficients
// must lie in [0, t).
func (enc *Encryptor) EncryptNew(m *Message) *Ciphertext {

	r := enc.params.RingQ()

	s := enc.gaussian.ReadNew()
	e := enc.gaussian.ReadNew()

	c := r.Add(r.Add(r.MulNew(enc.pk.H, s), e), r.ScalarMul(m.Value, enc.params.QDivT()))

	return &Ciphertext{Value: c}
}
