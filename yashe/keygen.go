package yashe

import (
	"errors"

	"github.com/inversed-tech/eyelid-go/ring"
	"github.com/inversed-tech/eyelid-go/utils/sampling"
)

// maxSecretKeyAttempts bounds the rejection loop in GenSecretKey. The
// probability of a sampled key being non-invertible is roughly N/q, so
// exhausting this bound indicates a broken parameter set rather than bad
// luck.
const maxSecretKeyAttempts = 4096

// KeyGenerator generates YASHE key pairs.
type KeyGenerator struct {
	params   Parameters
	gaussian *ring.GaussianSampler
}

// NewKeyGenerator creates a KeyGenerator drawing randomness from prng.
func NewKeyGenerator(params Parameters, prng sampling.PRNG) *KeyGenerator {
	return &KeyGenerator{
		params:   params,
		gaussian: ring.NewGaussianSampler(prng, params.RingQ(), params.Sigma()),
	}
}

// GenSecretKey samples f from the error distribution until t*f + 1 is
// invertible in the ring, then returns the key triple. It panics if the
// rejection loop exceeds maxSecretKeyAttempts, which only happens for
// degenerate parameter sets.
func (kg *KeyGenerator) GenSecretKey() *SecretKey {

	r := kg.params.RingQ()
	t := kg.params.T()

	for i := 0; i < maxSecretKeyAttempts; i++ {

		f := kg.gaussian.ReadNew()

		// key = t*f + 1
		key := r.Add(r.ScalarMul(f, t), ring.One())

		keyInv, err := r.Inverse(key)
		if err != nil {
			if errors.Is(err, ring.ErrNonInvertible) || errors.Is(err, ring.ErrZeroPolynomial) {
				continue
			}
			panic(err)
		}

		return &SecretKey{F: f, Key: key, KeyInv: keyInv}
	}

	panic("yashe: failed to sample an invertible secret key, parameters are degenerate")
}

// GenPublicKey derives the public key h = t * g * keyInv, with g sampled
// from the error distribution.
func (kg *KeyGenerator) GenPublicKey(sk *SecretKey) *PublicKey {

	r := kg.params.RingQ()
	t := kg.params.T()

	g := kg.gaussian.ReadNew()
	h := r.MulNew(r.ScalarMul(g, t), sk.KeyInv)

	return &PublicKey{H: h}
}

// GenKeyPair generates a fresh secret key and its matching public key.
func (kg *KeyGenerator) GenKeyPair() (*SecretKey, *PublicKey) {
	sk := kg.GenSecretKey()
	return sk, kg.GenPublicKey(sk)
}
