package ring

import (
	"fmt"
	"math/bits"

	"github.com/inversed-tech/eyelid-go/utils/sampling"
)

// UniformSampler samples polynomials with coefficients uniformly distributed
// in [0, bound). The default bound is the ring modulus; a smaller bound is
// used for plaintext-space sampling.
type UniformSampler struct {
	baseSampler
	bound uint64
	mask  uint64
}

// NewUniformSampler creates a sampler for uniform coefficients in [0, q).
func NewUniformSampler(prng sampling.PRNG, baseRing *Ring) *UniformSampler {
	s, _ := NewBoundedUniformSampler(prng, baseRing, baseRing.Modulus)
	return s
}

// NewBoundedUniformSampler creates a sampler for uniform coefficients in
// [0, bound), for 2 <= bound <= q.
func NewBoundedUniformSampler(prng sampling.PRNG, baseRing *Ring, bound uint64) (*UniformSampler, error) {
	if bound < 2 || bound > baseRing.Modulus {
		return nil, fmt.Errorf("invalid bound (must be in [2, %d] but is %d)", baseRing.Modulus, bound)
	}
	return &UniformSampler{
		baseSampler: baseSampler{prng: prng, baseRing: baseRing},
		bound:       bound,
		mask:        (1 << bits.Len64(bound-1)) - 1,
	}, nil
}

// Read overwrites pol with a fresh uniform sample, using rejection sampling
// on masked PRNG words.
func (s *UniformSampler) Read(pol *Poly) {
	coeffs := make([]uint64, s.baseRing.N)
	for i := range coeffs {
		for {
			if v := s.randUint64() & s.mask; v < s.bound {
				coeffs[i] = v
				break
			}
		}
	}
	pol.Coeffs = coeffs
	pol.trim()
}

// ReadNew returns a fresh uniform sample.
func (s *UniformSampler) ReadNew() (pol Poly) {
	s.Read(&pol)
	return
}
