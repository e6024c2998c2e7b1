package ring

import (
	"github.com/inversed-tech/eyelid-go/utils/sampling"
)

// BinarySampler samples polynomials with independent uniform coefficients in
// {0, 1}.
type BinarySampler struct {
	baseSampler
}

// NewBinarySampler creates a sampler for binary coefficients.
func NewBinarySampler(prng sampling.PRNG, baseRing *Ring) *BinarySampler {
	return &BinarySampler{baseSampler{prng: prng, baseRing: baseRing}}
}

// Read overwrites pol with a fresh binary sample, consuming one PRNG bit per
// coefficient.
func (s *BinarySampler) Read(pol *Poly) {
	coeffs := make([]uint64, s.baseRing.N)
	var word uint64
	for i := range coeffs {
		if i&63 == 0 {
			word = s.randUint64()
		}
		coeffs[i] = word & 1
		word >>= 1
	}
	pol.Coeffs = coeffs
	pol.trim()
}

// ReadNew returns a fresh binary sample.
func (s *BinarySampler) ReadNew() (pol Poly) {
	s.Read(&pol)
	return
}
