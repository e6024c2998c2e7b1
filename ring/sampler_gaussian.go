package ring

import (
	"math"

	"github.com/inversed-tech/eyelid-go/utils/sampling"
)

// GaussianSampler samples polynomials whose coefficients follow a rounded
// centered Gaussian of standard deviation sigma, reduced into [0, q).
type GaussianSampler struct {
	baseSampler
	sigma float64

	spare    float64
	hasSpare bool
}

// NewGaussianSampler creates a sampler for discrete Gaussian coefficients of
// standard deviation sigma.
func NewGaussianSampler(prng sampling.PRNG, baseRing *Ring, sigma float64) *GaussianSampler {
	return &GaussianSampler{
		baseSampler: baseSampler{prng: prng, baseRing: baseRing},
		sigma:       sigma,
	}
}

// Read overwrites pol with a fresh Gaussian sample.
func (s *GaussianSampler) Read(pol *Poly) {
	q := s.baseRing.Modulus
	coeffs := make([]uint64, s.baseRing.N)
	for i := range coeffs {
		x := math.Round(s.normFloat64() * s.sigma)
		if x < 0 {
			coeffs[i] = q - uint64(-x)
		} else {
			coeffs[i] = uint64(x)
		}
	}
	pol.Coeffs = coeffs
	pol.trim()
}

// ReadNew returns a fresh Gaussian sample.
func (s *GaussianSampler) ReadNew() (pol Poly) {
	s.Read(&pol)
	return
}

// normFloat64 returns a standard normal variate using the Marsaglia polar
// method, caching the spare variate between calls.
func (s *GaussianSampler) normFloat64() float64 {
	if s.hasSpare {
		s.hasSpare = false
		return s.spare
	}
	for {
		u := 2*s.randFloat64() - 1
		v := 2*s.randFloat64() - 1
		r := u*u + v*v
		if r >= 1 || r == 0 {
			continue
		}
		f := math.Sqrt(-2 * math.Log(r) / r)
		s.spare = v * f
		s.hasSpare = true
		return u * f
	}
}
