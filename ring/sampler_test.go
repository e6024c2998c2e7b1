package ring

import (
	"testing"

	"github.com/montanaflynn/stats"
	"github.com/stretchr/testify/require"

	"github.com/inversed-tech/eyelid-go/utils/sampling"
)

func TestUniformSampler(t *testing.T) {

	r := testRing(t, 64)

	t.Run(testString("Bounds", r), func(t *testing.T) {
		sampler := testSampler(t, r, 0x30)
		for i := 0; i < 8; i++ {
			p := sampler.ReadNew()
			require.LessOrEqual(t, len(p.Coeffs), r.N)
			for _, c := range p.Coeffs {
				require.Less(t, c, r.Modulus)
			}
		}
	})

	t.Run(testString("BoundedBounds", r), func(t *testing.T) {
		prng, err := sampling.NewKeyedPRNG([]byte{0x31})
		require.NoError(t, err)
		sampler, err := NewBoundedUniformSampler(prng, r, 17)
		require.NoError(t, err)

		for i := 0; i < 8; i++ {
			for _, c := range sampler.ReadNew().Coeffs {
				require.Less(t, c, uint64(17))
			}
		}
	})

	t.Run(testString("InvalidBound", r), func(t *testing.T) {
		prng, err := sampling.NewKeyedPRNG([]byte{0x32})
		require.NoError(t, err)

		_, err = NewBoundedUniformSampler(prng, r, 1)
		require.Error(t, err)
		_, err = NewBoundedUniformSampler(prng, r, r.Modulus+1)
		require.Error(t, err)
	})
}

func TestGaussianSampler(t *testing.T) {

	r := testRing(t, 512)
	sigma := 3.2

	prng, err := sampling.NewKeyedPRNG([]byte{0x33})
	require.NoError(t, err)
	sampler := NewGaussianSampler(prng, r, sigma)

	t.Run(testString("Distribution", r), func(t *testing.T) {

		var values []float64
		for i := 0; i < 16; i++ {
			p := sampler.ReadNew()
			for j := 0; j < r.N; j++ {
				c := p.Coeff(j)
				if c > r.Modulus>>1 {
					values = append(values, -float64(r.Modulus-c))
				} else {
					values = append(values, float64(c))
				}
			}
		}

		mean, err := stats.Mean(values)
		require.NoError(t, err)
		require.InDelta(t, 0, mean, 0.5)

		std, err := stats.StandardDeviation(values)
		require.NoError(t, err)
		require.InDelta(t, sigma, std, 0.5)
	})
}

func TestBinarySampler(t *testing.T) {

	r := testRing(t, 64)

	prng, err := sampling.NewKeyedPRNG([]byte{0x34})
	require.NoError(t, err)
	sampler := NewBinarySampler(prng, r)

	ones := 0
	for i := 0; i < 16; i++ {
		p := sampler.ReadNew()
		for j := 0; j < r.N; j++ {
			c := p.Coeff(j)
			require.LessOrEqual(t, c, uint64(1))
			if c == 1 {
				ones++
			}
		}
	}
	// 1024 fair coin flips land near 512 heads.
	require.InDelta(t, 512, ones, 128)
}

func TestKeyedDeterminism(t *testing.T) {

	r := testRing(t, 64)
	key := []byte{'d', 'e', 't'}

	prng1, err := sampling.NewKeyedPRNG(key)
	require.NoError(t, err)
	prng2, err := sampling.NewKeyedPRNG(key)
	require.NoError(t, err)

	s1 := NewUniformSampler(prng1, r)
	s2 := NewUniformSampler(prng2, r)

	for i := 0; i < 4; i++ {
		require.True(t, s1.ReadNew().Equal(s2.ReadNew()))
	}
}
