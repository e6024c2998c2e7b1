package ring

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/inversed-tech/eyelid-go/utils/sampling"
)

const testQ = 65537

func testString(opname string, r *Ring) string {
	return fmt.Sprintf("%s/N=%d/Q=%d", opname, r.N, r.Modulus)
}

func testRing(t *testing.T, N int) *Ring {
	r, err := NewRing(N, testQ)
	require.NoError(t, err)
	return r
}

func testSampler(t *testing.T, r *Ring, seed byte) *UniformSampler {
	prng, err := sampling.NewKeyedPRNG([]byte{seed})
	require.NoError(t, err)
	return NewUniformSampler(prng, r)
}

func TestNewRing(t *testing.T) {

	t.Run("InvalidDegree", func(t *testing.T) {
		for _, n := range []int{0, 1, 3, 12, -8} {
			_, err := NewRing(n, testQ)
			require.Error(t, err, "N=%d", n)
		}
	})

	t.Run("InvalidModulus", func(t *testing.T) {
		for _, q := range []uint64{0, 1, 65536, 65535, 1 << 62} {
			_, err := NewRing(8, q)
			require.Error(t, err, "Q=%d", q)
		}
	})

	t.Run("Valid", func(t *testing.T) {
		r, err := NewRing(8, testQ)
		require.NoError(t, err)
		require.Equal(t, 8, r.N)
		require.Equal(t, uint64(testQ), r.Modulus)
	})

	t.Run("CyclotomicModulus", func(t *testing.T) {
		r := testRing(t, 8)
		mod := r.CyclotomicModulus()
		require.Equal(t, 8, mod.Degree())
		require.Equal(t, uint64(1), mod.Coeff(0))
		require.Equal(t, uint64(1), mod.Coeff(8))
		for i := 1; i < 8; i++ {
			require.Equal(t, uint64(0), mod.Coeff(i))
		}
	})
}

func TestPolyConstructors(t *testing.T) {

	t.Run("NewPolyTrims", func(t *testing.T) {
		p := NewPoly([]uint64{1, 2, 0, 0})
		require.Equal(t, []uint64{1, 2}, p.Coeffs)
		require.Equal(t, 1, p.Degree())
	})

	t.Run("Zero", func(t *testing.T) {
		p := Zero()
		require.True(t, p.IsZero())
		require.Equal(t, -1, p.Degree())
	})

	t.Run("One", func(t *testing.T) {
		p := One()
		require.True(t, p.IsOne())
		require.Equal(t, 0, p.Degree())
	})

	t.Run("Monomial", func(t *testing.T) {
		p := Monomial(3)
		require.Equal(t, 3, p.Degree())
		require.Equal(t, uint64(1), p.Coeff(3))
		require.Equal(t, uint64(0), p.Coeff(2))
	})

	t.Run("CoeffBeyondDegree", func(t *testing.T) {
		p := NewPoly([]uint64{5})
		require.Equal(t, uint64(0), p.Coeff(7))
	})
}

func TestAddSubNeg(t *testing.T) {

	r := testRing(t, 16)
	sampler := testSampler(t, r, 0x01)

	t.Run(testString("AddNegIsZero", r), func(t *testing.T) {
		for i := 0; i < 16; i++ {
			a := sampler.ReadNew()
			require.True(t, r.Add(a, r.Neg(a)).IsZero())
		}
	})

	t.Run(testString("SubIsAddNeg", r), func(t *testing.T) {
		for i := 0; i < 16; i++ {
			a, b := sampler.ReadNew(), sampler.ReadNew()
			require.True(t, r.Sub(a, b).Equal(r.Add(a, r.Neg(b))))
		}
	})

	t.Run(testString("CancellationTrims", r), func(t *testing.T) {
		a := NewPoly([]uint64{1, 1})
		b := NewPoly([]uint64{2, testQ - 1})
		sum := r.Add(a, b)
		require.Equal(t, 0, sum.Degree())
		require.Equal(t, uint64(3), sum.Coeff(0))
	})
}

func TestScalarMul(t *testing.T) {

	r := testRing(t, 16)

	t.Run(testString("ByZeroIsZero", r), func(t *testing.T) {
		a := NewPoly([]uint64{1, 2, 3})
		require.True(t, r.ScalarMul(a, 0).IsZero())
	})

	t.Run(testString("ByOneIsIdentity", r), func(t *testing.T) {
		a := NewPoly([]uint64{1, 2, 3})
		require.True(t, r.ScalarMul(a, 1).Equal(a))
	})
}

func TestReduceModCyclotomic(t *testing.T) {

	r := testRing(t, 8)

	t.Run(testString("Fold", r), func(t *testing.T) {
		// X^8 = -1, X^9 = -X
		p := NewPoly([]uint64{0, 0, 0, 0, 0, 0, 0, 0, 1, 1})
		r.ReduceModCyclotomic(&p)
		require.Equal(t, uint64(testQ-1), p.Coeff(0))
		require.Equal(t, uint64(testQ-1), p.Coeff(1))
		require.LessOrEqual(t, p.Degree(), 7)
	})

	t.Run(testString("Idempotent", r), func(t *testing.T) {
		sampler := testSampler(t, r, 0x02)
		p := sampler.ReadNew()
		q := p.CopyNew()
		r.ReduceModCyclotomic(&q)
		require.True(t, p.Equal(q))
	})

	t.Run(testString("FoldCancellation", r), func(t *testing.T) {
		// X^8 folds onto the constant term and cancels it exactly.
		p := NewPoly([]uint64{1, 0, 0, 0, 0, 0, 0, 0, 1})
		r.ReduceModCyclotomic(&p)
		require.True(t, p.IsZero())
	})
}

func TestCyclotomicWraparound(t *testing.T) {

	for _, n := range []int{8, 16, 64} {
		r := testRing(t, n)
		sampler := testSampler(t, r, 0x03)

		t.Run(testString("MulByXPowNMinus1", r), func(t *testing.T) {
			p := sampler.ReadNew()
			res := r.MulNew(p, Monomial(n-1))
			for i := 0; i < n-1; i++ {
				require.Equal(t, r.negMod(p.Coeff(i+1)), res.Coeff(i), "index %d", i)
			}
			require.Equal(t, p.Coeff(0), res.Coeff(n-1))
		})

		t.Run(testString("MaxDegreeIdentity", r), func(t *testing.T) {
			minusOne := NewPoly([]uint64{testQ - 1})
			for i := 0; i <= n; i++ {
				res := r.MulNew(Monomial(i), Monomial(n-i))
				require.True(t, res.Equal(minusOne), "X^%d * X^%d", i, n-i)
			}
		})
	}
}

func TestEqualAndHash(t *testing.T) {

	a := NewPoly([]uint64{1, 2, 3})
	b := NewPoly([]uint64{1, 2, 3, 0})
	c := NewPoly([]uint64{1, 2, 4})

	require.True(t, a.Equal(b))
	require.Equal(t, a.Hash(), b.Hash())
	require.False(t, a.Equal(c))
	require.NotEqual(t, a.Hash(), c.Hash())
}

func TestPolyMarshalling(t *testing.T) {

	t.Run("RoundTrip", func(t *testing.T) {
		r := testRing(t, 16)
		sampler := testSampler(t, r, 0x04)
		p := sampler.ReadNew()

		data, err := p.MarshalBinary()
		require.NoError(t, err)

		var q Poly
		require.NoError(t, q.UnmarshalBinary(data))
		require.True(t, p.Equal(q))
	})

	t.Run("ZeroPoly", func(t *testing.T) {
		data, err := Zero().MarshalBinary()
		require.NoError(t, err)

		var q Poly
		require.NoError(t, q.UnmarshalBinary(data))
		require.True(t, q.IsZero())
	})

	t.Run("RejectNonCanonical", func(t *testing.T) {
		data, err := NewPoly([]uint64{1, 2}).MarshalBinary()
		require.NoError(t, err)

		// Forge a trailing zero coefficient.
		forged := make([]byte, len(data)+8)
		copy(forged, data)
		forged[3] = data[3] + 1

		var q Poly
		require.Error(t, q.UnmarshalBinary(forged))
	})

	t.Run("RejectTruncated", func(t *testing.T) {
		data, err := NewPoly([]uint64{1, 2}).MarshalBinary()
		require.NoError(t, err)

		var q Poly
		require.Error(t, q.UnmarshalBinary(data[:len(data)-4]))
	})
}
