package yashe

import (
	"math/big"

	"github.com/inversed-tech/eyelid-go/ring"
	"github.com/inversed-tech/eyelid-go/utils"
	"github.com/inversed-tech/eyelid-go/utils/bignum"
	"github.com/inversed-tech/eyelid-go/utils/sampling"
)

// Message is a plaintext: a ring element whose coefficients lie in [0, t).
type Message struct {
	Value ring.Poly
}

// NewMessage wraps a ring element in a Message. The caller is responsible
// for keeping the coefficients below t.
func NewMessage(value ring.Poly) *Message {
	return &Message{Value: value}
}

// NewConstantMessage returns the constant message c mod t.
func NewConstantMessage(params Parameters, c uint64) *Message {
	return &Message{Value: ring.NewPoly([]uint64{c % params.T()})}
}

// SampleMessage returns a message with coefficients uniform in [0, t).
func SampleMessage(params Parameters, prng sampling.PRNG) *Message {
	s, err := ring.NewBoundedUniformSampler(prng, params.RingQ(), params.T())
	if err != nil {
		panic(err)
	}
	return &Message{Value: s.ReadNew()}
}

// SampleBinaryMessage returns a message with coefficients uniform in {0, 1}.
func SampleBinaryMessage(params Parameters, prng sampling.PRNG) *Message {
	return &Message{Value: ring.NewBinarySampler(prng, params.RingQ()).ReadNew()}
}

// CopyNew returns a deep copy of the message.
func (m *Message) CopyNew() *Message {
	return &Message{Value: m.Value.CopyNew()}
}

// Equal reports whether two messages are identical.
func (m *Message) Equal(other *Message) bool {
	return m.Value.Equal(other.Value)
}

// PlaintextAdd returns a + b with coefficients reduced mod t, in the
// cyclotomic ring of degree N over Z_t. It mirrors homomorphic addition.
func PlaintextAdd(params Parameters, a, b *Message) *Message {
	t := params.T()
	n := params.N()
	la, lb := len(a.Value.Coeffs), len(b.Value.Coeffs)
	coeffs := make([]uint64, utils.Max(la, lb))
	for i := range coeffs {
		var va, vb uint64
		if i < la {
			va = a.Value.Coeffs[i]
		}
		if i < lb {
			vb = b.Value.Coeffs[i]
		}
		coeffs[i] = (va + vb) % t
	}
	return &Message{Value: reduceSignedMod(coeffs, n, t)}
}

// PlaintextMul returns a * b mod (X^N + 1, t). It mirrors homomorphic
// multiplication: coefficients are lifted to their centered signed
// representatives before multiplying, then folded with the sign flip of the
// cyclotomic modulus and reduced back into [0, t). The products are
// accumulated as big integers, since t can be as large as q-1 and centered
// products do not fit in a machine word.
func PlaintextMul(params Parameters, a, b *Message) *Message {

	t := params.T()
	tBig := bignum.NewInt(t)
	tHalf := t / 2
	n := params.N()

	la, lb := len(a.Value.Coeffs), len(b.Value.Coeffs)
	if la == 0 || lb == 0 {
		return &Message{Value: ring.Zero()}
	}

	centered := func(v uint64) *big.Int {
		if v > tHalf {
			return bignum.NewInt(-int64(t - v))
		}
		return bignum.NewInt(v)
	}

	prod := make([]*big.Int, la+lb-1)
	for i := range prod {
		prod[i] = new(big.Int)
	}
	tmp := new(big.Int)
	for i, ai := range a.Value.Coeffs {
		if ai == 0 {
			continue
		}
		ca := centered(ai)
		for j, bj := range b.Value.Coeffs {
			prod[i+j].Add(prod[i+j], tmp.Mul(ca, centered(bj)))
		}
	}

	folded := make([]*big.Int, utils.Min(len(prod), n))
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

	coeffs := make([]uint64, len(folded))
	for i, v := range folded {
		coeffs[i] = v.Mod(v, tBig).Uint64()
	}

	return &Message{Value: ring.NewPoly(coeffs)}
}

// reduceSignedMod folds coefficients beyond degree N-1 with the X^N = -1
// sign flip, keeping everything in [0, t).
func reduceSignedMod(coeffs []uint64, n int, t uint64) ring.Poly {
	if len(coeffs) <= n {
		return ring.NewPoly(coeffs)
	}
	out := make([]uint64, n)
	copy(out, coeffs[:n])
	for i := n; i < len(coeffs); i++ {
		pos, deg := i%n, i/n
		if deg&1 == 1 {
			out[pos] = (out[pos] + t - coeffs[i]%t) % t
		} else {
			out[pos] = (out[pos] + coeffs[i]) % t
		}
	}
	return ring.NewPoly(out)
}
