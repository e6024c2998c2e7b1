package ring

import (
	"encoding/binary"

	"github.com/inversed-tech/eyelid-go/utils/sampling"
)

// Sampler is an interface for random ring element samplers. A sampler fills
// all N coefficient slots according to its distribution and restores
// canonical form, so the (unlikely) event of a zero leading coefficient still
// yields a valid polynomial.
//
// Samplers are not safe for concurrent use: they share their PRNG stream.
type Sampler interface {
	// Read overwrites pol with a fresh sample.
	Read(pol *Poly)
	// ReadNew returns a fresh sample as a new polynomial.
	ReadNew() Poly
}

type baseSampler struct {
	prng     sampling.PRNG
	baseRing *Ring
	buff     [8]byte
}

// randUint64 reads the next 8 bytes of the PRNG stream as an unsigned
// integer. PRNG failures indicate a broken entropy source and are not
// recoverable.
func (b *baseSampler) randUint64() uint64 {
	if _, err := b.prng.Read(b.buff[:]); err != nil {
		panic(err)
	}
	return binary.LittleEndian.Uint64(b.buff[:])
}

// randFloat64 returns a uniform float in [0, 1) with 53 bits of precision.
func (b *baseSampler) randFloat64() float64 {
	return float64(b.randUint64()>>11) * (1.0 / (1 << 53))
}
