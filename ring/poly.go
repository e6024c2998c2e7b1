package ring

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/zeebo/blake3"

	"github.com/inversed-tech/eyelid-go/utils"
)

// Poly is a dense polynomial over Z_q, with Coeffs[0] holding the constant
// term. A Poly is always kept in canonical form: the last stored coefficient
// is non-zero, and the zero polynomial stores no coefficients.
//
// A Poly is bound to the Ring it was created for; combining polynomials from
// rings with different N or Modulus is a caller bug.
type Poly struct {
	Coeffs []uint64
}

// NewPoly creates a polynomial from the given coefficients (already reduced
// in [0, q)), copying the slice and trimming trailing zeros.
func NewPoly(coeffs []uint64) (p Poly) {
	p.Coeffs = make([]uint64, len(coeffs))
	copy(p.Coeffs, coeffs)
	p.trim()
	return
}

// Zero returns the zero polynomial.
func Zero() Poly {
	return Poly{}
}

// One returns the multiplicative identity polynomial.
func One() Poly {
	return Poly{Coeffs: []uint64{1}}
}

// Monomial returns the polynomial X^k.
func Monomial(k int) Poly {
	coeffs := make([]uint64, k+1)
	coeffs[k] = 1
	return Poly{Coeffs: coeffs}
}

// Degree returns the degree of the polynomial, or -1 for the zero polynomial.
func (p Poly) Degree() int {
	return len(p.Coeffs) - 1
}

// IsZero returns true if p is the zero polynomial.
func (p Poly) IsZero() bool {
	return len(p.Coeffs) == 0
}

// IsOne returns true if p is the constant polynomial 1.
func (p Poly) IsOne() bool {
	return len(p.Coeffs) == 1 && p.Coeffs[0] == 1
}

// Coeff returns the coefficient of X^i, which is zero for any index beyond
// the stored degree. It panics on negative indices.
func (p Poly) Coeff(i int) uint64 {
	if i >= len(p.Coeffs) {
		return 0
	}
	return p.Coeffs[i]
}

// CopyNew returns a deep copy of p.
func (p Poly) CopyNew() (out Poly) {
	out.Coeffs = make([]uint64, len(p.Coeffs))
	copy(out.Coeffs, p.Coeffs)
	return
}

// Equal returns true if p and other hold identical coefficients. Both
// operands are in canonical form by construction, so coefficient equality is
// ring equality.
func (p Poly) Equal(other Poly) bool {
	return utils.EqualSlice(p.Coeffs, other.Coeffs)
}

// Hash returns a blake3 digest of the canonical encoding of p. Equal
// polynomials hash identically.
func (p Poly) Hash() [32]byte {
	data, _ := p.MarshalBinary()
	return blake3.Sum256(data)
}

// trim removes trailing zero coefficients, restoring canonical form.
func (p *Poly) trim() {
	i := len(p.Coeffs)
	for i > 0 && p.Coeffs[i-1] == 0 {
		i--
	}
	p.Coeffs = p.Coeffs[:i]
}

// MarshalBinary encodes p as a 4-byte coefficient count followed by 8 bytes
// per coefficient, big endian.
func (p Poly) MarshalBinary() (data []byte, err error) {
	data = make([]byte, 4+len(p.Coeffs)*8)
	binary.BigEndian.PutUint32(data, uint32(len(p.Coeffs)))
	for i, j := 0, 4; i < len(p.Coeffs); i, j = i+1, j+8 {
		binary.BigEndian.PutUint64(data[j:], p.Coeffs[i])
	}
	return
}

// UnmarshalBinary decodes a slice of bytes on the target polynomial. The
// encoding must be canonical: a stored leading zero coefficient is rejected.
func (p *Poly) UnmarshalBinary(data []byte) (err error) {

	if len(data) < 4 {
		return errors.New("invalid polynomial encoding: too short")
	}

	n := int(binary.BigEndian.Uint32(data))

	if len(data) != 4+n*8 {
		return fmt.Errorf("invalid polynomial encoding: %d bytes for %d coefficients", len(data), n)
	}

	coeffs := make([]uint64, n)
	for i, j := 0, 4; i < n; i, j = i+1, j+8 {
		coeffs[i] = binary.BigEndian.Uint64(data[j:])
	}

	if n > 0 && coeffs[n-1] == 0 {
		return errors.New("invalid polynomial encoding: non-canonical leading zero")
	}

	p.Coeffs = coeffs

	return nil
}
