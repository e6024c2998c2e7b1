package yashe

import (
	"github.com/inversed-tech/eyelid-go/ring"
)

// Ciphertext is a YASHE ciphertext: a single ring element. Fresh ciphertexts
// and homomorphic sums decrypt with Decryptor.DecryptNew; products of two
// ciphertexts carry the secret key squared and decrypt with
// Decryptor.DecryptMulNew.
type Ciphertext struct {
	Value ring.Poly
}

// NewCiphertext wraps a ring element in a Ciphertext.
func NewCiphertext(value ring.Poly) *Ciphertext {
	return &Ciphertext{Value: value}
}

// CopyNew returns a deep copy of the ciphertext.
func (ct *Ciphertext) CopyNew() *Ciphertext {
	return &Ciphertext{Value: ct.Value.CopyNew()}
}

// Equal reports whether two ciphertexts are identical.
func (ct *Ciphertext) Equal(other *Ciphertext) bool {
	return ct.Value.Equal(other.Value)
}

// MarshalBinary encodes the ciphertext into a byte slice.
func (ct *Ciphertext) MarshalBinary() ([]byte, error) {
	return ct.Value.MarshalBinary()
}

// UnmarshalBinary decodes a byte slice produced by MarshalBinary.
func (ct *Ciphertext) UnmarshalBinary(data []byte) error {
	return ct.Value.UnmarshalBinary(data)
}
