package yashe

import (
	"github.com/inversed-tech/eyelid-go/ring"
)

// SecretKey holds the secret key material. F is the sampled Gaussian
// polynomial, Key = t*F + 1 is the polynomial actually applied during
// decryption, and KeyInv is its inverse in the ring.
type SecretKey struct {
	F      ring.Poly
	Key    ring.Poly
	KeyInv ring.Poly
}

// PublicKey holds the public key h = t * g * KeyInv.
type PublicKey struct {
	H ring.Poly
}

// CopyNew returns a deep copy of the secret key.
func (sk *SecretKey) CopyNew() *SecretKey {
	return &SecretKey{
		F:      sk.F.CopyNew(),
		Key:    sk.Key.CopyNew(),
		KeyInv: sk.KeyInv.CopyNew(),
	}
}

// CopyNew returns a deep copy of the public key.
func (pk *PublicKey) CopyNew() *PublicKey {
	return &PublicKey{H: pk.H.CopyNew()}
}

// Equal reports whether two secret keys are identical.
func (sk *SecretKey) Equal(other *SecretKey) bool {
	return sk.F.Equal(other.F) && sk.Key.Equal(other.Key) && sk.KeyInv.Equal(other.KeyInv)
}

// Equal reports whether two public keys are identical.
func (pk *PublicKey) Equal(other *PublicKey) bool {
	return pk.H.Equal(other.H)
}

// MarshalBinary encodes the public key into a byte slice.
func (pk *PublicKey) MarshalBinary() ([]byte, error) {
	return pk.H.MarshalBinary()
}

// UnmarshalBinary decodes a byte slice produced by MarshalBinary.
func (pk *PublicKey) UnmarshalBinary(data []byte) error {
	return pk.H.UnmarshalBinary(data)
}
