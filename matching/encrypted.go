package matching

import (
	"fmt"

	"github.com/inversed-tech/eyelid-go/yashe"
)

// EncryptedCode is an encrypted iris code as stored in the database: one
// data and one mask ciphertext per block of rows.
type EncryptedCode struct {
	Data  []*yashe.Ciphertext
	Masks []*yashe.Ciphertext
}

// EncryptedQuery is an encrypted iris code in its query encoding, to be
// matched against an EncryptedCode.
type EncryptedQuery struct {
	Data  []*yashe.Ciphertext
	Masks []*yashe.Ciphertext
}

// EncryptCode encrypts the plaintext block polynomials of a storage-encoded
// iris code.
func EncryptCode(enc *yashe.Encryptor, data, masks []*yashe.Message) (*EncryptedCode, error) {
	d, m, err := encryptBlocks(enc, data, masks)
	if err != nil {
		return nil, err
	}
	return &EncryptedCode{Data: d, Masks: m}, nil
}

// EncryptQuery encrypts the plaintext block polynomials of a query-encoded
// iris code.
func EncryptQuery(enc *yashe.Encryptor, data, masks []*yashe.Message) (*EncryptedQuery, error) {
	d, m, err := encryptBlocks(enc, data, masks)
	if err != nil {
		return nil, err
	}
	return &EncryptedQuery{Data: d, Masks: m}, nil
}

func encryptBlocks(enc *yashe.Encryptor, data, masks []*yashe.Message) ([]*yashe.Ciphertext, []*yashe.Ciphertext, error) {
	if len(data) != len(masks) {
		return nil, nil, fmt.Errorf("mismatched block counts (%d data blocks but %d mask blocks)", len(data), len(masks))
	}
	d := make([]*yashe.Ciphertext, len(data))
	m := make([]*yashe.Ciphertext, len(masks))
	for i := range data {
		d[i] = enc.EncryptNew(data[i])
		m[i] = enc.EncryptNew(masks[i])
	}
	return d, m, nil
}
