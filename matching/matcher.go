package matching

import (
	"errors"
	"fmt"

	"github.com/inversed-tech/eyelid-go/yashe"
)

// ErrCoefficientRange reports a decrypted inner product outside the range the
// geometry allows, which means the noise budget was exceeded and the
// decryption is corrupt.
var ErrCoefficientRange = errors.New("matching: inner product out of range")

// MatchError wraps a failure of the matching protocol with the rotation and
// block it occurred in.
type MatchError struct {
	Block int
	Err   error
}

func (e *MatchError) Error() string {
	return fmt.Sprintf("matching: block %d: %s", e.Block, e.Err)
}

func (e *MatchError) Unwrap() error {
	return e.Err
}

// Matcher holds the key material and parameters of the decrypting party.
type Matcher struct {
	params Params
	scheme yashe.Parameters
	eval   *yashe.Evaluator
	dec    *yashe.Decryptor
}

// NewMatcher creates a Matcher. The secret key is consumed locally by
// decryption and never leaves the Matcher.
func NewMatcher(params Params, scheme yashe.Parameters, sk *yashe.SecretKey) (*Matcher, error) {
	if err := params.Validate(scheme); err != nil {
		return nil, err
	}
	return &Matcher{
		params: params,
		scheme: scheme,
		eval:   yashe.NewEvaluator(scheme),
		dec:    yashe.NewDecryptor(scheme, sk),
	}, nil
}

// IsMatch reports whether the query and the stored code agree on enough bits
// at any rotation. For each rotation it compares the Hamming distance against
// the threshold:
//
//	(t - d) * denominator <= 2 * t * numerator
//
// where d is the signed agreement count (equal bits minus different bits) and
// t is the number of bits visible in both masks.
func (m *Matcher) IsMatch(query *EncryptedQuery, code *EncryptedCode) (bool, error) {

	matchCounts, err := m.accumulateInnerProducts(query.Data, code.Data)
	if err != nil {
		return false, err
	}
	maskCounts, err := m.accumulateInnerProducts(query.Masks, code.Masks)
	if err != nil {
		return false, err
	}

	for r, d := range matchCounts {
		t := maskCounts[r]
		if (t-d)*int64(m.params.MatchDenominator) <= 2*t*int64(m.params.MatchNumerator) {
			return true, nil
		}
	}

	return false, nil
}

// accumulateInnerProducts multiplies corresponding ciphertext blocks,
// decrypts each product, and extracts the inner products of the rotation
// window, summing them per rotation across all blocks.
//
// The encoding layer places the inner product of the left-most rotation at
// coefficient RowsPerBlock*ColumnsAndPads - RotationComparisons and the
// following rotations at the subsequent coefficients.
func (m *Matcher) accumulateInnerProducts(a, b []*yashe.Ciphertext) ([]int64, error) {

	if len(a) != len(b) {
		return nil, fmt.Errorf("matching: mismatched block counts (%d vs %d)", len(a), len(b))
	}

	comparisons := m.params.RotationComparisons()
	skip := m.params.RowsPerBlock*m.params.ColumnsAndPads() - comparisons
	maxCount := int64(m.params.RowsPerBlock * m.params.ColumnsAndPads())

	counts := make([]int64, comparisons)
	for block := range a {

		product := m.eval.MulNew(a[block], b[block])
		decrypted := m.dec.DecryptMulNew(product)

		for r := 0; r < comparisons; r++ {
			v, err := m.coeffToInt(decrypted.Value.Coeff(skip + r))
			if err != nil {
				return nil, &MatchError{Block: block, Err: err}
			}
			if v > maxCount || v < -maxCount {
				return nil, &MatchError{Block: block, Err: ErrCoefficientRange}
			}
			counts[r] += v
		}
	}

	return counts, nil
}

// coeffToInt converts a plaintext coefficient in [0, t) to its centered
// signed representative.
func (m *Matcher) coeffToInt(c uint64) (int64, error) {
	t := m.scheme.T()
	if c >= t {
		return 0, ErrCoefficientRange
	}
	if c > t/2 {
		return -int64(t - c), nil
	}
	return int64(c), nil
}
