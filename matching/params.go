// Package matching implements the encrypted iris-matching protocol on top of
// the yashe scheme. Iris codes arrive already encoded as plaintext polynomial
// blocks; this package encrypts them, computes encrypted inner products per
// rotation, and extracts a match decision.
package matching

import (
	"fmt"

	"github.com/inversed-tech/eyelid-go/yashe"
)

// Params describes the geometry and threshold of the matching protocol.
type Params struct {
	// RowsPerBlock is the number of iris rows packed into one polynomial.
	RowsPerBlock int
	// Columns is the number of columns in the iris code.
	Columns int
	// RotationLimit is the maximum column rotation checked in each
	// direction.
	RotationLimit int
	// MatchNumerator over MatchDenominator is the relative Hamming
	// distance threshold below which two codes match.
	MatchNumerator int
	// MatchDenominator is the denominator of the threshold fraction.
	MatchDenominator int
}

// RotationComparisons returns the number of rotations compared, covering
// [-RotationLimit, RotationLimit].
func (p Params) RotationComparisons() int {
	return 2*p.RotationLimit + 1
}

// ColumnsAndPads returns the number of columns plus the padding that makes
// room for rotations.
func (p Params) ColumnsAndPads() int {
	return p.Columns + 2*p.RotationLimit
}

// Validate checks the geometry against the scheme parameters: every block of
// RowsPerBlock rows must fit into one ring element.
func (p Params) Validate(scheme yashe.Parameters) error {
	switch {
	case p.RowsPerBlock < 1:
		return fmt.Errorf("invalid RowsPerBlock (must be positive but is %d)", p.RowsPerBlock)
	case p.Columns < 1:
		return fmt.Errorf("invalid Columns (must be positive but is %d)", p.Columns)
	case p.RotationLimit < 0:
		return fmt.Errorf("invalid RotationLimit (must be non-negative but is %d)", p.RotationLimit)
	case p.MatchNumerator < 0 || p.MatchDenominator < 1 || p.MatchNumerator > p.MatchDenominator:
		return fmt.Errorf("invalid threshold (%d/%d is not a fraction in [0, 1])", p.MatchNumerator, p.MatchDenominator)
	}
	if need := p.RowsPerBlock * p.ColumnsAndPads(); need > scheme.N() {
		return fmt.Errorf("block does not fit the ring (%d coefficients needed but N is %d)", need, scheme.N())
	}
	return nil
}
