package matching

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/inversed-tech/eyelid-go/ring"
	"github.com/inversed-tech/eyelid-go/utils/sampling"
	"github.com/inversed-tech/eyelid-go/yashe"
)

// Test geometry: one block of 2 rows by 4 columns with rotations in [-1, 1],
// which occupies 2*6 = 12 of the 16 ring coefficients.
var (
	testScheme = yashe.ParametersLiteral{
		LogN:  4,
		Q:     2305843009213693951,
		T:     1024,
		Sigma: 3.2,
	}

	testParams = Params{
		RowsPerBlock:     2,
		Columns:          4,
		RotationLimit:    1,
		MatchNumerator:   36,
		MatchDenominator: 100,
	}
)

type testContext struct {
	scheme  yashe.Parameters
	prng    *sampling.KeyedPRNG
	enc     *yashe.Encryptor
	matcher *Matcher
}

func newTestContext(t *testing.T, seed byte) *testContext {

	scheme, err := yashe.NewParametersFromLiteral(testScheme)
	require.NoError(t, err)

	prng, err := sampling.NewKeyedPRNG([]byte{seed})
	require.NoError(t, err)

	kgen := yashe.NewKeyGenerator(scheme, prng)
	sk, pk := kgen.GenKeyPair()

	matcher, err := NewMatcher(testParams, scheme, sk)
	require.NoError(t, err)

	return &testContext{
		scheme:  scheme,
		prng:    prng,
		enc:     yashe.NewEncryptor(scheme, pk, prng),
		matcher: matcher,
	}
}

// irisBits is a bit matrix in row-major order with its visibility mask.
type irisBits struct {
	bits []uint64
	mask []uint64
}

func newIris(bits []uint64) irisBits {
	mask := make([]uint64, len(bits))
	for i := range mask {
		mask[i] = 1
	}
	return irisBits{bits: bits, mask: mask}
}

func (ir irisBits) at(p Params, row, col int) (bit, visible uint64) {
	i := row*p.Columns + col
	return ir.bits[i], ir.mask[i]
}

// signedBit maps a bit to its plaintext coefficient: equal bits contribute
// +1 to the inner product and different bits -1, so a set bit encodes as -1
// and a cleared bit as +1. Hidden bits encode as 0.
func signedBit(t uint64, bit, visible uint64) uint64 {
	switch {
	case visible == 0:
		return 0
	case bit == 1:
		return t - 1
	default:
		return 1
	}
}

// encodeCode encodes an iris in storage order: within each block, row m of
// the polynomial holds block row rowsPerBlock-1-m with its columns reversed.
func encodeCode(p Params, scheme yashe.Parameters, ir irisBits) (data, masks []*yashe.Message) {

	t := scheme.T()
	delta := p.ColumnsAndPads()

	dataCoeffs := make([]uint64, scheme.N())
	maskCoeffs := make([]uint64, scheme.N())
	for m := 0; m < p.RowsPerBlock; m++ {
		row := p.RowsPerBlock - 1 - m
		for i := 0; i < p.Columns; i++ {
			bit, visible := ir.at(p, row, p.Columns-1-i)
			dataCoeffs[delta*m+i] = signedBit(t, bit, visible)
			maskCoeffs[delta*m+i] = visible
		}
	}

	return []*yashe.Message{yashe.NewMessage(ring.NewPoly(dataCoeffs))},
		[]*yashe.Message{yashe.NewMessage(ring.NewPoly(maskCoeffs))}
}

// encodeQuery encodes an iris in query order: rows in natural order, columns
// repeated cyclically across the rotation padding.
func encodeQuery(p Params, scheme yashe.Parameters, ir irisBits) (data, masks []*yashe.Message) {

	t := scheme.T()
	delta := p.ColumnsAndPads()

	dataCoeffs := make([]uint64, scheme.N())
	maskCoeffs := make([]uint64, scheme.N())
	for m := 0; m < p.RowsPerBlock; m++ {
		for i := 0; i < delta; i++ {
			col := ((i-p.RotationLimit)%p.Columns + p.Columns) % p.Columns
			bit, visible := ir.at(p, m, col)
			dataCoeffs[delta*m+i] = signedBit(t, bit, visible)
			maskCoeffs[delta*m+i] = visible
		}
	}

	return []*yashe.Message{yashe.NewMessage(ring.NewPoly(dataCoeffs))},
		[]*yashe.Message{yashe.NewMessage(ring.NewPoly(maskCoeffs))}
}

func (tc *testContext) encrypt(t *testing.T, ir irisBits) (*EncryptedCode, *EncryptedQuery) {

	codeData, codeMasks := encodeCode(testParams, tc.scheme, ir)
	code, err := EncryptCode(tc.enc, codeData, codeMasks)
	require.NoError(t, err)

	queryData, queryMasks := encodeQuery(testParams, tc.scheme, ir)
	query, err := EncryptQuery(tc.enc, queryData, queryMasks)
	require.NoError(t, err)

	return code, query
}

func TestParamsValidate(t *testing.T) {

	scheme, err := yashe.NewParametersFromLiteral(testScheme)
	require.NoError(t, err)

	require.NoError(t, testParams.Validate(scheme))
	require.Equal(t, 3, testParams.RotationComparisons())
	require.Equal(t, 6, testParams.ColumnsAndPads())

	t.Run("BlockTooLarge", func(t *testing.T) {
		p := testParams
		p.RowsPerBlock = 3
		require.Error(t, p.Validate(scheme))
	})

	t.Run("BadThreshold", func(t *testing.T) {
		p := testParams
		p.MatchNumerator = 101
		require.Error(t, p.Validate(scheme))
	})

	t.Run("BadGeometry", func(t *testing.T) {
		p := testParams
		p.Columns = 0
		require.Error(t, p.Validate(scheme))
	})
}

func TestMatchIdentical(t *testing.T) {

	tc := newTestContext(t, 0x60)
	iris := newIris([]uint64{
		1, 0, 1, 1,
		0, 1, 0, 0,
	})

	code, query := tc.encrypt(t, iris)

	match, err := tc.matcher.IsMatch(query, code)
	require.NoError(t, err)
	require.True(t, match)
}

func TestMatchComplement(t *testing.T) {

	tc := newTestContext(t, 0x61)
	iris := newIris([]uint64{
		1, 0, 1, 1,
		0, 1, 0, 0,
	})
	flipped := newIris([]uint64{
		0, 1, 0, 0,
		1, 0, 1, 1,
	})

	codeData, codeMasks := encodeCode(testParams, tc.scheme, flipped)
	code, err := EncryptCode(tc.enc, codeData, codeMasks)
	require.NoError(t, err)

	queryData, queryMasks := encodeQuery(testParams, tc.scheme, iris)
	query, err := EncryptQuery(tc.enc, queryData, queryMasks)
	require.NoError(t, err)

	match, err := tc.matcher.IsMatch(query, code)
	require.NoError(t, err)
	require.False(t, match)
}

func TestMatchOneBitFlipped(t *testing.T) {

	tc := newTestContext(t, 0x62)
	iris := newIris([]uint64{
		1, 0, 1, 1,
		0, 1, 0, 0,
	})
	almost := newIris([]uint64{
		1, 0, 1, 1,
		0, 1, 0, 1,
	})

	codeData, codeMasks := encodeCode(testParams, tc.scheme, almost)
	code, err := EncryptCode(tc.enc, codeData, codeMasks)
	require.NoError(t, err)

	queryData, queryMasks := encodeQuery(testParams, tc.scheme, iris)
	query, err := EncryptQuery(tc.enc, queryData, queryMasks)
	require.NoError(t, err)

	// One differing bit out of eight is a 12.5% distance, below the 36%
	// threshold.
	match, err := tc.matcher.IsMatch(query, code)
	require.NoError(t, err)
	require.True(t, match)
}

func TestMatchWithPartialMask(t *testing.T) {

	tc := newTestContext(t, 0x63)
	iris := newIris([]uint64{
		1, 0, 1, 1,
		0, 1, 0, 0,
	})
	// Hide the first column of both rows.
	iris.mask[0] = 0
	iris.mask[4] = 0

	code, query := tc.encrypt(t, iris)

	match, err := tc.matcher.IsMatch(query, code)
	require.NoError(t, err)
	require.True(t, match)
}

func TestBlockCountMismatch(t *testing.T) {

	tc := newTestContext(t, 0x64)
	iris := newIris([]uint64{
		1, 0, 1, 1,
		0, 1, 0, 0,
	})

	code, query := tc.encrypt(t, iris)
	code.Data = append(code.Data, code.Data[0])

	_, err := tc.matcher.IsMatch(query, code)
	require.Error(t, err)
}

func TestEncryptBlocksMismatch(t *testing.T) {

	tc := newTestContext(t, 0x65)

	m := yashe.NewMessage(ring.Zero())
	_, err := EncryptCode(tc.enc, []*yashe.Message{m, m}, []*yashe.Message{m})
	require.Error(t, err)
}

func TestCoeffToInt(t *testing.T) {

	tc := newTestContext(t, 0x66)
	m := tc.matcher

	v, err := m.coeffToInt(5)
	require.NoError(t, err)
	require.Equal(t, int64(5), v)

	v, err = m.coeffToInt(tc.scheme.T() - 3)
	require.NoError(t, err)
	require.Equal(t, int64(-3), v)

	_, err = m.coeffToInt(tc.scheme.T())
	require.ErrorIs(t, err, ErrCoefficientRange)
}
