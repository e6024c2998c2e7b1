package bignum

import (
	"fmt"
	"math/big"

	"github.com/ALTree/bigfloat"
)

// NewFloat creates a new big.Float element with prec bits of precision.
// Accepted types for x are: int, int64, uint, uint64, float64, *big.Int, *big.Float.
func NewFloat(x interface{}, prec uint) (y *big.Float) {

	y = new(big.Float)
	y.SetPrec(prec)

	if x == nil {
		return
	}

	switch x := x.(type) {
	case int:
		y.SetInt64(int64(x))
	case int64:
		y.SetInt64(x)
	case uint:
		y.SetUint64(uint64(x))
	case uint64:
		y.SetUint64(x)
	case float64:
		y.SetFloat64(x)
	case *big.Int:
		y.SetInt(x)
	case *big.Float:
		y.Set(x)
	default:
		panic(fmt.Sprintf("invalid x.(type): valid types are int, int64, uint, uint64, float64, *big.Int or *big.Float but is %T", x))
	}

	return
}

// Log2 returns log2(x) with the precision of x. It panics if x is not
// strictly positive.
func Log2(x *big.Float) *big.Float {
	if x.Sign() <= 0 {
		panic("cannot Log2: x must be strictly positive")
	}
	prec := x.Prec()
	ln := bigfloat.Log(x)
	ln2 := bigfloat.Log(NewFloat(2.0, prec))
	return new(big.Float).SetPrec(prec).Quo(ln, ln2)
}
