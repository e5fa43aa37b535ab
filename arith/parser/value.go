package parser

import (
	"errors"
	"math/big"
	"strconv"
)

var ErrDivisionByZero = errors.New("division by zero")

// Value is the running result of an evaluation, held as an exact
// rational. The zero Value is invalid: it stands for a subexpression that
// was lost to error recovery and absorbs every operation it takes part in.
type Value struct {
	rat *big.Rat
}

// Number returns a valid Value equal to r. r is copied.
func Number(r *big.Rat) Value {
	return Value{rat: new(big.Rat).Set(r)}
}

// Int returns a valid Value equal to n. n is copied.
func Int(n *big.Int) Value {
	return Value{rat: new(big.Rat).SetInt(n)}
}

func Int64(n int64) Value {
	return Value{rat: new(big.Rat).SetInt64(n)}
}

func (v Value) Valid() bool {
	return v.rat != nil
}

// Rat returns a copy of the exact value, or nil for an invalid Value.
func (v Value) Rat() *big.Rat {
	if v.rat == nil {
		return nil
	}
	return new(big.Rat).Set(v.rat)
}

// Float returns the nearest float64. It is ±Inf for values beyond the
// float64 range.
func (v Value) Float() float64 {
	if v.rat == nil {
		return 0
	}
	f, _ := v.rat.Float64()
	return f
}

// String renders integers and terminating fractions exactly ("33",
// "2.5"). Fractions with no finite decimal form are rounded to the
// nearest float64 ("0.3333333333333333").
func (v Value) String() string {
	if v.rat == nil {
		return "<invalid>"
	}
	if v.rat.IsInt() {
		return v.rat.Num().String()
	}
	if digits, ok := decimalDigits(v.rat.Denom()); ok {
		return v.rat.FloatString(digits)
	}
	return strconv.FormatFloat(v.Float(), 'g', -1, 64)
}

// decimalDigits reports how many fractional digits 1/denom needs, and
// whether that number is finite (denom has no prime factors besides 2
// and 5).
func decimalDigits(denom *big.Int) (int, bool) {
	d := new(big.Int).Set(denom)
	rem := new(big.Int)
	count := func(factor int64) int {
		f := big.NewInt(factor)
		n := 0
		for rem.Rem(d, f).Sign() == 0 {
			d.Quo(d, f)
			n++
		}
		return n
	}
	twos, fives := count(2), count(5)
	if !d.IsInt64() || d.Int64() != 1 {
		return 0, false
	}
	return max(twos, fives), true
}

// Apply folds rhs into v with the binary operator op. Division is exact
// and a zero divisor is an error.
func (v Value) Apply(op TokenKind, rhs Value) (Value, error) {
	if v.rat == nil || rhs.rat == nil {
		return Value{}, nil
	}
	result := new(big.Rat)
	switch op {
	case TokenPlus:
		result.Add(v.rat, rhs.rat)
	case TokenMinus:
		result.Sub(v.rat, rhs.rat)
	case TokenStar:
		result.Mul(v.rat, rhs.rat)
	case TokenSlash:
		if rhs.rat.Sign() == 0 {
			return Value{}, ErrDivisionByZero
		}
		result.Quo(v.rat, rhs.rat)
	default:
		return Value{}, errors.New("unsupported operator " + op.String())
	}
	return Value{rat: result}, nil
}
