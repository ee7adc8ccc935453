package numprec

import (
	"fmt"
	"math"
)

// Calc performs decimal-safe arithmetic on float64 values.
// The zero value is ready to use and keeps [DefaultPrec] significant digits
// when suppressing floating-point noise.
// It is designed to be safe for concurrent use by multiple goroutines.
//
// Each operation is carried out in three steps:
//
//  1. Operands are rescaled to integer-valued floats using [Calc.ToInteger].
//  2. The operation is performed on the integers, which is exact as long as
//     they stay within the safe integer range.
//  3. The result is scaled back by the corresponding power of 10.
type Calc struct {
	prec int8 // number of significant digits, 0 means DefaultPrec
}

// NewCalc returns a calculator that keeps prec significant digits
// when suppressing floating-point noise.
//
// NewCalc returns an error if prec is less than 1 or greater than [MaxPrec].
func NewCalc(prec int) (Calc, error) {
	if prec < 1 || prec > MaxPrec {
		return Calc{}, fmt.Errorf("precision %v: %w", prec, errPrecRange)
	}
	return Calc{prec: int8(prec)}, nil
}

// MustNewCalc is like [NewCalc] but panics if the precision is out of range.
func MustNewCalc(prec int) Calc {
	c, err := NewCalc(prec)
	if err != nil {
		panic(fmt.Sprintf("MustNewCalc(%v) failed: %v", prec, err))
	}
	return c
}

// Prec returns the number of significant digits kept by c.
func (c Calc) Prec() int {
	if c.prec == 0 {
		return DefaultPrec
	}
	return int(c.prec)
}

// Round returns x rounded to [Calc.Prec] significant digits.
// See also [RoundPrec].
func (c Calc) Round(x float64) float64 {
	return RoundPrec(x, c.Prec())
}

// ToInteger returns x multiplied by 10^[DigitLength](x), which is the value
// of x with the decimal point removed.
// For example, ToInteger(1.5e-3) is 15.
// Values that are already integers are returned unchanged.
// The result is not range-checked, see [CheckRange].
func (c Calc) ToInteger(x float64) float64 {
	n := DigitLength(x)
	if n == 0 {
		return x
	}
	return c.Round(x * pow10(n))
}

// Mul returns the product x * y * more...
// Operands are multiplied from left to right.
//
// Mul returns an error wrapping [ErrRangeOverflow] if any intermediate integer
// product exceeds the safe integer range.
func (c Calc) Mul(x, y float64, more ...float64) (float64, error) {
	return reduce(c.mul, "*", x, y, more)
}

func (c Calc) mul(x, y float64) (float64, error) {
	xint, yint := c.ToInteger(x), c.ToInteger(y)
	z := xint * yint
	if err := CheckRange(z); err != nil {
		return 0, err
	}
	return z / pow10(DigitLength(x)+DigitLength(y)), nil
}

// Add returns the sum x + y + more...
// Operands are added from left to right.
//
// Add returns an error wrapping [ErrRangeOverflow] if rescaling any operand
// exceeds the safe integer range.
func (c Calc) Add(x, y float64, more ...float64) (float64, error) {
	return reduce(c.add, "+", x, y, more)
}

func (c Calc) add(x, y float64) (float64, error) {
	xs, ys, base, err := c.align(x, y)
	if err != nil {
		return 0, err
	}
	return (xs + ys) / base, nil
}

// Sub returns the difference x - y - more...
// Operands are subtracted from left to right.
//
// Sub returns an error wrapping [ErrRangeOverflow] if rescaling any operand
// exceeds the safe integer range.
func (c Calc) Sub(x, y float64, more ...float64) (float64, error) {
	return reduce(c.sub, "-", x, y, more)
}

func (c Calc) sub(x, y float64) (float64, error) {
	xs, ys, base, err := c.align(x, y)
	if err != nil {
		return 0, err
	}
	return (xs - ys) / base, nil
}

// align scales x and y by a common power of 10, so that both become integers.
func (c Calc) align(x, y float64) (xs, ys, base float64, err error) {
	base = pow10(max(DigitLength(x), DigitLength(y)))
	xs, err = c.mul(x, base)
	if err != nil {
		return 0, 0, 0, err
	}
	ys, err = c.mul(y, base)
	if err != nil {
		return 0, 0, 0, err
	}
	return xs, ys, base, nil
}

// Quo returns the quotient x / y / more...
// Operands are divided from left to right.
// Division by zero is not intercepted and follows IEEE 754:
// the result is ±Inf or NaN.
//
// Quo returns an error wrapping [ErrRangeOverflow] if a rescaled dividend
// or divisor exceeds the safe integer range.
func (c Calc) Quo(x, y float64, more ...float64) (float64, error) {
	return reduce(c.quo, "/", x, y, more)
}

func (c Calc) quo(x, y float64) (float64, error) {
	xint, yint := c.ToInteger(x), c.ToInteger(y)
	if err := CheckRange(xint); err != nil {
		return 0, err
	}
	if err := CheckRange(yint); err != nil {
		return 0, err
	}
	z := xint / yint
	// Both integers are exact, so the quotient is correctly rounded
	// and only needs noise suppression when its scale changes.
	switch shift := DigitLength(y) - DigitLength(x); {
	case shift > 0:
		return c.Round(z * pow10(shift)), nil
	case shift < 0:
		return c.Round(z / pow10(-shift)), nil
	}
	return z, nil
}

// RoundDecimal returns x rounded to the given number of digits after
// the decimal point using "half away from zero" rule.
// If places is negative, x is rounded to the left of the decimal point,
// so RoundDecimal(1234, -2) is 1200.
// Negative values that round to zero produce 0, not -0.
//
// RoundDecimal returns an error wrapping [ErrRangeOverflow] if rescaling x
// exceeds the safe integer range.
func (c Calc) RoundDecimal(x float64, places int) (float64, error) {
	base := pow10(places)
	z, err := c.mul(x, base)
	if err != nil {
		return 0, fmt.Errorf("rounding %v to %v places: %w", x, places, err)
	}
	z, err = c.quo(math.Round(math.Abs(z)), base)
	if err != nil {
		return 0, fmt.Errorf("rounding %v to %v places: %w", x, places, err)
	}
	if x < 0 && z != 0 {
		z, err = c.mul(z, -1)
		if err != nil {
			return 0, fmt.Errorf("rounding %v to %v places: %w", x, places, err)
		}
	}
	return z, nil
}

// reduce applies op to the operands from left to right.
func reduce(op func(x, y float64) (float64, error), sym string, x, y float64, more []float64) (float64, error) {
	z, err := op(x, y)
	if err != nil {
		return 0, fmt.Errorf("computing [%v %v %v]: %w", x, sym, y, err)
	}
	for _, w := range more {
		v, err := op(z, w)
		if err != nil {
			return 0, fmt.Errorf("computing [%v %v %v]: %w", z, sym, w, err)
		}
		z = v
	}
	return z, nil
}
