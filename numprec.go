package numprec

import (
	"fmt"
	"strconv"
)

// Numeric is a constraint for values accepted by the package-level operations.
// Strings are converted using [Parse].
type Numeric interface {
	float64 | float32 | int | int64 | string
}

// toFloat64 converts a numeric value to float64.
func toFloat64[T Numeric](v T) (float64, error) {
	switch v := any(v).(type) {
	case float64:
		return v, nil
	case float32:
		// Shortest representation of the float32 value, so that
		// float32(0.1) becomes 0.1 rather than 0.10000000149011612.
		return strconv.ParseFloat(strconv.FormatFloat(float64(v), 'g', -1, 32), 64)
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case string:
		return Parse(v)
	}
	panic(fmt.Sprintf("toFloat64(%v) failed: unsupported type %T", v, v)) // unexpected by design
}

// operands converts two or more numeric values to float64.
func operands[T Numeric](x, y T, more []T) (float64, float64, []float64, error) {
	fx, err := toFloat64(x)
	if err != nil {
		return 0, 0, nil, err
	}
	fy, err := toFloat64(y)
	if err != nil {
		return 0, 0, nil, err
	}
	var fmore []float64
	if len(more) > 0 {
		fmore = make([]float64, len(more))
		for i, v := range more {
			fmore[i], err = toFloat64(v)
			if err != nil {
				return 0, 0, nil, err
			}
		}
	}
	return fx, fy, fmore, nil
}

// Mul returns the product of two or more numeric values using
// the zero [Calc], which keeps [DefaultPrec] significant digits.
//
// Mul returns an error if:
//   - a string operand is not a valid number;
//   - an intermediate integer product exceeds the safe integer range.
func Mul[T Numeric](x, y T, more ...T) (float64, error) {
	fx, fy, fmore, err := operands(x, y, more)
	if err != nil {
		return 0, err
	}
	return Calc{}.Mul(fx, fy, fmore...)
}

// Add returns the sum of two or more numeric values using
// the zero [Calc], which keeps [DefaultPrec] significant digits.
// For example, Add(2.3, 2.4) is exactly 4.7.
//
// Add returns an error if:
//   - a string operand is not a valid number;
//   - a rescaled operand exceeds the safe integer range.
func Add[T Numeric](x, y T, more ...T) (float64, error) {
	fx, fy, fmore, err := operands(x, y, more)
	if err != nil {
		return 0, err
	}
	return Calc{}.Add(fx, fy, fmore...)
}

// Sub returns the difference of two or more numeric values using
// the zero [Calc], which keeps [DefaultPrec] significant digits.
// For example, Sub(1.0, 0.9) is exactly 0.1.
//
// Sub returns an error if:
//   - a string operand is not a valid number;
//   - a rescaled operand exceeds the safe integer range.
func Sub[T Numeric](x, y T, more ...T) (float64, error) {
	fx, fy, fmore, err := operands(x, y, more)
	if err != nil {
		return 0, err
	}
	return Calc{}.Sub(fx, fy, fmore...)
}

// Quo returns the quotient of two or more numeric values using
// the zero [Calc], which keeps [DefaultPrec] significant digits.
// For example, Quo(0.3, 0.1) is exactly 3.
//
// Quo returns an error if:
//   - a string operand is not a valid number;
//   - a rescaled dividend or divisor exceeds the safe integer range.
func Quo[T Numeric](x, y T, more ...T) (float64, error) {
	fx, fy, fmore, err := operands(x, y, more)
	if err != nil {
		return 0, err
	}
	return Calc{}.Quo(fx, fy, fmore...)
}

// RoundDecimal returns a numeric value rounded to the given number of digits
// after the decimal point using the zero [Calc].
// See [Calc.RoundDecimal] for details.
func RoundDecimal[T Numeric](x T, places int) (float64, error) {
	fx, err := toFloat64(x)
	if err != nil {
		return 0, err
	}
	return Calc{}.RoundDecimal(fx, places)
}

// ToInteger is like [Calc.ToInteger] using the zero [Calc].
func ToInteger(x float64) float64 {
	return Calc{}.ToInteger(x)
}
