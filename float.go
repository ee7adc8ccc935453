package numprec

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	DefaultPrec = 15                // default number of significant digits kept by the noise rounder
	MaxPrec     = 17                // maximum number of significant digits a float64 can carry
	MaxSafeInt  = 1<<53 - 1         // maximum absolute value of an exactly representable integer
	minSafeInt  = -MaxSafeInt       // symmetric lower bound of the safe integer range
	maxPow10    = len(pow10tab) - 1 // maximum power of 10 that is exactly representable
)

var (
	// ErrRangeOverflow is returned when a rescaled value leaves the safe integer range.
	ErrRangeOverflow = errors.New("beyond the safe integer range")
	// ErrInvalidNumber is returned when a string cannot be parsed as a number.
	ErrInvalidNumber = errors.New("invalid number")
	errPrecRange     = errors.New("precision out of range")
)

// pow10tab is a cache of exact powers of 10, where pow10tab[x] = 10^x.
var pow10tab = [...]float64{
	1e00, 1e01, 1e02, 1e03, 1e04, 1e05, 1e06, 1e07,
	1e08, 1e09, 1e10, 1e11, 1e12, 1e13, 1e14, 1e15,
	1e16, 1e17, 1e18, 1e19, 1e20, 1e21, 1e22,
}

// pow10 returns 10^n.
// For |n| > 22 the result is no longer exact, and for large n it
// overflows to +Inf or underflows to 0.
func pow10(n int) float64 {
	switch {
	case n >= 0 && n <= maxPow10:
		return pow10tab[n]
	case n < 0 && -n <= maxPow10:
		return 1 / pow10tab[-n]
	}
	return math.Pow10(n)
}

// DigitLength returns the number of digits after the decimal point that x
// needs to become an integer once multiplied by a power of 10.
// The shortest decimal representation that round-trips to x is used, so
// DigitLength(0.1) is 1, DigitLength(1.5e-3) is 4, and DigitLength(1e21) is 0.
// Infinities and NaN have a digit length of 0.
func DigitLength(x float64) int {
	if math.IsInf(x, 0) || math.IsNaN(x) {
		return 0
	}
	s := strconv.FormatFloat(x, 'e', -1, 64)
	mant, exp := s, "0"
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		mant, exp = s[:i], s[i+1:]
	}
	_, frac, _ := strings.Cut(mant, ".")
	e, err := strconv.Atoi(exp)
	if err != nil {
		panic(fmt.Sprintf("DigitLength(%v) failed: malformed exponent %q", x, exp)) // unexpected by design
	}
	n := len(frac) - e
	if n < 0 {
		return 0
	}
	return n
}

// RoundPrec returns x rounded to prec significant decimal digits.
// It removes the tail of spurious digits that binary floating-point
// arithmetic leaves after an operation, so that 4.699999999999999 becomes 4.7.
// Precision is clamped to the range [1, MaxPrec].
// Infinities, NaN, zeros, and values that would overflow after rounding
// are returned unchanged.
func RoundPrec(x float64, prec int) float64 {
	if x == 0 || math.IsInf(x, 0) || math.IsNaN(x) {
		return x
	}
	switch {
	case prec < 1:
		prec = 1
	case prec > MaxPrec:
		prec = MaxPrec
	}
	s := strconv.FormatFloat(x, 'e', prec-1, 64)
	y, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// Rounding up near math.MaxFloat64 overflows.
		return x
	}
	return y
}

// Round is like [RoundPrec] with precision equal to [DefaultPrec].
func Round(x float64) float64 {
	return RoundPrec(x, DefaultPrec)
}

// CheckRange returns an error if x is outside the range
// [-MaxSafeInt, MaxSafeInt], where every integer is exactly representable.
// NaN passes the check.
func CheckRange(x float64) error {
	if x > MaxSafeInt || x < minSafeInt {
		return fmt.Errorf("%v is %w", x, ErrRangeOverflow)
	}
	return nil
}

// Parse converts a string to a float64.
// Leading and trailing white space is ignored.
// The input string must be in one of the following formats:
//
//	1.234
//	-1234
//	+0.000001234
//	1.83e5
//	0.22e-9
//
// Parse also accepts the special values understood by [strconv.ParseFloat],
// such as "Inf" and "NaN".
func Parse(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("parsing %q: %w", s, ErrRangeOverflow)
		}
		return 0, fmt.Errorf("parsing %q: %w", s, ErrInvalidNumber)
	}
	return f, nil
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding numbers.
func MustParse(s string) float64 {
	f, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return f
}
