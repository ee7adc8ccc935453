package numprec

import "fmt"

// MustAdd is like [Add] but panics if computing error.
func MustAdd[T Numeric](x, y T, more ...T) float64 {
	z, err := Add(x, y, more...)
	if err != nil {
		panic(fmt.Sprintf("MustAdd(%v, %v) failed: %v", x, y, err))
	}
	return z
}

// MustSub is like [Sub] but panics if computing error.
func MustSub[T Numeric](x, y T, more ...T) float64 {
	z, err := Sub(x, y, more...)
	if err != nil {
		panic(fmt.Sprintf("MustSub(%v, %v) failed: %v", x, y, err))
	}
	return z
}

// MustMul is like [Mul] but panics if computing error.
func MustMul[T Numeric](x, y T, more ...T) float64 {
	z, err := Mul(x, y, more...)
	if err != nil {
		panic(fmt.Sprintf("MustMul(%v, %v) failed: %v", x, y, err))
	}
	return z
}

// MustQuo is like [Quo] but panics if computing error.
func MustQuo[T Numeric](x, y T, more ...T) float64 {
	z, err := Quo(x, y, more...)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v, %v) failed: %v", x, y, err))
	}
	return z
}

// MustRoundDecimal is like [RoundDecimal] but panics if computing error.
func MustRoundDecimal[T Numeric](x T, places int) float64 {
	z, err := RoundDecimal(x, places)
	if err != nil {
		panic(fmt.Sprintf("MustRoundDecimal(%v, %v) failed: %v", x, places, err))
	}
	return z
}
