/*
Package numprec implements decimal-safe arithmetic on float64 values.
It is specifically designed for code that keeps monetary amounts, scores,
or other decimal quantities in binary floating-point numbers and expects
sums, products, and rounded values to match human expectation.

For example, in plain float64 arithmetic 2.3 + 2.4 is 4.699999999999999
and 1.0 - 0.9 is 0.09999999999999998, while [Add] and [Sub] return
exactly 4.7 and 0.1.

# Rescaling

Every operation is built on the same technique:

 1. The number of digits after the decimal point is determined for each
    operand using [DigitLength].
    Scientific notation is taken into account, so 1.5e-3 has 4 such digits.
 2. Each operand is multiplied by the corresponding power of 10 using
    [Calc.ToInteger], which turns it into an integer-valued float64.
    For example, 1.5e-3 becomes 15.
 3. The operation is performed on the integers.
    Integer arithmetic on float64 values is exact as long as all values stay
    within the safe integer range [-MaxSafeInt, MaxSafeInt].
 4. The result is divided by the corresponding power of 10.

[Calc.Mul] is the foundation of the package.
[Calc.Add] and [Calc.Sub] scale both operands by a common power of 10
using [Calc.Mul], and [Calc.RoundDecimal] is expressed in terms of
[Calc.Mul] and [Calc.Quo].

# Precision

Multiplying a float64 by a power of 10 can itself introduce a representation
error, for example 1.005 * 1000 is 1004.9999999999999.
To suppress such noise, every rescaling step passes the value through
[RoundPrec], which re-expresses it with a bounded number of significant
digits and parses it back.
The default budget is [DefaultPrec] (15) significant digits.
It is a heuristic, not a mathematically derived bound; use [NewCalc] to
choose a different budget.

# Operands

The package-level functions [Add], [Sub], [Mul], [Quo], and [RoundDecimal]
accept float64, float32, int, int64, or string operands.
Strings are converted with [Parse] at the entry point, and all internal
computations operate on float64 values.
Operations accept two or more operands and are applied from left to right,
so Add(a, b, c) equals Add(Add(a, b), c).

# Errors

All functions are pure and stateless.
Errors are returned in the following cases:

  - Range Overflow.
    If an integer produced during rescaling exceeds the safe integer range,
    the result would be inexact, and an error wrapping [ErrRangeOverflow]
    is returned instead.
    There is no extended-precision fallback.

  - Invalid Number.
    If a string operand cannot be parsed, an error wrapping
    [ErrInvalidNumber] is returned.

Division by zero is not intercepted.
Like the standard float64 arithmetic, [Quo] returns ±Inf or NaN.
*/
package numprec
