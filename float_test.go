package numprec

import (
	"errors"
	"math"
	"strconv"
	"testing"
)

func TestPow10(t *testing.T) {
	tests := []struct {
		n    int
		want float64
	}{
		{-22, 1e-22},
		{-2, 0.01},
		{-1, 0.1},
		{0, 1},
		{1, 10},
		{15, 1e15},
		{22, 1e22},
		{23, 1e23},
		{400, math.Inf(1)},
		{-400, 0},
	}
	for _, tt := range tests {
		got := pow10(tt.n)
		if got != tt.want {
			t.Errorf("pow10(%v) = %v, want %v", tt.n, got, tt.want)
		}
	}
}

func TestDigitLength(t *testing.T) {
	tests := []struct {
		x    float64
		want int
	}{
		{0, 0},
		{1, 0},
		{-1, 0},
		{123, 0},
		{1e21, 0},
		{1e300, 0},
		{0.1, 1},
		{-0.1, 1},
		{2.3, 1},
		{1.25, 2},
		{1.005, 3},
		{0.000001, 6},
		{0.0000001, 7},
		{1.5e-3, 4},
		{1.23e-10, 12},
		{123.456, 3},
		{0.30000000000000004, 17},
		{4.699999999999999, 15},
		{math.MaxFloat64, 0},
		{math.SmallestNonzeroFloat64, 324},
		{math.Inf(1), 0},
		{math.Inf(-1), 0},
		{math.NaN(), 0},
	}
	for _, tt := range tests {
		got := DigitLength(tt.x)
		if got != tt.want {
			t.Errorf("DigitLength(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestRoundPrec(t *testing.T) {
	tests := []struct {
		x    float64
		prec int
		want float64
	}{
		{4.699999999999999, 15, 4.7},
		{0.09999999999999998, 15, 0.1},
		{0.30000000000000004, 15, 0.3},
		{1004.9999999999999, 15, 1005},
		{-1004.9999999999999, 15, -1005},
		{3.14159, 3, 3.14},
		{3.14159, 1, 3},
		{3.14159, 0, 3},
		{3.14159, -5, 3},
		{0.30000000000000004, 17, 0.30000000000000004},
		{0.30000000000000004, 100, 0.30000000000000004},
		{9007199254740991, 15, 9007199254740990},
		{123456, 2, 120000},
		{0.000123456, 2, 0.00012},
		{1e-320, 15, 1e-320},
		{math.MaxFloat64, 15, math.MaxFloat64},
		{-math.MaxFloat64, 15, -math.MaxFloat64},
	}
	for _, tt := range tests {
		got := RoundPrec(tt.x, tt.prec)
		if got != tt.want {
			t.Errorf("RoundPrec(%v, %v) = %v, want %v", tt.x, tt.prec, got, tt.want)
		}
	}

	t.Run("special", func(t *testing.T) {
		if got := RoundPrec(math.Inf(1), 15); !math.IsInf(got, 1) {
			t.Errorf("RoundPrec(+Inf, 15) = %v, want +Inf", got)
		}
		if got := RoundPrec(math.Inf(-1), 15); !math.IsInf(got, -1) {
			t.Errorf("RoundPrec(-Inf, 15) = %v, want -Inf", got)
		}
		if got := RoundPrec(math.NaN(), 15); !math.IsNaN(got) {
			t.Errorf("RoundPrec(NaN, 15) = %v, want NaN", got)
		}
		if got := RoundPrec(math.Copysign(0, -1), 15); !math.Signbit(got) {
			t.Errorf("RoundPrec(-0, 15) = %v, want -0", got)
		}
	})
}

func TestRound(t *testing.T) {
	tests := []struct {
		x, want float64
	}{
		{4.699999999999999, 4.7},
		{0.09999999999999998, 0.1},
		{1.2345678901234567, 1.23456789012346},
		{1, 1},
		{0, 0},
	}
	for _, tt := range tests {
		got := Round(tt.x)
		if got != tt.want {
			t.Errorf("Round(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestCheckRange(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []float64{
			0,
			1,
			-1,
			MaxSafeInt,
			-MaxSafeInt,
			MaxSafeInt - 1,
			math.NaN(),
		}
		for _, x := range tests {
			if err := CheckRange(x); err != nil {
				t.Errorf("CheckRange(%v) failed: %v", x, err)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []float64{
			MaxSafeInt + 1,
			-MaxSafeInt - 1,
			1e16,
			-1e16,
			math.MaxFloat64,
			math.Inf(1),
			math.Inf(-1),
		}
		for _, x := range tests {
			err := CheckRange(x)
			if err == nil {
				t.Errorf("CheckRange(%v) did not fail", x)
				continue
			}
			if !errors.Is(err, ErrRangeOverflow) {
				t.Errorf("CheckRange(%v) failed with %v, want %v", x, err, ErrRangeOverflow)
			}
		}
	})
}

func TestParse(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			s    string
			want float64
		}{
			{"0", 0},
			{"1", 1},
			{"-1", -1},
			{"+1", 1},
			{"2.3", 2.3},
			{" 2.3\t", 2.3},
			{"1.5e-3", 0.0015},
			{"1.5E-3", 0.0015},
			{".5", 0.5},
			{"5.", 5},
		}
		for _, tt := range tests {
			got, err := Parse(tt.s)
			if err != nil {
				t.Errorf("Parse(%q) failed: %v", tt.s, err)
				continue
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.s, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			s    string
			want error
		}{
			"empty 1":    {"", ErrInvalidNumber},
			"empty 2":    {"   ", ErrInvalidNumber},
			"letters":    {"abc", ErrInvalidNumber},
			"trailing":   {"12abc", ErrInvalidNumber},
			"two points": {"1.2.3", ErrInvalidNumber},
			"comma":      {"1,5", ErrInvalidNumber},
			"overflow 1": {"1e400", ErrRangeOverflow},
			"overflow 2": {"-1e400", ErrRangeOverflow},
		}
		for name, tt := range tests {
			_, err := Parse(tt.s)
			if !errors.Is(err, tt.want) {
				t.Errorf("%v: Parse(%q) failed with %v, want %v", name, tt.s, err, tt.want)
			}
		}
	})
}

func TestMustParse(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("MustParse(\".\") did not panic")
			}
		}()
		MustParse(".")
	})
}

func FuzzDigitLength(f *testing.F) {
	for _, x := range []float64{0, 1, 0.1, 1.5e-3, 123.456, 1e21, 5e-324} {
		f.Add(x)
	}

	f.Fuzz(
		func(t *testing.T, x float64) {
			if math.IsInf(x, 0) || math.IsNaN(x) {
				t.Skip()
				return
			}
			n := DigitLength(x)
			if n < 0 {
				t.Errorf("DigitLength(%v) = %v, want non-negative", x, n)
				return
			}
			if n == 0 && x != math.Trunc(x) {
				t.Errorf("DigitLength(%v) = 0, but %v is not an integer", x, x)
				return
			}
			// The digit length must agree with the fixed-point representation.
			s := strconv.FormatFloat(x, 'f', -1, 64)
			want := 0
			for i := range s {
				if s[i] == '.' {
					want = len(s) - i - 1
					break
				}
			}
			if n != want {
				t.Errorf("DigitLength(%v) = %v, want %v", x, n, want)
			}
		},
	)
}

func FuzzRound(f *testing.F) {
	for _, x := range []float64{0, 4.699999999999999, 0.09999999999999998, 1e300, -2.5e-300} {
		f.Add(x)
	}

	f.Fuzz(
		func(t *testing.T, x float64) {
			if math.IsInf(x, 0) || math.IsNaN(x) {
				t.Skip()
				return
			}
			y := Round(x)
			z := Round(y)
			if y != z {
				t.Errorf("Round(Round(%v)) = %v, want %v", x, z, y)
			}
		},
	)
}
