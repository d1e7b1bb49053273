package fraction

import (
	"fmt"
	"math"
	"strconv"
)

// Value is the read side of a fraction.
type Value interface {
	fmt.Stringer
	Numerator() int64
	Denominator() int64
	Reduced() bool
}

var _ Value = Fraction{}

// Fraction is a numerator over a non-zero denominator. The zero value is not
// a valid fraction; build one with New, NewReduced or FromFloat64s.
type Fraction struct {
	numerator   int64
	denominator int64
	reduced     bool
}

// New returns numerator/denominator stored verbatim.
func New(numerator, denominator int64) (Fraction, error) {
	return build(numerator, denominator, false)
}

// NewReduced is New for operands the caller knows to be in lowest terms with a
// positive denominator. It only affects how String renders whole numbers.
func NewReduced(numerator, denominator int64) (Fraction, error) {
	return build(numerator, denominator, true)
}

// MustNew is like New but panics if the fraction is ill formed.
func MustNew(numerator, denominator int64) Fraction {
	f, err := New(numerator, denominator)
	if err != nil {
		panic(err)
	}
	return f
}

// FromFloat64s builds a fraction from two floats that must hold exact int64
// values. NaN, infinities and values with a fractional part are rejected.
func FromFloat64s(numerator, denominator float64) (Fraction, error) {
	if reason := checkInteger(numerator); reason != "" {
		return Fraction{}, illFormed(numerator, denominator, "numerator "+reason)
	}
	if reason := checkInteger(denominator); reason != "" {
		return Fraction{}, illFormed(numerator, denominator, "denominator "+reason)
	}
	return New(int64(numerator), int64(denominator))
}

func checkInteger(v float64) string {
	switch {
	case math.IsNaN(v) || math.IsInf(v, 0):
		return "is not finite"
	case math.Trunc(v) != v:
		return "is not an integer"
	case v < minInt64Float || v >= wrapInt64Float:
		return "is outside the int64 range"
	}
	return ""
}

func build(numerator, denominator int64, reduced bool) (Fraction, error) {
	if denominator == 0 {
		return Fraction{}, illFormed(numerator, denominator, "zero denominator")
	}
	return Fraction{numerator: numerator, denominator: denominator, reduced: reduced}, nil
}

// Numerator returns the stored numerator, unchanged.
func (f Fraction) Numerator() int64 {
	return f.numerator
}

// Denominator returns the stored denominator, unchanged.
func (f Fraction) Denominator() int64 {
	return f.denominator
}

// Reduced reports whether f was produced by Simplify or NewReduced.
func (f Fraction) Reduced() bool {
	return f.reduced
}

// String renders a reduced whole number as a bare integer ("-4") and anything
// else as N/D with negative terms in parentheses ("12/(-9)").
func (f Fraction) String() string {
	if f.reduced && f.denominator == 1 {
		return strconv.FormatInt(f.numerator, 10)
	}
	return term(f.numerator) + "/" + term(f.denominator)
}

func term(v int64) string {
	if v < 0 {
		return "(" + strconv.FormatInt(v, 10) + ")"
	}
	return strconv.FormatInt(v, 10)
}

// Simplify returns f in lowest terms with a positive denominator.
//
// A reduced magnitude of 1<<63 does not fit in int64 and wraps: 1/MinInt64
// stays 1/MinInt64 with a negative denominator, and MinInt64/(-1) stays
// negative. The invalid zero value is returned unchanged.
func (f Fraction) Simplify() Fraction {
	s := sign(f.numerator) * sign(f.denominator)
	n := magnitude(f.numerator)
	d := magnitude(f.denominator)

	g := GCD(n, d)
	if g == 0 {
		return f
	}

	return Fraction{
		numerator:   s * int64(n/g),
		denominator: int64(d / g),
		reduced:     true,
	}
}

func sign(v int64) int64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// magnitude is |v| as a uint64, so that math.MinInt64 has one.
func magnitude(v int64) uint64 {
	if v < 0 {
		return uint64(-v)
	}
	return uint64(v)
}

// Multiply returns f*o, unreduced.
func (f Fraction) Multiply(o Fraction) (Fraction, error) {
	return New(f.numerator*o.numerator, f.denominator*o.denominator)
}

// Divide returns f/o, unreduced. It fails with ErrIllFormed when o is zero.
func (f Fraction) Divide(o Fraction) (Fraction, error) {
	return New(f.numerator*o.denominator, f.denominator*o.numerator)
}

// Add returns f+o over the product of the denominators, unreduced.
func (f Fraction) Add(o Fraction) (Fraction, error) {
	return New(f.numerator*o.denominator+o.numerator*f.denominator, f.denominator*o.denominator)
}

// Subtract returns f-o, unreduced. Operands with the same denominator keep
// it: 10/2 - 6/2 is 4/2.
func (f Fraction) Subtract(o Fraction) (Fraction, error) {
	if f.denominator == o.denominator {
		return New(f.numerator-o.numerator, f.denominator)
	}
	return New(f.numerator*o.denominator-o.numerator*f.denominator, f.denominator*o.denominator)
}
