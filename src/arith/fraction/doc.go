// Package fraction implements exact rational numbers over int64 numerators
// and denominators.
//
// A Fraction keeps its operands exactly as they were given: 2/(-4) stays
// 2/(-4) until Simplify is called, which moves the sign to the numerator and
// divides out the greatest common divisor. Arithmetic never simplifies on its
// own, so
//
//	a := fraction.MustNew(3, 2)
//	b := fraction.MustNew(4, 5)
//	p, _ := a.Multiply(b) // 12/10
//	p.Simplify()          // 6/5
//
// Fractions are immutable values and may be shared between goroutines.
// Overflow of the int64 operands is not detected, except where a wrapped
// product lands on a zero denominator and construction fails.
package fraction
