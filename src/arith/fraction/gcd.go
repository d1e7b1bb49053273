package fraction

import "golang.org/x/exp/constraints"

// GCD returns the greatest common divisor of a and b, which must both be
// non-negative. GCD(a, 0) is a and GCD(0, 0) is 0.
//
// The result matches the subtractive Euclidean method (repeatedly replace
// the larger operand by the difference) but uses remainders, so that
// GCD(1, 1<<62) does not take 1<<62 steps.
func GCD[T constraints.Integer](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
