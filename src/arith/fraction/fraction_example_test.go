package fraction_test

import (
	"errors"
	"fmt"

	"fractions/src/arith/fraction"
)

func ExampleFraction_String() {
	fmt.Println(fraction.MustNew(-2, -5))
	fmt.Println(fraction.MustNew(12, -9))
	fmt.Println(fraction.MustNew(5, 1))
	fmt.Println(fraction.MustNew(256, -64).Simplify())
	// Output:
	// (-2)/(-5)
	// 12/(-9)
	// 5/1
	// -4
}

func ExampleFraction_Multiply() {
	a := fraction.MustNew(3, 2)
	b := fraction.MustNew(4, 5)
	p, _ := a.Multiply(b)
	fmt.Println(p, p.Simplify(), a, b)
	// Output: 12/10 6/5 3/2 4/5
}

func ExampleFraction_Divide() {
	_, err := fraction.MustNew(3, 2).Divide(fraction.MustNew(0, 1))
	fmt.Println(errors.Is(err, fraction.ErrIllFormed))
	// Output: true
}
