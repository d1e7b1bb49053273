package fraction

import (
	"math/big"
	"testing"
)

var (
	benchFractionResult Fraction
	benchUint64Result   uint64

	benchFraction1 = MustNew(123456789, -987654321)
	benchFraction2 = MustNew(-36, 120)
)

func BenchmarkGCD(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchUint64Result = GCD[uint64](123456789, 987654321)
	}
}

func BenchmarkBigIntGCD(b *testing.B) {
	m, n := big.NewInt(123456789), big.NewInt(987654321)
	for i := 0; i < b.N; i++ {
		var z big.Int
		z.GCD(nil, nil, m, n)
	}
}

func BenchmarkSimplify(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchFractionResult = benchFraction1.Simplify()
	}
}

func BenchmarkAdd(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchFractionResult, _ = benchFraction1.Add(benchFraction2)
	}
}

func BenchmarkSubtract(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchFractionResult, _ = benchFraction1.Subtract(benchFraction2)
	}
}
