package fraction

const (
	maxInt64 = 1<<63 - 1
	minInt64 = -1 << 63

	// minInt64Float is exact: -(1<<63) is a power of two.
	minInt64Float = float64(minInt64)

	// WARNING: float64(maxInt64) rounds up to 1<<63, which is outside the int64
	// range. Anything >= wrapInt64Float must be rejected before conversion.
	wrapInt64Float = float64(maxInt64)
)
