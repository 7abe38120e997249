package bufrw

import "golang.org/x/exp/constraints"

const (
	// MinBufferSize is the smallest buffer size RecommendBufferSize returns.
	MinBufferSize = 512
	// MaxBufferSize is the largest buffer size RecommendBufferSize returns.
	MaxBufferSize = 64 * 1024
)

// RecommendBufferSize returns a buffer size suited for transferring total
// bytes: the largest power of two not exceeding total, clamped to
// [MinBufferSize, MaxBufferSize]. Totals below MinBufferSize are returned
// unchanged so a tiny transfer never over-allocates; a total of zero (or a
// negative one) falls back to MinBufferSize.
func RecommendBufferSize[T constraints.Integer](total T) T {
	// Route the untyped constants through int locals: a constant conversion
	// to T would not compile for the narrow types in constraints.Integer.
	minSize, maxSize := MinBufferSize, MaxBufferSize
	if total < T(minSize) {
		if total > 0 {
			return total
		}
		return T(minSize)
	}

	size := T(minSize)
	for size*2 <= total && size*2 <= T(maxSize) {
		size *= 2
	}
	return size
}
