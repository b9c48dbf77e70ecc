package purefuncdemos

import "github.com/samber/lo"

// ============================================================================
// Non-Destructive Transformation
// ============================================================================

// CalculateSquare combines a and b into one squared figure:
//
//	((a + b) + (a · b))²
//
// so CalculateSquare(2, 3) is (5 + 6)² = 121. A second variant of this
// demo squares only the product; this package computes the sum-plus-product
// form. Both intermediates are locals; nothing escapes or mutates.
func CalculateSquare(a, b int) int {
	sum := a + b
	product := a * b
	return SquareIt(sum + product)
}

// BaseSequence returns the fixed ascending sequence the collection demos
// start from: [1 2 3 4 5]. Each call hands out a fresh slice so no caller
// can mutate another's copy.
func BaseSequence() []int {
	return []int{1, 2, 3, 4, 5}
}

// DoubleAll returns a new slice holding every element of xs doubled. The
// input is read, never written: lo.Map allocates the output, so the result
// of DoubleAll(BaseSequence()) is [2 4 6 8 10] and the source still reads
// [1 2 3 4 5] afterwards.
func DoubleAll(xs []int) []int {
	return lo.Map(xs, func(x int, _ int) int { return x * 2 })
}
