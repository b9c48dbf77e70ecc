package purefuncdemos

// ============================================================================
// Arithmetic Pure Functions
// ============================================================================

// Add returns x + y. The canonical pure function: its output depends on
// its inputs and nothing else, and calling it changes nothing.
func Add(x, y int) int { return x + y }

// Multiply returns x * y.
func Multiply(x, y int) int { return x * y }

// DoubleIt returns 2x.
func DoubleIt(x int) int { return x * 2 }

// SquareIt returns x².
func SquareIt(x int) int { return x * x }

// DoubleThenSquare composes DoubleIt and SquareIt left to right:
// (2x)² = 4x². It exists to show that composing two pure functions yields
// another pure function, so DoubleThenSquare(3) is always 36.
func DoubleThenSquare(x int) int {
	return Comp(DoubleIt, SquareIt)(x)
}

// Factorial returns n! by direct recursion. Inputs of 1 or less, zero and
// negatives included, collapse to the base case and return 1.
//
// There is no overflow guard: int64 holds factorials through 20!
// (2432902008176640000); from 21! on the result wraps silently.
func Factorial(n int64) int64 {
	if n <= 1 {
		return 1
	}
	return n * Factorial(n-1)
}
