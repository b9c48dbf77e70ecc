package purefuncdemos

// ============================================================================
// Higher-Order Functions
// ============================================================================

// Comp is left-to-right function composition: Comp(f, g)(x) == g(f(x)).
// It makes small pipelines out of small functions without naming the
// intermediate value.
func Comp[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}

// Iden returns its argument unchanged. It is the left and right identity
// of Comp: Comp(Iden[A], f) and Comp(f, Iden[B]) both behave exactly
// like f.
func Iden[A any](a A) A { return a }

// Const returns a function that ignores its argument and always yields a.
func Const[B, A any](a A) func(B) A {
	return func(B) A { return a }
}

// Pipe threads value through fns left to right:
//
//	Pipe(3, DoubleIt, SquareIt) // SquareIt(DoubleIt(3)) == 36
//
// All functions must take and return the same type; Comp handles the
// type-changing case.
func Pipe[T any](value T, fns ...func(T) T) T {
	for _, fn := range fns {
		value = fn(value)
	}
	return value
}
