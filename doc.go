/*
Package purefuncdemos is a guided showcase of functional-programming idioms
written as ordinary Go.

# Overview

Every unit in this package is a small, self-contained demonstration of one
concept: pure functions, immutable values, higher-order functions and
composition, pattern matching over a closed variant set, declarative
collection processing, and failure reported as a value instead of an error.
There is no runtime architecture behind any of it; the package is meant to
be read, and the demos exist to print what the functions do.

# Concepts

Pure functions: output depends only on input, no observable side effect.

	Add(2, 3)            // 5, every time
	DoubleThenSquare(3)  // 36 = (2·3)²
	Factorial(5)         // 120

Immutability: values are never modified; a "change" is a new value.

	alice := Person{Name: "Alice", Age: 30}
	older := alice.WithAge(31) // alice is untouched

Pattern matching: dispatch on the structure of data. Area is a five-way
branch over the closed shape set, and the default arm catches any variant
outside that set:

	a, err := Area(Circle{Radius: 2}) // π·r²
	a, err = Area(nil)                // 0, the no-shape case

Higher-order functions: functions that take or return functions.

	quadruple := Comp(DoubleIt, DoubleIt)
	quadruple(3)                // 12
	Pipe(3, DoubleIt, SquareIt) // 36

Declarative collections: transform sequences without index bookkeeping or
mutation, via github.com/samber/lo.

	DoubleAll([]int{1, 2, 3, 4, 5}) // [2 4 6 8 10], input untouched

Result values: a fallible operation reports its outcome as data. The
Simulator is the package's one non-pure unit: it draws from an injected
randomness source and never raises.

	sim := NewSeededSimulator(42, os.Stdout)
	r := sim.Call() // Success or Failure, inspected by the caller

# Two Failure Styles

Both error-reporting styles live side by side:

  - Signaled: Area returns an *ArgumentError for a shape outside the closed
    set, and MustArea turns that into a panic. Unless the caller guards,
    the unknown variant is fatal.
  - Value-based: the Simulator converts every internal pseudo-failure into
    a Failure Result. It never returns an error and never panics.

# Injectable Dependencies

The non-pure pieces follow the functional-dependency style: dependencies
are function values, not interfaces to mock. The Simulator takes a

	type DrawFunc func(n int) int

so a test forces either outcome with an inline literal. The draw is shifted
into [1, 1000] before the parity check, so a fixed draw of 1 lands on 2 and
succeeds, while a fixed draw of 0 lands on 1 and fails:

	sim := NewSimulator(FixedDraw(1), io.Discard) // always Success
	sim = NewSimulator(FixedDraw(0), io.Discard)  // always Failure

# Demos

The examples/ directory holds minimal runnable mains, and cmd/purefuncdemos
is the full guided tour with one subcommand per concept.

# Package Import

	import pfd "github.com/Pure-Company/purefuncdemos"
*/
package purefuncdemos
