package purefuncdemos

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/samber/lo"
	"github.com/samber/mo"
)

// ============================================================================
// Simulated External Call
// ============================================================================

// Fixed messages carried by simulator outcomes.
const (
	ServiceOK     = "service call completed"
	ServiceFailed = "service call failed, please retry"
)

// DrawFunc is a functional binding for a pseudo-random source: it returns a
// non-negative integer below n. Any *rand.Rand's Intn method satisfies it,
// so production code wires real randomness while tests swap in a fixed
// function to force either outcome. No mock type needed, just a function.
//
// Example:
//
//	draw := DrawFunc(rand.New(rand.NewSource(42)).Intn)
type DrawFunc func(n int) int

// FixedDraw returns a draw function that always yields v.
func FixedDraw(v int) DrawFunc {
	return func(int) int { return v }
}

// SeededDraw returns a deterministic draw function backed by a math/rand
// source seeded with seed. Equal seeds yield equal draw sequences.
func SeededDraw(seed int64) DrawFunc {
	return rand.New(rand.NewSource(seed)).Intn
}

// Simulator models a call to a flaky external service. It is the one
// impure unit here: each Call consults a random source and writes a
// progress line to its sink. Failures are never raised; they come back as
// Result values the caller inspects.
type Simulator struct {
	draw DrawFunc
	sink io.Writer
}

// NewSimulator builds a Simulator from its two dependencies. A nil draw
// falls back to the shared math/rand source; a nil sink discards output.
func NewSimulator(draw DrawFunc, sink io.Writer) Simulator {
	if draw == nil {
		draw = rand.Intn
	}
	if sink == nil {
		sink = io.Discard
	}
	return Simulator{draw: draw, sink: sink}
}

// NewSeededSimulator builds a Simulator whose draws are deterministic for a
// given seed.
func NewSeededSimulator(seed int64, sink io.Writer) Simulator {
	return NewSimulator(SeededDraw(seed), sink)
}

// Call performs one simulated invocation. It draws an integer in [1, 1000];
// an odd draw is the failure signal, an even draw succeeds. Nothing is
// retried and nothing panics: the outcome is a Result value. Exactly one
// line describing the outcome is written to the sink.
func (s Simulator) Call() Result {
	n := s.draw(1000) + 1
	r := Failure(ServiceFailed)
	if n%2 == 0 {
		r = Success(ServiceOK)
	}
	fmt.Fprintf(s.sink, "Service Call: %s\n", r)
	return r
}

// CallN performs n independent invocations and returns their outcomes in
// call order. A count of zero or less makes no calls and yields an empty
// slice, keeping the no-panic contract for every input.
func (s Simulator) CallN(n int) []Result {
	if n <= 0 {
		return []Result{}
	}
	return lo.Times(n, func(_ int) Result {
		return s.Call()
	})
}

// CallMo performs one invocation and reports the outcome as a mo.Result,
// for callers chaining monadic pipelines.
func (s Simulator) CallMo() mo.Result[string] {
	return s.Call().Mo()
}
