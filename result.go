package purefuncdemos

import (
	"errors"

	"github.com/samber/mo"
)

// ============================================================================
// Result Values
// ============================================================================

// Result reports the outcome of a fallible operation as a value the caller
// inspects, instead of an error the caller must intercept. It is immutable:
// the only ways to make one are the Success and Failure constructors, and
// nothing changes one afterwards.
type Result struct {
	ok      bool
	message string
}

// Success returns a Result with the success flag set, carrying msg.
func Success(msg string) Result {
	return Result{ok: true, message: msg}
}

// Failure returns a failed Result carrying msg.
func Failure(msg string) Result {
	return Result{ok: false, message: msg}
}

// OK reports whether the operation succeeded.
func (r Result) OK() bool { return r.ok }

// Message returns the human-readable outcome description.
func (r Result) Message() string { return r.message }

// String implements fmt.Stringer: "ok: <message>" on success,
// "failed: <message>" otherwise.
func (r Result) String() string {
	if r.ok {
		return "ok: " + r.message
	}
	return "failed: " + r.message
}

// Mo lifts r into a mo.Result so it can join monadic pipelines: successes
// become mo.Ok carrying the message, failures become mo.Err with the
// message as the error text.
func (r Result) Mo() mo.Result[string] {
	if r.ok {
		return mo.Ok(r.message)
	}
	return mo.Err[string](errors.New(r.message))
}

// ResultFromMo is the inverse of Mo: it flattens a mo.Result back into a
// plain Result value.
func ResultFromMo(r mo.Result[string]) Result {
	v, err := r.Get()
	if err != nil {
		return Failure(err.Error())
	}
	return Success(v)
}
