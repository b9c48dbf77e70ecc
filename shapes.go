package purefuncdemos

import (
	"errors"
	"fmt"
	"math"
)

// ============================================================================
// Shape Variants
// ============================================================================

// Shape is implemented by the geometric variants Area understands. The
// closed set is Circle, Rectangle and Triangle, with nil standing in as the
// explicit "no shape" marker.
//
// The interface is open: any type can declare a Kind and claim to be a
// Shape, but Area only recognizes the closed set. Everything else lands in
// its default branch and comes back as an *ArgumentError.
type Shape interface {
	// Kind names the variant in lower case, e.g. "circle".
	Kind() string
}

// Circle is a Shape with a radius.
type Circle struct {
	Radius float64
}

// Rectangle is a Shape with a width and a height.
type Rectangle struct {
	Width, Height float64
}

// Triangle is a Shape with a base and a height.
type Triangle struct {
	Base, Height float64
}

// Kind implements Shape.
func (Circle) Kind() string { return "circle" }

// Kind implements Shape.
func (Rectangle) Kind() string { return "rectangle" }

// Kind implements Shape.
func (Triangle) Kind() string { return "triangle" }

// ErrUnknownShape reports a Shape value outside the closed variant set.
var ErrUnknownShape = errors.New("unknown shape variant")

// ArgumentError is an invalid-argument error that carries the name of the
// offending parameter alongside the underlying cause.
//
// It unwraps, so callers guard with the stdlib tools:
//
//	if errors.Is(err, ErrUnknownShape) { ... }
type ArgumentError struct {
	Name string // parameter that received the bad value
	Err  error
}

// Error implements the error interface.
func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %q: %v", e.Name, e.Err)
}

// Unwrap returns the underlying cause.
func (e *ArgumentError) Unwrap() error { return e.Err }

// Area returns the area of shape.
//
// The match is a five-way branch and must stay one: the three concrete
// variants, the nil no-shape marker (area 0), and a default arm returning
// an *ArgumentError that wraps ErrUnknownShape and names the parameter.
// Dimensions are taken at face value: a negative width yields a negative
// area rather than an error.
func Area(shape Shape) (float64, error) {
	switch s := shape.(type) {
	case Circle:
		return math.Pi * s.Radius * s.Radius, nil
	case Rectangle:
		return s.Width * s.Height, nil
	case Triangle:
		return 0.5 * s.Base * s.Height, nil
	case nil:
		return 0, nil
	default:
		return 0, &ArgumentError{
			Name: "shape",
			Err:  fmt.Errorf("%w: %T", ErrUnknownShape, shape),
		}
	}
}

// MustArea is Area for callers that treat an unknown variant as fatal: it
// panics with the *ArgumentError instead of returning it. This is the
// signaled failure style, where the process dies unless somebody recovers.
// The Result values the Simulator hands back are the other style.
func MustArea(shape Shape) float64 {
	a, err := Area(shape)
	if err != nil {
		panic(err)
	}
	return a
}
