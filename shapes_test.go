package purefuncdemos

import (
	"errors"
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// ============================================================================
// Area Tests
// ============================================================================

// pentagon is a variant outside the closed shape set; Area must refuse it.
type pentagon struct{}

func (pentagon) Kind() string { return "pentagon" }

func TestArea_KnownShapes(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape
		want  float64
	}{
		{"circle", Circle{Radius: 2}, math.Pi * 4},
		{"rectangle", Rectangle{Width: 3, Height: 4}, 12},
		{"triangle", Triangle{Base: 6, Height: 5}, 15},
		{"no shape", nil, 0},
	}

	for _, tt := range tests {
		got, err := Area(tt.shape)
		if err != nil {
			t.Errorf("%s: unexpected error %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%s: expected area %v, got %v", tt.name, tt.want, got)
		}
	}
}

func TestArea_UnknownVariant(t *testing.T) {
	_, err := Area(pentagon{})

	if err == nil {
		t.Fatal("expected an error for a variant outside the closed set")
	}
	if !errors.Is(err, ErrUnknownShape) {
		t.Errorf("expected ErrUnknownShape in the chain, got %v", err)
	}

	var argErr *ArgumentError
	if !errors.As(err, &argErr) {
		t.Fatalf("expected *ArgumentError, got %T", err)
	}
	if argErr.Name != "shape" {
		t.Errorf("expected parameter name 'shape', got '%s'", argErr.Name)
	}
}

func TestArea_NegativeDimensionsPassThrough(t *testing.T) {
	got, err := Area(Rectangle{Width: -3, Height: 4})

	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if got != -12 {
		t.Errorf("expected -12, got %v", got)
	}
}

func TestMustArea_KnownShape(t *testing.T) {
	if got := MustArea(Rectangle{Width: 2, Height: 3}); got != 6 {
		t.Errorf("expected 6, got %v", got)
	}
}

func TestMustArea_PanicsOnUnknownVariant(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected MustArea to panic")
		}
		err, ok := r.(error)
		if !ok {
			t.Fatalf("expected the panic value to be an error, got %T", r)
		}
		if !errors.Is(err, ErrUnknownShape) {
			t.Errorf("expected ErrUnknownShape, got %v", err)
		}
	}()

	MustArea(pentagon{})
}

func TestArea_Properties(t *testing.T) {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 200
	properties := gopter.NewProperties(params)

	properties.Property("non-negative dimensions give non-negative areas", prop.ForAll(
		func(r, w, h, b float64) bool {
			shapes := []Shape{
				Circle{Radius: r},
				Rectangle{Width: w, Height: h},
				Triangle{Base: b, Height: h},
			}
			for _, s := range shapes {
				a, err := Area(s)
				if err != nil || a < 0 {
					return false
				}
			}
			return true
		},
		gen.Float64Range(0, 1e6),
		gen.Float64Range(0, 1e6),
		gen.Float64Range(0, 1e6),
		gen.Float64Range(0, 1e6),
	))

	properties.Property("circle area matches the closed form", prop.ForAll(
		func(r float64) bool {
			a, err := Area(Circle{Radius: r})
			return err == nil && a == math.Pi*r*r
		},
		gen.Float64Range(0, 1e6),
	))

	properties.TestingRun(t)
}
