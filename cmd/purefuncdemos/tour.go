package main

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/samber/do/v2"
	"github.com/samber/lo"
	"go.uber.org/zap"

	pfd "github.com/Pure-Company/purefuncdemos"
)

var (
	patternColor     = color.New(color.FgCyan)
	pureColor        = color.New(color.FgGreen)
	immutableColor   = color.New(color.FgYellow)
	collectionsColor = color.New(color.FgMagenta)
	resultColor      = color.New(color.FgBlue)
)

// label renders the "Concept:" prefix of a demo line.
func label(c *color.Color, concept string) string {
	return c.Sprintf("%s:", concept)
}

// tourOptions carries the flag values the demos depend on.
type tourOptions struct {
	Seed  int64
	Calls int
}

// newInjector assembles the service demo's dependencies: the options, the
// logger, the seeded draw function and the simulator built from them.
func newInjector(out io.Writer) do.Injector {
	injector := do.New()

	do.ProvideValue(injector, tourOptions{Seed: seed, Calls: calls})

	log := logger
	if log == nil {
		log = zap.NewNop()
	}
	do.ProvideValue(injector, log)

	do.Provide(injector, func(i do.Injector) (pfd.DrawFunc, error) {
		opts := do.MustInvoke[tourOptions](i)
		return pfd.SeededDraw(opts.Seed), nil
	})
	do.Provide(injector, func(i do.Injector) (pfd.Simulator, error) {
		return pfd.NewSimulator(do.MustInvoke[pfd.DrawFunc](i), out), nil
	})

	return injector
}

// runTour prints every concept in order.
func runTour(out io.Writer) error {
	if logger != nil {
		logger.Debug("starting full tour", zap.Int64("seed", seed), zap.Int("calls", calls))
	}

	steps := []func(io.Writer) error{
		demoShapes,
		demoPeople,
		demoNumbers,
		demoPure,
		demoImmutable,
		demoCollections,
		demoService,
	}
	for _, step := range steps {
		if err := step(out); err != nil {
			return err
		}
	}
	return nil
}

// blob is a variant outside the closed shape set; the shapes demo uses it
// to show the default branch firing and being guarded.
type blob struct{}

func (blob) Kind() string { return "blob" }

func demoShapes(out io.Writer) error {
	prefix := label(patternColor, "Pattern Matching")

	for _, s := range []pfd.Shape{
		pfd.Circle{Radius: 2},
		pfd.Rectangle{Width: 3, Height: 4},
		pfd.Triangle{Base: 6, Height: 5},
		nil,
	} {
		area, err := pfd.Area(s)
		if err != nil {
			return err
		}
		name := "none"
		if s != nil {
			name = s.Kind()
		}
		fmt.Fprintf(out, "%s area(%s) = %.2f\n", prefix, name, area)
	}

	// The default branch in action, guarded instead of fatal.
	if _, err := pfd.Area(blob{}); errors.Is(err, pfd.ErrUnknownShape) {
		fmt.Fprintf(out, "%s area(blob) rejected: %v\n", prefix, err)
	}
	return nil
}

func demoPeople(out io.Writer) error {
	prefix := label(patternColor, "Pattern Matching")

	for _, p := range []pfd.Person{
		{Name: "Ivy", Age: 8},
		{Name: "Tom", Age: 16},
		{Name: "Alice", Age: 30},
		{Name: "Rose", Age: 70},
	} {
		fmt.Fprintf(out, "%s %s is %s\n", prefix, p.Name, pfd.ClassifyAge(p))
	}
	return nil
}

func demoNumbers(out io.Writer) error {
	prefix := label(patternColor, "Pattern Matching")

	for _, pair := range [][2]int{{5, 3}, {2, 7}, {4, 4}, {0, 0}} {
		fmt.Fprintf(out, "%s compare(%d, %d) = %s\n", prefix, pair[0], pair[1], pfd.CompareInts(pair[0], pair[1]))
	}
	return nil
}

func demoPure(out io.Writer) error {
	prefix := label(pureColor, "Pure Function")

	fmt.Fprintf(out, "%s Add(2, 3) = %d\n", prefix, pfd.Add(2, 3))
	fmt.Fprintf(out, "%s Multiply(4, 6) = %d\n", prefix, pfd.Multiply(4, 6))
	fmt.Fprintf(out, "%s DoubleIt(7) = %d\n", prefix, pfd.DoubleIt(7))
	fmt.Fprintf(out, "%s SquareIt(9) = %d\n", prefix, pfd.SquareIt(9))
	fmt.Fprintf(out, "%s DoubleThenSquare(3) = %d\n", prefix, pfd.DoubleThenSquare(3))
	fmt.Fprintf(out, "%s Factorial(5) = %d\n", prefix, pfd.Factorial(5))
	fmt.Fprintf(out, "%s Pipe(2, double, double, square) = %d\n", prefix, pfd.Pipe(2, pfd.DoubleIt, pfd.DoubleIt, pfd.SquareIt))
	return nil
}

func demoImmutable(out io.Writer) error {
	prefix := label(immutableColor, "Immutability")

	alice := pfd.Person{Name: "Alice", Age: 30}
	older := alice.WithAge(31)
	fmt.Fprintf(out, "%s original %s, updated %s\n", prefix, alice, older)

	fmt.Fprintf(out, "%s CalculateSquare(2, 3) = %d\n", prefix, pfd.CalculateSquare(2, 3))

	source := pfd.BaseSequence()
	doubled := pfd.DoubleAll(source)
	fmt.Fprintf(out, "%s source %v, doubled %v\n", prefix, source, doubled)
	fmt.Fprintf(out, "%s doubled equals [2 4 6 8 10]: %v\n", prefix, slices.Equal(doubled, []int{2, 4, 6, 8, 10}))
	return nil
}

func demoCollections(out io.Writer) error {
	prefix := label(collectionsColor, "Collections")

	people := []pfd.Person{
		{Name: "Ivy", Age: 8},
		{Name: "Alice", Age: 30},
		{Name: "Bob", Age: 42},
		{Name: "Rose", Age: 70},
	}

	fmt.Fprintf(out, "%s names = %v\n", prefix, pfd.Names(people))
	fmt.Fprintf(out, "%s adults = %v\n", prefix, pfd.Names(pfd.Adults(people)))
	fmt.Fprintf(out, "%s total age = %d\n", prefix, pfd.TotalAge(people))

	first := pfd.FindFirst(people, func(p pfd.Person) bool { return p.Age > 40 })
	fmt.Fprintf(out, "%s first over 40 = %s\n", prefix, first.OrElse(pfd.Person{Name: "nobody"}).Name)

	fmt.Fprintf(out, "%s evens = %v\n", prefix, pfd.Evens([]int{1, 2, 3, 4, 5, 6}))
	return nil
}

// demoService runs the configured number of simulated calls. Each call gets
// a correlation id in the debug log; the showcase lines stay clean.
func demoService(out io.Writer) error {
	injector := newInjector(out)

	sim := do.MustInvoke[pfd.Simulator](injector)
	log := do.MustInvoke[*zap.Logger](injector)
	opts := do.MustInvoke[tourOptions](injector)

	if opts.Calls < 0 {
		return fmt.Errorf("--calls must not be negative, got %d", opts.Calls)
	}

	prefix := label(resultColor, "Result")

	results := make([]pfd.Result, 0, opts.Calls)
	for i := 0; i < opts.Calls; i++ {
		id := uuid.NewString()
		r := sim.Call()
		log.Debug("service call finished",
			zap.String("call_id", id),
			zap.Int("attempt", i+1),
			zap.Bool("ok", r.OK()))
		results = append(results, r)
	}

	succeeded := lo.CountBy(results, pfd.Result.OK)
	fmt.Fprintf(out, "%s %d of %d calls succeeded (seed %d)\n", prefix, succeeded, opts.Calls, opts.Seed)
	return nil
}
