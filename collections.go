package purefuncdemos

import (
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// ============================================================================
// Declarative Collection Processing
// ============================================================================
//
// These helpers say what the transformation is, not how to loop it. None of
// them writes through its input slice.

// Adults returns the people whose age classifies as "Adult", preserving
// input order.
func Adults(people []Person) []Person {
	return lo.Filter(people, func(p Person, _ int) bool {
		return ClassifyAge(p) == "Adult"
	})
}

// Names projects people to their names, preserving order.
func Names(people []Person) []string {
	return lo.Map(people, func(p Person, _ int) string { return p.Name })
}

// TotalAge sums every person's age.
func TotalAge(people []Person) int {
	return lo.SumBy(people, func(p Person) int { return p.Age })
}

// FindFirst returns the first person matching pred as an Option: Some when
// a match exists, None when none does.
func FindFirst(people []Person, pred func(Person) bool) mo.Option[Person] {
	if p, ok := lo.Find(people, pred); ok {
		return mo.Some(p)
	}
	return mo.None[Person]()
}

// Evens keeps the even values of xs, in order.
func Evens(xs []int) []int {
	return lo.Filter(xs, func(x int, _ int) bool { return x%2 == 0 })
}
