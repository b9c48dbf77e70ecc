package purefuncdemos

import "fmt"

// ============================================================================
// Domain Records
// ============================================================================

// Person is an immutable name/age record. It has no identity beyond its
// value: two Persons with the same fields are the same person as far as
// this package is concerned.
//
// Nothing ever mutates a Person. An "update" is a copy with one field
// overridden:
//
//	alice := Person{Name: "Alice", Age: 30}
//	older := alice.WithAge(31) // alice still reads 30
//
// Age is expected to be non-negative; like the shape dimensions, that is a
// documentation contract, not an enforced check.
type Person struct {
	Name string
	Age  int
}

// WithAge returns a copy of p with Age replaced. Every other field is
// copied as-is; p itself is untouched.
func (p Person) WithAge(age int) Person {
	return Person{Name: p.Name, Age: age}
}

// WithName returns a copy of p with Name replaced.
func (p Person) WithName(name string) Person {
	return Person{Name: name, Age: p.Age}
}

// String implements fmt.Stringer as "Name (Age)".
func (p Person) String() string {
	return fmt.Sprintf("%s (%d)", p.Name, p.Age)
}
