package purefuncdemos

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// ============================================================================
// Collection Helper Tests
// ============================================================================

func demoCrowd() []Person {
	return []Person{
		{Name: "Ivy", Age: 8},
		{Name: "Tom", Age: 16},
		{Name: "Alice", Age: 30},
		{Name: "Bob", Age: 42},
		{Name: "Rose", Age: 70},
	}
}

func TestAdults(t *testing.T) {
	got := Adults(demoCrowd())

	want := []Person{
		{Name: "Alice", Age: 30},
		{Name: "Bob", Age: 42},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected adults (-want +got):\n%s", diff)
	}
}

func TestAdults_InputUnchanged(t *testing.T) {
	crowd := demoCrowd()
	Adults(crowd)

	if diff := cmp.Diff(demoCrowd(), crowd); diff != "" {
		t.Errorf("input changed (-want +got):\n%s", diff)
	}
}

func TestNames(t *testing.T) {
	got := Names(demoCrowd())

	want := []string{"Ivy", "Tom", "Alice", "Bob", "Rose"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected names (-want +got):\n%s", diff)
	}
}

func TestTotalAge(t *testing.T) {
	if got := TotalAge(demoCrowd()); got != 166 {
		t.Errorf("expected 166, got %d", got)
	}
	if got := TotalAge(nil); got != 0 {
		t.Errorf("expected 0 for no people, got %d", got)
	}
}

func TestFindFirst(t *testing.T) {
	p, ok := FindFirst(demoCrowd(), func(p Person) bool { return p.Age > 40 }).Get()
	if !ok {
		t.Fatal("expected a match")
	}
	if p.Name != "Bob" {
		t.Errorf("expected the first match 'Bob', got '%s'", p.Name)
	}
}

func TestFindFirst_NoMatch(t *testing.T) {
	opt := FindFirst(demoCrowd(), func(p Person) bool { return p.Age > 200 })

	if _, ok := opt.Get(); ok {
		t.Error("expected no match")
	}
	fallback := opt.OrElse(Person{Name: "nobody"})
	if fallback.Name != "nobody" {
		t.Errorf("expected the fallback person, got '%s'", fallback.Name)
	}
}

func TestEvens(t *testing.T) {
	got := Evens([]int{1, 2, 3, 4, 5, 6})

	if diff := cmp.Diff([]int{2, 4, 6}, got); diff != "" {
		t.Errorf("unexpected evens (-want +got):\n%s", diff)
	}
}
