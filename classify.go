package purefuncdemos

// ============================================================================
// Ordered Classification
// ============================================================================

// ClassifyAge returns one of four life-stage labels for p: "Child",
// "Teenager", "Adult" or "Senior".
//
// The checks are ordered and the first match wins: age 12 is "Child"
// because it never reaches the under-20 check, not because the branches
// carve out disjoint ranges. Reordering them changes the answer.
//
// Boundaries: 12 → Child, 13 and 19 → Teenager, 20 and 64 → Adult,
// 65 → Senior.
func ClassifyAge(p Person) string {
	switch {
	case p.Age < 13:
		return "Child"
	case p.Age < 20:
		return "Teenager"
	case p.Age < 65:
		return "Adult"
	default:
		return "Senior"
	}
}

// CompareInts labels the relationship between a and b with one of four
// strings: "Both zero", "First is larger", "Second is larger" or
// "Both are equal".
//
// "Both zero" is a special case of equality and is checked before anything
// else, so (0, 0) never reports the generic equal label.
func CompareInts(a, b int) string {
	switch {
	case a == 0 && b == 0:
		return "Both zero"
	case a > b:
		return "First is larger"
	case a < b:
		return "Second is larger"
	default:
		return "Both are equal"
	}
}
