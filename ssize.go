package dynarray

import "math"

// mulSize multiplies two non-negative sizes, reporting whether the product
// fits in the signed size range. It never traps, so callers can fail
// before mutating any state.
func mulSize(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > math.MaxInt/b {
		return 0, false
	}
	return a * b, true
}
