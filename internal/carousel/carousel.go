// Package carousel pages through an ordered list two items at a time,
// wrapping circularly at both ends.
package carousel

// PageSize is the number of items shown at once and the step of Advance/Retreat.
const PageSize = 2

// Wrap normalizes i into [0, length) using floored modulo.
// A zero or negative length yields 0; callers must not dereference it.
func Wrap(i, length int) int {
	if length <= 0 {
		return 0
	}
	return ((i % length) + length) % length
}

// VisibleWindow returns the indexes on screen for the given carousel index.
// With three or more items the pair slides and may straddle the wrap point.
func VisibleWindow(index, length int) []int {
	switch {
	case length <= 0:
		return []int{}
	case length == 1:
		return []int{Wrap(index, length)}
	}
	return []int{Wrap(index, length), Wrap(index+1, length)}
}

// Advance moves forward one page.
func Advance(index, length int) int {
	return Wrap(index+PageSize, length)
}

// Retreat moves back one page.
func Retreat(index, length int) int {
	return Wrap(index-PageSize, length)
}

// Rebase re-normalizes an index against a list of a different length,
// keeping the position instead of resetting to zero.
func Rebase(index, newLength int) int {
	return Wrap(index, newLength)
}

// Window returns the visible items of items for index.
func Window[T any](items []T, index int) []T {
	idx := VisibleWindow(index, len(items))
	out := make([]T, 0, len(idx))
	for _, i := range idx {
		out = append(out, items[i])
	}
	return out
}
