package tui

// Focus steps over the flattened navigation sequence. Left/right move one
// seat; up/down jump five positions, a fixed row-width approximation kept
// from the original layout rather than derived from row geometry.
const (
	stepSeat = 1
	stepRow  = 5
)

// moveFocus returns the seat id delta positions away from current in order,
// clamped at the sequence boundaries with no wraparound. It reports false
// when there is no current focus or the focus is not part of the sequence;
// the navigator never picks an initial focus on its own.
func moveFocus(order []string, current string, delta int) (string, bool) {
	if current == "" || len(order) == 0 {
		return "", false
	}
	index := -1
	for i, id := range order {
		if id == current {
			index = i
			break
		}
	}
	if index < 0 {
		return "", false
	}

	next := index + delta
	if next < 0 {
		next = 0
	}
	if next > len(order)-1 {
		next = len(order) - 1
	}
	return order[next], true
}
