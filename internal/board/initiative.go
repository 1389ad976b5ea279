package board

import "sort"

// TurnOrder returns the tokens sorted by initiative, highest first. The
// sort is stable so ties keep the collection's original relative order —
// required for the cursor to stay on the same logical token across
// recomputes.
func TurnOrder(tokens []*Token) []*Token {
	out := make([]*Token, len(tokens))
	copy(out, tokens)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Initiative > out[j].Initiative
	})
	return out
}

// ClampCursor pins a turn cursor inside [0, length). An empty order clamps
// to 0.
func ClampCursor(cursor, length int) int {
	if length <= 0 {
		return 0
	}
	if cursor < 0 {
		return 0
	}
	if cursor >= length {
		return length - 1
	}
	return cursor
}

// AdvanceCursor steps the cursor by dir (+1 or -1), wrapping around the
// order. Returns 0 when the order is empty.
func AdvanceCursor(cursor, length, dir int) int {
	if length <= 0 {
		return 0
	}
	next := (cursor + dir) % length
	if next < 0 {
		next += length
	}
	return next
}
