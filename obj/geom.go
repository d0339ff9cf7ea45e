package obj

import "github.com/jakecoffman/cp"

// NewBB builds an axis-aligned box from a top-left corner and size, in screen
// coordinates (y grows down, so B holds the top edge and T the bottom edge).
func NewBB(x, y, w, h float64) cp.BB {
	return cp.BB{L: x, B: y, R: x + w, T: y + h}
}

// Overlaps reports whether two boxes overlap: each box's start must be
// strictly before the other's end on both axes. Edge contact doesn't count.
func Overlaps(a, b cp.BB) bool {
	return a.L < b.R && b.L < a.R && a.B < b.T && b.B < a.T
}
