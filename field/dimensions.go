// SPDX-License-Identifier: MIT

package field

import (
	"iter"

	"github.com/0-Kirby-0/Field/geom"
)

// Width is the length of the first row, or 0 for a field without rows.
// Complexity: O(1).
func (f *Field[T]) Width() int {
	if len(f.data) == 0 {
		return 0
	}
	return len(f.data[0])
}

// Height is the number of rows.
// Complexity: O(1).
func (f *Field[T]) Height() int {
	return len(f.data)
}

// InBounds reports whether c lies in [0,Height)×[0,Width).
func (f *Field[T]) InBounds(c geom.Coordinate) bool {
	return inside(c, f.Height(), f.Width())
}

// NumberOfLines returns how many lines of direction d cross the field:
// Height rows, Width columns, or Width+Height-1 diagonals of either kind.
// A field with no cells has no diagonals; an invalid direction has no lines.
// Complexity: O(1).
func (f *Field[T]) NumberOfLines(d geom.Direction) int {
	h, w := f.Height(), f.Width()
	switch d {
	case geom.Horizontal:
		return h
	case geom.Vertical:
		return w
	case geom.Diagonal, geom.AntiDiagonal:
		if h == 0 || w == 0 {
			return 0
		}
		return w + h - 1
	default:
		return 0
	}
}

// AllCoordinates yields every coordinate of the field in row-major order.
// The dimensions are read once, when AllCoordinates is called; the sequence
// may be ranged over repeatedly.
func (f *Field[T]) AllCoordinates() iter.Seq[geom.Coordinate] {
	h, w := f.Height(), f.Width()
	return func(yield func(geom.Coordinate) bool) {
		for r := 0; r < h; r++ {
			for c := 0; c < w; c++ {
				if !yield(geom.Coordinate{Row: r, Column: c}) {
					return
				}
			}
		}
	}
}

func inside(c geom.Coordinate, height, width int) bool {
	return c.Row >= 0 && c.Row < height && c.Column >= 0 && c.Column < width
}
