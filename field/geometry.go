// SPDX-License-Identifier: MIT

package field

import (
	"iter"

	"github.com/0-Kirby-0/Field/geom"
)

// checkLine validates direction and index against the current dimensions.
func (f *Field[T]) checkLine(d geom.Direction, index int) error {
	if !d.Valid() {
		return ErrUnknownDirection
	}
	if index < 0 || index >= f.NumberOfLines(d) {
		return ErrLineIndex
	}
	return nil
}

// LineStart returns the first coordinate of line index in direction d.
// ok is false when index is outside [0, NumberOfLines(d)) or d is invalid.
//
// For an H×W field:
//
//   - Horizontal i starts at (i, 0); Vertical i at (0, i).
//   - Diagonal i < H-1 starts on the left edge at (H-1-i, 0); the rest start
//     on the top edge at (0, i-(H-1)). Index H-1 is the top-left corner.
//   - AntiDiagonal i < W starts on the top edge at (0, i); the rest start on
//     the right edge at (i-W+1, W-1), below the top-right corner.
//
// Complexity: O(1).
func (f *Field[T]) LineStart(d geom.Direction, index int) (start geom.Coordinate, ok bool) {
	if f.checkLine(d, index) != nil {
		return geom.Coordinate{}, false
	}
	h, w := f.Height(), f.Width()

	switch d {
	case geom.Horizontal:
		return geom.Coordinate{Row: index, Column: 0}, true
	case geom.Vertical:
		return geom.Coordinate{Row: 0, Column: index}, true
	case geom.Diagonal:
		if index < h-1 {
			return geom.Coordinate{Row: h - 1 - index, Column: 0}, true
		}
		return geom.Coordinate{Row: 0, Column: index - (h - 1)}, true
	case geom.AntiDiagonal:
		if index < w {
			return geom.Coordinate{Row: 0, Column: index}, true
		}
		return geom.Coordinate{Row: index - w + 1, Column: w - 1}, true
	default:
		return geom.Coordinate{}, false
	}
}

// LineStarts yields the start coordinate of every line of d, in index order.
func (f *Field[T]) LineStarts(d geom.Direction) iter.Seq[geom.Coordinate] {
	return func(yield func(geom.Coordinate) bool) {
		n := f.NumberOfLines(d)
		for i := 0; i < n; i++ {
			start, _ := f.LineStart(d, i)
			if !yield(start) {
				return
			}
		}
	}
}

// LineLen returns the number of cells on line index of d without walking it.
// Returns ErrUnknownDirection or ErrLineIndex.
// Complexity: O(1).
func (f *Field[T]) LineLen(d geom.Direction, index int) (int, error) {
	if err := f.checkLine(d, index); err != nil {
		return 0, lineErrorf("LineLen", d, index, err)
	}
	h, w := f.Height(), f.Width()
	start, _ := f.LineStart(d, index)

	switch d {
	case geom.Horizontal:
		return w, nil
	case geom.Vertical:
		return h, nil
	case geom.Diagonal:
		return min(h-start.Row, w-start.Column), nil
	default: // geom.AntiDiagonal
		return min(h-start.Row, start.Column+1), nil
	}
}

// LineCoordinates yields the coordinates of line index of d, from its start
// in the direction's unit step, until the next step is infeasible or leaves
// the field. Returns ErrUnknownDirection or ErrLineIndex.
func (f *Field[T]) LineCoordinates(d geom.Direction, index int) (iter.Seq[geom.Coordinate], error) {
	if err := f.checkLine(d, index); err != nil {
		return nil, lineErrorf("LineCoordinates", d, index, err)
	}
	return f.walkLine(d, index), nil
}

// walkLine is LineCoordinates without validation; the caller has checked.
func (f *Field[T]) walkLine(d geom.Direction, index int) iter.Seq[geom.Coordinate] {
	start, _ := f.LineStart(d, index)
	return walk(start, d.Unit(), f.Height(), f.Width())
}

// walk yields start, start+step, start+2·step, ... while each coordinate is
// inside height×width. It stops without yielding as soon as a step fails
// geom.Coordinate.Add or leaves the bounds. A zero step yields nothing.
func walk(start geom.Coordinate, step geom.Offset, height, width int) iter.Seq[geom.Coordinate] {
	return func(yield func(geom.Coordinate) bool) {
		if step.IsZero() {
			return
		}
		for c, ok := start, true; ok && inside(c, height, width); c, ok = c.Add(step) {
			if !yield(c) {
				return
			}
		}
	}
}
