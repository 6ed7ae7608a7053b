// SPDX-License-Identifier: MIT

package geom

import "strconv"

// Direction is the orientation of a line through the grid.
//
// The set is closed: every consumer dispatches on it with a single
// exhaustive switch.
//
//	Horizontal   Vertical    Diagonal    AntiDiagonal
//	  - - -        | | |       \ \ \       / / /
//	  - - -        | | |       \ \ \       / / /
type Direction uint8

const (
	// Horizontal lines are rows; unit step (0,+1).
	Horizontal Direction = iota
	// Vertical lines are columns; unit step (+1,0).
	Vertical
	// Diagonal lines run top-left → bottom-right; unit step (+1,+1).
	Diagonal
	// AntiDiagonal lines run top-right → bottom-left; unit step (+1,-1).
	AntiDiagonal
)

// Directions returns all four directions in declaration order.
func Directions() []Direction {
	return []Direction{Horizontal, Vertical, Diagonal, AntiDiagonal}
}

// Valid reports whether d is one of the four declared directions.
func (d Direction) Valid() bool {
	return d <= AntiDiagonal
}

// IsAxial reports whether d runs along an axis (Horizontal or Vertical).
func (d Direction) IsAxial() bool {
	return d == Horizontal || d == Vertical
}

// Opposite pairs the directions: Horizontal↔Vertical, Diagonal↔AntiDiagonal.
// An invalid direction is returned unchanged.
// Complexity: O(1).
func (d Direction) Opposite() Direction {
	switch d {
	case Horizontal:
		return Vertical
	case Vertical:
		return Horizontal
	case Diagonal:
		return AntiDiagonal
	case AntiDiagonal:
		return Diagonal
	default:
		return d
	}
}

// Axis returns the axis an axial direction runs along.
// ok is false for Diagonal, AntiDiagonal and invalid values.
// Complexity: O(1).
func (d Direction) Axis() (axis Axis, ok bool) {
	switch d {
	case Horizontal:
		return Row, true
	case Vertical:
		return Column, true
	default:
		return 0, false
	}
}

// Unit returns the step that advances a coordinate by one cell along d.
// An invalid direction yields the zero Offset.
// Complexity: O(1).
func (d Direction) Unit() Offset {
	switch d {
	case Horizontal:
		return Offset{Row: 0, Column: 1}
	case Vertical:
		return Offset{Row: 1, Column: 0}
	case Diagonal:
		return Offset{Row: 1, Column: 1}
	case AntiDiagonal:
		return Offset{Row: 1, Column: -1}
	default:
		return Offset{}
	}
}

// String returns the lower-case, hyphenated name of d.
func (d Direction) String() string {
	switch d {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case Diagonal:
		return "diagonal"
	case AntiDiagonal:
		return "anti-diagonal"
	default:
		return "direction(" + strconv.Itoa(int(d)) + ")"
	}
}

