// SPDX-License-Identifier: MIT

package geom

import "strconv"

// Axis selects one of the two independent grid dimensions.
type Axis uint8

const (
	// Row is the vertical position axis (which row a cell is in).
	Row Axis = iota
	// Column is the horizontal position axis (which column a cell is in).
	Column
)

// Opposite returns the other axis: Row↔Column.
// Complexity: O(1).
func (a Axis) Opposite() Axis {
	if a == Row {
		return Column
	}
	return Row
}

// Direction returns the line direction that runs along the axis:
// a row is a Horizontal line, a column is a Vertical line.
// Complexity: O(1).
func (a Axis) Direction() Direction {
	if a == Row {
		return Horizontal
	}
	return Vertical
}

// Valid reports whether a is Row or Column.
func (a Axis) Valid() bool {
	return a == Row || a == Column
}

// String returns "row" or "column".
func (a Axis) String() string {
	switch a {
	case Row:
		return "row"
	case Column:
		return "column"
	default:
		return "axis(" + strconv.Itoa(int(a)) + ")"
	}
}
