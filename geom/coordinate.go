// SPDX-License-Identifier: MIT

package geom

import (
	"fmt"
	"math"
)

// Coordinate is an absolute grid position.
//
// Both axes are non-negative. The zero value is (0,0). A Coordinate does not
// know the bounds of any grid; package field checks it against dimensions.
type Coordinate struct {
	Row    int // row index, >= 0
	Column int // column index, >= 0
}

// Valid reports whether both axes are non-negative.
func (c Coordinate) Valid() bool {
	return c.Row >= 0 && c.Column >= 0
}

// Axis returns the value of c on axis a.
func (c Coordinate) Axis(a Axis) int {
	if a == Row {
		return c.Row
	}
	return c.Column
}

// WithAxis returns a copy of c with axis a replaced by v.
func (c Coordinate) WithAxis(a Axis, v int) Coordinate {
	if a == Row {
		c.Row = v
	} else {
		c.Column = v
	}
	return c
}

// Add moves c by o.
//
// The step is checked per axis and applied only if both axes succeed:
//   - o > 0 and c+o would exceed math.MaxInt → overflow, ok=false;
//   - o < 0 and |o| > c → underflow, ok=false;
//   - otherwise the axis becomes c+o.
//
// A receiver with a negative axis is not a position and always yields ok=false.
// Complexity: O(1).
func (c Coordinate) Add(o Offset) (next Coordinate, ok bool) {
	if !c.Valid() {
		return Coordinate{}, false
	}
	row, ok := addAxis(c.Row, o.Row)
	if !ok {
		return Coordinate{}, false
	}
	col, ok := addAxis(c.Column, o.Column)
	if !ok {
		return Coordinate{}, false
	}
	return Coordinate{Row: row, Column: col}, true
}

// addAxis applies a signed step to a non-negative base.
func addAxis(base, step int) (int, bool) {
	switch {
	case step > 0:
		if base > math.MaxInt-step {
			return 0, false // overflow
		}
	case step < 0:
		// base >= 0, so base+step cannot wrap below math.MinInt.
		if base+step < 0 {
			return 0, false // underflow
		}
	}
	return base + step, true
}

// OffsetTo returns the displacement that moves c onto dst.
func (c Coordinate) OffsetTo(dst Coordinate) Offset {
	return Offset{Row: dst.Row - c.Row, Column: dst.Column - c.Column}
}

// Less reports whether c precedes d in row-major order.
func (c Coordinate) Less(d Coordinate) bool {
	if c.Row != d.Row {
		return c.Row < d.Row
	}
	return c.Column < d.Column
}

// String renders c as "(row,column)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Column)
}
