// SPDX-License-Identifier: MIT

package geom

import "fmt"

// Offset is a signed displacement between two coordinates.
// Either axis may be negative, zero or positive.
type Offset struct {
	Row    int // row delta
	Column int // column delta
}

// Axis returns the delta of o on axis a.
func (o Offset) Axis(a Axis) int {
	if a == Row {
		return o.Row
	}
	return o.Column
}

// WithAxis returns a copy of o with axis a replaced by v.
func (o Offset) WithAxis(a Axis, v int) Offset {
	if a == Row {
		o.Row = v
	} else {
		o.Column = v
	}
	return o
}

// Add is plain vector addition. It never fails.
func (o Offset) Add(p Offset) Offset {
	return Offset{Row: o.Row + p.Row, Column: o.Column + p.Column}
}

// Neg returns -o.
func (o Offset) Neg() Offset {
	return Offset{Row: -o.Row, Column: -o.Column}
}

// Scale returns o multiplied by k on both axes.
func (o Offset) Scale(k int) Offset {
	return Offset{Row: o.Row * k, Column: o.Column * k}
}

// IsZero reports whether o is the null displacement.
func (o Offset) IsZero() bool {
	return o.Row == 0 && o.Column == 0
}

// String renders o as "(+row,+column)".
func (o Offset) String() string {
	return fmt.Sprintf("(%+d,%+d)", o.Row, o.Column)
}
