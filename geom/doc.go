// SPDX-License-Identifier: MIT

// Package geom holds the pure value types every grid computation is built on.
//
// What:
//
//   - Coordinate: absolute, non-negative (Row, Column) position.
//   - Offset: signed (Row, Column) displacement.
//   - Axis: Row or Column.
//   - Direction: Horizontal, Vertical, Diagonal, AntiDiagonal, each with a
//     unit step Offset.
//   - Kernels: deterministic neighbourhoods of offsets (square and cross).
//
// Arithmetic:
//
//	Coordinate.Add is partial. It reports ok=false instead of producing a
//	negative or wrapped axis, so a traversal simply ends where the step
//	becomes infeasible:
//
//	    next, ok := c.Add(geom.Diagonal.Unit())
//	    if !ok {
//	        // walked off the top/left edge or overflowed
//	    }
//
// Codecs:
//
//   - Axis and Direction marshal as lower-case names ("row", "anti-diagonal")
//     through encoding.TextMarshaler and yaml.v3.
//   - Coordinate and Offset marshal as YAML flow sequences [row, column].
//   - KernelSpec describes a neighbourhood declaratively (ParseKernelSpec).
//
// Nothing in this package knows about grid bounds; bounds checks live in
// package field.
package geom
