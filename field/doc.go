// SPDX-License-Identifier: MIT

// Package field provides Field[T], a dense rectangular grid over any cell
// type, with direction-aware line traversal and structural transforms.
//
// What:
//
//   - Field[T] owns a [][]T addressed by geom.Coordinate (row, column).
//   - Lines run in four directions (geom.Horizontal, geom.Vertical,
//     geom.Diagonal, geom.AntiDiagonal); every cell lies on exactly one line
//     per direction.
//   - Line geometry: NumberOfLines, LineStart, LineLen, LineCoordinates.
//   - Line access: Line, Lines, SetLine, SetLines.
//   - Transforms: Map, MapWithCoordinate, MapByLine, Merge, MergeLine, FindAll.
//
// Line numbering:
//
//	Horizontal   Vertical    Diagonal    AntiDiagonal
//	             0 1 2       3 4 5         0 1 2
//	0 - - -      | | |       2 \ \ \     / / / 3
//	1 - - -      | | |       1 \ \ \     / / / 4
//	2 - - -      | | |       0 \ \ \     / / / 5
//	3 - - -      | | |         \ \ \     / / /
//
// Diagonals are counted from the bottom-left corner towards the top-right;
// anti-diagonals from the top-left corner towards the bottom-right.
//
// Ownership:
//
//	Transforms never consume their source; they return a new Field. FromGrid
//	and SetGrid adopt the caller's slice without copying it.
//
// Errors:
//
//   - ErrBadShape: negative width or height.
//   - ErrNonRectangular: raw grid rows differ in length (unless WithUnchecked).
//   - ErrOutOfRange: coordinate outside the field.
//   - ErrLineIndex: line index outside [0, NumberOfLines(d)).
//   - ErrUnknownDirection: direction value outside the four directions.
//   - ErrLengthMismatch: too few values for a line, or lines of unequal length.
//   - ErrDimensionMismatch: Merge operands differ in size.
//   - ErrNoWidth: MapByLine produced an empty first line.
//
// A Field is not safe for concurrent mutation; callers serialise access.
package field
