// SPDX-License-Identifier: MIT

package field

import (
	"fmt"
	"slices"

	"github.com/0-Kirby-0/Field/geom"
)

// Map returns a new field of the same shape with fn applied to every cell.
// f is not modified.
// Complexity: O(W·H).
func Map[T, R any](f *Field[T], fn func(T) R) *Field[R] {
	return MapWithCoordinate(f, func(_ geom.Coordinate, v T) R { return fn(v) })
}

// MapWithCoordinate is Map with the cell's coordinate passed to fn.
// Complexity: O(W·H).
func MapWithCoordinate[T, R any](f *Field[T], fn func(geom.Coordinate, T) R) *Field[R] {
	data := make([][]R, len(f.data))
	for r, row := range f.data {
		out := make([]R, len(row))
		for c, v := range row {
			out[c] = fn(geom.Coordinate{Row: r, Column: c}, v)
		}
		data[r] = out
	}
	return &Field[R]{data: data, opts: f.opts}
}

// MapByLine calls fn once per line of d and assembles the results into a new
// field. f is not modified.
//
// Rows and columns may change length: the first produced line fixes the new
// width (Horizontal) or height (Vertical). An empty first line is ErrNoWidth;
// any later line of another length is ErrLengthMismatch.
//
// Diagonal results keep f's shape: each produced line must be at least as
// long as its source line (ErrLengthMismatch), surplus values are ignored.
//
// Diagonals of a field without cells keep its shape, so an H×0 field maps to
// an H×0 field; rows or columns of a field without such lines map to an
// empty field.
// Complexity: O(W·H) plus the cost of fn.
func MapByLine[T, R any](f *Field[T], d geom.Direction, fn func([]T) []R) (*Field[R], error) {
	if !d.Valid() {
		return nil, fmt.Errorf("MapByLine(%s): %w", d, ErrUnknownDirection)
	}
	n := f.NumberOfLines(d)
	if !d.IsAxial() {
		out := newZero[R](f.Width(), f.Height())
		out.opts = f.opts
		for i, line := range f.Lines(d) {
			if err := out.SetLine(d, i, fn(slices.Collect(line))); err != nil {
				return nil, fmt.Errorf("MapByLine: %w", err)
			}
		}
		return out, nil
	}

	if n == 0 {
		return &Field[R]{opts: f.opts}, nil
	}
	produced := make([][]R, 0, n)
	cross := 0
	for i, line := range f.Lines(d) {
		got := fn(slices.Collect(line))
		if i == 0 {
			cross = len(got)
			if cross == 0 {
				return nil, fmt.Errorf("MapByLine(%s,%d): %w", d, i, ErrNoWidth)
			}
		}
		if len(got) != cross {
			return nil, fmt.Errorf("MapByLine(%s,%d): %w: want %d values, got %d",
				d, i, ErrLengthMismatch, cross, len(got))
		}
		produced = append(produced, got)
	}

	if d == geom.Horizontal {
		return &Field[R]{data: produced, opts: f.opts}, nil
	}
	// Vertical: produced[c] is column c; lay it out as rows.
	out := newZero[R](n, cross)
	out.opts = f.opts
	for c, column := range produced {
		for r, v := range column {
			out.data[r][c] = v
		}
	}
	return out, nil
}

// Merge pairs the cells of a and b position by position and combines them
// with fn into a new field. Neither operand is modified.
// Returns ErrDimensionMismatch if the widths or heights differ.
// Complexity: O(W·H).
func Merge[T, O, R any](a *Field[T], b *Field[O], fn func(T, O) R) (*Field[R], error) {
	if a.Width() != b.Width() || a.Height() != b.Height() {
		return nil, fmt.Errorf("Merge(%dx%d, %dx%d): %w",
			a.Height(), a.Width(), b.Height(), b.Width(), ErrDimensionMismatch)
	}
	data := make([][]R, len(a.data))
	for r := range a.data {
		rowA, rowB := a.data[r], b.data[r]
		out := make([]R, min(len(rowA), len(rowB)))
		for c := range out {
			out[c] = fn(rowA[c], rowB[c])
		}
		data[r] = out
	}
	return &Field[R]{data: data, opts: a.opts}, nil
}

// MergeLine combines line index of d with values element-wise via fn and
// writes the result back with SetLine.
//
// Pairing stops at the shorter of the line and values, so too few values end
// in ErrLengthMismatch from SetLine and f stays unchanged.
// Returns ErrUnknownDirection or ErrLineIndex if the line cannot be read.
func MergeLine[T, V any](f *Field[T], d geom.Direction, index int, values []V, fn func(T, V) T) error {
	line, err := f.Line(d, index)
	if err != nil {
		return err
	}
	merged := make([]T, 0, len(values))
	for v := range line {
		if len(merged) == len(values) {
			break
		}
		merged = append(merged, fn(v, values[len(merged)]))
	}
	return f.SetLine(d, index, merged)
}

// FindAll returns the coordinates of every cell satisfying pred, in
// row-major order.
// Complexity: O(W·H).
func (f *Field[T]) FindAll(pred func(T) bool) []geom.Coordinate {
	var out []geom.Coordinate
	for c, v := range f.Cells() {
		if pred(v) {
			out = append(out, c)
		}
	}
	return out
}
