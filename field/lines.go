// SPDX-License-Identifier: MIT

package field

import (
	"fmt"
	"iter"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/0-Kirby-0/Field/geom"
)

// ---------- Read ----------

// Line yields the cells of line index of d in traversal order.
// Returns ErrUnknownDirection or ErrLineIndex.
//
// Rows and columns are read by direct indexing; diagonals walk the line's
// coordinates. Both paths yield the same cells.
func (f *Field[T]) Line(d geom.Direction, index int) (iter.Seq[T], error) {
	if err := f.checkLine(d, index); err != nil {
		return nil, lineErrorf("Line", d, index, err)
	}
	switch d {
	case geom.Horizontal:
		return f.row(index), nil
	case geom.Vertical:
		return f.column(index), nil
	default:
		return f.ValuesAt(f.walkLine(d, index)), nil
	}
}

// Lines yields (index, line) for every line of d, index ascending.
func (f *Field[T]) Lines(d geom.Direction) iter.Seq2[int, iter.Seq[T]] {
	return func(yield func(int, iter.Seq[T]) bool) {
		n := f.NumberOfLines(d)
		for i := 0; i < n; i++ {
			line, err := f.Line(d, i)
			if err != nil {
				return // dimensions changed while iterating
			}
			if !yield(i, line) {
				return
			}
		}
	}
}

func (f *Field[T]) row(index int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if index >= len(f.data) {
			return
		}
		for _, v := range f.data[index] {
			if !yield(v) {
				return
			}
		}
	}
}

func (f *Field[T]) column(index int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, row := range f.data {
			if index >= len(row) {
				continue
			}
			if !yield(row[index]) {
				return
			}
		}
	}
}

// ---------- Write ----------

// SetLine writes values positionally along line index of d.
//
// Returns ErrUnknownDirection, ErrLineIndex, or ErrLengthMismatch when
// len(values) is shorter than the line. All checks run before the first
// write, so a failed SetLine leaves f unchanged. Values beyond the line's
// length are ignored.
// Complexity: O(L) for a line of length L.
func (f *Field[T]) SetLine(d geom.Direction, index int, values []T) error {
	if err := f.checkLine(d, index); err != nil {
		return lineErrorf("SetLine", d, index, err)
	}
	n, _ := f.LineLen(d, index)
	if len(values) < n {
		return lineErrorf("SetLine", d, index,
			fmt.Errorf("%w: line holds %d cells, got %d values", ErrLengthMismatch, n, len(values)))
	}

	switch d {
	case geom.Horizontal:
		copy(f.data[index], values[:n])
	case geom.Vertical:
		for r, row := range f.data {
			if index < len(row) {
				row[index] = values[r]
			}
		}
	default:
		i := 0
		for c := range f.walkLine(d, index) {
			if p := f.Ptr(c); p != nil {
				*p = values[i]
			}
			i++
		}
	}
	return nil
}

// SetLines writes lines[i] to line i of d for every i.
//
// A failing line does not stop the others: every failure is logged at debug
// level and the combined error (go.uber.org/multierr) is returned. Lines that
// succeeded stay written, so on error f may be partially updated; each
// individual line is either fully written or untouched.
func (f *Field[T]) SetLines(d geom.Direction, lines [][]T) error {
	var errs error
	for i, line := range lines {
		if err := f.SetLine(d, i, line); err != nil {
			Logger().Debug("field: line write failed",
				zap.Stringer("direction", d),
				zap.Int("index", i),
				zap.Error(err))
			errs = multierr.Append(errs, err)
		}
	}
	return errs
}
