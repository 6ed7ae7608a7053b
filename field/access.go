// SPDX-License-Identifier: MIT

package field

import (
	"iter"

	"github.com/0-Kirby-0/Field/geom"
)

// ---------- Raw access ----------

// Grid returns the backing storage. Mutations through it are visible in f.
func (f *Field[T]) Grid() [][]T {
	return f.data
}

// SetGrid replaces the backing storage with grid, adopting it without a copy.
// Returns ErrNonRectangular for ragged rows unless f was built WithUnchecked;
// on error f is left unchanged.
func (f *Field[T]) SetGrid(grid [][]T) error {
	if !f.opts.unchecked {
		if err := validateGrid(grid); err != nil {
			return err
		}
	}
	f.data = grid
	return nil
}

// ---------- Cells ----------

// Ptr returns a pointer to the cell at c, or nil if c is outside the field.
// Complexity: O(1).
func (f *Field[T]) Ptr(c geom.Coordinate) *T {
	if !c.Valid() || c.Row >= len(f.data) {
		return nil
	}
	row := f.data[c.Row]
	if c.Column >= len(row) {
		return nil
	}
	return &row[c.Column]
}

// At returns the cell at c, or ErrOutOfRange.
// Complexity: O(1).
func (f *Field[T]) At(c geom.Coordinate) (T, error) {
	p := f.Ptr(c)
	if p == nil {
		var zero T
		return zero, cellErrorf("At", c, ErrOutOfRange)
	}
	return *p, nil
}

// Set writes v at c, or returns ErrOutOfRange.
// Complexity: O(1).
func (f *Field[T]) Set(c geom.Coordinate, v T) error {
	p := f.Ptr(c)
	if p == nil {
		return cellErrorf("Set", c, ErrOutOfRange)
	}
	*p = v
	return nil
}

// Values yields every cell in row-major order. The 2D structure is lost.
func (f *Field[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, row := range f.data {
			for _, v := range row {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Cells yields every (coordinate, value) pair in row-major order.
func (f *Field[T]) Cells() iter.Seq2[geom.Coordinate, T] {
	return func(yield func(geom.Coordinate, T) bool) {
		for r, row := range f.data {
			for c, v := range row {
				if !yield(geom.Coordinate{Row: r, Column: c}, v) {
					return
				}
			}
		}
	}
}

// ValuesAt yields the cell at each coordinate of coords, in order.
// Coordinates outside the field are skipped.
func (f *Field[T]) ValuesAt(coords iter.Seq[geom.Coordinate]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for c := range coords {
			if p := f.Ptr(c); p != nil {
				if !yield(*p) {
					return
				}
			}
		}
	}
}

// SetEach writes every (coordinate, value) pair in order and stops at the
// first coordinate outside the field. Pairs written before the failure stay
// written.
func (f *Field[T]) SetEach(pairs iter.Seq2[geom.Coordinate, T]) error {
	for c, v := range pairs {
		if err := f.Set(c, v); err != nil {
			return err
		}
	}
	return nil
}

// Neighbours yields the cells reached from c by each kernel offset, in kernel
// order. Offsets whose step is infeasible or lands outside the field are
// skipped.
func (f *Field[T]) Neighbours(c geom.Coordinate, kernel []geom.Offset) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, o := range kernel {
			n, ok := c.Add(o)
			if !ok {
				continue
			}
			if p := f.Ptr(n); p != nil {
				if !yield(*p) {
					return
				}
			}
		}
	}
}
