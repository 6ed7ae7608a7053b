// SPDX-License-Identifier: MIT

package field

// Field is a dense rectangular grid of cells of type T.
//
// data[row][column] holds the cell at geom.Coordinate{Row: row, Column: column}.
// Width is len(data[0]) (0 without rows) and Height is len(data).
// Every constructor yields equal-length rows; SetGrid and FromGrid keep that
// guarantee unless WithUnchecked was given.
type Field[T any] struct {
	data [][]T
	opts Options
}

// New returns a width×height field with every cell set to value.
// Returns ErrBadShape if either dimension is negative.
// Complexity: O(W·H) time and memory.
func New[T any](width, height int, value T) (*Field[T], error) {
	if width < 0 || height < 0 {
		return nil, ErrBadShape
	}
	f := newZero[T](width, height)
	for _, row := range f.data {
		for c := range row {
			row[c] = value
		}
	}
	return f, nil
}

// NewZero returns a width×height field of T's zero value.
// Returns ErrBadShape if either dimension is negative.
// Complexity: O(W·H) time and memory.
func NewZero[T any](width, height int) (*Field[T], error) {
	if width < 0 || height < 0 {
		return nil, ErrBadShape
	}
	return newZero[T](width, height), nil
}

// FromGrid adopts grid as the field's storage without copying it.
// The caller must not keep mutating grid through other references.
//
// Returns ErrNonRectangular for ragged rows unless WithUnchecked is given.
// An empty grid yields a 0×0 field.
// Complexity: O(H) validation.
func FromGrid[T any](grid [][]T, opts ...Option) (*Field[T], error) {
	o := gatherOptions(opts...)
	if !o.unchecked {
		if err := validateGrid(grid); err != nil {
			return nil, err
		}
	}
	return &Field[T]{data: grid, opts: o}, nil
}

// Clone returns a deep copy of f; cells are copied by assignment.
// Complexity: O(W·H).
func (f *Field[T]) Clone() *Field[T] {
	data := make([][]T, len(f.data))
	for r, row := range f.data {
		data[r] = append([]T(nil), row...)
	}
	return &Field[T]{data: data, opts: f.opts}
}

// newZero allocates a zero-valued grid with a single backing slice.
func newZero[T any](width, height int) *Field[T] {
	backing := make([]T, width*height)
	data := make([][]T, height)
	for r := range data {
		data[r] = backing[r*width : (r+1)*width : (r+1)*width]
	}
	return &Field[T]{data: data}
}

// validateGrid reports ErrNonRectangular if any row differs from the first.
func validateGrid[T any](grid [][]T) error {
	if len(grid) == 0 {
		return nil
	}
	w := len(grid[0])
	for _, row := range grid {
		if len(row) != w {
			return ErrNonRectangular
		}
	}
	return nil
}
