package region

import (
	"cmp"
	"errors"

	"github.com/0-Kirby-0/Field/field"
	"github.com/0-Kirby-0/Field/geom"
)

// Sentinel errors for region operations.
var (
	// ErrEmptyKernel indicates a kernel with no offsets.
	ErrEmptyKernel = errors.New("region: kernel must contain at least one offset")
	// ErrComponentIndex indicates a requested component index is out of range.
	ErrComponentIndex = errors.New("region: component index out of range")
	// ErrNoPath indicates no conversion path exists between two components.
	ErrNoPath = errors.New("region: no path between specified components")
)

// Connectivity selects a neighbourhood: orthogonal (Conn4) or including
// diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, W, E, S.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity, adding the four diagonals.
	Conn8
)

// Kernel returns the offsets of the neighbourhood, in row-major order.
// Unknown values fall back to Conn4.
func (c Connectivity) Kernel() []geom.Offset {
	if c == Conn8 {
		return geom.SquareKernel(1, false)
	}
	return geom.CrossKernel(1, false)
}

// AtLeast returns a member predicate accepting cells >= threshold.
func AtLeast[T cmp.Ordered](threshold T) func(T) bool {
	return func(v T) bool { return v >= threshold }
}

// scratch allocates per-cell working state covering every cell of f, each set
// to value. Its width is the longest row, so ragged fields built WithUnchecked
// fit too.
func scratch[T, S any](f *field.Field[T], value S) *field.Field[S] {
	width := 0
	for _, row := range f.Grid() {
		width = max(width, len(row))
	}
	out, _ := field.New(width, f.Height(), value)
	return out
}
