package field_test

import (
	"slices"
	"testing"

	"github.com/0-Kirby-0/Field/field"
	"github.com/0-Kirby-0/Field/geom"
	"github.com/stretchr/testify/require"
)

// numbered returns a height×width field holding 1, 2, 3, ... in row-major order.
func numbered(t testing.TB, width, height int) *field.Field[int] {
	t.Helper()
	f, err := field.NewZero[int](width, height)
	require.NoError(t, err)
	n := 0
	for c := range f.AllCoordinates() {
		n++
		require.NoError(t, f.Set(c, n))
	}
	return f
}

// collectLine reads one line into a slice, failing the test on error.
func collectLine[T any](t testing.TB, f *field.Field[T], d geom.Direction, index int) []T {
	t.Helper()
	line, err := f.Line(d, index)
	require.NoError(t, err)
	return slices.Collect(line)
}

// collectLines reads every line of d.
func collectLines[T any](t testing.TB, f *field.Field[T], d geom.Direction) [][]T {
	t.Helper()
	var out [][]T
	for _, line := range f.Lines(d) {
		out = append(out, slices.Collect(line))
	}
	return out
}
