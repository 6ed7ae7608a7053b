package field_test

import (
	"slices"
	"testing"

	"github.com/0-Kirby-0/Field/field"
	"github.com/0-Kirby-0/Field/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// coords is shorthand for a list of (row, column) pairs.
func coords(pairs ...[2]int) []geom.Coordinate {
	out := make([]geom.Coordinate, len(pairs))
	for i, p := range pairs {
		out[i] = geom.Coordinate{Row: p[0], Column: p[1]}
	}
	return out
}

// TestNumberOfLines checks the count for several shapes.
func TestNumberOfLines(t *testing.T) {
	for _, shape := range [][2]int{{1, 1}, {3, 3}, {4, 2}, {2, 4}, {1, 7}, {7, 1}} {
		w, h := shape[0], shape[1]
		f := numbered(t, w, h)
		assert.Equal(t, h, f.NumberOfLines(geom.Horizontal), "%dx%d", h, w)
		assert.Equal(t, w, f.NumberOfLines(geom.Vertical), "%dx%d", h, w)
		assert.Equal(t, w+h-1, f.NumberOfLines(geom.Diagonal), "%dx%d", h, w)
		assert.Equal(t, f.NumberOfLines(geom.Diagonal), f.NumberOfLines(geom.AntiDiagonal))
	}
	assert.Equal(t, 0, numbered(t, 2, 2).NumberOfLines(geom.Direction(9)))
}

// TestLineStart_Square3 pins the start coordinates of a 3×3 field.
//
//	Diagonal:     (2,0) (1,0) (0,0) (0,1) (0,2)
//	AntiDiagonal: (0,0) (0,1) (0,2) (1,2) (2,2)
func TestLineStart_Square3(t *testing.T) {
	f := numbered(t, 3, 3)
	assert.Equal(t, coords([2]int{2, 0}, [2]int{1, 0}, [2]int{0, 0}, [2]int{0, 1}, [2]int{0, 2}),
		slices.Collect(f.LineStarts(geom.Diagonal)))
	assert.Equal(t, coords([2]int{0, 0}, [2]int{0, 1}, [2]int{0, 2}, [2]int{1, 2}, [2]int{2, 2}),
		slices.Collect(f.LineStarts(geom.AntiDiagonal)))
	assert.Equal(t, coords([2]int{0, 0}, [2]int{1, 0}, [2]int{2, 0}),
		slices.Collect(f.LineStarts(geom.Horizontal)))
	assert.Equal(t, coords([2]int{0, 0}, [2]int{0, 1}, [2]int{0, 2}),
		slices.Collect(f.LineStarts(geom.Vertical)))
}

// TestLineStart_NonSquare covers wide and tall fields, where diagonals do not
// all start on the same border.
func TestLineStart_NonSquare(t *testing.T) {
	wide := numbered(t, 3, 2) // 2 rows × 3 columns
	assert.Equal(t, coords([2]int{1, 0}, [2]int{0, 0}, [2]int{0, 1}, [2]int{0, 2}),
		slices.Collect(wide.LineStarts(geom.Diagonal)))
	assert.Equal(t, coords([2]int{0, 0}, [2]int{0, 1}, [2]int{0, 2}, [2]int{1, 2}),
		slices.Collect(wide.LineStarts(geom.AntiDiagonal)))

	tall := numbered(t, 2, 3) // 3 rows × 2 columns
	assert.Equal(t, coords([2]int{2, 0}, [2]int{1, 0}, [2]int{0, 0}, [2]int{0, 1}),
		slices.Collect(tall.LineStarts(geom.Diagonal)))
	assert.Equal(t, coords([2]int{0, 0}, [2]int{0, 1}, [2]int{1, 1}, [2]int{2, 1}),
		slices.Collect(tall.LineStarts(geom.AntiDiagonal)))
}

// TestLineStart_OutOfRange checks the absent results.
func TestLineStart_OutOfRange(t *testing.T) {
	f := numbered(t, 3, 2)
	for _, d := range geom.Directions() {
		_, ok := f.LineStart(d, -1)
		assert.False(t, ok, "%s -1", d)
		_, ok = f.LineStart(d, f.NumberOfLines(d))
		assert.False(t, ok, "%s past end", d)
	}
	_, ok := f.LineStart(geom.Direction(5), 0)
	assert.False(t, ok)
}

// TestLineCoordinates_Square3 pins full diagonal traversals.
func TestLineCoordinates_Square3(t *testing.T) {
	f := numbered(t, 3, 3)

	seq, err := f.LineCoordinates(geom.Diagonal, 2)
	require.NoError(t, err)
	assert.Equal(t, coords([2]int{0, 0}, [2]int{1, 1}, [2]int{2, 2}), slices.Collect(seq))

	seq, err = f.LineCoordinates(geom.AntiDiagonal, 3)
	require.NoError(t, err)
	assert.Equal(t, coords([2]int{1, 2}, [2]int{2, 1}), slices.Collect(seq))

	_, err = f.LineCoordinates(geom.Vertical, 3)
	assert.ErrorIs(t, err, field.ErrLineIndex)
	_, err = f.LineCoordinates(geom.Direction(8), 0)
	assert.ErrorIs(t, err, field.ErrUnknownDirection)
}

// TestLineLen_MatchesWalk compares the closed-form length with the walked one.
func TestLineLen_MatchesWalk(t *testing.T) {
	for _, shape := range [][2]int{{1, 1}, {3, 3}, {5, 2}, {2, 5}, {4, 1}} {
		f := numbered(t, shape[0], shape[1])
		for _, d := range geom.Directions() {
			for i := 0; i < f.NumberOfLines(d); i++ {
				n, err := f.LineLen(d, i)
				require.NoError(t, err)
				seq, err := f.LineCoordinates(d, i)
				require.NoError(t, err)
				assert.Len(t, slices.Collect(seq), n, "%v %s line %d", shape, d, i)
			}
		}
	}
	_, err := numbered(t, 2, 2).LineLen(geom.Diagonal, 3)
	assert.ErrorIs(t, err, field.ErrLineIndex)
}

// TestLines_CoverEveryCellOnce checks that the lines of each direction
// partition the field.
func TestLines_CoverEveryCellOnce(t *testing.T) {
	f := numbered(t, 4, 3)
	for _, d := range geom.Directions() {
		seen := make(map[geom.Coordinate]int)
		for i := 0; i < f.NumberOfLines(d); i++ {
			seq, err := f.LineCoordinates(d, i)
			require.NoError(t, err)
			for c := range seq {
				seen[c]++
			}
		}
		assert.Len(t, seen, 12, "%s covers every cell", d)
		for c, n := range seen {
			assert.Equal(t, 1, n, "%s visits %s once", d, c)
		}
	}
}

// TestSingleCell checks that a 1×1 field has one line per direction holding its cell.
func TestSingleCell(t *testing.T) {
	f, err := field.New(1, 1, 42)
	require.NoError(t, err)
	for _, d := range geom.Directions() {
		require.Equal(t, 1, f.NumberOfLines(d), "%s", d)
		assert.Equal(t, []int{42}, collectLine(t, f, d, 0), "%s", d)
	}
}
