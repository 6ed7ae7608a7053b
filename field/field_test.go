package field_test

import (
	"testing"

	"github.com/0-Kirby-0/Field/field"
	"github.com/0-Kirby-0/Field/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_FillsEveryCell checks the uniform-value constructor and dimensions.
func TestNew_FillsEveryCell(t *testing.T) {
	f, err := field.New(4, 2, "x")
	require.NoError(t, err)
	assert.Equal(t, 4, f.Width())
	assert.Equal(t, 2, f.Height())
	assert.Equal(t, [][]string{{"x", "x", "x", "x"}, {"x", "x", "x", "x"}}, f.Grid())
}

// TestNewZero_UsesZeroValue checks the default-value constructor.
func TestNewZero_UsesZeroValue(t *testing.T) {
	f, err := field.NewZero[float64](2, 3)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0, 0}, {0, 0}, {0, 0}}, f.Grid())

	// rows share one backing slice but must not overlap
	require.NoError(t, f.Set(geom.Coordinate{Row: 0, Column: 1}, 7))
	assert.Equal(t, []float64{0, 0}, f.Grid()[1])
}

// TestConstructors_BadShape rejects negative dimensions.
func TestConstructors_BadShape(t *testing.T) {
	_, err := field.New(-1, 2, 0)
	assert.ErrorIs(t, err, field.ErrBadShape)
	_, err = field.NewZero[int](2, -5)
	assert.ErrorIs(t, err, field.ErrBadShape)
}

// TestEmptyField covers the 0×0 and 0-width shapes.
func TestEmptyField(t *testing.T) {
	f, err := field.NewZero[int](0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, f.Width())
	assert.Equal(t, 0, f.Height())
	for _, d := range geom.Directions() {
		assert.Equal(t, 0, f.NumberOfLines(d), "%s", d)
	}

	g, err := field.FromGrid([][]int{{}, {}})
	require.NoError(t, err)
	assert.Equal(t, 0, g.Width())
	assert.Equal(t, 2, g.Height())
	assert.Equal(t, 2, g.NumberOfLines(geom.Horizontal))
	assert.Equal(t, 0, g.NumberOfLines(geom.Diagonal), "no cells, no diagonals")
}

// TestFromGrid_Validation rejects ragged rows unless unchecked.
func TestFromGrid_Validation(t *testing.T) {
	ragged := [][]int{{1, 2}, {3}}

	_, err := field.FromGrid(ragged)
	require.ErrorIs(t, err, field.ErrNonRectangular)

	f, err := field.FromGrid(ragged, field.WithUnchecked())
	require.NoError(t, err)
	assert.Equal(t, 2, f.Width(), "width comes from the first row only")

	empty, err := field.FromGrid[int](nil)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Height())
}

// TestFromGrid_AdoptsStorage checks that the grid is wrapped, not copied.
func TestFromGrid_AdoptsStorage(t *testing.T) {
	grid := [][]int{{1, 2}, {3, 4}}
	f, err := field.FromGrid(grid)
	require.NoError(t, err)

	grid[1][0] = 30
	v, err := f.At(geom.Coordinate{Row: 1, Column: 0})
	require.NoError(t, err)
	assert.Equal(t, 30, v)
}

// TestSetGrid covers validation policy inheritance and the failure path.
func TestSetGrid(t *testing.T) {
	f := numbered(t, 2, 2)

	err := f.SetGrid([][]int{{1}, {2, 3}})
	require.ErrorIs(t, err, field.ErrNonRectangular)
	assert.Equal(t, [][]int{{1, 2}, {3, 4}}, f.Grid(), "failed SetGrid leaves the field unchanged")

	require.NoError(t, f.SetGrid([][]int{{9, 9, 9}}))
	assert.Equal(t, 3, f.Width())
	assert.Equal(t, 1, f.Height())

	loose, err := field.FromGrid([][]int{{0}}, field.WithUnchecked())
	require.NoError(t, err)
	assert.NoError(t, loose.SetGrid([][]int{{1}, {2, 3}}), "unchecked policy carries to SetGrid")
}

// TestClone checks deep-copy independence.
func TestClone(t *testing.T) {
	f := numbered(t, 2, 2)
	g := f.Clone()
	require.NoError(t, g.Set(geom.Coordinate{}, 100))

	v, _ := f.At(geom.Coordinate{})
	assert.Equal(t, 1, v)
	v, _ = g.At(geom.Coordinate{})
	assert.Equal(t, 100, v)
}
