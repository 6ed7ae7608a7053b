// File: region/bridge_test.go
package region_test

import (
	"testing"

	"github.com/0-Kirby-0/Field/field"
	"github.com/0-Kirby-0/Field/geom"
	"github.com/0-Kirby-0/Field/region"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBridge_BasicLine converts the single gap of [1,0,1].
func TestBridge_BasicLine(t *testing.T) {
	f := mustField(t, [][]int{{1, 0, 1}})
	path, cost, err := region.Bridge(f, region.AtLeast(1), region.Conn4.Kernel(), 0, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, cost)
	assert.Equal(t, []geom.Coordinate{{Row: 0, Column: 0}, {Row: 0, Column: 1}, {Row: 0, Column: 2}}, path)
}

// TestBridge_MediumRow needs three conversions across [1,0,0,0,1].
func TestBridge_MediumRow(t *testing.T) {
	f := mustField(t, [][]int{{1, 0, 0, 0, 1}})
	path, cost, err := region.Bridge(f, region.AtLeast(1), region.Conn4.Kernel(), 0, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, cost)
	assert.Len(t, path, 5)
}

// TestBridge_PrefersFreeCells routes over member cells when that saves
// conversions.
//
//	1 0 0 0 1
//	0 2 2 2 0
//
// The top row needs 3 conversions; dropping onto the 2s needs only 2.
func TestBridge_PrefersFreeCells(t *testing.T) {
	f := mustField(t, [][]int{
		{1, 0, 0, 0, 1},
		{0, 2, 2, 2, 0},
	})
	member := region.AtLeast(1)
	comps := region.Components(f, member, region.Conn4.Kernel())
	require.Len(t, comps, 3) // (0,0) | (0,4) | the 2s

	path, cost, err := region.Bridge(f, member, region.Conn4.Kernel(), 0, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, cost)
	assert.Equal(t, geom.Coordinate{Row: 0, Column: 0}, path[0])
	assert.Equal(t, geom.Coordinate{Row: 0, Column: 4}, path[len(path)-1])
	assert.Contains(t, path, geom.Coordinate{Row: 1, Column: 2}, "path crosses the free cells")
}

// TestBridge_SameComponent costs nothing and returns a single cell.
func TestBridge_SameComponent(t *testing.T) {
	f := mustField(t, [][]int{{1, 0}, {0, 1}})
	comps := region.Components(f, region.AtLeast(1), region.Conn8.Kernel())
	require.Len(t, comps, 1)

	path, cost, err := region.Bridge(f, region.AtLeast(1), region.Conn8.Kernel(), 0, 0)
	require.NoError(t, err)
	assert.Zero(t, cost)
	require.Len(t, path, 1)
	assert.Contains(t, comps[0], path[0])
}

// TestBridge_Errors covers every sentinel.
func TestBridge_Errors(t *testing.T) {
	f := mustField(t, [][]int{{1, 0, 1}})
	member := region.AtLeast(1)

	_, _, err := region.Bridge(f, member, region.Conn4.Kernel(), -1, 1)
	assert.ErrorIs(t, err, region.ErrComponentIndex)
	_, _, err = region.Bridge(f, member, region.Conn4.Kernel(), 0, 2)
	assert.ErrorIs(t, err, region.ErrComponentIndex)
	_, _, err = region.Bridge(f, member, nil, 0, 1)
	assert.ErrorIs(t, err, region.ErrEmptyKernel)

	east := []geom.Offset{{Row: 0, Column: 1}}
	_, _, err = region.Bridge(f, member, east, 1, 0)
	assert.ErrorIs(t, err, region.ErrNoPath, "east-only steps cannot reach the west")
}

// TestBridge_RaggedUnchecked bridges across a longer middle row.
//
// Grid:
//
//	1
//	0 0 1
//	1
func TestBridge_RaggedUnchecked(t *testing.T) {
	f, err := field.FromGrid([][]int{{1}, {0, 0, 1}, {1}}, field.WithUnchecked())
	require.NoError(t, err)

	path, cost, err := region.Bridge(f, region.AtLeast(1), region.Conn4.Kernel(), 0, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, cost)
	assert.Equal(t, []geom.Coordinate{
		{Row: 0, Column: 0}, {Row: 1, Column: 0}, {Row: 1, Column: 1}, {Row: 1, Column: 2},
	}, path)
}
