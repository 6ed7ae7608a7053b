// Package field is the umbrella for a family of small packages built around
// one idea: a rectangular grid of cells that can be read and written one line
// at a time, along rows, columns, diagonals and anti-diagonals.
//
// What's inside
//
//	geom/   — Coordinate, Offset, Axis and Direction; checked arithmetic,
//	          neighbourhood kernels and YAML/text codecs
//	field/  — Field[T]: construction, cell access, line geometry, line reads
//	          and writes, Map/Merge transforms, dumps and debug logging
//	region/ — connected components and minimum-cost bridges over a Field
//	warp/   — dynamic time warping, filled wavefront by wavefront along
//	          anti-diagonals of a cost Field
//	examples/ — runnable programs (word search, island bridging)
//
// Line numbering
//
// For a field of width W and height H:
//
//	Horizontal:   H lines, line i is row i, left to right
//	Vertical:     W lines, line i is column i, top to bottom
//	Diagonal:     W+H-1 lines, down-right, starting bottom-left
//	AntiDiagonal: W+H-1 lines, down-left, starting top-left
//
// Quick start
//
//	f, _ := field.FromGrid([][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
//	for i, line := range f.Lines(geom.Diagonal) {
//		fmt.Println(i, slices.Collect(line))
//	}
//
// Errors are sentinel values matched with errors.Is; diagnostics go through
// an optional *zap.Logger installed with field.SetLogger.
package field
