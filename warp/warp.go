package warp

import (
	"math"
	"slices"

	"github.com/0-Kirby-0/Field/field"
	"github.com/0-Kirby-0/Field/geom"
)

// Predecessor steps: a move into (r, c) comes from one of these offsets.
var (
	stepMatch  = geom.Offset{Row: -1, Column: -1}
	stepInsert = geom.Offset{Row: -1, Column: 0}
	stepDelete = geom.Offset{Row: 0, Column: -1}
)

// Align computes the DTW distance between a and b.
// Returns (distance, path, error); path is nil unless opts.ReturnPath.
//
// Algorithm outline:
//  1. local(r, c) = |a[r] - b[c]| for the len(a)×len(b) field.
//  2. acc(0, 0) = local(0, 0); for every other cell, in anti-diagonal order:
//     acc(r, c) = local(r, c) + min(
//     acc(r-1, c)   + SlopePenalty,
//     acc(r, c-1)   + SlopePenalty,
//     acc(r-1, c-1))
//     with cells outside the field or the window counting as +Inf.
//  3. distance = acc(n-1, m-1).
//  4. If ReturnPath, backtrack from (n-1, m-1) to (0, 0) choosing the
//     cheapest predecessor; ties prefer the diagonal match.
//
// A nil opts means DefaultOptions().
// Errors: ErrEmptySequence, ErrBadPenalty, ErrNoAlignment.
func Align(a, b []float64, opts *Options) (distance float64, path []geom.Coordinate, err error) {
	n, m := len(a), len(b)
	if n == 0 || m == 0 {
		return 0, nil, ErrEmptySequence
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if math.IsNaN(o.SlopePenalty) || o.SlopePenalty < 0 {
		return 0, nil, ErrBadPenalty
	}

	shape, _ := field.NewZero[float64](m, n)
	local := field.MapWithCoordinate(shape, func(c geom.Coordinate, _ float64) float64 {
		return math.Abs(a[c.Row] - b[c.Column])
	})
	acc, _ := field.New(m, n, math.Inf(1))

	// Fill DP along anti-diagonals
	for i := 0; i < acc.NumberOfLines(geom.AntiDiagonal); i++ {
		line, _ := acc.LineCoordinates(geom.AntiDiagonal, i)
		for c := range line {
			if o.Window > 0 && abs(c.Row-c.Column) > o.Window {
				continue // outside the band, stays +Inf
			}
			cost, _ := local.At(c)
			if c == (geom.Coordinate{}) {
				_ = acc.Set(c, cost)
				continue
			}
			best := min(
				at(acc, c, stepInsert)+o.SlopePenalty,
				at(acc, c, stepDelete)+o.SlopePenalty,
				at(acc, c, stepMatch),
			)
			_ = acc.Set(c, cost+best)
		}
	}

	end := geom.Coordinate{Row: n - 1, Column: m - 1}
	distance, _ = acc.At(end)
	if math.IsInf(distance, 1) {
		return 0, nil, ErrNoAlignment
	}
	if !o.ReturnPath {
		return distance, nil, nil
	}
	return distance, backtrack(acc, end, o.SlopePenalty), nil
}

// backtrack walks from end to the origin through the cheapest predecessors.
func backtrack(acc *field.Field[float64], end geom.Coordinate, penalty float64) []geom.Coordinate {
	path := []geom.Coordinate{end}
	for c := end; c != (geom.Coordinate{}); {
		next, best := c, math.Inf(1)
		for _, step := range []geom.Offset{stepMatch, stepInsert, stepDelete} {
			p, ok := c.Add(step)
			if !ok {
				continue
			}
			v, _ := acc.At(p)
			if step != stepMatch {
				v += penalty
			}
			if v < best {
				next, best = p, v
			}
		}
		if next == c {
			break // unreachable for a finite distance
		}
		c = next
		path = append(path, c)
	}
	slices.Reverse(path)
	return path
}

// at returns acc(c+step), or +Inf if the step leaves the field.
func at(acc *field.Field[float64], c geom.Coordinate, step geom.Offset) float64 {
	p, ok := c.Add(step)
	if !ok {
		return math.Inf(1)
	}
	v, err := acc.At(p)
	if err != nil {
		return math.Inf(1)
	}
	return v
}

// abs returns the absolute value of an int.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
