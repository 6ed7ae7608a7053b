package region

import (
	"github.com/0-Kirby-0/Field/field"
	"github.com/0-Kirby-0/Field/geom"
)

// Components finds all maximal regions of cells satisfying member, where two
// cells are connected if one is reached from the other by a kernel offset.
//
// Components appear in row-major order of their first cell; cells within a
// component are in BFS order from that cell. Kernel steps that are
// infeasible or leave the field are skipped, so asymmetric kernels give
// directed reachability. Ragged fields are walked along their actual rows.
//
// Time:   O(W·H·k), k = len(kernel).
// Memory: O(W·H) for visited flags and output.
func Components[T any](f *field.Field[T], member func(T) bool, kernel []geom.Offset) [][]geom.Coordinate {
	seen := scratch(f, false)
	var comps [][]geom.Coordinate

	for start, v := range f.Cells() {
		if !member(v) {
			continue // not part of any region
		}
		if *seen.Ptr(start) {
			continue
		}
		// BFS to collect the component
		*seen.Ptr(start) = true
		queue := []geom.Coordinate{start}
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for _, o := range kernel {
				next, ok := u.Add(o)
				if !ok {
					continue
				}
				cell := f.Ptr(next)
				if cell == nil || !member(*cell) {
					continue
				}
				if s := seen.Ptr(next); !*s {
					*s = true
					queue = append(queue, next)
				}
			}
		}
		comps = append(comps, queue)
	}
	return comps
}
