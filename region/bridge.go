package region

import (
	"container/list"
	"math"
	"slices"

	"github.com/0-Kirby-0/Field/field"
	"github.com/0-Kirby-0/Field/geom"
)

// Bridge finds a minimum-conversion path of non-member cells connecting any
// cell of component src to any cell of component dst, as numbered by
// Components with the same member and kernel. Converting a non-member cell
// costs 1; stepping onto a member cell is free.
//
// Returns the path (including its start and end member cells) and the total
// conversion cost.
//
// Behavior:
//  1. Validate kernel and component indices.
//  2. Multi-source 0-1 BFS from every src cell:
//     • moving onto a member cell     → cost 0 (push front)
//     • moving onto a non-member cell → cost 1 (push back)
//  3. Stop at the first dst cell popped.
//  4. Reconstruct the path through the predecessor field.
//
// Complexity: O(W·H·k) time, O(W·H) memory.
func Bridge[T any](f *field.Field[T], member func(T) bool, kernel []geom.Offset, src, dst int) (path []geom.Coordinate, cost int, err error) {
	if len(kernel) == 0 {
		return nil, 0, ErrEmptyKernel
	}
	comps := Components(f, member, kernel)
	if src < 0 || src >= len(comps) || dst < 0 || dst >= len(comps) {
		return nil, 0, ErrComponentIndex
	}
	isDst := scratch(f, false)
	for _, c := range comps[dst] {
		*isDst.Ptr(c) = true
	}

	dist := scratch(f, math.MaxInt)
	prev := scratch(f, geom.Coordinate{})
	hasPrev := scratch(f, false)

	// 0-1 BFS: deque processes cost 0 at front, cost 1 at back
	dq := list.New()
	for _, c := range comps[src] {
		*dist.Ptr(c) = 0
		dq.PushFront(c)
	}

	target, found := geom.Coordinate{}, false
	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(geom.Coordinate)
		if *isDst.Ptr(u) {
			target, found = u, true
			break
		}
		du := *dist.Ptr(u)
		for _, o := range kernel {
			v, ok := u.Add(o)
			if !ok {
				continue
			}
			cell := f.Ptr(v)
			if cell == nil {
				continue
			}
			step := 0
			if !member(*cell) {
				step = 1
			}
			if nd := du + step; nd < *dist.Ptr(v) {
				*dist.Ptr(v) = nd
				*prev.Ptr(v) = u
				*hasPrev.Ptr(v) = true
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	if !found {
		return nil, 0, ErrNoPath
	}
	// Reconstruct path
	for at := target; ; at = *prev.Ptr(at) {
		path = append(path, at)
		if !*hasPrev.Ptr(at) {
			break
		}
	}
	slices.Reverse(path)
	return path, *dist.Ptr(target), nil
}
