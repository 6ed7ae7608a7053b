// SPDX-License-Identifier: MIT

package geom

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// SquareKernel returns every offset within Chebyshev distance radius of the
// origin, in row-major order (row delta ascending, then column delta).
// The origin is included only when includeCenter is true.
//
// Radius 1 without centre is the 8-neighbourhood; with centre it has 9 entries.
// A negative radius yields an empty kernel.
// Complexity: O((2r+1)²) time and memory.
func SquareKernel(radius int, includeCenter bool) []Offset {
	if radius < 0 {
		return nil
	}
	side := 2*radius + 1
	out := make([]Offset, 0, side*side)
	for row := -radius; row <= radius; row++ {
		for col := -radius; col <= radius; col++ {
			if row == 0 && col == 0 && !includeCenter {
				continue
			}
			out = append(out, Offset{Row: row, Column: col})
		}
	}
	return out
}

// CrossKernel returns every offset within Manhattan distance radius of the
// origin, ordered like SquareKernel. Radius 1 without centre is the
// 4-neighbourhood N, W, E, S.
// A negative radius yields an empty kernel.
func CrossKernel(radius int, includeCenter bool) []Offset {
	if radius < 0 {
		return nil
	}
	var out []Offset
	for row := -radius; row <= radius; row++ {
		span := radius - abs(row)
		for col := -span; col <= span; col++ {
			if row == 0 && col == 0 && !includeCenter {
				continue
			}
			out = append(out, Offset{Row: row, Column: col})
		}
	}
	return out
}

// Kernel shapes accepted by KernelSpec.
const (
	ShapeSquare = "square"
	ShapeCross  = "cross"
	ShapeCustom = "custom"
)

// KernelSpec describes a neighbourhood declaratively, e.g. in YAML:
//
//	shape: cross
//	radius: 2
//	include_center: false
//
// or, for an explicit list:
//
//	shape: custom
//	offsets: [[-1, 0], [0, 1]]
//
// An empty Shape means ShapeSquare.
type KernelSpec struct {
	Shape         string   `yaml:"shape,omitempty"`
	Radius        int      `yaml:"radius,omitempty"`
	IncludeCenter bool     `yaml:"include_center,omitempty"`
	Offsets       []Offset `yaml:"offsets,omitempty"`
}

// Kernel resolves the spec to its ordered offsets.
// Returns ErrNegativeRadius or ErrUnknownShape.
func (s KernelSpec) Kernel() ([]Offset, error) {
	if s.Radius < 0 {
		return nil, ErrNegativeRadius
	}
	switch s.Shape {
	case "", ShapeSquare:
		return SquareKernel(s.Radius, s.IncludeCenter), nil
	case ShapeCross:
		return CrossKernel(s.Radius, s.IncludeCenter), nil
	case ShapeCustom:
		out := make([]Offset, 0, len(s.Offsets))
		for _, o := range s.Offsets {
			if o.IsZero() && !s.IncludeCenter {
				continue
			}
			out = append(out, o)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownShape, s.Shape)
	}
}

// ParseKernelSpec decodes a YAML kernel description and resolves it.
func ParseKernelSpec(data []byte) (KernelSpec, []Offset, error) {
	var spec KernelSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return KernelSpec{}, nil, fmt.Errorf("geom: parse kernel spec: %w", err)
	}
	kernel, err := spec.Kernel()
	if err != nil {
		return KernelSpec{}, nil, err
	}
	return spec, kernel, nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
