// SPDX-License-Identifier: MIT

package geom

import "errors"

// Sentinel errors for geom decoding and configuration.
var (
	// ErrNegativeCoordinate indicates a decoded Coordinate with a negative axis.
	ErrNegativeCoordinate = errors.New("geom: coordinate axis must be non-negative")

	// ErrUnknownAxis indicates an axis name that is neither "row" nor "column".
	ErrUnknownAxis = errors.New("geom: unknown axis")

	// ErrUnknownDirection indicates a direction name or value outside the four directions.
	ErrUnknownDirection = errors.New("geom: unknown direction")

	// ErrPairLength indicates a YAML pair that is not exactly [row, column].
	ErrPairLength = errors.New("geom: pair must have exactly two elements")

	// ErrUnknownShape indicates a KernelSpec shape other than "square", "cross" or "custom".
	ErrUnknownShape = errors.New("geom: unknown kernel shape")

	// ErrNegativeRadius indicates a KernelSpec with radius < 0.
	ErrNegativeRadius = errors.New("geom: kernel radius must be non-negative")
)
