// SPDX-License-Identifier: MIT

package field

import (
	"errors"
	"fmt"

	"github.com/0-Kirby-0/Field/geom"
)

// Sentinel errors. Match them with errors.Is; methods wrap them with context.
var (
	// ErrBadShape indicates a negative width or height.
	ErrBadShape = errors.New("field: width and height must be >= 0")

	// ErrNonRectangular indicates raw grid rows of differing lengths.
	ErrNonRectangular = errors.New("field: all rows must have the same length")

	// ErrOutOfRange indicates a coordinate outside the field.
	ErrOutOfRange = errors.New("field: coordinate out of range")

	// ErrLineIndex indicates a line index outside [0, NumberOfLines(d)).
	ErrLineIndex = errors.New("field: line index out of range")

	// ErrUnknownDirection is geom.ErrUnknownDirection, re-exported for callers
	// that only import field.
	ErrUnknownDirection = geom.ErrUnknownDirection

	// ErrLengthMismatch indicates fewer values than the destination line holds,
	// or transformed lines that disagree on length.
	ErrLengthMismatch = errors.New("field: line length mismatch")

	// ErrDimensionMismatch indicates operands of different width or height.
	ErrDimensionMismatch = errors.New("field: dimension mismatch")

	// ErrNoWidth indicates MapByLine could not deduce the new cross dimension.
	ErrNoWidth = errors.New("field: transformed line has no width")
)

// lineErrorf wraps err with the method and line it concerns.
func lineErrorf(method string, d geom.Direction, index int, err error) error {
	return fmt.Errorf("Field.%s(%s,%d): %w", method, d, index, err)
}

// cellErrorf wraps err with the method and coordinate it concerns.
func cellErrorf(method string, c geom.Coordinate, err error) error {
	return fmt.Errorf("Field.%s%s: %w", method, c, err)
}
