package warp

import "errors"

var (
	// ErrEmptySequence indicates one or both inputs are empty.
	ErrEmptySequence = errors.New("warp: input sequences must be non-empty")

	// ErrBadPenalty indicates a negative or NaN slope penalty.
	ErrBadPenalty = errors.New("warp: slope penalty must be a non-negative number")

	// ErrNoAlignment indicates the window excludes every path to the end cell.
	ErrNoAlignment = errors.New("warp: window too narrow, no alignment exists")
)

// Options configures Align.
//
// Fields:
//   - Window       — maximum deviation |r−c| allowed (Sakoe–Chiba band).
//     Zero or negative means no windowing constraint, so the zero Options
//     value aligns without a band.
//   - SlopePenalty — cost added to every insertion or deletion step.
//   - ReturnPath   — if true, Align backtracks and returns the warping path.
type Options struct {
	Window       int
	SlopePenalty float64
	ReturnPath   bool
}

// DefaultOptions returns an unconstrained window, no penalty and no path.
func DefaultOptions() Options {
	return Options{
		Window:       0,
		SlopePenalty: 0,
		ReturnPath:   false,
	}
}
