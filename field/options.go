// SPDX-License-Identifier: MIT

package field

// Option configures a Field at construction time.
type Option func(*Options)

// Options holds construction-time policy. Fields are unexported; use the
// WithX constructors.
type Options struct {
	// unchecked skips the rectangularity check in FromGrid and SetGrid.
	unchecked bool
}

// DefaultUnchecked is the zero-value policy: raw grids are validated.
const DefaultUnchecked = false

// WithUnchecked disables rectangularity validation of raw grids.
//
// Dimension queries read only the first row, so a ragged grid adopted this
// way makes line access inconsistent. Use it only when the shape is already
// guaranteed.
func WithUnchecked() Option {
	return func(o *Options) { o.unchecked = true }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{unchecked: DefaultUnchecked}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
