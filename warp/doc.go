// Package warp computes Dynamic Time Warping (DTW) distances between numeric
// sequences, storing the cost tables as field.Field values.
//
// What is DTW?
//
//	DTW finds the best match between two sequences by warping the time
//	axis to minimise cumulative distance. It is used in:
//	  • speech and audio alignment
//	  • gesture / motion matching
//	  • time-series clustering and anomaly detection
//
// How:
//
//   - The local cost field holds |a[r] - b[c]| at (r, c).
//   - The accumulation field is filled one anti-diagonal at a time: every
//     cell of anti-diagonal k depends only on anti-diagonals k-1 and k-2.
//   - Predecessors are reached with checked geom.Coordinate steps; a step off
//     the top or left edge counts as +Inf.
//
// Key features:
//   - optional Sakoe–Chiba window (|r−c| ≤ Window)
//   - slope penalty to discourage stretching
//   - on-demand alignment path (ReturnPath=true)
//
// Usage:
//
//	opts := warp.DefaultOptions()
//	opts.Window = 10
//	opts.ReturnPath = true
//	dist, path, err := warp.Align(a, b, &opts)
//
// Performance:
//
//   - Time:   O(N·M)
//   - Memory: O(N·M)
package warp
