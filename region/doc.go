// Package region treats a field.Field as a graph of cells, enabling
// connected-region analysis and minimal-cost bridges between regions.
//
// What:
//
//   - A member predicate decides which cells belong to regions ("land");
//     AtLeast builds the common threshold predicate.
//   - Connectivity is any kernel of offsets; Conn4 and Conn8 name the two
//     classic neighbourhoods.
//   - Components finds every maximal connected set of member cells.
//   - Bridge computes the fewest non-member cells to convert so that two
//     regions touch (0-1 BFS).
//
// Why:
//
//   - Game maps: island detection, optimal bridging.
//   - Image masks: blob counting under 4- or 8-neighbourhoods.
//
// Complexity:
//
//   - Components: O(W×H×k), Memory: O(W×H)   (k = kernel size).
//   - Bridge:     O(W×H×k), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyKernel: Bridge was given no offsets.
//   - ErrComponentIndex: requested component index out of range.
//   - ErrNoPath: no conversion path exists between the two components.
package region
