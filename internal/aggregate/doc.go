// Package aggregate derives the dashboard figures from transaction and
// investment snapshots.
//
// Every function in this package is pure: it reads the slices it is given,
// never mutates them, keeps no state between calls and returns freshly
// allocated results. Expected edge cases (empty inputs, zero baselines,
// lots without a purchase price) are ordinary control flow and never
// produce an error, a panic or a non-finite number.
package aggregate
