// Package services provides domain services that orchestrate business
// operations spanning more than one transfer order. It implements the
// workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - OrderCloser: closes an order and forks untouched lines into a
//     successor sibling order
//   - ResidualSplitter: moves the unfulfilled remainder of a partially
//     prepared line on a closed order onto the next sibling
//
// Both services are pure over their inputs; callers execute them inside one
// persistence transaction together with the resulting writes.
package services
