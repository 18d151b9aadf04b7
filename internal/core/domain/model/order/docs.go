// Package order provides the domain entities and business logic for
// multi-warehouse transfer orders. It implements the TransferOrder aggregate
// root with lifecycle management, line-item accumulation, and the order-code
// grammar.
//
// The package includes:
//   - Order: the aggregate root owning its line items and lifecycle
//   - Line: one product entry, with requested vs. prepared quantity
//   - Status: the state machine enforcing valid lifecycle transitions
//   - the OT-{year}-{sequence:05d}[.{suffix}][.0] code grammar and the
//     scan-and-pick-minimum suffix allocation
//
// Key business rules:
//   - lines are editable only while the order is Draft; at most one line
//     exists per product code, additions for the same product merge
//   - prepared quantities only grow and are never clamped to the request
//   - the lifecycle follows Draft -> Sent -> InProgress -> Closed, with
//     Sent advancing only on the first prepared-quantity write
//   - closing freezes the code with a ".0" marker and may fork a successor
//     sibling order for lines that were never started
//
// The package follows Domain-Driven Design principles: rich behavior,
// encapsulation, and validation at the aggregate boundary.
package order
