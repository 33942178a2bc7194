// Package order provides domain entities and business logic for customer
// orders in the marketplace. It implements the Order aggregate root with
// lifecycle management and validated status transitions.
//
// The package includes:
//   - Order: the aggregate root holding identity, parties, items, and totals
//   - Item: an immutable snapshot of a menu item at order time
//   - Status: a state machine enforcing the order workflow
//
// Key business rules:
//   - Orders are created in pending status with at least one item
//   - total_amount equals the sum of item line totals at creation time and
//     is never re-derived afterwards
//   - Status follows the graph pending -> confirmed -> preparing -> ready ->
//     picked_up -> delivered, with cancellation possible up to ready
//   - delivered and cancelled are terminal; orders are never deleted
//
// A delivery-assignment status change may also write the order status
// through ApplyAssignmentStatus; that path intentionally bypasses the
// transition graph (see the delivery package's cascade policy).
package order
