// Package order contains the Order aggregate of the order ledger.
//
// The package includes:
//   - Order: identity, event details, pricing and lifecycle of a catering order
//   - Status: the order state machine
//
// Key business rules:
//   - An order is priced once from its menu: total = unit price × quantity
//   - The total is only recomputed when the quantity changes
//   - Event dates are never set in the past
//   - DELIVERED is final and CANCELLED can only be reopened as PENDING
//   - Only PENDING orders can be deleted
package order
