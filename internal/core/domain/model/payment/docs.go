// Package payment contains the Payment aggregate of the payment ledger.
//
// Payments are recorded against orders. The ledger guarantees that the sum
// of COMPLETED payments of an order never exceeds the order total: callers
// describe the order with a Balance and every operation that can grow the
// completed sum checks it.
package payment
