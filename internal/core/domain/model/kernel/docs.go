// Package kernel provides the domain primitives shared by the order, payment
// and delivery aggregates.
//
// The package includes:
//   - UUID: identity value object
//   - Money: decimal amount rounded to cents
//   - Date and TimeOfDay: calendar day and wall clock time
//   - Clock: source of "now" and "today" for date rules
//   - DomainEvent and EventRecorder: facts published after commit
//
// All values are immutable and safe for concurrent use.
package kernel
