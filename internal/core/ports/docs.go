// Package ports defines the contracts between the catering domain and its
// infrastructure: repositories per ledger, read-only views other ledgers
// depend on, the unit of work and the domain event publisher.
package ports
