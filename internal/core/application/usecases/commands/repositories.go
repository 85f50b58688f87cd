// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"catering/internal/core/ports"
)

// Unit of Work interfaces give each ledger exactly the repositories it may
// write plus read-only access to the ledgers it depends on.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// OrderReaderFactory exposes the order ledger to its dependents without
	// giving them write access.
	OrderReaderFactory interface {
		OrderReader() ports.OrderReader
	}

	PaymentRepoFactory interface {
		PaymentRepository() ports.PaymentRepository
	}

	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	CatalogRepoFactory interface {
		CatalogRepository() ports.CatalogRepository
	}

	CatalogReaderFactory interface {
		CatalogReader() ports.CatalogReader
	}

	// OrderUoW manages transactions of the order ledger. Orders read the
	// catalog for client existence and menu prices.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		CatalogReaderFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// PaymentUoW manages transactions of the payment ledger.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   o, err := uow.OrderReader().GetForUpdate(ctx, orderID)
	//   paid, err := uow.PaymentRepository().CompletedTotal(ctx, orderID, nil)
	//   // ... build and add the payment
	//
	//   err = uow.Commit(ctx)
	PaymentUoW interface {
		TxManager
		PaymentRepoFactory
		OrderReaderFactory
	}

	PaymentUoWFactory interface {
		Create() PaymentUoW
	}

	// DeliveryUoW manages transactions of the delivery scheduler.
	DeliveryUoW interface {
		TxManager
		DeliveryRepoFactory
		OrderReaderFactory
	}

	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	// CatalogUoW manages transactions for client and menu records.
	CatalogUoW interface {
		TxManager
		CatalogRepoFactory
	}

	CatalogUoWFactory interface {
		Create() CatalogUoW
	}
)
