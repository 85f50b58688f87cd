package ports

import (
	"context"

	"catering/internal/core/domain/model/catalog"
	"catering/internal/core/domain/model/kernel"
)

// CatalogReader gives the order ledger read access to clients and menus.
// Both methods return an ObjectNotFoundError for unknown identifiers.
type CatalogReader interface {
	GetClient(ctx context.Context, id kernel.UUID) (*catalog.Client, error)
	GetMenu(ctx context.Context, id kernel.UUID) (*catalog.Menu, error)
}

// CatalogRepository stores clients and menus. A duplicate client e-mail is
// reported as a ConflictError.
type CatalogRepository interface {
	CatalogReader

	AddClient(ctx context.Context, client *catalog.Client) error
	AddMenu(ctx context.Context, menu *catalog.Menu) error
}
