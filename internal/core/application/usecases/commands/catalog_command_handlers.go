package commands

import (
	"context"

	"catering/internal/core/domain/model/catalog"
	"catering/internal/core/domain/model/kernel"
)

// CatalogCommandHandler creates clients and menus.
type CatalogCommandHandler struct {
	uowFactory CatalogUoWFactory
	clock      kernel.Clock
}

func NewCatalogCommandHandler(uowFactory CatalogUoWFactory, clock kernel.Clock) CatalogCommandHandler {
	return CatalogCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// HandleCreateClient returns a ConflictError when the e-mail is taken.
func (h CatalogCommandHandler) HandleCreateClient(ctx context.Context, cmd CreateClientCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	client, err := catalog.NewClient(cmd.ClientID(), cmd.Details(), h.clock.Now())
	if err != nil {
		return err
	}

	return h.inTx(ctx, func(repo catalogWriter) error {
		return repo.AddClient(ctx, client)
	})
}

func (h CatalogCommandHandler) HandleCreateMenu(ctx context.Context, cmd CreateMenuCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	menu, err := catalog.NewMenu(cmd.MenuID(), cmd.Name(), cmd.Description(), cmd.UnitPrice(), h.clock.Now())
	if err != nil {
		return err
	}

	return h.inTx(ctx, func(repo catalogWriter) error {
		return repo.AddMenu(ctx, menu)
	})
}

type catalogWriter interface {
	AddClient(ctx context.Context, client *catalog.Client) error
	AddMenu(ctx context.Context, menu *catalog.Menu) error
}

func (h CatalogCommandHandler) inTx(ctx context.Context, write func(catalogWriter) error) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := write(uow.CatalogRepository()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
